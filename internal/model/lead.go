package model

import "time"

// Lead intents
const (
	IntentBuy  = "buy"
	IntentRent = "rent"
)

// Lead is a visitor-submitted contact record. Leads are written once and never updated.
type Lead struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	Email          string    `json:"email" db:"email"`
	BuyOrRent      string    `json:"buy_or_rent" db:"buy_or_rent"`
	BudgetMax      *int64    `json:"budget_max,omitempty" db:"budget_max"`
	Beds           *int      `json:"beds,omitempty" db:"beds"`
	Areas          string    `json:"areas" db:"areas"`
	InterestIDs    string    `json:"interest_ids" db:"interest_ids"`
	ConsentContact bool      `json:"consent_contact" db:"consent_contact"`
	UTMSource      string    `json:"utm_source" db:"utm_source"`
	UTMMedium      string    `json:"utm_medium" db:"utm_medium"`
	UTMCampaign    string    `json:"utm_campaign" db:"utm_campaign"`
	UTMTerm        string    `json:"utm_term" db:"utm_term"`
	UTMContent     string    `json:"utm_content" db:"utm_content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// LeadRequest represents a submitted lead. Form posts are converted into it by the handler.
type LeadRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	BuyOrRent      string `json:"buy_or_rent" binding:"required"`
	BudgetMax      *int64 `json:"budget_max"`
	Beds           *int   `json:"beds"`
	Areas          string `json:"areas"`
	InterestIDs    string `json:"interest_ids"`
	ConsentContact bool   `json:"consent_contact"`
}

// LeadResponse represents the response to a successful lead submission
type LeadResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Attribution holds the UTM tags of the visitor session that submitted a lead
type Attribution struct {
	Source   string
	Medium   string
	Campaign string
	Term     string
	Content  string
}
