package model

import (
	"time"

	"propertyhub/internal/utils"
)

// Property represents a listed property
type Property struct {
	Slug            string    `json:"slug" db:"slug"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	PriceAmount     int64     `json:"price_amount" db:"price_amount"`
	City            string    `json:"city" db:"city"`
	Area            string    `json:"area" db:"area"`
	Beds            int       `json:"beds" db:"beds"`
	Baths           int       `json:"baths" db:"baths"`
	FloorAreaSqm    float64   `json:"floor_area_sqm" db:"floor_area_sqm"`
	Parking         bool      `json:"parking" db:"parking"`
	HeroImage       string    `json:"hero_image" db:"hero_image"`
	Badges          string    `json:"badges" db:"badges"` // comma-separated
	AffiliateSource string    `json:"affiliate_source" db:"affiliate_source"`
	Commissionable  bool      `json:"commissionable" db:"commissionable"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// BadgeList returns the trimmed, non-empty badge entries
func (p *Property) BadgeList() []string {
	return utils.SplitCSV(p.Badges)
}

// PropertyDetail is the detail view of a property
type PropertyDetail struct {
	Property
	PriceDisplay string   `json:"price_display"`
	BadgeItems   []string `json:"badge_items"`
}
