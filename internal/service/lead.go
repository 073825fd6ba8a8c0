package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"propertyhub/internal/model"
	"propertyhub/internal/utils"
)

// LeadStore persists leads
type LeadStore interface {
	CreateLead(ctx context.Context, lead *model.Lead) error
}

// LeadService normalizes and stores submitted leads
type LeadService struct {
	store LeadStore
	now   func() time.Time
	newID func() string
}

// NewLeadService creates a new lead service
func NewLeadService(store LeadStore) *LeadService {
	return &LeadService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit normalizes the request, validates it and stores the lead exactly once.
// Validation failures wrap model.ErrInvalidInput and store nothing.
func (s *LeadService) Submit(ctx context.Context, req model.LeadRequest, attr model.Attribution) (*model.Lead, error) {
	lead, err := NormalizeLead(req, attr)
	if err != nil {
		return nil, err
	}
	lead.ID = s.newID()
	lead.CreatedAt = s.now().UTC()

	if err := s.store.CreateLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	log.Printf("📨 New %s lead %s (utm_source=%q)", lead.BuyOrRent, lead.ID, lead.UTMSource)
	return lead, nil
}

// NormalizeLead builds a lead from a submitted form and the visitor's UTM
// attribution. It does not assign an ID or timestamp.
func NormalizeLead(req model.LeadRequest, attr model.Attribution) (*model.Lead, error) {
	lead := &model.Lead{
		Name:           strings.TrimSpace(req.Name),
		Phone:          utils.NormalizePhone(req.Phone),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		BuyOrRent:      strings.ToLower(strings.TrimSpace(req.BuyOrRent)),
		BudgetMax:      req.BudgetMax,
		Beds:           req.Beds,
		Areas:          strings.TrimSpace(req.Areas),
		InterestIDs:    utils.NormalizeCSV(req.InterestIDs),
		ConsentContact: req.ConsentContact,
		UTMSource:      strings.TrimSpace(attr.Source),
		UTMMedium:      strings.TrimSpace(attr.Medium),
		UTMCampaign:    strings.TrimSpace(attr.Campaign),
		UTMTerm:        strings.TrimSpace(attr.Term),
		UTMContent:     strings.TrimSpace(attr.Content),
	}

	switch {
	case lead.Name == "":
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidInput)
	case lead.Phone == "":
		return nil, fmt.Errorf("%w: phone is required", model.ErrInvalidInput)
	case lead.BuyOrRent != model.IntentBuy && lead.BuyOrRent != model.IntentRent:
		return nil, fmt.Errorf("%w: buy_or_rent must be one of: buy, rent", model.ErrInvalidInput)
	case lead.BudgetMax != nil && *lead.BudgetMax < 0:
		return nil, fmt.Errorf("%w: budget_max must not be negative", model.ErrInvalidInput)
	case lead.Beds != nil && *lead.Beds < 0:
		return nil, fmt.Errorf("%w: beds must not be negative", model.ErrInvalidInput)
	case !lead.ConsentContact:
		return nil, fmt.Errorf("%w: consent to contact is required", model.ErrInvalidInput)
	}

	return lead, nil
}
