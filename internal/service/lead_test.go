package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"propertyhub/internal/model"
	"propertyhub/internal/repository"
)

func validLeadRequest() model.LeadRequest {
	budget := int64(100000)
	beds := 2
	return model.LeadRequest{
		Name:           " John Doe ",
		Phone:          "+63 912 345 6789",
		Email:          " John@Example.com",
		BuyOrRent:      "Rent",
		BudgetMax:      &budget,
		Beds:           &beds,
		Areas:          "BGC, Makati",
		InterestIDs:    "modern-condo-bgc, ,modern-condo-bgc,executive-condo-bgc",
		ConsentContact: true,
	}
}

func TestNormalizeLead(t *testing.T) {
	lead, err := NormalizeLead(validLeadRequest(), model.Attribution{Source: "google", Campaign: " property_search "})
	if err != nil {
		t.Fatalf("NormalizeLead() error = %v", err)
	}

	if lead.Name != "John Doe" {
		t.Errorf("Name = %q", lead.Name)
	}
	if lead.Phone != "+639123456789" {
		t.Errorf("Phone = %q, want +639123456789", lead.Phone)
	}
	if lead.Email != "john@example.com" {
		t.Errorf("Email = %q", lead.Email)
	}
	if lead.BuyOrRent != model.IntentRent {
		t.Errorf("BuyOrRent = %q", lead.BuyOrRent)
	}
	if lead.Areas != "BGC, Makati" {
		t.Errorf("Areas = %q", lead.Areas)
	}
	if lead.InterestIDs != "modern-condo-bgc, executive-condo-bgc" {
		t.Errorf("InterestIDs = %q", lead.InterestIDs)
	}
	if lead.UTMSource != "google" || lead.UTMCampaign != "property_search" {
		t.Errorf("UTM = %q/%q", lead.UTMSource, lead.UTMCampaign)
	}
	if lead.ID != "" || !lead.CreatedAt.IsZero() {
		t.Error("NormalizeLead should not assign ID or timestamp")
	}
}

func TestNormalizeLead_Invalid(t *testing.T) {
	negative := int64(-1)
	negativeBeds := -1

	tests := []struct {
		name   string
		modify func(r *model.LeadRequest)
	}{
		{name: "Missing name", modify: func(r *model.LeadRequest) { r.Name = "  " }},
		{name: "Missing phone", modify: func(r *model.LeadRequest) { r.Phone = "" }},
		{name: "Phone without digits", modify: func(r *model.LeadRequest) { r.Phone = "n/a" }},
		{name: "Unknown intent", modify: func(r *model.LeadRequest) { r.BuyOrRent = "lease" }},
		{name: "Negative budget", modify: func(r *model.LeadRequest) { r.BudgetMax = &negative }},
		{name: "Negative beds", modify: func(r *model.LeadRequest) { r.Beds = &negativeBeds }},
		{name: "No consent", modify: func(r *model.LeadRequest) { r.ConsentContact = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLeadRequest()
			tt.modify(&req)
			if _, err := NormalizeLead(req, model.Attribution{}); !errors.Is(err, model.ErrInvalidInput) {
				t.Errorf("NormalizeLead() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLeadService_Submit(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryRepository()
	svc := NewLeadService(store)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }

	lead, err := svc.Submit(ctx, validLeadRequest(), model.Attribution{Source: "google", Campaign: "property_search"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if lead.ID == "" {
		t.Error("expected generated ID")
	}
	if !lead.CreatedAt.Equal(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", lead.CreatedAt)
	}

	leads, _ := store.ListLeads(ctx)
	if len(leads) != 1 {
		t.Fatalf("stored %d leads, want 1", len(leads))
	}
	if leads[0].ID != lead.ID || leads[0].UTMSource != "google" {
		t.Errorf("stored lead = %+v", leads[0])
	}
}

func TestLeadService_SubmitInvalidStoresNothing(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryRepository()
	svc := NewLeadService(store)

	req := validLeadRequest()
	req.Name = ""
	if _, err := svc.Submit(ctx, req, model.Attribution{}); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("Submit() error = %v, want ErrInvalidInput", err)
	}

	leads, _ := store.ListLeads(ctx)
	if len(leads) != 0 {
		t.Errorf("stored %d leads, want 0", len(leads))
	}
}

type failingLeadStore struct{}

func (failingLeadStore) CreateLead(context.Context, *model.Lead) error {
	return errors.New("database is down")
}

func TestLeadService_StoreFailure(t *testing.T) {
	svc := NewLeadService(failingLeadStore{})
	_, err := svc.Submit(context.Background(), validLeadRequest(), model.Attribution{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, model.ErrInvalidInput) {
		t.Error("store failure must not be reported as invalid input")
	}
}
