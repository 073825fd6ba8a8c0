package export

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"propertyhub/internal/model"
	"propertyhub/internal/repository"
)

func storeWithLeads(t *testing.T) *repository.MemoryRepository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	budget := int64(90000)
	beds := 2
	leads := []model.Lead{
		{
			ID: "lead-1", Name: "Juan dela Cruz", Phone: "+639123456789", Email: "juan@example.com",
			BuyOrRent: model.IntentRent, BudgetMax: &budget, Beds: &beds, Areas: "BGC, Makati",
			ConsentContact: true, UTMSource: "facebook", UTMCampaign: "spring sale",
			CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "lead-2", Name: "Maria Santos", Phone: "09171234567", BuyOrRent: model.IntentBuy,
			ConsentContact: true,
			CreatedAt:      time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC),
		},
	}
	for i := range leads {
		if err := repo.CreateLead(ctx, &leads[i]); err != nil {
			t.Fatalf("CreateLead() error = %v", err)
		}
	}
	return repo
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	return records
}

func TestWriteLeadsCSV(t *testing.T) {
	var out strings.Builder
	n, err := WriteLeadsCSV(context.Background(), &out, storeWithLeads(t), time.Time{})
	if err != nil {
		t.Fatalf("WriteLeadsCSV() error = %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d leads, want 2", n)
	}

	records := readCSV(t, out.String())
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(leadHeader, ",") {
		t.Errorf("header = %v", records[0])
	}

	first := records[1]
	if first[0] != "lead-1" || first[1] != "2025-03-01T09:00:00Z" {
		t.Errorf("first row = %v", first)
	}
	if first[6] != "90000" || first[7] != "2" || first[8] != "BGC, Makati" || first[13] != "spring sale" {
		t.Errorf("first row fields = %v", first)
	}

	second := records[2]
	if second[6] != "" || second[7] != "" {
		t.Errorf("absent budget/beds = %q/%q, want empty cells", second[6], second[7])
	}
	if second[10] != "true" {
		t.Errorf("consent = %q, want true", second[10])
	}
}

func TestWriteLeadsCSV_Since(t *testing.T) {
	var out strings.Builder
	since := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	n, err := WriteLeadsCSV(context.Background(), &out, storeWithLeads(t), since)
	if err != nil {
		t.Fatalf("WriteLeadsCSV() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("wrote %d leads, want 1", n)
	}
	records := readCSV(t, out.String())
	if len(records) != 2 || records[1][0] != "lead-2" {
		t.Errorf("records = %v", records)
	}
}

type failingSource struct{}

func (failingSource) ListLeads(context.Context) ([]model.Lead, error) {
	return nil, errors.New("connection refused")
}

func TestWriteLeadsCSV_SourceError(t *testing.T) {
	var out strings.Builder
	if _, err := WriteLeadsCSV(context.Background(), &out, failingSource{}, time.Time{}); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q on failure, want nothing", out.String())
	}
}
