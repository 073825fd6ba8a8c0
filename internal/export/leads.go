// Package export writes stored leads for agents working outside the API.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"propertyhub/internal/model"
)

// LeadSource lists stored leads, oldest first
type LeadSource interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

var leadHeader = []string{
	"id", "created_at", "name", "phone", "email", "buy_or_rent", "budget_max", "beds",
	"areas", "interest_ids", "consent_contact",
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
}

// WriteLeadsCSV writes the leads created at or after since as CSV with a
// header row. A zero since exports everything. Absent budgets and bed counts
// are written as empty cells.
func WriteLeadsCSV(ctx context.Context, w io.Writer, src LeadSource, since time.Time) (int, error) {
	leads, err := src.ListLeads(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list leads: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(leadHeader); err != nil {
		return 0, err
	}

	n := 0
	for _, l := range leads {
		if l.CreatedAt.Before(since) {
			continue
		}
		record := []string{
			l.ID,
			l.CreatedAt.UTC().Format(time.RFC3339),
			l.Name,
			l.Phone,
			l.Email,
			l.BuyOrRent,
			optional(l.BudgetMax),
			optional(l.Beds),
			l.Areas,
			l.InterestIDs,
			strconv.FormatBool(l.ConsentContact),
			l.UTMSource,
			l.UTMMedium,
			l.UTMCampaign,
			l.UTMTerm,
			l.UTMContent,
		}
		if err := cw.Write(record); err != nil {
			return n, err
		}
		n++
	}

	cw.Flush()
	return n, cw.Error()
}

func optional[T int | int64](v *T) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(int64(*v), 10)
}
