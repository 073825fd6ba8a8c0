package service

import (
	"context"
	"fmt"
	"strings"

	"propertyhub/internal/model"
	"propertyhub/internal/utils"
)

// PropertyStore is the read side of the property catalog
type PropertyStore interface {
	ListProperties(ctx context.Context) ([]model.Property, error)
	// GetPropertyBySlug returns nil, nil when no property has the slug
	GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error)
}

// PropertyCache caches properties by slug
type PropertyCache interface {
	Get(slug string) (*model.Property, bool)
	Set(p *model.Property)
}

// ListingService handles listing queries and property lookups
type ListingService struct {
	store PropertyStore
	cache PropertyCache
}

// NewListingService creates a new listing service. cache may be nil.
func NewListingService(store PropertyStore, cache PropertyCache) *ListingService {
	return &ListingService{
		store: store,
		cache: cache,
	}
}

// Search loads the catalog and runs the query against it
func (s *ListingService) Search(ctx context.Context, q model.ListingQuery) (*model.ListingPage, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	page := QueryListings(properties, q)
	return &page, nil
}

// GetProperty retrieves a property by slug, returning model.ErrNotFound when it does not exist
func (s *ListingService) GetProperty(ctx context.Context, slug string) (*model.Property, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(slug); ok {
			return p, nil
		}
	}

	p, err := s.store.GetPropertyBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("property %q: %w", slug, model.ErrNotFound)
	}

	if s.cache != nil {
		s.cache.Set(p)
	}
	return p, nil
}

// GetPropertyDetail retrieves a property with its display fields filled in
func (s *ListingService) GetPropertyDetail(ctx context.Context, slug string) (*model.PropertyDetail, error) {
	p, err := s.GetProperty(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &model.PropertyDetail{
		Property:     *p,
		PriceDisplay: utils.FormatPeso(p.PriceAmount),
		BadgeItems:   p.BadgeList(),
	}, nil
}

// QueryListings filters, sorts and paginates properties. The input slice is
// not modified. Total counts the filtered records before pagination; a page
// outside 1..TotalPages is empty.
func QueryListings(properties []model.Property, q model.ListingQuery) model.ListingPage {
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	if pageSize > model.MaxPageSize {
		pageSize = model.MaxPageSize
	}

	predicates := buildPredicates(q.Filters)
	matched := make([]model.Property, 0, len(properties))
	for i := range properties {
		if matchesAll(&properties[i], predicates) {
			matched = append(matched, properties[i])
		}
	}
	sortProperties(matched, q.Sort)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	page := model.ListingPage{
		Results:    []model.Property{},
		Total:      total,
		Page:       q.Page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasPrev:    q.Page > 1 && totalPages > 0,
		HasNext:    q.Page >= 1 && q.Page < totalPages,
	}
	if q.Page >= 1 && q.Page <= totalPages {
		start := (q.Page - 1) * pageSize
		end := min(start+pageSize, total)
		page.Results = matched[start:end]
	}
	return page
}

// CountLabel renders a result count such as "8 matches found". Zero renders
// as "No properties found" regardless of the noun.
func CountLabel(total int, singular, plural string) string {
	switch total {
	case 0:
		return "No properties found"
	case 1:
		return fmt.Sprintf("1 %s found", singular)
	default:
		return fmt.Sprintf("%d %s found", total, plural)
	}
}

// predicate tests a single property field against one filter
type predicate func(p *model.Property) bool

// buildPredicates returns one predicate per active filter
func buildPredicates(f model.ListingFilters) []predicate {
	var preds []predicate

	if city := strings.TrimSpace(f.City); city != "" {
		preds = append(preds, func(p *model.Property) bool {
			return strings.EqualFold(strings.TrimSpace(p.City), city)
		})
	}
	if area := strings.TrimSpace(f.Area); area != "" {
		preds = append(preds, func(p *model.Property) bool {
			return strings.EqualFold(strings.TrimSpace(p.Area), area)
		})
	}
	if token := strings.TrimSpace(f.Query); token != "" {
		preds = append(preds, func(p *model.Property) bool {
			return utils.ContainsFold(p.Title, token) ||
				utils.ContainsFold(p.City, token) ||
				utils.ContainsFold(p.Area, token) ||
				utils.ContainsFold(p.Badges, token)
		})
	}
	if f.MinBeds != nil {
		n := *f.MinBeds
		preds = append(preds, func(p *model.Property) bool { return p.Beds >= n })
	}
	if f.MinBaths != nil {
		n := *f.MinBaths
		preds = append(preds, func(p *model.Property) bool { return p.Baths >= n })
	}
	if f.MinPrice != nil {
		n := *f.MinPrice
		preds = append(preds, func(p *model.Property) bool { return p.PriceAmount >= n })
	}
	if f.MaxPrice != nil {
		n := *f.MaxPrice
		preds = append(preds, func(p *model.Property) bool { return p.PriceAmount <= n })
	}
	if f.Parking != nil {
		want := *f.Parking
		preds = append(preds, func(p *model.Property) bool { return p.Parking == want })
	}
	if f.Commissionable != nil {
		want := *f.Commissionable
		preds = append(preds, func(p *model.Property) bool { return p.Commissionable == want })
	}

	return preds
}

func matchesAll(p *model.Property, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}
