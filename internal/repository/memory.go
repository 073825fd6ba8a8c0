package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"propertyhub/internal/model"
)

// MemoryRepository keeps properties and leads in process memory
type MemoryRepository struct {
	mu         sync.RWMutex
	properties map[string]model.Property
	leads      []model.Lead
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{properties: make(map[string]model.Property)}
}

// ListProperties returns every property, newest first
func (r *MemoryRepository) ListProperties(_ context.Context) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Property, 0, len(r.properties))
	for _, p := range r.properties {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].Slug < res[j].Slug
	})
	return res, nil
}

// GetPropertyBySlug retrieves a single property, returning nil when it does not exist
func (r *MemoryRepository) GetPropertyBySlug(_ context.Context, slug string) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[slug]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ReplaceProperties swaps the whole catalog. Nothing changes if slugs collide.
func (r *MemoryRepository) ReplaceProperties(_ context.Context, properties []model.Property) error {
	next := make(map[string]model.Property, len(properties))
	for _, p := range properties {
		if _, ok := next[p.Slug]; ok {
			return fmt.Errorf("property %q already exists", p.Slug)
		}
		next[p.Slug] = p
	}

	r.mu.Lock()
	r.properties = next
	r.mu.Unlock()
	return nil
}

// CreateLead stores a lead
func (r *MemoryRepository) CreateLead(_ context.Context, lead *model.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.leads {
		if l.ID == lead.ID {
			return fmt.Errorf("lead %q already exists", lead.ID)
		}
	}
	r.leads = append(r.leads, *lead)
	return nil
}

// ListLeads returns every lead in insertion order
func (r *MemoryRepository) ListLeads(_ context.Context) ([]model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Lead, len(r.leads))
	copy(res, r.leads)
	return res, nil
}
