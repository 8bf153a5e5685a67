package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guestara/menu-service/internal/model"
)

// MemoryRepository is an in-memory store used by tests.
type MemoryRepository struct {
	mu            sync.RWMutex
	subcategories map[string]model.Subcategory
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{subcategories: make(map[string]model.Subcategory)}
}

func (r *MemoryRepository) Create(_ context.Context, s *model.Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subcategories[s.ID] = *s
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.subcategories[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*model.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subcategories {
		if s.Name == name {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByCategoryAndName(_ context.Context, categoryID, name string) (*model.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subcategories {
		if s.CategoryID == categoryID && s.Name == name {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]model.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Subcategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		out = append(out, s)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepository) FindByCategory(_ context.Context, categoryID string) ([]model.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Subcategory{}
	for _, s := range r.subcategories {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id string, fields map[string]interface{}) (*model.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subcategories[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "categoryId":
			s.CategoryID = v.(string)
		case "name":
			s.Name = v.(string)
		case "image":
			s.Image = v.(string)
		case "description":
			s.Description = v.(string)
		case "taxApplicable":
			b := v.(bool)
			s.TaxApplicable = &b
		case "tax":
			f := v.(float64)
			s.Tax = &f
		case "updatedAt":
			s.UpdatedAt = v.(time.Time)
		}
	}
	r.subcategories[id] = s
	return &s, nil
}

func sortNewestFirst(subs []model.Subcategory) {
	sort.Slice(subs, func(i, j int) bool { return subs[i].CreatedAt.After(subs[j].CreatedAt) })
}
