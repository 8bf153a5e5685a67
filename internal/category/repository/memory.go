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
	mu         sync.RWMutex
	categories map[string]model.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{categories: make(map[string]model.Category)}
}

func (r *MemoryRepository) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id string, fields map[string]interface{}) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "image":
			c.Image = v.(string)
		case "description":
			c.Description = v.(string)
		case "taxApplicable":
			c.TaxApplicable = v.(bool)
		case "tax":
			c.Tax = v.(float64)
		case "taxType":
			c.TaxType = v.(string)
		case "updatedAt":
			c.UpdatedAt = v.(time.Time)
		}
	}
	r.categories[id] = c
	return &c, nil
}
