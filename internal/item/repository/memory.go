package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/guestara/menu-service/internal/model"
)

// MemoryRepository is an in-memory store used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.Item)}
}

func (r *MemoryRepository) Create(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = *it
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if it, ok := r.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, name string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Name == name {
			out := it
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]model.Item, error) {
	return r.filter(func(model.Item) bool { return true }), nil
}

func (r *MemoryRepository) FindByCategory(_ context.Context, categoryID string) ([]model.Item, error) {
	return r.filter(func(it model.Item) bool { return it.CategoryID == categoryID }), nil
}

func (r *MemoryRepository) FindBySubcategory(_ context.Context, subcategoryID string) ([]model.Item, error) {
	return r.filter(func(it model.Item) bool {
		return it.SubcategoryID != nil && *it.SubcategoryID == subcategoryID
	}), nil
}

func (r *MemoryRepository) SearchByName(_ context.Context, name string) ([]model.Item, error) {
	needle := strings.ToLower(name)
	return r.filter(func(it model.Item) bool {
		return strings.Contains(strings.ToLower(it.Name), needle)
	}), nil
}

func (r *MemoryRepository) filter(keep func(model.Item) bool) []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Item{}
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id string, fields map[string]interface{}) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "categoryId":
			it.CategoryID = v.(string)
		case "subcategoryId":
			if v == nil {
				it.SubcategoryID = nil
			} else {
				s := v.(string)
				it.SubcategoryID = &s
			}
		case "name":
			it.Name = v.(string)
		case "image":
			it.Image = v.(string)
		case "description":
			it.Description = v.(string)
		case "taxApplicable":
			if v == nil {
				it.TaxApplicable = nil
			} else {
				b := v.(bool)
				it.TaxApplicable = &b
			}
		case "tax":
			if v == nil {
				it.Tax = nil
			} else {
				f := v.(float64)
				it.Tax = &f
			}
		case "baseAmount":
			it.BaseAmount = v.(float64)
		case "discount":
			it.Discount = v.(float64)
		case "totalAmount":
			it.TotalAmount = v.(float64)
		case "updatedAt":
			it.UpdatedAt = v.(time.Time)
		}
	}
	r.items[id] = it
	return &it, nil
}
