package item

import (
	"context"

	"github.com/guestara/menu-service/internal/model"
)

// Repository lookups return (nil, nil) when no record matches. UpdateByID
// applies only the given fields (the store-level equivalent of a $set
// document) and returns the updated record, or (nil, nil) when the id does
// not exist, in which case nothing is written.
type Repository interface {
	Create(ctx context.Context, it *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	FindByName(ctx context.Context, name string) (*model.Item, error)
	FindAll(ctx context.Context) ([]model.Item, error)
	FindByCategory(ctx context.Context, categoryID string) ([]model.Item, error)
	FindBySubcategory(ctx context.Context, subcategoryID string) ([]model.Item, error)
	SearchByName(ctx context.Context, name string) ([]model.Item, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Item, error)
}
