package subcategory

import (
	"context"

	"github.com/guestara/menu-service/internal/model"
)

// Repository lookups return (nil, nil) when no record matches. UpdateByID
// applies only the given fields and returns the updated record, or
// (nil, nil) when the id does not exist.
type Repository interface {
	Create(ctx context.Context, sub *model.Subcategory) error
	FindByID(ctx context.Context, id string) (*model.Subcategory, error)
	FindByName(ctx context.Context, name string) (*model.Subcategory, error)
	FindByCategoryAndName(ctx context.Context, categoryID, name string) (*model.Subcategory, error)
	FindAll(ctx context.Context) ([]model.Subcategory, error)
	FindByCategory(ctx context.Context, categoryID string) ([]model.Subcategory, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Subcategory, error)
}
