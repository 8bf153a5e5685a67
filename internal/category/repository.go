package category

import (
	"context"

	"github.com/guestara/menu-service/internal/model"
)

// Repository is the store surface the category usecase consumes. Lookups
// return (nil, nil) when no record matches. UpdateByID applies only the
// given fields and returns the updated record, or (nil, nil) when the id
// does not exist.
type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Category, error)
}
