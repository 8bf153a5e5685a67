package category

import (
	"context"

	"github.com/guestara/menu-service/internal/category/dto"
	"github.com/guestara/menu-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error)
}
