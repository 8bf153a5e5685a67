package subcategory

import (
	"context"

	"github.com/guestara/menu-service/internal/model"
	"github.com/guestara/menu-service/internal/subcategory/dto"
)

type UseCase interface {
	CreateSubcategory(ctx context.Context, input *dto.CreateSubcategoryInput) (*model.Subcategory, error)
	GetSubcategory(ctx context.Context, id string) (*model.Subcategory, error)
	GetSubcategoryByName(ctx context.Context, name string) (*model.Subcategory, error)
	ListSubcategories(ctx context.Context) ([]model.Subcategory, error)
	ListSubcategoriesByCategory(ctx context.Context, categoryID string) ([]model.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, input *dto.UpdateSubcategoryInput) (*model.Subcategory, error)
}
