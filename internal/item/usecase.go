package item

import (
	"context"

	"github.com/guestara/menu-service/internal/item/dto"
	"github.com/guestara/menu-service/internal/model"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	GetItemByName(ctx context.Context, name string) (*model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID string) ([]model.Item, error)
	ListItemsBySubcategory(ctx context.Context, subcategoryID string) ([]model.Item, error)
	SearchItems(ctx context.Context, name string) ([]model.Item, error)
	UpdateItem(ctx context.Context, id string, input *dto.UpdateItemInput) (*model.Item, error)
}
