package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/category"
	"github.com/guestara/menu-service/internal/model"
	"github.com/guestara/menu-service/internal/subcategory"
	"github.com/guestara/menu-service/internal/subcategory/dto"
	"github.com/guestara/menu-service/pkg/logger"
)

type subcategoryUseCase struct {
	repo     subcategory.Repository
	catRepo  category.Repository
	validate *validator.Validate
	logger   logger.ZapLogger
}

func NewSubcategoryUseCase(repo subcategory.Repository, catRepo category.Repository, log logger.ZapLogger) subcategory.UseCase {
	return &subcategoryUseCase{
		repo:     repo,
		catRepo:  catRepo,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *subcategoryUseCase) CreateSubcategory(ctx context.Context, input *dto.CreateSubcategoryInput) (*model.Subcategory, error) {
	now := time.Now()

	sub := &model.Subcategory{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Image:         input.Image,
		Description:   input.Description,
		TaxApplicable: input.TaxApplicable,
		Tax:           input.Tax,
	}

	// Inherit whichever tax fields the caller left unset from the owning
	// category. A missing category contributes nothing; the fields stay
	// unset rather than getting invented defaults.
	if sub.TaxApplicable == nil || sub.Tax == nil {
		cat, err := uc.catRepo.FindByID(ctx, sub.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			if sub.TaxApplicable == nil {
				v := cat.TaxApplicable
				sub.TaxApplicable = &v
			}
			if sub.Tax == nil {
				v := cat.Tax
				sub.Tax = &v
			}
		}
	}

	if err := apperror.FromValidator(uc.validate.Struct(sub)); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByCategoryAndName(ctx, sub.CategoryID, sub.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("subcategory", "name", sub.Name)
	}

	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *subcategoryUseCase) GetSubcategory(ctx context.Context, id string) (*model.Subcategory, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *subcategoryUseCase) GetSubcategoryByName(ctx context.Context, name string) (*model.Subcategory, error) {
	return uc.repo.FindByName(ctx, name)
}

func (uc *subcategoryUseCase) ListSubcategories(ctx context.Context) ([]model.Subcategory, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *subcategoryUseCase) ListSubcategoriesByCategory(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	return uc.repo.FindByCategory(ctx, categoryID)
}

// UpdateSubcategory merges the provided fields and persists them. Unlike
// items, subcategories do not re-inherit tax attributes on update; values
// resolved at creation stick until explicitly overwritten.
func (uc *subcategoryUseCase) UpdateSubcategory(ctx context.Context, id string, input *dto.UpdateSubcategoryInput) (*model.Subcategory, error) {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFound("subcategory", id)
	}

	merged := *current
	fields := map[string]interface{}{}

	if input.CategoryID != nil {
		merged.CategoryID = *input.CategoryID
		fields["categoryId"] = *input.CategoryID
	}
	if input.Name != nil {
		merged.Name = *input.Name
		fields["name"] = *input.Name
	}
	if input.Image != nil {
		merged.Image = *input.Image
		fields["image"] = *input.Image
	}
	if input.Description != nil {
		merged.Description = *input.Description
		fields["description"] = *input.Description
	}
	if input.TaxApplicable != nil {
		merged.TaxApplicable = input.TaxApplicable
		fields["taxApplicable"] = *input.TaxApplicable
	}
	if input.Tax != nil {
		merged.Tax = input.Tax
		fields["tax"] = *input.Tax
	}

	if err := apperror.FromValidator(uc.validate.Struct(&merged)); err != nil {
		return nil, err
	}

	if merged.CategoryID != current.CategoryID || merged.Name != current.Name {
		existing, err := uc.repo.FindByCategoryAndName(ctx, merged.CategoryID, merged.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflict("subcategory", "name", merged.Name)
		}
	}

	fields["updatedAt"] = time.Now()

	updated, err := uc.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound("subcategory", id)
	}
	return updated, nil
}
