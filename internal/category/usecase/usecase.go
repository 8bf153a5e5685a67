package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/category"
	"github.com/guestara/menu-service/internal/category/dto"
	"github.com/guestara/menu-service/internal/model"
	"github.com/guestara/menu-service/pkg/logger"
)

type categoryUseCase struct {
	repo     category.Repository
	validate *validator.Validate
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	now := time.Now()

	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
		TaxType:     input.TaxType,
	}
	if input.TaxApplicable != nil {
		cat.TaxApplicable = *input.TaxApplicable
	}
	if input.Tax != nil {
		cat.Tax = *input.Tax
	}
	if cat.TaxType == "" {
		cat.TaxType = model.TaxTypePercent
	}

	if err := validateCategory(uc.validate, cat); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByName(ctx, cat.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("category", "name", cat.Name)
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	return uc.repo.FindByName(ctx, name)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, input *dto.UpdateCategoryInput) (*model.Category, error) {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFound("category", id)
	}

	merged := *current
	fields := map[string]interface{}{}

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
		merged.TaxApplicable = *input.TaxApplicable
		fields["taxApplicable"] = *input.TaxApplicable
	}
	if input.Tax != nil {
		merged.Tax = *input.Tax
		fields["tax"] = *input.Tax
	}
	if input.TaxType != nil {
		merged.TaxType = *input.TaxType
		fields["taxType"] = *input.TaxType
	}

	if err := validateCategory(uc.validate, &merged); err != nil {
		return nil, err
	}

	if input.Name != nil && merged.Name != current.Name {
		existing, err := uc.repo.FindByName(ctx, merged.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.NewConflict("category", "name", merged.Name)
		}
	}

	fields["updatedAt"] = time.Now()

	updated, err := uc.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NewNotFound("category", id)
	}
	return updated, nil
}

func validateCategory(v *validator.Validate, cat *model.Category) error {
	return apperror.FromValidator(v.Struct(cat))
}
