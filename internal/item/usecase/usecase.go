package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/category"
	"github.com/guestara/menu-service/internal/item"
	"github.com/guestara/menu-service/internal/item/dto"
	"github.com/guestara/menu-service/internal/model"
	"github.com/guestara/menu-service/internal/subcategory"
	"github.com/guestara/menu-service/pkg/cache"
	"github.com/guestara/menu-service/pkg/logger"
	"github.com/guestara/menu-service/pkg/search"
)

const (
	itemsIndex    = "items"
	itemsCacheKey = "items:all"
	itemsCacheTTL = 5 * time.Minute
)

const itemsMapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"description": { "type": "text" },
			"categoryId": { "type": "keyword" },
			"subcategoryId": { "type": "keyword" },
			"baseAmount": { "type": "double" },
			"totalAmount": { "type": "double" },
			"createdAt": { "type": "date" }
		}
	}
}`

type itemUseCase struct {
	repo            item.Repository
	subRepo         subcategory.Repository
	catRepo         category.Repository
	cache           *cache.RedisClient
	es              *search.Client
	strictHierarchy bool
	validate        *validator.Validate
	logger          logger.ZapLogger
}

// NewItemUseCase wires the item mutation pipeline. cache and es are
// optional; a nil client disables caching or search acceleration.
func NewItemUseCase(
	repo item.Repository,
	subRepo subcategory.Repository,
	catRepo category.Repository,
	redisClient *cache.RedisClient,
	esClient *search.Client,
	strictHierarchy bool,
	log logger.ZapLogger,
) item.UseCase {
	return &itemUseCase{
		repo:            repo,
		subRepo:         subRepo,
		catRepo:         catRepo,
		cache:           redisClient,
		es:              esClient,
		strictHierarchy: strictHierarchy,
		validate:        validator.New(),
		logger:          log,
	}
}

// CreateItem runs the fixed pipeline: resolve inherited tax attributes,
// derive the total, validate the final values, persist.
func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Item, error) {
	now := time.Now()

	it := &model.Item{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
	}
	if input.SubcategoryID != nil && *input.SubcategoryID != "" {
		it.SubcategoryID = input.SubcategoryID
	}
	if input.BaseAmount != nil {
		it.BaseAmount = *input.BaseAmount
	}
	if input.Discount != nil {
		it.Discount = *input.Discount
	}

	sub, cat, err := uc.fetchParents(ctx, it.SubcategoryID, it.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkHierarchy(sub, it.CategoryID); err != nil {
		return nil, err
	}

	it.TaxApplicable, it.Tax = resolveTaxAttrs(input.TaxApplicable, input.Tax, sub, cat)
	it.TotalAmount = deriveTotal(it.BaseAmount, it.Discount)

	// Validation runs after resolution, against final values.
	if input.BaseAmount == nil {
		return nil, apperror.NewValidation("baseAmount", "is required")
	}
	if err := apperror.FromValidator(uc.validate.Struct(it)); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	go uc.invalidateItemCache(context.Background())
	go uc.syncToElastic(context.Background(), it)

	return it, nil
}

// UpdateItem fetches the current record, overlays the incoming partial
// fields and reruns resolution and derivation against the merged snapshot,
// so updating only discount still recomputes the total and re-pointing
// subcategoryId re-inherits tax attributes. The resolver and deriver
// outputs are written explicitly, never left to the merge. The
// fetch-merge-write sequence is not atomic against concurrent updates of
// the same id; the later write wins.
func (uc *itemUseCase) UpdateItem(ctx context.Context, id string, input *dto.UpdateItemInput) (*model.Item, error) {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFound("item", id)
	}

	merged := *current
	fields := map[string]interface{}{}

	if input.CategoryID != nil {
		merged.CategoryID = *input.CategoryID
		fields["categoryId"] = *input.CategoryID
	}
	if input.SubcategoryID != nil {
		if *input.SubcategoryID == "" {
			merged.SubcategoryID = nil
			fields["subcategoryId"] = nil
		} else {
			merged.SubcategoryID = input.SubcategoryID
			fields["subcategoryId"] = *input.SubcategoryID
		}
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
	if input.BaseAmount != nil {
		merged.BaseAmount = *input.BaseAmount
		fields["baseAmount"] = *input.BaseAmount
	}
	if input.Discount != nil {
		merged.Discount = *input.Discount
		fields["discount"] = *input.Discount
	}

	sub, cat, err := uc.fetchParents(ctx, merged.SubcategoryID, merged.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkHierarchy(sub, merged.CategoryID); err != nil {
		return nil, err
	}

	// Tax fields count as explicit only when this request carried them;
	// otherwise they re-resolve against the merged parent ids, keeping the
	// stored item consistent with current parent data.
	merged.TaxApplicable, merged.Tax = resolveTaxAttrs(input.TaxApplicable, input.Tax, sub, cat)
	merged.TotalAmount = deriveTotal(merged.BaseAmount, merged.Discount)

	if err := apperror.FromValidator(uc.validate.Struct(&merged)); err != nil {
		return nil, err
	}

	if merged.TaxApplicable != nil {
		fields["taxApplicable"] = *merged.TaxApplicable
	} else {
		fields["taxApplicable"] = nil
	}
	if merged.Tax != nil {
		fields["tax"] = *merged.Tax
	} else {
		fields["tax"] = nil
	}
	fields["totalAmount"] = merged.TotalAmount
	fields["updatedAt"] = time.Now()

	updated, err := uc.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Record vanished between the read and the write; report not
		// found rather than resurrecting it.
		return nil, apperror.NewNotFound("item", id)
	}

	go uc.invalidateItemCache(context.Background())
	go uc.syncToElastic(context.Background(), updated)

	return updated, nil
}

func (uc *itemUseCase) GetItem(ctx context.Context, id string) (*model.Item, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *itemUseCase) GetItemByName(ctx context.Context, name string) (*model.Item, error) {
	return uc.repo.FindByName(ctx, name)
}

func (uc *itemUseCase) ListItems(ctx context.Context) ([]model.Item, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, itemsCacheKey).Result(); err == nil {
			var items []model.Item
			if err := json.Unmarshal([]byte(val), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if b, err := json.Marshal(items); err == nil {
			if err := uc.cache.Client.Set(ctx, itemsCacheKey, b, itemsCacheTTL).Err(); err != nil {
				uc.logger.Warn("failed to cache item list", zap.Error(err))
			}
		}
	}
	return items, nil
}

func (uc *itemUseCase) ListItemsByCategory(ctx context.Context, categoryID string) ([]model.Item, error) {
	return uc.repo.FindByCategory(ctx, categoryID)
}

func (uc *itemUseCase) ListItemsBySubcategory(ctx context.Context, subcategoryID string) ([]model.Item, error) {
	return uc.repo.FindBySubcategory(ctx, subcategoryID)
}

// SearchItems prefers Elasticsearch when available and falls back to the
// store's own partial-match query otherwise.
func (uc *itemUseCase) SearchItems(ctx context.Context, name string) ([]model.Item, error) {
	if uc.es != nil {
		query := map[string]interface{}{
			"query": map[string]interface{}{
				"match": map[string]interface{}{
					"name": map[string]interface{}{
						"query":     name,
						"fuzziness": "AUTO",
					},
				},
			},
		}
		sources, err := uc.es.Search(ctx, itemsIndex, query)
		if err == nil {
			items := make([]model.Item, 0, len(sources))
			ok := true
			for _, src := range sources {
				var it model.Item
				if err := json.Unmarshal(src, &it); err != nil {
					ok = false
					break
				}
				items = append(items, it)
			}
			if ok {
				return items, nil
			}
		} else {
			uc.logger.Warn("elasticsearch search failed, falling back to store", zap.Error(err))
		}
	}
	return uc.repo.SearchByName(ctx, name)
}

func (uc *itemUseCase) fetchParents(ctx context.Context, subcategoryID *string, categoryID string) (*model.Subcategory, *model.Category, error) {
	var sub *model.Subcategory
	var err error
	if subcategoryID != nil {
		sub, err = uc.subRepo.FindByID(ctx, *subcategoryID)
		if err != nil {
			return nil, nil, err
		}
	}

	var cat *model.Category
	if categoryID != "" {
		cat, err = uc.catRepo.FindByID(ctx, categoryID)
		if err != nil {
			return nil, nil, err
		}
	}
	return sub, cat, nil
}

func (uc *itemUseCase) checkHierarchy(sub *model.Subcategory, categoryID string) error {
	if !uc.strictHierarchy || sub == nil {
		return nil
	}
	if sub.CategoryID != categoryID {
		return apperror.NewValidation("subcategoryId", "subcategory does not belong to the item's category")
	}
	return nil
}

func (uc *itemUseCase) invalidateItemCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, itemsCacheKey).Err(); err != nil {
		uc.logger.Warn("failed to invalidate item cache", zap.Error(err))
	}
}

func (uc *itemUseCase) syncToElastic(ctx context.Context, it *model.Item) {
	if uc.es == nil {
		return
	}
	// Lazy index creation; an existing index is a no-op.
	if err := uc.es.CreateIndex(ctx, itemsIndex, itemsMapping); err != nil {
		uc.logger.Warn("failed to ensure items index", zap.Error(err))
	}
	if err := uc.es.Index(ctx, itemsIndex, it.ID, it); err != nil {
		uc.logger.Error("failed to index item", zap.String("id", it.ID), zap.Error(err))
	}
}
