package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestara/menu-service/internal/apperror"
	catrepo "github.com/guestara/menu-service/internal/category/repository"
	"github.com/guestara/menu-service/internal/item"
	"github.com/guestara/menu-service/internal/item/dto"
	itemrepo "github.com/guestara/menu-service/internal/item/repository"
	"github.com/guestara/menu-service/internal/model"
	subrepo "github.com/guestara/menu-service/internal/subcategory/repository"
	"github.com/guestara/menu-service/pkg/logger"
)

type fixture struct {
	uc       item.UseCase
	itemRepo *itemrepo.MemoryRepository
	subRepo  *subrepo.MemoryRepository
	catRepo  *catrepo.MemoryRepository
}

func newFixture(strictHierarchy bool) *fixture {
	f := &fixture{
		itemRepo: itemrepo.NewMemoryRepository(),
		subRepo:  subrepo.NewMemoryRepository(),
		catRepo:  catrepo.NewMemoryRepository(),
	}
	f.uc = NewItemUseCase(f.itemRepo, f.subRepo, f.catRepo, nil, nil, strictHierarchy, logger.NewNop())
	return f
}

func (f *fixture) seedCategory(id string, taxApplicable bool, tax float64) {
	f.catRepo.Create(context.Background(), &model.Category{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:          "category-" + id,
		TaxApplicable: taxApplicable,
		Tax:           tax,
		TaxType:       model.TaxTypePercent,
	})
}

func (f *fixture) seedSubcategory(id, categoryID string, taxApplicable *bool, tax *float64) {
	f.subRepo.Create(context.Background(), &model.Subcategory{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CategoryID:    categoryID,
		Name:          "subcategory-" + id,
		TaxApplicable: taxApplicable,
		Tax:           tax,
	})
}

func TestCreateItemInheritsFromSubcategory(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 18)
	f.seedSubcategory("sub1", "cat1", boolPtr(true), floatPtr(5))

	it, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID:    "cat1",
		SubcategoryID: stringPtr("sub1"),
		Name:          "Paneer Tikka",
		BaseAmount:    floatPtr(250),
	})
	require.NoError(t, err)

	require.NotNil(t, it.TaxApplicable)
	require.NotNil(t, it.Tax)
	assert.True(t, *it.TaxApplicable)
	assert.Equal(t, 5.0, *it.Tax)
	assert.Equal(t, 250.0, it.TotalAmount)
}

func TestCreateItemInheritsFromCategoryWithoutSubcategory(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)

	it, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Masala Chai",
		BaseAmount: floatPtr(40),
	})
	require.NoError(t, err)

	require.NotNil(t, it.TaxApplicable)
	require.NotNil(t, it.Tax)
	assert.False(t, *it.TaxApplicable)
	assert.Equal(t, 0.0, *it.Tax)
}

func TestCreateItemKeepsExplicitTaxInheritsApplicable(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", true, 18)

	it, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Imported Cheese Platter",
		Tax:        floatPtr(12),
		BaseAmount: floatPtr(900),
	})
	require.NoError(t, err)

	require.NotNil(t, it.TaxApplicable)
	require.NotNil(t, it.Tax)
	assert.True(t, *it.TaxApplicable)
	assert.Equal(t, 12.0, *it.Tax)
}

func TestCreateItemDerivesClampedTotal(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)

	it, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Loss Leader",
		BaseAmount: floatPtr(10),
		Discount:   floatPtr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, it.TotalAmount)
}

func TestCreateItemMissingParentLeavesTaxUnset(t *testing.T) {
	f := newFixture(false)

	it, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "ghost",
		Name:       "Orphan Dish",
		BaseAmount: floatPtr(100),
	})
	require.NoError(t, err)

	assert.Nil(t, it.TaxApplicable)
	assert.Nil(t, it.Tax)
}

func TestCreateItemValidation(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)

	_, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "No Price",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Negative Discount",
		BaseAmount: floatPtr(100),
		Discount:   floatPtr(-5),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		BaseAmount: floatPtr(100),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err), "missing name should fail validation")
}

func TestCreateItemStrictHierarchy(t *testing.T) {
	f := newFixture(true)
	f.seedCategory("cat1", false, 0)
	f.seedCategory("cat2", true, 5)
	f.seedSubcategory("sub2", "cat2", boolPtr(true), floatPtr(5))

	_, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID:    "cat1",
		SubcategoryID: stringPtr("sub2"),
		Name:          "Cross Family",
		BaseAmount:    floatPtr(10),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateItemDiscountOnlyRecomputesTotal(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", true, 18)

	created, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Thali",
		BaseAmount: floatPtr(100),
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, created.TotalAmount)

	updated, err := f.uc.UpdateItem(context.Background(), created.ID, &dto.UpdateItemInput{
		Discount: floatPtr(20),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, updated.BaseAmount)
	assert.Equal(t, 20.0, updated.Discount)
	assert.Equal(t, 80.0, updated.TotalAmount)
	require.NotNil(t, updated.TaxApplicable)
	require.NotNil(t, updated.Tax)
	assert.Equal(t, *created.TaxApplicable, *updated.TaxApplicable)
	assert.Equal(t, *created.Tax, *updated.Tax)
}

func TestUpdateItemRepointingSubcategoryReinherits(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)
	f.seedSubcategory("sub1", "cat1", boolPtr(false), floatPtr(0))
	f.seedSubcategory("sub2", "cat1", boolPtr(true), floatPtr(9))

	created, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID:    "cat1",
		SubcategoryID: stringPtr("sub1"),
		Name:          "Moved Dish",
		BaseAmount:    floatPtr(150),
	})
	require.NoError(t, err)
	require.False(t, *created.TaxApplicable)

	updated, err := f.uc.UpdateItem(context.Background(), created.ID, &dto.UpdateItemInput{
		SubcategoryID: stringPtr("sub2"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TaxApplicable)
	require.NotNil(t, updated.Tax)
	assert.True(t, *updated.TaxApplicable)
	assert.Equal(t, 9.0, *updated.Tax)
}

func TestUpdateItemDetachSubcategoryFallsBackToCategory(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", true, 18)
	f.seedSubcategory("sub1", "cat1", boolPtr(false), floatPtr(5))

	created, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID:    "cat1",
		SubcategoryID: stringPtr("sub1"),
		Name:          "Detached Dish",
		BaseAmount:    floatPtr(60),
	})
	require.NoError(t, err)
	require.Equal(t, 5.0, *created.Tax)

	updated, err := f.uc.UpdateItem(context.Background(), created.ID, &dto.UpdateItemInput{
		SubcategoryID: stringPtr(""),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.SubcategoryID)
	require.NotNil(t, updated.Tax)
	assert.Equal(t, 18.0, *updated.Tax)
	assert.True(t, *updated.TaxApplicable)
}

func TestUpdateItemExplicitTaxWins(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", true, 18)

	created, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Custom Taxed",
		BaseAmount: floatPtr(200),
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateItem(context.Background(), created.ID, &dto.UpdateItemInput{
		Tax: floatPtr(2.5),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Tax)
	assert.Equal(t, 2.5, *updated.Tax)
	assert.True(t, *updated.TaxApplicable)
}

func TestUpdateItemNotFound(t *testing.T) {
	f := newFixture(false)

	_, err := f.uc.UpdateItem(context.Background(), "missing", &dto.UpdateItemInput{
		Discount: floatPtr(10),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	items, err := f.itemRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "a failed update must not create a record")
}

func TestUpdateItemValidationRejectsBeforePersisting(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)

	created, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Stable Dish",
		BaseAmount: floatPtr(100),
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateItem(context.Background(), created.ID, &dto.UpdateItemInput{
		BaseAmount: floatPtr(-1),
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	stored, err := f.itemRepo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.BaseAmount, "rejected update must not write")
}

func TestSearchItemsFallsBackToStore(t *testing.T) {
	f := newFixture(false)
	f.seedCategory("cat1", false, 0)

	_, err := f.uc.CreateItem(context.Background(), &dto.CreateItemInput{
		CategoryID: "cat1",
		Name:       "Garlic Naan",
		BaseAmount: floatPtr(30),
	})
	require.NoError(t, err)

	found, err := f.uc.SearchItems(context.Background(), "naan")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Garlic Naan", found[0].Name)
}
