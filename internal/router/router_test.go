package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryhandler "github.com/guestara/menu-service/internal/category/handler"
	catrepo "github.com/guestara/menu-service/internal/category/repository"
	catusecase "github.com/guestara/menu-service/internal/category/usecase"
	itemhandler "github.com/guestara/menu-service/internal/item/handler"
	itemrepo "github.com/guestara/menu-service/internal/item/repository"
	itemusecase "github.com/guestara/menu-service/internal/item/usecase"
	subcategoryhandler "github.com/guestara/menu-service/internal/subcategory/handler"
	subrepo "github.com/guestara/menu-service/internal/subcategory/repository"
	subusecase "github.com/guestara/menu-service/internal/subcategory/usecase"
	"github.com/guestara/menu-service/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	catRepo := catrepo.NewMemoryRepository()
	subRepo := subrepo.NewMemoryRepository()
	itemRepo := itemrepo.NewMemoryRepository()

	catUC := catusecase.NewCategoryUseCase(catRepo, log)
	subUC := subusecase.NewSubcategoryUseCase(subRepo, catRepo, log)
	itemUC := itemusecase.NewItemUseCase(itemRepo, subRepo, catRepo, nil, nil, false, log)

	return NewRouter(
		categoryhandler.NewCategoryHandler(catUC, log),
		subcategoryhandler.NewSubcategoryHandler(subUC, log),
		itemhandler.NewItemHandler(itemUC, log),
		log,
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["error"])
}

func TestCategoryCRUDOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":          "Beverages",
		"taxApplicable": true,
		"tax":           12,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["id"].(string)
	assert.Equal(t, "percent", created["taxType"])

	w = doJSON(t, r, http.MethodGet, "/api/categories/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categories/name/Beverages", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categories/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/categories/"+id, map[string]interface{}{
		"description": "Drinks",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Drinks", decode(t, w)["description"])

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name": "Beverages",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItemPipelineOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/categories", map[string]interface{}{
		"name":          "Food",
		"taxApplicable": true,
		"tax":           18,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	catID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/subcategories", map[string]interface{}{
		"categoryId": catID,
		"name":       "Starters",
		"tax":        5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	sub := decode(t, w)
	subID := sub["id"].(string)
	assert.Equal(t, true, sub["taxApplicable"], "inherited from category")
	assert.Equal(t, 5.0, sub["tax"])

	w = doJSON(t, r, http.MethodPost, "/api/items", map[string]interface{}{
		"categoryId":    catID,
		"subcategoryId": subID,
		"name":          "Spring Rolls",
		"baseAmount":    100,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	itemID := created["id"].(string)
	assert.Equal(t, 5.0, created["tax"], "inherited from subcategory")
	assert.Equal(t, 100.0, created["totalAmount"])

	w = doJSON(t, r, http.MethodPut, "/api/items/"+itemID, map[string]interface{}{
		"discount": 20,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, 80.0, updated["totalAmount"])
	assert.Equal(t, 5.0, updated["tax"], "tax untouched by discount update")

	w = doJSON(t, r, http.MethodPut, "/api/items/does-not-exist", map[string]interface{}{
		"discount": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/items", map[string]interface{}{
		"categoryId": catID,
		"name":       "Missing Price",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/items/category/"+catID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/items/search/spring", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Spring Rolls", results[0]["name"])
}

func TestMalformedBodyRejected(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
