package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/item"
	"github.com/guestara/menu-service/internal/item/dto"
	"github.com/guestara/menu-service/pkg/logger"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{uc: uc, logger: log}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		CategoryID    string   `json:"categoryId"`
		SubcategoryID *string  `json:"subcategoryId"`
		Name          string   `json:"name"`
		Image         string   `json:"image"`
		Description   string   `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
		BaseAmount    *float64 `json:"baseAmount"`
		Discount      *float64 `json:"discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	it, err := h.uc.CreateItem(c.Request.Context(), &dto.CreateItemInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
		BaseAmount:    req.BaseAmount,
		Discount:      req.Discount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, it)
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ListByCategory(c *gin.Context) {
	items, err := h.uc.ListItemsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ListBySubcategory(c *gin.Context) {
	items, err := h.uc.ListItemsBySubcategory(c.Request.Context(), c.Param("subcategoryId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	it, err := h.uc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if it == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) GetByName(c *gin.Context) {
	it, err := h.uc.GetItemByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if it == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.uc.SearchItems(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	var req struct {
		CategoryID    *string  `json:"categoryId"`
		SubcategoryID *string  `json:"subcategoryId"`
		Name          *string  `json:"name"`
		Image         *string  `json:"image"`
		Description   *string  `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
		BaseAmount    *float64 `json:"baseAmount"`
		Discount      *float64 `json:"discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	it, err := h.uc.UpdateItem(c.Request.Context(), c.Param("id"), &dto.UpdateItemInput{
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
		BaseAmount:    req.BaseAmount,
		Discount:      req.Discount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, it)
}

func (h *ItemHandler) respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("item request failed", zap.Error(err))
	}
	body := gin.H{"error": err.Error()}
	if details := apperror.Details(err); details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
