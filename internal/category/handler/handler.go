package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/category"
	"github.com/guestara/menu-service/internal/category/dto"
	"github.com/guestara/menu-service/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: log}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req struct {
		Name          string   `json:"name"`
		Image         string   `json:"image"`
		Description   string   `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
		TaxType       string   `json:"taxType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &dto.CreateCategoryInput{
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
		TaxType:       req.TaxType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) GetByName(c *gin.Context) {
	cat, err := h.uc.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req struct {
		Name          *string  `json:"name"`
		Image         *string  `json:"image"`
		Description   *string  `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
		TaxType       *string  `json:"taxType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), c.Param("id"), &dto.UpdateCategoryInput{
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
		TaxType:       req.TaxType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("category request failed", zap.Error(err))
	}
	body := gin.H{"error": err.Error()}
	if details := apperror.Details(err); details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
