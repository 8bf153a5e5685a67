package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/guestara/menu-service/internal/apperror"
	"github.com/guestara/menu-service/internal/subcategory"
	"github.com/guestara/menu-service/internal/subcategory/dto"
	"github.com/guestara/menu-service/pkg/logger"
)

type SubcategoryHandler struct {
	uc     subcategory.UseCase
	logger logger.ZapLogger
}

func NewSubcategoryHandler(uc subcategory.UseCase, log logger.ZapLogger) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc, logger: log}
}

func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req struct {
		CategoryID    string   `json:"categoryId"`
		Name          string   `json:"name"`
		Image         string   `json:"image"`
		Description   string   `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.uc.CreateSubcategory(c.Request.Context(), &dto.CreateSubcategoryInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *SubcategoryHandler) List(c *gin.Context) {
	subs, err := h.uc.ListSubcategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubcategoryHandler) ListByCategory(c *gin.Context) {
	subs, err := h.uc.ListSubcategoriesByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubcategoryHandler) GetByID(c *gin.Context) {
	sub, err := h.uc.GetSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubcategoryHandler) GetByName(c *gin.Context) {
	sub, err := h.uc.GetSubcategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubcategoryHandler) Update(c *gin.Context) {
	var req struct {
		CategoryID    *string  `json:"categoryId"`
		Name          *string  `json:"name"`
		Image         *string  `json:"image"`
		Description   *string  `json:"description"`
		TaxApplicable *bool    `json:"taxApplicable"`
		Tax           *float64 `json:"tax"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.uc.UpdateSubcategory(c.Request.Context(), c.Param("id"), &dto.UpdateSubcategoryInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Image:         req.Image,
		Description:   req.Description,
		TaxApplicable: req.TaxApplicable,
		Tax:           req.Tax,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubcategoryHandler) respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("subcategory request failed", zap.Error(err))
	}
	body := gin.H{"error": err.Error()}
	if details := apperror.Details(err); details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
