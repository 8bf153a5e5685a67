package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	categoryhandler "github.com/guestara/menu-service/internal/category/handler"
	itemhandler "github.com/guestara/menu-service/internal/item/handler"
	subcategoryhandler "github.com/guestara/menu-service/internal/subcategory/handler"
	"github.com/guestara/menu-service/pkg/logger"
)

func NewRouter(
	catHandler *categoryhandler.CategoryHandler,
	subHandler *subcategoryhandler.SubcategoryHandler,
	itemHandler *itemhandler.ItemHandler,
	log logger.ZapLogger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "Guestara Menu Backend",
			"status": "ok",
			"health": "/health",
			"api":    "/api",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	categories := api.Group("/categories")
	categories.POST("", catHandler.Create)
	categories.GET("", catHandler.List)
	categories.GET("/name/:name", catHandler.GetByName)
	categories.GET("/:id", catHandler.GetByID)
	categories.PUT("/:id", catHandler.Update)

	subcategories := api.Group("/subcategories")
	subcategories.POST("", subHandler.Create)
	subcategories.GET("", subHandler.List)
	subcategories.GET("/category/:categoryId", subHandler.ListByCategory)
	subcategories.GET("/name/:name", subHandler.GetByName)
	subcategories.GET("/:id", subHandler.GetByID)
	subcategories.PUT("/:id", subHandler.Update)

	items := api.Group("/items")
	items.POST("", itemHandler.Create)
	items.GET("", itemHandler.List)
	items.GET("/category/:categoryId", itemHandler.ListByCategory)
	items.GET("/subcategory/:subcategoryId", itemHandler.ListBySubcategory)
	items.GET("/name/:name", itemHandler.GetByName)
	items.GET("/search/:name", itemHandler.Search)
	items.GET("/:id", itemHandler.GetByID)
	items.PUT("/:id", itemHandler.Update)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}

func requestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
