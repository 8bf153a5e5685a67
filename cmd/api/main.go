package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/guestara/menu-service/config"
	"github.com/guestara/menu-service/pkg/cache"
	"github.com/guestara/menu-service/pkg/database/postgres"
	"github.com/guestara/menu-service/pkg/logger"
	"github.com/guestara/menu-service/pkg/search"

	"github.com/guestara/menu-service/internal/category"
	catH "github.com/guestara/menu-service/internal/category/handler"
	catRepoPkg "github.com/guestara/menu-service/internal/category/repository"
	catUCPkg "github.com/guestara/menu-service/internal/category/usecase"

	"github.com/guestara/menu-service/internal/subcategory"
	subH "github.com/guestara/menu-service/internal/subcategory/handler"
	subRepoPkg "github.com/guestara/menu-service/internal/subcategory/repository"
	subUCPkg "github.com/guestara/menu-service/internal/subcategory/usecase"

	"github.com/guestara/menu-service/internal/item"
	itemH "github.com/guestara/menu-service/internal/item/handler"
	itemRepoPkg "github.com/guestara/menu-service/internal/item/repository"
	itemUCPkg "github.com/guestara/menu-service/internal/item/usecase"

	"github.com/guestara/menu-service/internal/router"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
		logConfig.DisableCaller = cfg.Logger.DisableCaller
		logConfig.DisableStacktrace = cfg.Logger.DisableStacktrace
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to the store and build repositories
	var (
		catRepo  category.Repository
		subRepo  subcategory.Repository
		itemRepo item.Repository
	)

	switch cfg.Store.Driver {
	case "postgres":
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		catRepo = catRepoPkg.NewPGRepository(db)
		subRepo = subRepoPkg.NewPGRepository(db)
		itemRepo = itemRepoPkg.NewPGRepository(db)

	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.Mongo.URI))
		cancel()
		if err != nil {
			appLogger.Fatal("Could not connect to MongoDB", zap.Error(err))
		}
		defer client.Disconnect(context.Background())

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx, nil); err != nil {
			pingCancel()
			appLogger.Fatal("Could not reach MongoDB", zap.Error(err))
		}
		pingCancel()
		appLogger.Info("Connected to MongoDB", zap.String("db_name", cfg.Mongo.DBName))

		db := client.Database(cfg.Mongo.DBName)
		catRepo = catRepoPkg.NewMongoRepository(db)
		subRepo = subRepoPkg.NewMongoRepository(db)
		itemRepo = itemRepoPkg.NewMongoRepository(db)
	}

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (list caching disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to the store)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	subUC := subUCPkg.NewSubcategoryUseCase(subRepo, catRepo, appLogger)
	itemUC := itemUCPkg.NewItemUseCase(itemRepo, subRepo, catRepo, redisClient, esClient, cfg.Catalog.StrictHierarchy, appLogger)

	// 7. Initialize Handlers and Router
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	subHandler := subH.NewSubcategoryHandler(subUC, appLogger)
	itemHandler := itemH.NewItemHandler(itemUC, appLogger)

	engine := router.NewRouter(catHandler, subHandler, itemHandler, appLogger)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: engine,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
