package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/config"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/database"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/docstore"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/health"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/logger"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/middleware"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/server"
	authHandler "github.com/SAID-SWIAAID/stagep/services/auth/handler"
	authHTTP "github.com/SAID-SWIAAID/stagep/services/auth/handler/http"
	authRepository "github.com/SAID-SWIAAID/stagep/services/auth/repository"
	authUsecase "github.com/SAID-SWIAAID/stagep/services/auth/usecase"
	catalogHandler "github.com/SAID-SWIAAID/stagep/services/catalog/handler"
	catalogHTTP "github.com/SAID-SWIAAID/stagep/services/catalog/handler/http"
	catalogRepository "github.com/SAID-SWIAAID/stagep/services/catalog/repository"
	catalogUsecase "github.com/SAID-SWIAAID/stagep/services/catalog/usecase"
)

func main() {
	appName := "supplier-admin-api"
	configs := config.InitConfig(".env")

	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Select the document store backend; the in-memory store serves
	// local development and tests without a running database
	var store docstore.Store
	if configs.Store.Backend == "memory" {
		zapLogger.Warn("Using in-memory document store; data will not survive restarts")
		store = docstore.NewMemoryStore()
	} else {
		mongoClient, err := database.NewMongoClient(configs.Mongo)
		if err != nil {
			zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoClient.Close(ctx); err != nil {
				zapLogger.Warn("Failed to disconnect MongoDB", logger.Err(err))
			}
		}()

		if err := mongoClient.EnsureIndexes(context.Background()); err != nil {
			zapLogger.Fatal("Failed to ensure indexes", logger.Err(err))
		}
		store = docstore.NewMongoStore(mongoClient.GetDatabase())
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Repositories
	authRepo := authRepository.NewAuthRepo(configs, store)
	catalogRepo := catalogRepository.NewCatalogRepo(configs, store)

	// Usecases
	authUC := authUsecase.NewAuthUC(authRepo, authRepo, configs)
	catalogUC := catalogUsecase.NewCatalogUC(catalogRepo, configs)

	// Background sweep of expired OTP records
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	authUC.StartCleanupSweep(sweepCtx,
		time.Duration(configs.OTP.CleanupIntervalMinutes)*time.Minute)

	// HTTP handlers
	authH := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), configs)
	catalogH := catalogHandler.NewHandler(catalogHTTP.NewProductHandler(catalogUC), configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	rateLimiter := middleware.IPRateLimiter(
		configs.RateLimit.MaxRequests,
		time.Duration(configs.RateLimit.WindowSeconds)*time.Second,
		redisClient.Client,
	)

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	authH.RegisterRoutes(e, rateLimiter)
	catalogH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
