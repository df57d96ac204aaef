package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"capitalhub-backend/config"
	_ "capitalhub-backend/docs" // Important for Swagger
	v1 "capitalhub-backend/internal/delivery/http/v1"
	"capitalhub-backend/internal/repository/postgres"
	"capitalhub-backend/internal/usecase"
	"capitalhub-backend/pkg/database"
	"capitalhub-backend/pkg/logger"
	"capitalhub-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           CapitalHub Marketplace API
// @version         1.0
// @description     Backend for the sales-rep recruiting marketplace.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	repRepo := postgres.NewRepProfileRepository(dbPool)
	offerRepo := postgres.NewJobOfferRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	offerUC := usecase.NewJobOfferUsecase(offerRepo, companyRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, offerRepo, repRepo, companyRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, companyRepo, repRepo, offerRepo)
	dashboardUC := usecase.NewDashboardUsecase(companyRepo, offerRepo, applicationRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobOfferUC:    offerUC,
		ApplicationUC: applicationUC,
		ReviewUC:      reviewUC,
		DashboardUC:   dashboardUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
