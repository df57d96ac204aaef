package v1

import (
	"net/http"
	"time"

	"capitalhub-backend/config"
	"capitalhub-backend/internal/delivery/http/middleware"
	"capitalhub-backend/internal/delivery/http/response"
	"capitalhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobOfferUC    domain.JobOfferUsecase
	ApplicationUC domain.JobApplicationUsecase
	ReviewUC      domain.ReviewUsecase
	DashboardUC   domain.DashboardUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
	}))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewJobOfferHandler(protected, deps.JobOfferUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewReviewHandler(protected, deps.ReviewUC)
		NewDashboardHandler(protected, deps.DashboardUC)
	}

	return r
}
