package v1

import (
	"net/http"

	"go-skillstack-backend/config"
	"go-skillstack-backend/internal/delivery/http/middleware"
	"go-skillstack-backend/internal/delivery/http/response"
	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	UserUC    domain.UserUsecase
	SkillUC   domain.SkillUsecase
	ProjectUC domain.ProjectUsecase
	GoalUC    domain.GoalUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config))
	NewAuthHandler(v1, deps.AuthUC, loginLimiter)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewUserHandler(protected, deps.UserUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewProjectHandler(protected, deps.ProjectUC)
		NewGoalHandler(protected, deps.GoalUC)
	}

	return r
}
