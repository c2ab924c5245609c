package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-skillstack-backend/config"
	_ "go-skillstack-backend/docs" // Important for Swagger
	v1 "go-skillstack-backend/internal/delivery/http/v1"
	"go-skillstack-backend/internal/repository/postgres"
	"go-skillstack-backend/internal/usecase"
	"go-skillstack-backend/migrations"
	"go-skillstack-backend/pkg/auth"
	"go-skillstack-backend/pkg/database"
	"go-skillstack-backend/pkg/logger"
	"go-skillstack-backend/pkg/redis"
	"go-skillstack-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for migrations
)

// @title           SkillStack API
// @version         1.0
// @description     Personal skill, project and goal tracker using Clean Architecture.
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
	logger.Log.Info("Starting skillstack backend", "port", cfg.Port)

	// 3. Run Migrations
	migrationDB, err := sql.Open("pgx", cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to open migration connection", "error", err)
		os.Exit(1)
	}
	if err := migrations.Migrate(migrationDB); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	migrationDB.Close()

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (optional, rate limiting falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	goalRepo := postgres.NewGoalRepository(dbPool)

	// 7. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens, cfg.BcryptCost)
	userUC := usecase.NewUserUsecase(userRepo, cfg.BcryptCost)
	skillUC := usecase.NewSkillUsecase(skillRepo, projectRepo, userRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo, skillRepo, userRepo)
	goalUC := usecase.NewGoalUsecase(goalRepo, skillRepo, userRepo)

	// 9. Register custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		SkillUC:   skillUC,
		ProjectUC: projectUC,
		GoalUC:    goalUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 11. Start Server
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
