package main

import (
	"log"
	"net/http"

	_ "fittrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fittrack/internal/auth"
	"fittrack/internal/cache"
	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/handler"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/router"
	"fittrack/internal/service"
)

// @title Fitness & Health Tracker API
// @version 1.0
// @description Personal fitness and health tracking API with JWT authentication.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FitnessRecord{},
		&model.HealthMetric{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	fitnessRepo := repository.NewFitnessRecordRepository(gormDB)
	healthRepo := repository.NewHealthMetricRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	fitnessService := service.NewFitnessService(fitnessRepo)
	healthService := service.NewHealthService(healthRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	fitnessHandler := handler.NewFitnessHandler(fitnessService)
	healthHandler := handler.NewHealthHandler(healthService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		fitnessHandler,
		healthHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
