package server

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/config"
	"solarys/internal/database"
	"solarys/internal/handlers"
	"solarys/internal/inference"
	"solarys/internal/middlewares"
	"solarys/internal/repositories"
	"solarys/internal/routes"
	"solarys/internal/services"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// A nil predictor leaves the prediction endpoint permanently unavailable.
func NewRouter(provider database.Provider, predictor *inference.Predictor, allowedOrigins []string, logger *zap.Logger) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	// Dependency injection
	projectRepo := repositories.NewProjectRepository()
	taskRepo := repositories.NewTaskRepository()
	resourceRepo := repositories.NewFinancialResourceRepository()
	materialRepo := repositories.NewMaterialRepository()
	employeeRepo := repositories.NewEmployeeRepository()
	allocationRepo := repositories.NewAllocationRepository()

	predictionService := services.NewPredictionService(predictor, logger)

	h := routes.Handlers{
		Root:              handlers.NewRootHandler(provider, predictionService, logger),
		Project:           handlers.NewProjectHandler(services.NewProjectService(projectRepo), logger),
		Task:              handlers.NewTaskHandler(services.NewTaskService(taskRepo), logger),
		FinancialResource: handlers.NewFinancialResourceHandler(services.NewFinancialResourceService(resourceRepo), logger),
		Material:          handlers.NewMaterialHandler(services.NewMaterialService(materialRepo), logger),
		Employee:          handlers.NewEmployeeHandler(services.NewEmployeeService(employeeRepo), logger),
		Allocation:        handlers.NewAllocationHandler(services.NewAllocationService(allocationRepo), logger),
		Prediction:        handlers.NewPredictionHandler(predictionService, logger),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))
	router.Use(cors.New(corsConfig(allowedOrigins)))

	routes.RegisterRoutes(router, h, middlewares.DBConnection(provider, logger))

	return router, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

func NewServer(cfg *config.Config, provider database.Provider, predictor *inference.Predictor, logger *zap.Logger) (*http.Server, error) {
	router, err := NewRouter(provider, predictor, cfg.AllowedOrigins, logger)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}
