package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solarys/internal/handlers"
)

type Handlers struct {
	Root              *handlers.RootHandler
	Project           *handlers.ProjectHandler
	Task              *handlers.TaskHandler
	FinancialResource *handlers.FinancialResourceHandler
	Material          *handlers.MaterialHandler
	Employee          *handlers.EmployeeHandler
	Allocation        *handlers.AllocationHandler
	Prediction        *handlers.PredictionHandler
}

// RegisterRoutes mounts every route. dbConn guards the entity routes only;
// probes, metrics and prediction never touch the database.
func RegisterRoutes(router *gin.Engine, h Handlers, dbConn gin.HandlerFunc) {
	router.GET("/", h.Root.Welcome)
	router.GET("/healthz", h.Root.Healthz)
	router.GET("/readyz", h.Root.Readyz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	NewPredictionRoutes(h.Prediction).RegisterRoutes(&router.RouterGroup)

	entities := router.Group("/")
	entities.Use(dbConn)

	NewProjectRoutes(h.Project).RegisterRoutes(entities)
	NewTaskRoutes(h.Task).RegisterRoutes(entities)
	NewFinancialResourceRoutes(h.FinancialResource).RegisterRoutes(entities)
	NewMaterialRoutes(h.Material).RegisterRoutes(entities)
	NewEmployeeRoutes(h.Employee).RegisterRoutes(entities)
	NewAllocationRoutes(h.Allocation).RegisterRoutes(entities)
}
