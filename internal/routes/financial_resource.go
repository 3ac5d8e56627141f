package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type FinancialResourceRoutes struct {
	handler *handlers.FinancialResourceHandler
}

func NewFinancialResourceRoutes(handler *handlers.FinancialResourceHandler) *FinancialResourceRoutes {
	return &FinancialResourceRoutes{handler: handler}
}

func (r *FinancialResourceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	resources := router.Group("/recursos_financeiros")
	{
		resources.POST("/", r.handler.CreateFinancialResource)
		resources.GET("/:id", r.handler.GetFinancialResource)
		resources.PUT("/:id", r.handler.UpdateFinancialResource)
		resources.DELETE("/:id", r.handler.DeleteFinancialResource)
	}

	router.GET("/projetos/:id/recursos_financeiros/", r.handler.ListFinancialResourcesByProject)
}
