package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type AllocationRoutes struct {
	handler *handlers.AllocationHandler
}

func NewAllocationRoutes(handler *handlers.AllocationHandler) *AllocationRoutes {
	return &AllocationRoutes{handler: handler}
}

func (r *AllocationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	allocations := router.Group("/alocacoes")
	{
		allocations.POST("/", r.handler.CreateAllocation)
		allocations.GET("/:id", r.handler.GetAllocation)
		allocations.PUT("/:id", r.handler.UpdateAllocation)
		allocations.DELETE("/:id", r.handler.DeleteAllocation)
	}

	router.GET("/projetos/:id/alocacoes/", r.handler.ListAllocationsByProject)
}
