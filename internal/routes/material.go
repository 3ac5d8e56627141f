package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type MaterialRoutes struct {
	handler *handlers.MaterialHandler
}

func NewMaterialRoutes(handler *handlers.MaterialHandler) *MaterialRoutes {
	return &MaterialRoutes{handler: handler}
}

func (r *MaterialRoutes) RegisterRoutes(router *gin.RouterGroup) {
	materials := router.Group("/materiais")
	{
		materials.POST("/", r.handler.CreateMaterial)
		materials.GET("/:id", r.handler.GetMaterial)
		materials.PUT("/:id", r.handler.UpdateMaterial)
		materials.DELETE("/:id", r.handler.DeleteMaterial)
	}

	router.GET("/projetos/:id/materiais/", r.handler.ListMaterialsByProject)
}
