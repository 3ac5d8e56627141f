package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projetos")
	{
		projects.POST("/", r.handler.CreateProject)
		projects.GET("/", r.handler.ListProjects)
		projects.GET("/:id", r.handler.GetProject)
		projects.PUT("/:id", r.handler.UpdateProject)
		projects.DELETE("/:id", r.handler.DeleteProject)
	}
}
