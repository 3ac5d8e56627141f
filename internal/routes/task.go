package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type TaskRoutes struct {
	handler *handlers.TaskHandler
}

func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

func (r *TaskRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tarefas")
	{
		tasks.POST("/", r.handler.CreateTask)
		tasks.GET("/:id", r.handler.GetTask)
		tasks.PUT("/:id", r.handler.UpdateTask)
		tasks.DELETE("/:id", r.handler.DeleteTask)
	}

	router.GET("/projetos/:id/tarefas/", r.handler.ListTasksByProject)
}
