package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type EmployeeRoutes struct {
	handler *handlers.EmployeeHandler
}

func NewEmployeeRoutes(handler *handlers.EmployeeHandler) *EmployeeRoutes {
	return &EmployeeRoutes{handler: handler}
}

func (r *EmployeeRoutes) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/funcionarios")
	{
		employees.POST("/", r.handler.CreateEmployee)
		employees.GET("/", r.handler.ListEmployees)
		employees.GET("/:id", r.handler.GetEmployee)
		employees.PUT("/:id", r.handler.UpdateEmployee)
		employees.DELETE("/:id", r.handler.DeleteEmployee)
	}
}
