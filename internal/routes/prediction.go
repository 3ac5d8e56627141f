package routes

import (
	"github.com/gin-gonic/gin"

	"solarys/internal/handlers"
)

type PredictionRoutes struct {
	handler *handlers.PredictionHandler
}

func NewPredictionRoutes(handler *handlers.PredictionHandler) *PredictionRoutes {
	return &PredictionRoutes{handler: handler}
}

func (r *PredictionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/prever/tarefa-atraso/", r.handler.PredictTaskDelay)
}
