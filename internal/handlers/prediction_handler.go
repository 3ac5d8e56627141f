package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/inference"
	"solarys/internal/responses"
	"solarys/internal/services"
)

type PredictionHandler struct {
	predictionService *services.PredictionService
	logger            *zap.Logger
}

func NewPredictionHandler(predictionService *services.PredictionService, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		logger:            logger,
	}
}

// PredictTaskDelay handles POST /prever/tarefa-atraso/
func (h *PredictionHandler) PredictTaskDelay(c *gin.Context) {
	// An unloaded model wins over a bad body.
	if !h.predictionService.Available() {
		respondError(c, h.logger, inference.ErrModelUnavailable, "")
		return
	}

	var req inference.TaskRiskInput
	if !bindBody(c, &req) {
		return
	}

	prediction, err := h.predictionService.PredictTaskDelay(req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, prediction)
}
