package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/database"
	"solarys/internal/responses"
	"solarys/internal/services"
)

const welcomeMessage = "Bem-vindo à API SolarysAI"

type RootHandler struct {
	provider          database.Provider
	predictionService *services.PredictionService
	logger            *zap.Logger
}

func NewRootHandler(provider database.Provider, predictionService *services.PredictionService, logger *zap.Logger) *RootHandler {
	return &RootHandler{
		provider:          provider,
		predictionService: predictionService,
		logger:            logger,
	}
}

// Welcome handles GET /
func (h *RootHandler) Welcome(c *gin.Context) {
	responses.Success(c, http.StatusOK, gin.H{"message": welcomeMessage})
}

// Healthz handles GET /healthz
func (h *RootHandler) Healthz(c *gin.Context) {
	responses.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

// Readyz handles GET /readyz. The model is reported but never fails the probe.
func (h *RootHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	model := h.predictionService.Available()
	if err := h.provider.Ping(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": false, "model": model})
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"status": "ok", "database": true, "model": model})
}
