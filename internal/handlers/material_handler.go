package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/middlewares"
	"solarys/internal/models"
	"solarys/internal/responses"
	"solarys/internal/services"
)

var materialNotFound = newNotFound("Material não encontrado")

type MaterialHandler struct {
	materialService *services.MaterialService
	logger          *zap.Logger
}

func NewMaterialHandler(materialService *services.MaterialService, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		logger:          logger,
	}
}

// CreateMaterial handles POST /materiais/
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req models.MaterialInput
	if !bindBody(c, &req) {
		return
	}

	material, err := h.materialService.CreateMaterial(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, material)
}

// ListMaterialsByProject handles GET /projetos/:id/materiais/
func (h *MaterialHandler) ListMaterialsByProject(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.materialService.ListMaterialsByProject(c.Request.Context(), middlewares.DBConn(c), projectID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetMaterial handles GET /materiais/:id
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	material, err := h.materialService.GetMaterial(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, materialNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, material)
}

// UpdateMaterial handles PUT /materiais/:id
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.MaterialInput
	if !bindBody(c, &req) {
		return
	}

	material, err := h.materialService.UpdateMaterial(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, materialNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, material)
}

// DeleteMaterial handles DELETE /materiais/:id
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.materialService.DeleteMaterial(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, materialNotFound.delete)
		return
	}

	responses.NoContent(c)
}
