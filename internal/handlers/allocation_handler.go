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

var allocationNotFound = newNotFound("Alocação não encontrada")

type AllocationHandler struct {
	allocationService *services.AllocationService
	logger            *zap.Logger
}

func NewAllocationHandler(allocationService *services.AllocationService, logger *zap.Logger) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
		logger:            logger,
	}
}

// CreateAllocation handles POST /alocacoes/
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req models.AllocationInput
	if !bindBody(c, &req) {
		return
	}

	allocation, err := h.allocationService.CreateAllocation(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, allocation)
}

// ListAllocationsByProject handles GET /projetos/:id/alocacoes/
func (h *AllocationHandler) ListAllocationsByProject(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.allocationService.ListAllocationsByProject(c.Request.Context(), middlewares.DBConn(c), projectID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetAllocation handles GET /alocacoes/:id
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	allocation, err := h.allocationService.GetAllocation(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, allocationNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, allocation)
}

// UpdateAllocation handles PUT /alocacoes/:id
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.AllocationInput
	if !bindBody(c, &req) {
		return
	}

	allocation, err := h.allocationService.UpdateAllocation(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, allocationNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, allocation)
}

// DeleteAllocation handles DELETE /alocacoes/:id
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.allocationService.DeleteAllocation(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, allocationNotFound.delete)
		return
	}

	responses.NoContent(c)
}
