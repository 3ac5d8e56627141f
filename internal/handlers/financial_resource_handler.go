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

var financialResourceNotFound = newNotFound("Recurso financeiro não encontrado")

type FinancialResourceHandler struct {
	financialResourceService *services.FinancialResourceService
	logger                   *zap.Logger
}

func NewFinancialResourceHandler(financialResourceService *services.FinancialResourceService, logger *zap.Logger) *FinancialResourceHandler {
	return &FinancialResourceHandler{
		financialResourceService: financialResourceService,
		logger:                   logger,
	}
}

// CreateFinancialResource handles POST /recursos_financeiros/
func (h *FinancialResourceHandler) CreateFinancialResource(c *gin.Context) {
	var req models.FinancialResourceInput
	if !bindBody(c, &req) {
		return
	}

	resource, err := h.financialResourceService.CreateFinancialResource(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, resource)
}

// ListFinancialResourcesByProject handles GET /projetos/:id/recursos_financeiros/
func (h *FinancialResourceHandler) ListFinancialResourcesByProject(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.financialResourceService.ListFinancialResourcesByProject(c.Request.Context(), middlewares.DBConn(c), projectID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetFinancialResource handles GET /recursos_financeiros/:id
func (h *FinancialResourceHandler) GetFinancialResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resource, err := h.financialResourceService.GetFinancialResource(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, financialResourceNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, resource)
}

// UpdateFinancialResource handles PUT /recursos_financeiros/:id
func (h *FinancialResourceHandler) UpdateFinancialResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.FinancialResourceInput
	if !bindBody(c, &req) {
		return
	}

	resource, err := h.financialResourceService.UpdateFinancialResource(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, financialResourceNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, resource)
}

// DeleteFinancialResource handles DELETE /recursos_financeiros/:id
func (h *FinancialResourceHandler) DeleteFinancialResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.financialResourceService.DeleteFinancialResource(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, financialResourceNotFound.delete)
		return
	}

	responses.NoContent(c)
}
