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

var employeeNotFound = newNotFound("Funcionário não encontrado")

type EmployeeHandler struct {
	employeeService *services.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeHandler(employeeService *services.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// CreateEmployee handles POST /funcionarios/
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeInput
	if !bindBody(c, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, employee)
}

// ListEmployees handles GET /funcionarios/
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	items, err := h.employeeService.ListEmployees(c.Request.Context(), middlewares.DBConn(c))
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetEmployee handles GET /funcionarios/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, employeeNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, employee)
}

// UpdateEmployee handles PUT /funcionarios/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.EmployeeInput
	if !bindBody(c, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, employeeNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /funcionarios/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, employeeNotFound.delete)
		return
	}

	responses.NoContent(c)
}
