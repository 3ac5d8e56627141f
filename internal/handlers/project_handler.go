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

var projectNotFound = newNotFound("Projeto não encontrado")

type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(projectService *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject handles POST /projetos/
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.ProjectInput
	if !bindBody(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, project)
}

// ListProjects handles GET /projetos/
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	items, err := h.projectService.ListProjects(c.Request.Context(), middlewares.DBConn(c))
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetProject handles GET /projetos/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, projectNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, project)
}

// UpdateProject handles PUT /projetos/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.ProjectInput
	if !bindBody(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, projectNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /projetos/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, projectNotFound.delete)
		return
	}

	responses.NoContent(c)
}
