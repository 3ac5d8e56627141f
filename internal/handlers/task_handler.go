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

var taskNotFound = newNotFound("Tarefa não encontrada")

type TaskHandler struct {
	taskService *services.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *services.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles POST /tarefas/
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req models.TaskInput
	if !bindBody(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middlewares.DBConn(c), req)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, task)
}

// ListTasksByProject handles GET /projetos/:id/tarefas/
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := h.taskService.ListTasksByProject(c.Request.Context(), middlewares.DBConn(c), projectID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses.Success(c, http.StatusOK, items)
}

// GetTask handles GET /tarefas/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middlewares.DBConn(c), id)
	if err != nil {
		respondError(c, h.logger, err, taskNotFound.get)
		return
	}

	responses.Success(c, http.StatusOK, task)
}

// UpdateTask handles PUT /tarefas/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TaskInput
	if !bindBody(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middlewares.DBConn(c), id, req)
	if err != nil {
		respondError(c, h.logger, err, taskNotFound.update)
		return
	}

	responses.Success(c, http.StatusOK, task)
}

// DeleteTask handles DELETE /tarefas/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middlewares.DBConn(c), id); err != nil {
		respondError(c, h.logger, err, taskNotFound.delete)
		return
	}

	responses.NoContent(c)
}
