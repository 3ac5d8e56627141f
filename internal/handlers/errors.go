package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/database"
	"solarys/internal/inference"
	"solarys/internal/middlewares"
	"solarys/internal/responses"
	"solarys/internal/services"
	"solarys/internal/utils"
)

const (
	detailInvalidBody      = "Corpo da requisição inválido."
	detailInvalidID        = "ID inválido."
	detailInvalidReference = "Referência a registro inexistente."
	detailUnavailable      = "Banco de dados indisponível."
	detailModelUnavailable = "Modelo de IA não está disponível."
	detailInternal         = "Erro interno do servidor."
)

// notFound holds the 404 details of one entity per operation.
type notFound struct {
	get    string
	update string
	delete string
}

func newNotFound(base string) notFound {
	return notFound{
		get:    base + ".",
		update: base + " para atualização.",
		delete: base + " para deleção.",
	}
}

// respondError maps service errors to status codes. Unexpected errors are
// logged and reported without their text.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		responses.Fail(c, http.StatusNotFound, nil, notFoundDetail)
	case errors.Is(err, services.ErrInvalidReference):
		responses.Fail(c, http.StatusBadRequest, err, detailInvalidReference)
	case errors.Is(err, database.ErrUnavailable):
		logger.Error("Database unavailable", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
		responses.Fail(c, http.StatusServiceUnavailable, nil, detailUnavailable)
	case errors.Is(err, inference.ErrModelUnavailable):
		responses.Fail(c, http.StatusInternalServerError, nil, detailModelUnavailable)
	default:
		_ = c.Error(err)
		logger.Error("Request failed", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
		responses.Fail(c, http.StatusInternalServerError, nil, detailInternal)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, detailInvalidID)
		return 0, false
	}
	return id, true
}

func bindBody(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, detailInvalidBody)
		return false
	}
	return true
}
