package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error,omitempty"`
}

// Success writes data as the bare response body.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, statusCode int, err error, detail string) {
	c.JSON(statusCode, newError(err, detail))
}

// Abort is Fail for middlewares; handlers later in the chain are skipped.
func Abort(c *gin.Context, statusCode int, err error, detail string) {
	c.AbortWithStatusJSON(statusCode, newError(err, detail))
}

func newError(err error, detail string) ErrorResponse {
	resp := ErrorResponse{Detail: detail}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
