package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/database"
	"solarys/internal/responses"
)

const dbConnKey = "dbConn"

// DBConnection holds one connection for the lifetime of the request and
// releases it once the handler chain returns, panics included.
func DBConnection(provider database.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := provider.Acquire(c.Request.Context())
		if err != nil {
			logger.Error("Failed to acquire database connection",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			responses.Abort(c, http.StatusServiceUnavailable, nil, "Banco de dados indisponível.")
			return
		}
		defer conn.Release()

		c.Set(dbConnKey, conn)
		c.Next()
	}
}

// DBConn returns the connection stored by DBConnection.
func DBConn(c *gin.Context) database.Conn {
	conn, _ := c.MustGet(dbConnKey).(database.Conn)
	return conn
}
