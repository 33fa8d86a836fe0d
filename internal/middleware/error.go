package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery turns a panic in any later handler into a logged 500. Clients
// asking for JSON get an ErrorResponse, everyone else plain text.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Recovered from panic",
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", err),
					zap.ByteString("stack", debug.Stack()))

				if c.Writer.Written() {
					c.Abort()
					return
				}

				msg := http.StatusText(http.StatusInternalServerError)
				if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
					c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
					return
				}
				c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(msg))
				c.Abort()
			}
		}()

		c.Next()
	}
}
