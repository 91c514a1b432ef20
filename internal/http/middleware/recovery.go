package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brew_console/internal/http/dto"
	"brew_console/internal/http/resp"
)

func ZapRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("request_id", c.Writer.Header().Get(RequestIDHeader)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "internal error"})
	})
}
