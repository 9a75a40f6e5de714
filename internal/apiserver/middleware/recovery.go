package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/i18n"
	"go.uber.org/zap"
)

// Recovery turns a panic into the internal server error envelope
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(cnst.CtxKeyRequestID)),
					zap.Stack("stack"),
				)
				i18n.RespondWithError(c, i18n.ErrInternalServer)
				c.Abort()
			}
		}()
		c.Next()
	}
}
