package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luhambo/maintenance/internal/common/cnst"
)

// RequestID reuses an inbound X-Request-ID or assigns a fresh uuid
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cnst.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(cnst.CtxKeyRequestID, id)
		c.Header(cnst.HeaderRequestID, id)
		c.Next()
	}
}
