package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/i18n"
)

// Lang stores the negotiated response language on the context
func Lang() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(cnst.CtxKeyLang, i18n.LanguageFromRequest(c.Request))
		c.Next()
	}
}
