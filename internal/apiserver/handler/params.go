package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/i18n"
)

// idParam parses a numeric path parameter, answering 400 when it is not one
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return 0, false
	}
	return uint(v), true
}
