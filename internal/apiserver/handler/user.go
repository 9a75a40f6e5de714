package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/i18n"
	"go.uber.org/zap"
)

// User serves the admin student directory
type User struct {
	db     database.Database
	logger *zap.Logger
}

func NewUser(db database.Database, logger *zap.Logger) *User {
	return &User{db: db, logger: logger.Named("user")}
}

// List matches ?search against full name or student number
func (h *User) List(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchUsers)
		return
	}
	i18n.OK().With("users", users).Send(c)
}
