package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/i18n"
	"go.uber.org/zap"
)

type Health struct {
	db     database.Database
	logger *zap.Logger
}

func NewHealth(db database.Database, logger *zap.Logger) *Health {
	return &Health{db: db, logger: logger.Named("health")}
}

func (h *Health) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrDatabase)
		return
	}
	i18n.OK().With("status", "ok").Send(c)
}
