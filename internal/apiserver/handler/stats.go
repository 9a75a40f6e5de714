package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/i18n"
	"go.uber.org/zap"
)

type Stats struct {
	db     database.Database
	logger *zap.Logger
}

func NewStats(db database.Database, logger *zap.Logger) *Stats {
	return &Stats{db: db, logger: logger.Named("stats")}
}

func (h *Stats) Student(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	stats, err := h.db.StudentStats(c.Request.Context(), studentID)
	if err != nil {
		h.logger.Error("failed to compute student stats", zap.Uint("student_id", studentID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchStats)
		return
	}
	i18n.OK().With("stats", stats).Send(c)
}

// Admin counts completed reports only when their update happened today (UTC)
func (h *Stats) Admin(c *gin.Context) {
	stats, err := h.db.AdminStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute admin stats", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchStats)
		return
	}
	i18n.OK().With("stats", stats).Send(c)
}
