package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/apiserver/database"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/dto"
	"github.com/luhambo/maintenance/internal/i18n"
	"github.com/luhambo/maintenance/pkg/metrics"
	"github.com/luhambo/maintenance/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Chat serves the per-report message thread. Clients re-fetch the whole
// thread after sending; nothing is pushed.
type Chat struct {
	db      database.Database
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewChat(db database.Database, logger *zap.Logger, m *metrics.Metrics) *Chat {
	return &Chat{
		db:      db,
		logger:  logger.Named("chat"),
		metrics: m,
	}
}

func (h *Chat) List(c *gin.Context) {
	reportID, ok := idParam(c, "reportId")
	if !ok {
		return
	}

	messages, err := h.db.ListMessages(c.Request.Context(), reportID)
	if err != nil {
		h.logger.Error("failed to list messages", zap.Uint("report_id", reportID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrFetchMessages)
		return
	}
	i18n.OK().With("messages", messages).Send(c)
}

// Post appends a message. Sender type and report are taken on trust.
func (h *Chat) Post(c *gin.Context) {
	reportID, ok := idParam(c, "reportId")
	if !ok {
		return
	}
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRequest)
		return
	}

	scope := trace.Tracer(cnst.TraceAPIServer).Start(c.Request.Context(), "chat.post").
		WithAttrs(attribute.Int64(cnst.AttrReportID, int64(reportID)))
	defer scope.End()

	msg := &database.ChatMessage{
		ReportID:   reportID,
		SenderType: req.SenderType,
		SenderID:   req.SenderID,
		Message:    req.Message,
	}
	if err := h.db.SaveMessage(scope.Ctx, msg); err != nil {
		scope.Fail(err)
		h.logger.Error("failed to save message", zap.Uint("report_id", reportID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrSendMessage)
		return
	}

	h.metrics.MessageSent(req.SenderType)
	i18n.Success(i18n.SuccessMessageSent).With("messageId", msg.ID).Send(c)
}
