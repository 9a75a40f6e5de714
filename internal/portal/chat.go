package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/luhambo/maintenance/internal/common/dto"
	"go.uber.org/zap"
)

// OpenChat shows the conversation for a report. Messages are loaded once
// on open and again after each send; there is no live refresh.
func (c *Controller) OpenChat(ctx context.Context, id uint) {
	if !c.session.LoggedIn() {
		return
	}
	c.session.ChatReportID = id

	r, ok := c.findReport(ctx, id)
	if !ok {
		c.notify(ToastError, "Error loading chat")
		return
	}
	if r == nil {
		c.notify(ToastError, "Report not found")
		return
	}

	c.setText("chat-title", fmt.Sprintf("Chat - Report #%d", id))
	if !c.render("chat-report-info", "chat-report-info", *r, "Error loading chat") {
		return
	}
	if !c.loadChatMessages(ctx, id) {
		return
	}
	c.modals[ModalChat] = true
}

func (c *Controller) loadChatMessages(ctx context.Context, id uint) bool {
	var msgs []Message
	if res := c.client.Messages(ctx, id); res.Success {
		if err := res.Decode("messages", &msgs); err != nil {
			c.logger.Warn("failed to decode messages", zap.Error(err))
			msgs = nil
		}
	}
	return c.render("chat-messages", "chat-messages", chatRows(msgs, c.session), "Error loading chat")
}

// SendChatMessage posts text to the open chat as the signed-in user.
// Blank input is ignored.
func (c *Controller) SendChatMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" || c.session.ChatReportID == 0 || !c.session.LoggedIn() {
		return
	}

	id := c.session.ChatReportID
	res := c.client.SendMessage(ctx, id, dto.PostMessageRequest{
		SenderType: c.session.UserType,
		SenderID:   c.session.UserID(),
		Message:    text,
	})
	if !res.Success {
		c.notify(ToastError, orDefault(res.Message, "Failed to send message"))
		return
	}
	c.loadChatMessages(ctx, id)
}
