package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStreamplan handles /streamplan: starts a fresh wizard, replacing
// any in-progress one.
func (h *Handler) handleStreamplan(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started streamplan wizard",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("username", c.Sender().Username),
	)

	scr := h.plans.Start(userID, c.Chat().ID)
	return h.showScreen(c, scr)
}
