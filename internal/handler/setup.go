package handler

import (
	"errors"
	"fmt"

	"streamplan/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSetup handles /setup: with an argument it stores the destination
// channel for this chat, without one it shows the current configuration.
func (h *Handler) handleSetup(c tele.Context) error {
	chatID := c.Chat().ID
	args := c.Args()

	if len(args) == 0 {
		channelID, err := h.setup.Channel(chatID)
		if errors.Is(err, domain.ErrNotConfigured) {
			return c.Send("Noch kein Ziel-Kanal gesetzt. Nutzung: /setup <channel_id>")
		}
		if err != nil {
			h.logger.Error("Failed to look up channel config", zap.Int64("chat_id", chatID), zap.Error(err))
			return c.Send("Die Konfiguration konnte nicht geladen werden.")
		}
		return c.Send(fmt.Sprintf("Aktueller Ziel-Kanal: %d\nÄndern mit /setup <channel_id>", channelID))
	}

	channelID, err := h.setup.SetChannel(chatID, args[0])
	if err != nil {
		h.logger.Warn("Failed to save channel config",
			zap.Int64("chat_id", chatID),
			zap.String("arg", args[0]),
			zap.Error(err),
		)
		return c.Send("Das hat nicht geklappt. Nutzung: /setup <channel_id>")
	}

	h.logger.Info("Channel configured",
		zap.Int64("chat_id", chatID),
		zap.Int64("channel_id", channelID),
	)
	return c.Send(fmt.Sprintf("✅ Streampläne werden nach Kanal %d gepostet.", channelID))
}
