package gateway

import (
	"streamplan/internal/render"

	tele "gopkg.in/telebot.v3"
)

// Telegram posts rendered plans through the bot API. Implements
// service.Poster.
type Telegram struct {
	bot *tele.Bot
}

// NewTelegram creates a new Telegram dispatch gateway
func NewTelegram(bot *tele.Bot) *Telegram {
	return &Telegram{bot: bot}
}

// Post sends the document to the destination channel as one message.
func (g *Telegram) Post(channelID int64, doc render.Document) error {
	_, err := g.bot.Send(tele.ChatID(channelID), doc.Text(), tele.ModeMarkdown)
	return err
}
