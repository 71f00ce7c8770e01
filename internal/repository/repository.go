package repository

// ChannelRepository persists the per-chat destination channel for plan
// announcements. Read/write-through: nothing is cached beyond one call.
type ChannelRepository interface {
	// Lookup returns the configured destination channel for the chat, or
	// domain.ErrNotConfigured when none was set up.
	Lookup(chatID int64) (int64, error)
	Save(chatID, channelID int64) error
}
