package postgres

import (
	"database/sql"

	"streamplan/internal/domain"
)

// ChannelRepo implements repository.ChannelRepository
type ChannelRepo struct {
	db *sql.DB
}

// NewChannelRepo creates a new channel configuration repository
func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// Lookup returns the destination channel configured for the chat
func (r *ChannelRepo) Lookup(chatID int64) (int64, error) {
	var channelID int64
	query := `SELECT channel_id FROM channels WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&channelID)

	if err == sql.ErrNoRows {
		return 0, domain.ErrNotConfigured
	}
	if err != nil {
		return 0, err
	}

	return channelID, nil
}

// Save stores the destination channel for the chat, replacing any prior one
func (r *ChannelRepo) Save(chatID, channelID int64) error {
	query := `
		INSERT INTO channels (chat_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET channel_id = $2, updated_at = NOW()
	`
	_, err := r.db.Exec(query, chatID, channelID)
	return err
}
