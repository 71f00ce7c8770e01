package service

import (
	"fmt"
	"strconv"

	"streamplan/internal/repository"
)

// SetupService handles the admin-only destination channel configuration
type SetupService struct {
	channels repository.ChannelRepository
}

// NewSetupService creates a new setup service
func NewSetupService(channels repository.ChannelRepository) *SetupService {
	return &SetupService{channels: channels}
}

// SetChannel parses the channel id and stores it as the chat's destination.
func (s *SetupService) SetChannel(chatID int64, raw string) (int64, error) {
	channelID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel id %q", raw)
	}
	if err := s.channels.Save(chatID, channelID); err != nil {
		return 0, fmt.Errorf("save channel: %w", err)
	}
	return channelID, nil
}

// Channel returns the chat's configured destination channel.
func (s *SetupService) Channel(chatID int64) (int64, error) {
	return s.channels.Lookup(chatID)
}
