package service

import (
	"fmt"
	"testing"

	"streamplan/internal/domain"
	"streamplan/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSetupService_SetChannel(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		saveError     error
		expectedID    int64
		expectedError bool
	}{
		{
			name:       "valid channel id",
			raw:        "-1001234567890",
			expectedID: -1001234567890,
		},
		{
			name:          "not a number",
			raw:           "mein-kanal",
			expectedError: true,
		},
		{
			name:          "empty",
			raw:           "",
			expectedError: true,
		},
		{
			name:          "save fails",
			raw:           "789",
			saveError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channels := new(testutil.MockChannelRepository)
			if tt.expectedID != 0 || tt.saveError != nil {
				var id int64 = tt.expectedID
				if tt.saveError != nil {
					id = 789
				}
				channels.On("Save", int64(456), id).Return(tt.saveError)
			}

			svc := NewSetupService(channels)

			channelID, err := svc.SetChannel(456, tt.raw)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, channelID)
				channels.AssertExpectations(t)
			}
		})
	}
}

func TestSetupService_Channel(t *testing.T) {
	channels := new(testutil.MockChannelRepository)
	channels.On("Lookup", int64(456)).Return(int64(789), nil)

	svc := NewSetupService(channels)

	channelID, err := svc.Channel(456)
	assert.NoError(t, err)
	assert.Equal(t, int64(789), channelID)
}

func TestSetupService_Channel_NotConfigured(t *testing.T) {
	channels := new(testutil.MockChannelRepository)
	channels.On("Lookup", int64(456)).Return(int64(0), domain.ErrNotConfigured)

	svc := NewSetupService(channels)

	_, err := svc.Channel(456)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
