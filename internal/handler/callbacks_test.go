package handler

import (
	"testing"

	"streamplan/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "status_0_2",
			expected: "status_0_2",
		},
		{
			name:     "string with whitespace",
			input:    "  week_10.06.2024 - 16.06.2024  ",
			expected: "week_10.06.2024 - 16.06.2024",
		},
		{
			name:     "string with newline",
			input:    "status\n_0_1",
			expected: "status_0_1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "week\x00_test\x01",
			expected: "week_test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseStatusData(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedDay    domain.Weekday
		expectedStatus domain.DayStatus
		expectError    bool
	}{
		{
			name:           "monday to scheduled",
			input:          "status_0_2",
			expectedDay:    domain.Monday,
			expectedStatus: domain.Scheduled,
		},
		{
			name:           "sunday to maybe",
			input:          "status_6_1",
			expectedDay:    domain.Sunday,
			expectedStatus: domain.Maybe,
		},
		{
			name:        "missing status part",
			input:       "status_3",
			expectError: true,
		},
		{
			name:        "non-numeric",
			input:       "status_mo_ja",
			expectError: true,
		},
		{
			name:        "empty payload",
			input:       "status_",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, status, err := parseStatusData(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDay, day)
				assert.Equal(t, tt.expectedStatus, status)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "one line per day",
			input:    "18:00\n19:30\n20:00",
			expected: []string{"18:00", "19:30", "20:00"},
		},
		{
			name:     "blank lines and padding dropped",
			input:    "  18:00  \n\n\n19:30\n",
			expected: []string{"18:00", "19:30"},
		},
		{
			name:     "empty message",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}
