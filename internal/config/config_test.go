package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []int64
		expectError bool
	}{
		{
			name:     "single id",
			input:    "123",
			expected: []int64{123},
		},
		{
			name:     "several ids with spaces",
			input:    "123, 456 ,789",
			expected: []int64{123, 456, 789},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "trailing comma",
			input:    "123,",
			expected: []int64{123},
		},
		{
			name:        "not a number",
			input:       "123,abc",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := parseIDList(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad(t *testing.T) {
	setEnv := func(t *testing.T, key, value string) {
		t.Helper()
		original, had := os.LookupEnv(key)
		os.Setenv(key, value)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
	clearEnv := func(t *testing.T, key string) {
		t.Helper()
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			}
		})
	}

	t.Run("complete config", func(t *testing.T) {
		setEnv(t, "BOT_TOKEN", "test-token")
		setEnv(t, "ADMIN_IDS", "1,2")
		setEnv(t, "DB_PASSWORD", "secret")
		setEnv(t, "SESSION_TTL", "5m")
		clearEnv(t, "STREAMER_IDS")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "test-token", cfg.BotToken)
		assert.Equal(t, []int64{1, 2}, cfg.AdminIDs)
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		// Streamers fall back to admins when unset.
		assert.Equal(t, cfg.AdminIDs, cfg.StreamerIDs)
	})

	t.Run("missing BOT_TOKEN", func(t *testing.T) {
		clearEnv(t, "BOT_TOKEN")
		setEnv(t, "ADMIN_IDS", "1")
		setEnv(t, "DB_PASSWORD", "secret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing ADMIN_IDS", func(t *testing.T) {
		setEnv(t, "BOT_TOKEN", "test-token")
		clearEnv(t, "ADMIN_IDS")
		setEnv(t, "DB_PASSWORD", "secret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid SESSION_TTL", func(t *testing.T) {
		setEnv(t, "BOT_TOKEN", "test-token")
		setEnv(t, "ADMIN_IDS", "1")
		setEnv(t, "DB_PASSWORD", "secret")
		setEnv(t, "SESSION_TTL", "zehn Minuten")

		_, err := Load()
		assert.Error(t, err)
	})
}
