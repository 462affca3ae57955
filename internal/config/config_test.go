package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Lives)
	assert.Empty(t, cfg.WordFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "hangman.log", cfg.Logging.File)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "hangman", cfg.Telemetry.Dataset)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HANGMAN_LIVES", "3")
	t.Setenv("HANGMAN_WORD_FILE", "words/cat.txt")
	t.Setenv("HANGMAN_LOG_LEVEL", "debug")
	t.Setenv("HANGMAN_TELEMETRY", "true")
	t.Setenv("HONEYCOMB_HANGMAN_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Lives)
	assert.Equal(t, "words/cat.txt", cfg.WordFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "secret", cfg.Telemetry.APIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric lives", "HANGMAN_LIVES", "many"},
		{"zero lives", "HANGMAN_LIVES", "0"},
		{"unknown level", "HANGMAN_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
