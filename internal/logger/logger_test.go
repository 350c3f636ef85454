package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   zerolog.Level
	}{
		{"default", Config{}, zerolog.InfoLevel},
		{"explicit", Config{Level: "warn"}, zerolog.WarnLevel},
		{"debug flag wins", Config{Level: "error", Debug: true}, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, InitWriter(tt.config, &bytes.Buffer{}))
			assert.Equal(t, tt.want, GetLogger().GetLevel())
		})
	}
}

func TestInitErrors(t *testing.T) {
	assert.Error(t, InitWriter(Config{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, Init(Config{Output: "syslog"}))
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWriter(Config{Level: "info"}, &buf))

	log := WithComponent("journal")
	log.Info().Msg("saved")
	log.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "journal", entry["component"])
	assert.Equal(t, "saved", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, InitWriter(Config{}, &bytes.Buffer{}))
	SetLevel(zerolog.ErrorLevel)
	assert.Equal(t, zerolog.ErrorLevel, GetLogger().GetLevel())
}
