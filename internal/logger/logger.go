// Package logger sets up structured logging with zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls the process logger
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"` // stdout, stderr or console
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

var globalLogger zerolog.Logger

func init() {
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
}

// DefaultConfig logs info and above to stderr. Narration owns stdout.
func DefaultConfig() Config {
	return Config{Level: "info", Output: "stderr"}
}

// Init replaces the global logger according to config
func Init(config Config) error {
	return InitWriter(config, nil)
}

// InitWriter is Init with an explicit destination. A nil w selects the
// writer named by config.Output.
func InitWriter(config Config, w io.Writer) error {
	if w == nil {
		switch config.Output {
		case "", "stderr":
			w = os.Stderr
		case "stdout":
			w = os.Stdout
		case "console":
			w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		default:
			return fmt.Errorf("unknown log output %q", config.Output)
		}
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	globalLogger = zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.Logger = globalLogger

	return nil
}

// SetLevel changes the level of the global logger
func SetLevel(level zerolog.Level) {
	globalLogger = globalLogger.Level(level)
	log.Logger = globalLogger
}

func GetLogger() zerolog.Logger {
	return globalLogger
}

func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}
