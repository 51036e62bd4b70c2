// Package logger configures the global zerolog logger used across the service.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the process-wide logger. It runs before configuration is loaded,
// so it only looks at LOG_PRETTY; the level is applied later by SetLevel.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.DefaultContextLogger = &log.Logger

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	if pretty := strings.ToLower(os.Getenv("LOG_PRETTY")); pretty == "1" || pretty == "true" {
		UsePretty()
	}
}

// UsePretty switches the global logger to human-readable console output.
func UsePretty() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// SetLevel parses level and applies it globally, keeping the current level on bad input.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown log level, keeping current")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}
