package logger

import (
	"os"
	"time"

	"github.com/lshigami/eduportal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init points the global zerolog logger at stderr. Call it before anything logs.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// Configure applies the configured level once config is loaded.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, falling back to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
