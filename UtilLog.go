package gobitflyer

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger points the global zerolog logger at stderr in plain text.
func InitLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: GO_BIRTHDAY,
		NoColor:    true,
	})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// LoggerOf returns the config logger, falling back to the global one.
func LoggerOf(config *APIConfig) *zerolog.Logger {
	if config != nil && config.Logger != nil {
		return config.Logger
	}
	return &log.Logger
}
