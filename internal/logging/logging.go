package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global zerolog logger to <dir>/logs/voltlab.log. The TUI
// owns the terminal, so nothing may log to stderr once it starts. When the
// log file cannot be opened the logger is silenced and the error returned,
// leaving the caller free to warn and continue.
func Setup(dir, level string) error {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level))

	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Logger = zerolog.New(io.Discard)
		return err
	}

	f, err := os.OpenFile(filepath.Join(logDir, "voltlab.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return err
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// parseLevel maps a config level string to a zerolog level. Unknown values
// fall back to info.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
