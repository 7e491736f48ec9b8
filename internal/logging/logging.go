package logging

import (
	"io"
	"os"

	"github.com/decred/slog"
)

// Subsystem tags.
const (
	SubsystemAPI      = "API"
	SubsystemContract = "CNTR"
	SubsystemGame     = "GAME"
	SubsystemAdmin    = "ADMN"
	SubsystemRedis    = "RDIS"
	SubsystemWatcher  = "WTCH"
	SubsystemAuth     = "AUTH"
	SubsystemOG       = "OGIM"
)

// LogBackend hands out subsystem loggers that share one writer and level.
type LogBackend struct {
	backend *slog.Backend
	level   slog.Level
}

// NewLogBackend parses level with slog.LevelFromString. An unknown level
// falls back to info and ok is false so the caller can report it.
func NewLogBackend(w io.Writer, level string) (lb *LogBackend, ok bool) {
	if w == nil {
		w = os.Stdout
	}

	lvl, ok := slog.LevelFromString(level)
	return &LogBackend{
		backend: slog.NewBackend(w),
		level:   lvl,
	}, ok
}

func (lb *LogBackend) Logger(subsystem string) slog.Logger {
	if lb == nil {
		return slog.Disabled
	}

	l := lb.backend.Logger(subsystem)
	l.SetLevel(lb.level)
	return l
}

// OrDisabled returns l, or a logger that drops everything when l is nil.
func OrDisabled(l slog.Logger) slog.Logger {
	if l == nil {
		return slog.Disabled
	}
	return l
}
