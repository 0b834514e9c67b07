package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	zl      zerolog.Logger
	f       *os.File
	enabled bool
}

// NewFromEnv returns a logger if GAPEDIT_LOG is set to a truthy value
// or if GAPEDIT_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./gapedit.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("GAPEDIT_LOG_FILE")
	enabled := false
	if v := os.Getenv("GAPEDIT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return &Logger{enabled: false}
	}
	if lf == "" {
		lf = filepath.Join(".", "gapedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return &Logger{enabled: false}
	}
	l := New(f)
	l.f = f
	return l
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger(), enabled: true}
}

// Enabled reports whether events are recorded.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Close closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() || l.f == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.f.Close()
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, action, cursor, buffer_len, file.
// A nil Logger is valid and discards everything.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.Log().Str("event", event).Fields(fields).Send()
}
