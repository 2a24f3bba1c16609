package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Logger writes JSON lines with a timestamp and event fields.
// The zero value and a nil *Logger are disabled loggers.
type Logger struct {
	mu      sync.Mutex
	log     *slog.Logger
	closer  io.Closer
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
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", "gapedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return &Logger{}
	}
	l := New(f)
	l.closer = f
	return l
}

// New returns an enabled logger writing JSON lines to w.
func New(w io.Writer) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{log: slog.New(h), enabled: true}
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close closes the underlying file if one was opened.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		_ = l.closer.Close()
		l.closer = nil
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: file, action, pos, len, cap, gap, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(event, attrs...)
}
