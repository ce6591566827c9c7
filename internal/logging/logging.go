package logging

// Package logging writes one JSON object per line with ts, level and msg keys
// followed by caller-supplied fields.

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Fields are extra key/value pairs attached to a log entry.
type Fields map[string]any

// Logger is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
	now func() time.Time
}

// New returns a Logger writing to w with timestamps in loc (UTC when nil).
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc, now: time.Now}
}

func (l *Logger) Info(msg string, fields Fields) {
	l.log(LevelInfo, msg, nil, fields)
}

// Error adds err under the "error" key; fields is not modified.
func (l *Logger) Error(msg string, err error, fields Fields) {
	l.log(LevelError, msg, err, fields)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, err error, fields Fields) {
	l.Error(msg, err, fields)
	os.Exit(1)
}

func (l *Logger) log(level, msg string, err error, fields Fields) {
	entry := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	entry["ts"] = l.now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}
