// Package logging provides the leveled logger used for recognition
// diagnostics and catalog warnings.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

type Logger struct {
	out      *log.Logger
	minLevel Level
	prefix   string
}

func New(w io.Writer, minLevel Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		out:      log.New(w, "", log.Ltime|log.Lmicroseconds),
		minLevel: minLevel,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

// WithPrefix returns a sub-logger tagging lines with prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	p := prefix
	if l.prefix != "" {
		p = l.prefix + "/" + prefix
	}
	return &Logger{out: l.out, minLevel: l.minLevel, prefix: p}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = "[" + l.prefix + "] " + msg
	}
	l.out.Printf("%s %s", level, msg)
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
