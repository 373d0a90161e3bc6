// Package logging provides structured logging for both CLI and GUI modes.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger wraps zerolog with mode-specific behavior.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a new logger for the specified mode ("cli" or "gui").
// Any extra writers (typically a RotatingFile) receive the same events as
// JSON lines.
func NewLogger(mode string, extra ...io.Writer) *Logger {
	// Both modes log to stderr. In CLI mode stdout carries command output.
	output := consoleWriter(os.Stderr)
	if len(extra) > 0 {
		writers := append([]io.Writer{output}, extra...)
		output = zerolog.MultiLevelWriter(writers...)
	}
	return NewWithWriter(mode, output)
}

// NewDefaultCLILogger creates a default CLI logger.
func NewDefaultCLILogger() *Logger {
	return NewLogger("cli")
}

// NewWithWriter creates a logger writing raw JSON events to w.
func NewWithWriter(mode string, w io.Writer) *Logger {
	return &Logger{
		zlog: zerolog.New(w).With().Timestamp().Str("mode", mode).Logger(),
	}
}

func consoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "15:04:05",
		NoColor:    !term.IsTerminal(int(f.Fd())),
	}
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("component", name).Logger(),
	}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ConfigureLevel picks debug when debug is set, otherwise fallback.
func ConfigureLevel(debug bool, fallback zerolog.Level) {
	if debug {
		SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	SetGlobalLevel(fallback)
}
