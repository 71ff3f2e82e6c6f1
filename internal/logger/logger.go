// Package logger provides component-scoped diagnostic logging to stderr.
// Debug and Info messages are only emitted when verbose mode is enabled;
// Warn and Error are always shown.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

var verbose atomic.Bool

// SetVerbose toggles emission of Debug and Info messages process-wide.
// The CLI sets this once from the --verbose flag before any work starts.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports whether verbose logging is enabled.
func Verbose() bool {
	return verbose.Load()
}

// Logger writes leveled, component-tagged messages.
type Logger struct {
	component string
	writer    io.Writer
}

// New creates a logger for the named component.
func New(component string) *Logger {
	return &Logger{component: component, writer: os.Stderr}
}

// WithComponent returns a logger that tags messages with a new component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{component: component, writer: l.writer}
}

// Debug logs a debug message. Emitted only in verbose mode.
func (l *Logger) Debug(msg string, args ...interface{}) {
	if Verbose() {
		l.log("DEBUG", msg, args...)
	}
}

// Info logs an informational message. Emitted only in verbose mode.
func (l *Logger) Info(msg string, args ...interface{}) {
	if Verbose() {
		l.log("INFO", msg, args...)
	}
}

// Warn logs a warning. Always emitted.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log("WARN", msg, args...)
}

// Error logs an error. Always emitted.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log("ERROR", msg, args...)
}

func (l *Logger) log(level, msg string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	component := l.component
	if component == "" {
		component = "main"
	}
	line := fmt.Sprintf("[%s] %s [%s] %s\n", timestamp, level, component, fmt.Sprintf(msg, args...))
	fmt.Fprint(l.writer, line)
}
