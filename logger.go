package parsefmt

import (
	"fmt"
	"io"
	"os"
)

// Logger provides verbose output for compilation and matching decisions
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to stderr
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if enabled
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "[parsefmt] "+format+"\n", args...)
	}
}

// Enabled returns whether the logger is enabled
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
