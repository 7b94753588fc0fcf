// Package logger prints leveled, colorized status lines for the CLI.
//
// Each level has its own color: info green, warn bright magenta, error red,
// debug cyan. An integer verbosity decides which levels are printed.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Verbosity levels.
const (
	Quiet  = 0 // errors and warnings only
	Normal = 1 // plus info
	Debug  = 2 // plus debug lines and child process output
)

// Logger writes prefixed, colored lines to a single writer.
type Logger struct {
	w         io.Writer
	verbosity int

	info  *color.Color
	warn  *color.Color
	err   *color.Color
	debug *color.Color
}

// New returns a Logger writing to w at the given verbosity.
func New(w io.Writer, verbosity int) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		w:         w,
		verbosity: verbosity,
		info:      color.New(color.FgGreen),
		warn:      color.New(color.FgHiMagenta),
		err:       color.New(color.FgRed),
		debug:     color.New(color.FgCyan),
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Quiet)
}

// Verbosity returns the configured verbosity.
func (l *Logger) Verbosity() int { return l.verbosity }

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer { return l.w }

// Infof logs at info level.
func (l *Logger) Infof(format string, a ...any) {
	if l.verbosity >= Normal {
		l.print(l.info, "[INFO] ", format, a...)
	}
}

// Warnf logs a warning. Warnings are printed at every verbosity.
func (l *Logger) Warnf(format string, a ...any) {
	l.print(l.warn, "[WARN] ", format, a...)
}

// Errorf logs an error. Errors are printed at every verbosity.
func (l *Logger) Errorf(format string, a ...any) {
	l.print(l.err, "[ERROR] ", format, a...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, a ...any) {
	if l.verbosity >= Debug {
		l.print(l.debug, "[DEBUG] ", format, a...)
	}
}

func (l *Logger) print(c *color.Color, prefix, format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	c.Fprintf(l.w, prefix+format, a...)
}
