// Package logger provides a small prefixed, colorized logger used by the
// service wiring. Each subsystem gets its own prefix and ANSI color so
// interleaved output stays readable.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/maze-sprint-api/config"
)

// Logger writes leveled log lines for one subsystem.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger with the given prefix and ANSI color, writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("empty logger prefix")
	}
	if w == nil {
		return nil, errors.New("nil log writer")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s] [%s]%s %s", l.color, l.prefix, level, config.ColorReset, msg))
}
