// Package logger writes component-tagged log lines with a short trace ID, so
// output from one CLI run or one retried operation can be grepped together.
package logger

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	component string
	out       *log.Logger
}

// New creates a logger for a component, writing to stderr.
func New(component string) *Logger {
	return NewWithWriter(component, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(component string, w io.Writer) *Logger {
	return &Logger{component: component, out: log.New(w, "", log.LstdFlags)}
}

// GenerateID creates a short identifier for tracing one operation across
// log lines.
func GenerateID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func (l *Logger) logf(id, level, format string, args ...any) {
	if id == "" {
		id = "--------"
	}
	l.out.Printf("[%s] [%-5s] [%-8s] %s", id, level, l.component, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(id, format string, args ...any) { l.logf(id, "DEBUG", format, args...) }
func (l *Logger) Info(id, format string, args ...any)  { l.logf(id, "INFO", format, args...) }
func (l *Logger) Warn(id, format string, args ...any)  { l.logf(id, "WARN", format, args...) }
func (l *Logger) Error(id, format string, args ...any) { l.logf(id, "ERROR", format, args...) }
