package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("proxy", &buf)

	l.Info("ab12cd34", "resolved %d proxies", 7)

	line := buf.String()
	assert.Contains(t, line, "[ab12cd34]")
	assert.Contains(t, line, "[INFO ]")
	assert.Contains(t, line, "[proxy   ]")
	assert.Contains(t, line, "resolved 7 proxies")
}

func TestLoggerEmptyID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("check", &buf)

	l.Warn("", "no proxy configured")
	assert.Contains(t, buf.String(), "[--------]")
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, GenerateID())
}
