package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogLoggerInfo(t *testing.T) {
	l, buf := newBufferLogger()
	l.Info(context.Background(), "hello", "k", "v")

	m := decodeLine(t, buf)
	assert.Equal(t, "hello", m["msg"])
	assert.Equal(t, "v", m["k"])
	assert.Equal(t, "INFO", m["level"])
}

func TestSlogLoggerWith(t *testing.T) {
	l, buf := newBufferLogger()
	child := l.With("module", "test")
	child.Error(context.Background(), "boom")

	m := decodeLine(t, buf)
	assert.Equal(t, "boom", m["msg"])
	assert.Equal(t, "test", m["module"])
	assert.Equal(t, "ERROR", m["level"])
}
