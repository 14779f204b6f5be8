package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNewHandler_Format(t *testing.T) {
	tests := []struct {
		format string
		tty    bool
		json   bool
	}{
		{"json", true, true},
		{"text", false, false},
		{"auto", true, false},
		{"auto", false, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, "info", tt.format, tt.tty)).Info("hello", "rows", 3)
		out := buf.String()
		if tt.json {
			assert.Contains(t, out, `"msg":"hello"`, tt.format)
		} else {
			assert.Contains(t, out, "msg=hello", tt.format)
		}
	}
}

func TestNewHandler_Level(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, "warn", "text", false)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}
