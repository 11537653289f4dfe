package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilWriterDiscards(t *testing.T) {
	l := New(Config{Level: slog.LevelInfo})
	require.NotNil(t, l)
	require.NotNil(t, l.Logger)
	l.Info("dropped")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatJSON, Level: slog.LevelInfo})

	l.Info("record added", "id", 1)

	assert.Contains(t, buf.String(), `"msg":"record added"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"id":1`)
}

func TestNew_PrettyNoColor(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatPretty, Level: slog.LevelDebug, NoColor: true})

	l.Debug("state", "from", "menu", "to", "list")

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "DBG state from=menu to=list")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNew_PrettyColored(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Level: slog.LevelInfo})

	l.Warn("input rejected")

	assert.Contains(t, buf.String(), colorYellow+"WRN"+colorReset)
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Level: slog.LevelWarn, NoColor: true})

	l.Info("hidden")
	l.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ERR shown")
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, NoColor: true})

	l.WithField("kind", "book").WithGroup("borrow").Info("done", "id", 7)

	assert.Contains(t, buf.String(), "borrow.kind=book borrow.id=7")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatJSON})

	l.WithError(errors.New("input closed")).Error("session aborted")

	assert.Contains(t, buf.String(), `"error":"input closed"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
