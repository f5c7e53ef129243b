package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestInstallSlog_RoutesIntoZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InstallSlog(zap.New(core), "info")
	slog.Debug("dropped")
	slog.Info("kept", "network", "bsc")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "kept", entries[0].Message)
	}
}

func TestSlogAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log := NewSlogAdapter(base).With("component", "test")
	log.Warn("something happened", "count", 2)

	out := buf.String()
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "something happened")
}
