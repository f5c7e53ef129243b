package logger

import (
	"fmt"
	"log/slog"
	"strings"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config level string onto a zap level. Unknown values fall back to info.
func ParseLevel(levelStr string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return zapcore.DebugLevel, true
	case "", "INFO":
		return zapcore.InfoLevel, true
	case "WARN", "WARNING":
		return zapcore.WarnLevel, true
	case "ERROR":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// New builds the production JSON zap logger. Output goes to stderr, plus file when set,
// so stdout stays reserved for command results.
func New(levelStr, file string) (*zap.Logger, error) {
	level, ok := ParseLevel(levelStr)

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	if !ok {
		zapLogger.Warn("Invalid log level string, defaulting to INFO", zap.String("input", levelStr))
	}
	return zapLogger, nil
}

// InstallSlog routes the global slog logger into zapLogger.
func InstallSlog(zapLogger *zap.Logger, levelStr string) {
	level, _ := ParseLevel(levelStr)
	handler := slogzap.Option{
		Level:  zapToSlogLevel(level),
		Logger: zapLogger,
	}.NewZapHandler()
	slog.SetDefault(slog.New(handler))
}

func zapToSlogLevel(level zapcore.Level) slog.Level {
	switch level {
	case zapcore.DebugLevel:
		return slog.LevelDebug
	case zapcore.WarnLevel:
		return slog.LevelWarn
	case zapcore.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
