package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ZapLogger adapts a sugared zap logger to Logger. Args are read as
// alternating key/value pairs, the same convention slog uses.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func NewZapLogger(base *zap.Logger) *ZapLogger {
	return &ZapLogger{
		sugar: base.Sugar(),
	}
}

func (l *ZapLogger) Info(message string, args ...any) {
	l.sugar.Infow(message, args...)
}

func (l *ZapLogger) Warn(message string, args ...any) {
	l.sugar.Warnw(message, args...)
}

func (l *ZapLogger) Error(message string, args ...any) {
	l.sugar.Errorw(message, args...)
}

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// New picks the logger for the given format. The returned func flushes
// buffered entries and is safe to defer.
func New(format string) (Logger, func(), error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return StdoutLogger, func() {}, nil
	case FormatJSON:
		base, err := zap.NewProduction()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build zap logger: %w", err)
		}

		logger := NewZapLogger(base)
		return logger, func() { _ = logger.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", format)
	}
}
