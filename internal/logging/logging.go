package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// requestIDKey is the key used to store the request ID in a context.Context
type requestIDKey struct{}

// New builds the process logger. Production uses JSON output, everything else
// the human readable console encoder.
func New(serviceName, level, environment string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if environment != "production" {
		cfg.Encoding = "console"
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger.With(
		zap.String("service", serviceName),
		zap.String("environment", environment),
	)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithRequestID stores the request ID in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request-scoped structured logging for services
type Logger struct {
	base      *zap.Logger
	requestID string
}

// FromContext creates a logger carrying the request ID found in ctx
func FromContext(ctx context.Context, base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{base: base, requestID: requestID}
}

func (l *Logger) fields(operation string) []zap.Field {
	return []zap.Field{
		zap.String("request_id", l.requestID),
		zap.String("operation", operation),
	}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.base.Error("operation failed", append(l.fields(operation), zap.Error(err))...)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.base.Info(fmt.Sprintf(format, args...), l.fields(operation)...)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.base.Warn(fmt.Sprintf(format, args...), l.fields(operation)...)
}
