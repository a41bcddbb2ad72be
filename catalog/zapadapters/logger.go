// Package zapadapters provides go.uber.org/zap implementations of the catalog
// observability interfaces for users who want plug-and-play structured
// logging without implementing the interfaces themselves.
package zapadapters

import (
	"context"

	"go.uber.org/zap"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
)

// ZapLogger implements catalog.Logger backed by a zap.SugaredLogger.
// The key-value args of the catalog logging interfaces map directly onto
// zap's loosely typed *w methods.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a new catalog.Logger adapter around the given zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs an info message.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs an error message.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Ensure ZapLogger implements catalog.Logger.
var _ catalog.Logger = (*ZapLogger)(nil)

// ZapContextualLogger implements catalog.ContextualLogger backed by a
// zap.SugaredLogger. Zap carries no request context of its own, so the
// context parameter is accepted for interface compatibility and not used.
type ZapContextualLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapContextualLogger creates a new catalog.ContextualLogger adapter
// around the given zap logger.
func NewZapContextualLogger(logger *zap.Logger) *ZapContextualLogger {
	return &ZapContextualLogger{sugar: logger.Sugar()}
}

// DebugContext logs a debug message.
func (l *ZapContextualLogger) DebugContext(_ context.Context, msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// InfoContext logs an info message.
func (l *ZapContextualLogger) InfoContext(_ context.Context, msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// WarnContext logs a warning message.
func (l *ZapContextualLogger) WarnContext(_ context.Context, msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// ErrorContext logs an error message.
func (l *ZapContextualLogger) ErrorContext(_ context.Context, msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Ensure ZapContextualLogger implements catalog.ContextualLogger.
var _ catalog.ContextualLogger = (*ZapContextualLogger)(nil)
