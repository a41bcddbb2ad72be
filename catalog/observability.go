package catalog

import (
	"context"
)

// Logger interface for operational logging, warnings, and error reporting.
// It follows a dependency-free pattern so users can integrate any logging
// backend by implementing these four methods with key-value args.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging.
// This interface follows the same dependency-free pattern as Logger, allowing
// users to integrate with any logging backend that supports context-based
// correlation. When both a Logger and a ContextualLogger are configured, the
// contextual variant is preferred.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
