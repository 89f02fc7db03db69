// Package logging defines the structured-logging contract used across the
// Inkwell client. The concrete implementation wraps log/slog; user-facing
// REPL output goes to the terminal directly and never through here.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// alternating key–value pairs:
//
//	log.Info(ctx, "article created", "id", art.ID, "category", art.Category)
type Logger interface {
	// Debug logs developer-level diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key–value pairs.
	With(args ...any) Logger
}
