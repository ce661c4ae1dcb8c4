package logging

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is the narrow logging surface the key-exchange core writes to.
// It exists so applications can route rejection and failure events into
// their own logging stack, and so tests can capture them. Every call
// site in this module attaches attributes, never preformatted strings,
// and never raw key material.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil
// binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Group returns the canonical attribute naming the ECDH group a log
// record belongs to. Sessions attach it once via With so every record
// they emit carries the group name.
func Group(name string) slog.Attr {
	return slog.String("group", name)
}

// WireLen describes a wire-encoding length mismatch as a single grouped
// attribute. Used when a peer public value fails the length check.
func WireLen(got, want int) slog.Attr {
	return slog.Group("wire", slog.Int("got_bytes", got), slog.Int("want_bytes", want))
}

// Redacted marks attributes that contain sensitive information. Callers
// must not log raw secrets; include this attribute instead as a record
// that the value was intentionally removed.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string that represents a redacted
// value.
func Placeholder() string {
	return redactedPlaceholder
}
