package logging

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/runboard/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := RequestIDFrom(ctx); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// RequestIDFrom returns request ID of ctx without generating a new one.
func RequestIDFrom(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID)
	return id, ok
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// Detach returns a context that is never canceled but keeps the logger and
// request ID of ctx. Workflow runs fetches started by a request outlive it
// and run with a detached context.
func Detach(ctx context.Context) context.Context {
	dst := With(context.Background(), From(ctx))
	if reqID, ok := RequestIDFrom(ctx); ok {
		dst = context.WithValue(dst, ctxRequestIDKey{}, reqID)
	}
	return dst
}
