package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = "chatmesh.logger"
	// sessionIDKey is the context key for the session id.
	sessionIDKey contextKey = "chatmesh.session_id"
	// uidKey is the context key for the bound uid.
	uidKey contextKey = "chatmesh.uid"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context, falling back to the
// default logger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithSessionID tags the context with the session handling a request.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session id, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// WithUID tags the context with the authenticated uid.
func WithUID(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, uidKey, uid)
}

// UIDFromContext extracts the uid, or 0.
func UIDFromContext(ctx context.Context) int64 {
	if uid, ok := ctx.Value(uidKey).(int64); ok {
		return uid
	}
	return 0
}
