package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	editorIDKey   ctxKey = "editor_id"
	editorRoleKey ctxKey = "editor_role"
	requestIDKey  ctxKey = "request_id"
)

// WithEditorID stores the authenticated editor's ID in the context.
func WithEditorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, editorIDKey, id)
}

// EditorIDFromCtx extracts the editor ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func EditorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(editorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithEditorRole stores the editor's role in the context.
func WithEditorRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, editorRoleKey, role)
}

// EditorRoleFromCtx returns the editor's role, or "" when anonymous.
func EditorRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(editorRoleKey).(string)
	return role
}

// IsAdminCtx reports whether the request was made with an admin token.
func IsAdminCtx(ctx context.Context) bool {
	return EditorRoleFromCtx(ctx) == "admin"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
