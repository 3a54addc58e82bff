package ctxutil

import (
	"context"

	"github.com/Kirill2434/yatube/internal/domain"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// WithUser stores the signed-in user in the context.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx returns the signed-in user.
// Returns nil and false for anonymous requests.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	if !ok || u == nil || u.ID == 0 {
		return nil, false
	}
	return u, true
}

// UserIDFromCtx extracts the signed-in user's ID.
// Returns 0 and false if the request is anonymous.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	u, ok := UserFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return u.ID, true
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
