package auth

import "context"

// contextKey is a private key type so no other package can collide with the
// values this package stores in a request context.
type contextKey string

const userIDKey contextKey = "auth_user_id"

// NewContextWithUserID returns a child context carrying the authenticated
// user's id. Set by the middleware after token verification; the principal
// lives only for the duration of one request.
func NewContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user's id from the context.
// The second return value reports whether a principal was present.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
