package userctx

import "context"

// Context key type
type contextKey string

const usernameKey contextKey = "username"
const UserIDKey contextKey = "user_id"

// SetUsername adds the signed-in username to request context
func SetUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername retrieves the signed-in username from request context
func GetUsername(ctx context.Context) string {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return "anonymous"
	}
	return username
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context, 0 when not signed in
func GetUserID(ctx context.Context) int {
	if id, ok := ctx.Value(UserIDKey).(int); ok {
		return id
	}
	return 0
}
