package grpc

import (
	"context"
	"time"
)

const contextTimeLimit = 2 * time.Second

var userIdContextKey = contextKey{name: "user_id"}

type contextKey struct {
	name string
}

func userIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIdContextKey).(string)
	return userID
}
