package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	userIDKey   keyType = "userID"
	usernameKey keyType = "username"
)

// ctxWithIdentity adds the authenticated admin identity to the context
func ctxWithIdentity(ctx context.Context, userID uuid.UUID, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

// ctxGetIdentity retrieves the authenticated admin identity from the context
func ctxGetIdentity(ctx context.Context) (uuid.UUID, string, error) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", errors.New("identity not found in context")
	}
	username, _ := ctx.Value(usernameKey).(string)
	return id, username, nil
}
