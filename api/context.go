package api

import (
	"context"

	"github.com/rpupo63/portfolio-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds the resolved session identity to the context
func ctxWithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// identityFromContext returns nil for anonymous requests
func identityFromContext(ctx context.Context) *auth.Identity {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok {
		return nil
	}
	return &id
}
