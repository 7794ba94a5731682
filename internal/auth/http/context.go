// Package http provides HTTP middleware and utilities for request identity.
package http

import (
	"context"

	authDomain "github.com/allisson/ordersaga/internal/auth/domain"
)

// principalKey is a context key type for storing the request principal.
type principalKey struct{}

// WithPrincipal stores the request principal in the context.
// This is typically called by the authentication middleware after the identity headers are parsed.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the request principal from the context.
// Returns (principal, true) if present, or (nil, false) if no principal was set.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}
