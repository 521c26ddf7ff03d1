// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
)

// authorizedKey is a context key type for storing the authentication outcome.
type authorizedKey struct{}

// WithAuthorized stores whether the request presented valid merchant credentials.
func WithAuthorized(ctx context.Context, authorized bool) context.Context {
	return context.WithValue(ctx, authorizedKey{}, authorized)
}

// IsAuthorized reports whether the request was authenticated. A context that never
// passed through AuthenticationMiddleware is not authorized.
func IsAuthorized(ctx context.Context) bool {
	authorized, _ := ctx.Value(authorizedKey{}).(bool)
	return authorized
}
