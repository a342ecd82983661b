// ABOUTME: Authentication context for tracking identity through request handlers
// ABOUTME: Provides WithAuth/FromContext for propagating auth info via context

package auth

import (
	"context"
)

// AnonymousPrincipal identifies callers when authentication is disabled.
const AnonymousPrincipal = "anonymous"

// AuthContext holds the authenticated identity extracted from a request.
type AuthContext struct {
	PrincipalID string
}

// IsAnonymous reports whether the request was let through without a token.
func (a *AuthContext) IsAnonymous() bool {
	return a.PrincipalID == AnonymousPrincipal
}

type authContextKey struct{}

// WithAuth returns a new context with the AuthContext attached.
func WithAuth(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// FromContext retrieves the AuthContext from the context, returning nil if not present.
func FromContext(ctx context.Context) *AuthContext {
	auth, _ := ctx.Value(authContextKey{}).(*AuthContext)
	return auth
}
