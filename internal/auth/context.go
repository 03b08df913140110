package auth

import "context"

type claimsKey struct{}

// WithClaims puts verified token claims to the context
func WithClaims(ctx context.Context, c *JwtClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext extracts claims put by WithClaims, nil is returned for anonymous caller
func ClaimsFromContext(ctx context.Context) *JwtClaims {
	if c, ok := ctx.Value(claimsKey{}).(*JwtClaims); ok {
		return c
	}
	return nil
}
