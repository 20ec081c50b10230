package domain

import "context"

type principalKey struct{}

// WithPrincipal stores a Principal in the context. The auth middleware is the
// only writer; services receive the principal as an explicit argument instead
// of reading it from the context themselves.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the Principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
