package auth

import "context"

// Principal is the user a request acts for. The zero value is anonymous.
type Principal struct {
	UserID   int
	Username string
	IsAdmin  bool
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}

func IsAdmin(ctx context.Context) bool {
	return PrincipalFrom(ctx).IsAdmin
}
