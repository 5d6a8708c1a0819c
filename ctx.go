package storefront

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Principal is the authenticated actor attached to a request. It lives
// for exactly one request and is always derived from the credential
// store, never from the token payload.
type Principal struct {
	ID      string
	IsAdmin bool
}

// PrincipalKey is the fiber locals key the auth middleware writes to.
const PrincipalKey = "principal"

var principalCtxKey = &contextKey{"principal"}

type contextKey struct {
	name string
}

// WithPrincipal sets the Principal in the given context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext finds the principal in a standard context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(Principal)
	return p, ok
}

// PrincipalFromFiber finds the principal the middleware stored on the
// request. The second return is false when no resolver ran.
func PrincipalFromFiber(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(PrincipalKey).(Principal)
	return p, ok
}
