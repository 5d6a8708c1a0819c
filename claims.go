package storefront

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the payload of an issued token. The subject id is
// the only claim downstream code may act on: privilege is re-resolved
// from the credential store on every request, never read from here, so
// revoking the admin flag takes effect without re-issuing tokens.
type IdentityClaims struct {
	jwt.RegisteredClaims
	UID string `json:"uid,omitempty"`
}

// SubjectID returns the authenticated user id carried by the token.
func (c *IdentityClaims) SubjectID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time, zero when absent.
func (c *IdentityClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// Issued returns the issued at time, zero when absent.
func (c *IdentityClaims) Issued() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
