package storefront

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

const bearerScheme = "Bearer"

// Protected is the authentication middleware every private route runs
// behind. It resolves the Authorization header into a Principal, in
// strict order: header present, bearer shaped, token verified, subject
// still in the credential store. No later step runs once one fails and
// no partial principal is ever attached.
//
// The admin flag comes from the store lookup, not the token, so
// privilege revocation is effective immediately.
func Protected(tokens TokenService, users Users) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingCredential
		}

		raw, err := bearerToken(header)
		if err != nil {
			return err
		}

		subject, err := tokens.Verify(raw)
		if err != nil {
			return err
		}

		user, err := users.GetByID(c.UserContext(), subject)
		if err != nil {
			if errors.IsNotFound(err) {
				return ErrPrincipalNotFound.WithMetadata(map[string]any{
					"subject": subject,
				})
			}
			return errors.Wrap(err, errors.CategoryInternal, "failed to resolve principal")
		}

		principal := Principal{ID: user.ID, IsAdmin: user.IsAdmin}
		c.Locals(PrincipalKey, principal)
		c.SetUserContext(WithPrincipal(c.UserContext(), principal))

		return c.Next()
	}
}

// AdminOnly gates a route on the resolved principal holding the admin
// flag. It must run after Protected; a missing principal is a
// programming error and fails closed.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromFiber(c)
		if !ok || !principal.IsAdmin {
			return ErrAdminOnly
		}
		return c.Next()
	}
}

// bearerToken extracts the token segment from an Authorization header
// using the Bearer scheme. The scheme must be followed by whitespace;
// a header like "Bearerabc" is not a bearer token.
func bearerToken(header string) (string, error) {
	l := len(bearerScheme)
	if len(header) <= l+1 || !strings.EqualFold(header[:l], bearerScheme) || header[l] != ' ' {
		return "", ErrMalformedCredential
	}

	token := strings.TrimSpace(header[l:])
	if token == "" {
		return "", ErrMalformedCredential
	}

	return token, nil
}
