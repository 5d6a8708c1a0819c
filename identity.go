package storefront

import (
	"context"

	"github.com/goliatone/go-errors"
)

// IdentityProvider verifies login credentials against the credential
// store.
type IdentityProvider struct {
	store  Users
	logger Logger
}

// NewIdentityProvider will create a new IdentityProvider.
func NewIdentityProvider(store Users) *IdentityProvider {
	return &IdentityProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (p *IdentityProvider) WithLogger(l Logger) *IdentityProvider {
	if l != nil {
		p.logger = l
	}
	return p
}

// VerifyCredentials finds the user by email and compares the password
// to the stored hash. Unknown email and wrong password both map to the
// same generic failure so callers cannot probe for accounts.
func (p *IdentityProvider) VerifyCredentials(ctx context.Context, email, password string) (*User, error) {
	user, err := p.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		p.logger.Debug("credential mismatch", "user", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
