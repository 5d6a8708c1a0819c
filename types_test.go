package storefront_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	storefront "github.com/shopkit/storefront"
)

func TestConfigValidate(t *testing.T) {
	cfg := storefront.Config{
		HTTPAddr:   ":5000",
		DSN:        "file::memory:?cache=shared",
		SigningKey: "secret",
		TokenTTL:   time.Hour,
	}
	assert.NoError(t, cfg.Validate())

	t.Run("requires a signing key", func(t *testing.T) {
		bad := cfg
		bad.SigningKey = ""
		assert.ErrorIs(t, bad.Validate(), storefront.ErrMissingSigningKey)
	})

	t.Run("requires a positive ttl", func(t *testing.T) {
		bad := cfg
		bad.TokenTTL = 0
		assert.ErrorIs(t, bad.Validate(), storefront.ErrInvalidTokenTTL)

		bad.TokenTTL = -time.Minute
		assert.ErrorIs(t, bad.Validate(), storefront.ErrInvalidTokenTTL)
	})
}
