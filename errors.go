package storefront

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeMissingCredential   = "missing_credential"
	TextCodeMalformedCredential = "malformed_credential"
	TextCodeTokenExpired        = "token_expired"
	TextCodeTokenMalformed      = "token_malformed"
	TextCodePrincipalNotFound   = "principal_not_found"
	TextCodeAdminOnly           = "admin_only"
	TextCodeInvalidCredentials  = "invalid_credentials"
	TextCodeEmailExists         = "email_exists"
	TextCodeMissingOrderItems   = "missing_order_items"
	TextCodeMissingShippingInfo = "missing_shipping_info"
	TextCodeMissingPayMethod    = "missing_payment_method"
	TextCodeInvalidIdentifier   = "invalid_identifier"
	TextCodeOrderNotFound       = "order_not_found"
	TextCodeOrderNotPaid        = "order_not_paid"
	TextCodeProductNotFound     = "product_not_found"
	TextCodeUserNotFound        = "user_not_found"
	TextCodeInvalidPagination   = "invalid_pagination"
)

// ErrMissingCredential is returned when a protected route is hit
// without an Authorization header.
var ErrMissingCredential = errors.New("No access token specified", errors.CategoryAuth).
	WithTextCode(TextCodeMissingCredential).
	WithCode(errors.CodeUnauthorized)

// ErrMalformedCredential is returned when the Authorization header does
// not carry a Bearer token.
var ErrMalformedCredential = errors.New("Not a bearer token", errors.CategoryAuth).
	WithTextCode(TextCodeMalformedCredential).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned for tokens past their expiry.
var ErrTokenExpired = errors.New("Access token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token fails signature or shape
// checks.
var ErrTokenMalformed = errors.New("Invalid access token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrPrincipalNotFound is returned when a verified token names a user
// that no longer exists in the credential store.
var ErrPrincipalNotFound = errors.New("User not found", errors.CategoryNotFound).
	WithTextCode(TextCodePrincipalNotFound).
	WithCode(errors.CodeNotFound)

// ErrAdminOnly is returned when a valid principal lacks the admin
// flag. The status is 401, not 403, matching the observed API
// contract of the service this replaces.
var ErrAdminOnly = errors.New("Only shop admin has access", errors.CategoryAuthz).
	WithTextCode(TextCodeAdminOnly).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidCredentials covers both unknown email and wrong password,
// so login failures never confirm which part was wrong.
var ErrInvalidCredentials = errors.New("Incorrect email and password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrEmailAlreadyExists is returned on registration with a taken email.
var ErrEmailAlreadyExists = errors.New("Email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailExists).
	WithCode(errors.CodeConflict)

// ErrMissingOrderItems is the first creation guard: an order needs at
// least one item.
var ErrMissingOrderItems = errors.New("Missing order items", errors.CategoryValidation).
	WithTextCode(TextCodeMissingOrderItems).
	WithCode(errors.CodeBadRequest)

// ErrMissingShippingInfo is the second creation guard.
var ErrMissingShippingInfo = errors.New("Missing shipping info", errors.CategoryValidation).
	WithTextCode(TextCodeMissingShippingInfo).
	WithCode(errors.CodeBadRequest)

// ErrMissingPaymentMethod is the third creation guard.
var ErrMissingPaymentMethod = errors.New("Missing payment method", errors.CategoryValidation).
	WithTextCode(TextCodeMissingPayMethod).
	WithCode(errors.CodeBadRequest)

// ErrInvalidIdentifier is returned before any store access when a path
// id is not a 24 character hex object id.
var ErrInvalidIdentifier = errors.New("Invalid identifier", errors.CategoryBadInput).
	WithTextCode(TextCodeInvalidIdentifier).
	WithCode(errors.CodeBadRequest)

// ErrOrderNotFound is returned for absent orders, and for orders the
// caller may not see: a non owner gets the same answer as a missing
// order so existence is never confirmed.
var ErrOrderNotFound = errors.New("Order not found", errors.CategoryNotFound).
	WithTextCode(TextCodeOrderNotFound).
	WithCode(errors.CodeNotFound)

// ErrOrderNotPaid rejects delivery of an unpaid order. 406 keeps it
// distinct from the plain validation failures.
var ErrOrderNotPaid = errors.New("Order has not been paid", errors.CategoryOperation).
	WithTextCode(TextCodeOrderNotPaid).
	WithCode(406)

// ErrProductNotFound is returned for absent catalog entries.
var ErrProductNotFound = errors.New("Product not found", errors.CategoryNotFound).
	WithTextCode(TextCodeProductNotFound).
	WithCode(errors.CodeNotFound)

// ErrUserNotFound is returned for absent users on admin lookups.
var ErrUserNotFound = errors.New("User not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrInvalidPagination is returned when page or size is below 1.
var ErrInvalidPagination = errors.New("Page and size must be at least 1", errors.CategoryValidation).
	WithTextCode(TextCodeInvalidPagination).
	WithCode(errors.CodeBadRequest)

// ErrMissingSigningKey and ErrInvalidTokenTTL are startup failures;
// the process refuses to boot without a usable token configuration.
var (
	ErrMissingSigningKey = errors.New("signing key must not be empty", errors.CategoryValidation)
	ErrInvalidTokenTTL   = errors.New("token ttl must be positive", errors.CategoryValidation)
	ErrNoEmptyString     = errors.New("value must not be empty", errors.CategoryValidation)
)
