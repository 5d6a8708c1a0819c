package storefront

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// UsersController serves registration, login and account management.
type UsersController struct {
	users    Users
	identity *IdentityProvider
	tokens   TokenService
	logger   Logger
}

// NewUsersController wires the account routes.
func NewUsersController(users Users, identity *IdentityProvider, tokens TokenService, logger Logger) *UsersController {
	if logger == nil {
		logger = defLogger{}
	}
	return &UsersController{
		users:    users,
		identity: identity,
		tokens:   tokens,
		logger:   logger,
	}
}

// profileResponse is the account shape returned by register, login and
// the profile routes. The token is only present when one was issued.
type profileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"isAdmin"`
	AccessToken string `json:"access_token,omitempty"`
}

func newProfileResponse(user *User, token string) profileResponse {
	return profileResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsAdmin:     user.IsAdmin,
		AccessToken: token,
	}
}

// RegisterPayload is the registration body.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload.
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
	)
}

// Register creates an account and logs it in.
func (ctl *UsersController) Register(c *fiber.Ctx) error {
	payload := new(RegisterPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest)
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user, err := ctl.users.Register(c.UserContext(), &User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	token, err := ctl.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	ctl.logger.Info("user registered", "user", user.ID)
	return c.JSON(newProfileResponse(user, token))
}

// LoginPayload is the login body.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload.
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// Login verifies credentials and returns a fresh token.
func (ctl *UsersController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.New("Please enter email and password", errors.CategoryValidation).
			WithCode(errors.CodeBadRequest)
	}

	user, err := ctl.identity.VerifyCredentials(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	token, err := ctl.tokens.Issue(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(newProfileResponse(user, token))
}

// Profile returns the calling principal's account.
func (ctl *UsersController) Profile(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	user, err := ctl.users.GetByID(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}

	return c.JSON(newProfileResponse(user, ""))
}

// UpdateProfilePayload is the profile update body.
type UpdateProfilePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate will validate the payload.
func (r UpdateProfilePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 200)),
		validation.Field(&r.Email, is.Email),
	)
}

// UpdateProfile changes the caller's name and email.
func (ctl *UsersController) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	payload := new(UpdateProfilePayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest)
	}

	user, err := ctl.users.GetByID(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}

	if payload.Name != "" {
		user.Name = payload.Name
	}
	if payload.Email != "" {
		user.Email = payload.Email
	}

	updated, err := ctl.users.Update(c.UserContext(), user)
	if err != nil {
		return err
	}

	return c.JSON(newProfileResponse(updated, ""))
}

// ChangePasswordPayload is the password change body.
type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Validate will validate the payload.
func (r ChangePasswordPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 100)),
	)
}

// ChangePassword verifies the current password before storing a new
// hash.
func (ctl *UsersController) ChangePassword(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	payload := new(ChangePasswordPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest)
	}

	user, err := ctl.users.GetByID(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}

	if err := ComparePasswordAndHash(payload.CurrentPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(payload.NewPassword)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	if err := ctl.users.ResetPassword(c.UserContext(), user.ID, hash); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password changed"})
}

// ResetPasswordPayload is the admin reset body.
type ResetPasswordPayload struct {
	UserID string `json:"userId"`
}

// ResetPassword locks a target account to a fresh random credential.
// Admin only; the target recovers through an out of band channel.
func (ctl *UsersController) ResetPassword(c *fiber.Ctx) error {
	payload := new(ResetPasswordPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	if !IsObjectID(payload.UserID) {
		return ErrInvalidIdentifier
	}

	hash, err := RandomPasswordHash()
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	if err := ctl.users.ResetPassword(c.UserContext(), payload.UserID, hash); err != nil {
		return err
	}

	ctl.logger.Info("password reset", "user", payload.UserID)
	return c.JSON(fiber.Map{"message": "Password reset"})
}

// ListUsers returns every account, admin only. Password hashes are
// excluded by the model's json tags.
func (ctl *UsersController) ListUsers(c *fiber.Ctx) error {
	records, err := ctl.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}
