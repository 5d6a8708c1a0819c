package storefront

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users is the credential store collaborator. The auth middleware only
// reads from it; account management issues conditional updates keyed
// on the record id.
type Users interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	ResetPassword(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context) ([]*User, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns the bun backed credential store.
func NewUsersRepository(db *bun.DB) Users {
	return &users{db: db}
}

func (r *users) GetByID(ctx context.Context, id string) (*User, error) {
	record := &User{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, wrapUserLookup(err, id)
	}
	return record, nil
}

func (r *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	record := &User{}
	err := r.db.NewSelect().
		Model(record).
		Where("lower(?TableAlias.email) = lower(?)", strings.TrimSpace(email)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, wrapUserLookup(err, email)
	}
	return record, nil
}

// Register inserts the account and lets the unique email constraint
// arbitrate duplicates, so two concurrent registrations cannot both
// pass a lookup and then collide. Emails are stored lowercased to keep
// the constraint case insensitive.
func (r *users) Register(ctx context.Context, user *User) (*User, error) {
	if user.ID == "" {
		user.ID = NewObjectID()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create user")
	}

	return user, nil
}

// isUniqueViolation matches the constraint failure shapes of the
// supported drivers (sqlite and postgres wordings).
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func (r *users) Update(ctx context.Context, user *User) (*User, error) {
	res, err := r.db.NewUpdate().
		Model(user).
		Column("name", "email", "password_hash").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update user")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetByID(ctx, user.ID)
}

func (r *users) ResetPassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.NewUpdate().
		Model((*User)(nil)).
		Set("password_hash = ?", passwordHash).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to reset password")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *users) List(ctx context.Context) ([]*User, error) {
	records := []*User{}
	err := r.db.NewSelect().
		Model(&records).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list users")
	}
	return records, nil
}

func wrapUserLookup(err error, identifier string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound.WithMetadata(map[string]any{
			"identifier": identifier,
		})
	}
	return errors.Wrap(err, errors.CategoryInternal, "user lookup failed")
}
