package storefront

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Products is the catalog collaborator. The core only reads it; the
// seeding command owns the writes.
type Products interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
}

type products struct {
	db *bun.DB
}

var _ Products = (*products)(nil)

// NewProductsRepository returns the bun backed catalog.
func NewProductsRepository(db *bun.DB) Products {
	return &products{db: db}
}

func (r *products) GetByID(ctx context.Context, id string) (*Product, error) {
	record := &Product{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound.WithMetadata(map[string]any{
				"id": id,
			})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "product lookup failed")
	}
	return record, nil
}

func (r *products) List(ctx context.Context) ([]*Product, error) {
	records := []*Product{}
	err := r.db.NewSelect().
		Model(&records).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list products")
	}
	return records, nil
}

func (r *products) Create(ctx context.Context, product *Product) (*Product, error) {
	if product.ID == "" {
		product.ID = NewObjectID()
	}

	if _, err := r.db.NewInsert().Model(product).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create product")
	}

	return product, nil
}
