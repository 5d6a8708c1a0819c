package storefront

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// OrderFilter selects one of the canonical administrative views over
// the order collection.
type OrderFilter int

const (
	// FilterUnpaid selects orders still awaiting payment.
	FilterUnpaid OrderFilter = iota
	// FilterDelivered selects completed orders.
	FilterDelivered
	// FilterPaidNotDelivered selects orders ready to ship.
	FilterPaidNotDelivered
)

// Orders is the order store collaborator.
type Orders interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, order *Order) (*Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Order, error)
	ListPage(ctx context.Context, filter OrderFilter, req PageRequest) (Page[*Order], error)
}

type orders struct {
	db *bun.DB
}

var _ Orders = (*orders)(nil)

// NewOrdersRepository returns the bun backed order store.
func NewOrdersRepository(db *bun.DB) Orders {
	return &orders{db: db}
}

func (r *orders) Create(ctx context.Context, order *Order) (*Order, error) {
	if order.ID == "" {
		order.ID = NewObjectID()
	}

	if _, err := r.db.NewInsert().Model(order).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create order")
	}

	return r.GetByID(ctx, order.ID)
}

func (r *orders) GetByID(ctx context.Context, id string) (*Order, error) {
	record := &Order{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound.WithMetadata(map[string]any{
				"id": id,
			})
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "order lookup failed")
	}
	return record, nil
}

// Update persists the full document state of the order. There is no
// version check: concurrent writers race and the last one wins.
func (r *orders) Update(ctx context.Context, order *Order) (*Order, error) {
	res, err := r.db.NewUpdate().
		Model(order).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update order")
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrOrderNotFound
	}

	return r.GetByID(ctx, order.ID)
}

func (r *orders) ListByOwner(ctx context.Context, ownerID string) ([]*Order, error) {
	records := []*Order{}
	err := r.db.NewSelect().
		Model(&records).
		Where("?TableAlias.owner_id = ?", ownerID).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list orders")
	}
	return records, nil
}

// ListPage runs the filter twice: once for the total count, once for
// the window. The sort is fixed, newest first.
func (r *orders) ListPage(ctx context.Context, filter OrderFilter, req PageRequest) (Page[*Order], error) {
	total, err := applyOrderFilter(r.db.NewSelect().Model((*Order)(nil)), filter).Count(ctx)
	if err != nil {
		return Page[*Order]{}, errors.Wrap(err, errors.CategoryInternal, "failed to count orders")
	}

	records := []*Order{}
	err = applyOrderFilter(r.db.NewSelect().Model(&records), filter).
		OrderExpr("?TableAlias.created_at DESC").
		Limit(req.Size).
		Offset(req.Offset()).
		Scan(ctx)
	if err != nil {
		return Page[*Order]{}, errors.Wrap(err, errors.CategoryInternal, "failed to list orders")
	}

	return NewPage(records, req, int64(total)), nil
}

func applyOrderFilter(q *bun.SelectQuery, filter OrderFilter) *bun.SelectQuery {
	switch filter {
	case FilterDelivered:
		return q.Where("?TableAlias.is_delivered = ?", true)
	case FilterPaidNotDelivered:
		return q.
			Where("?TableAlias.is_paid = ?", true).
			Where("?TableAlias.is_delivered = ?", false)
	default:
		return q.Where("?TableAlias.is_paid = ?", false)
	}
}
