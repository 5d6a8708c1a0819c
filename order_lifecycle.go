package storefront

import (
	"context"
	"time"
)

// orderTransitions is the allowed-transitions table of the lifecycle:
// an order is created unpaid, becomes paid, and only then delivered.
// Nothing ever leaves a state once entered.
var orderTransitions = map[OrderStatus]map[OrderStatus]struct{}{
	OrderStatusCreated: {
		OrderStatusPaid: {},
	},
	OrderStatusPaid: {
		OrderStatusDelivered: {},
	},
}

func canTransition(from, to OrderStatus) bool {
	if from == to {
		// Re-entering a state overwrites its timestamps and payment
		// metadata; the transitions are not idempotent.
		return true
	}
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	_, exists := allowed[to]
	return exists
}

// CreateOrderInput is the validated shape of an order creation
// request. The owner never comes from the payload.
type CreateOrderInput struct {
	Items         []OrderItem
	ShippingInfo  *ShippingInfo
	PaymentMethod string
	Subtotal      float64
	ShippingFee   float64
	TaxAmount     float64
	TotalAmount   float64
}

// OrderLifecycle validates order creation and drives the pay/deliver
// transitions against the order store.
type OrderLifecycle struct {
	orders Orders
	logger Logger
	now    func() time.Time
}

// LifecycleOption customizes lifecycle construction.
type LifecycleOption func(*OrderLifecycle)

// WithLifecycleClock injects a custom clock (useful for tests).
func WithLifecycleClock(clock func() time.Time) LifecycleOption {
	return func(lc *OrderLifecycle) {
		if clock != nil {
			lc.now = clock
		}
	}
}

// WithLifecycleLogger overrides the default logger.
func WithLifecycleLogger(logger Logger) LifecycleOption {
	return func(lc *OrderLifecycle) {
		if logger != nil {
			lc.logger = logger
		}
	}
}

// NewOrderLifecycle returns the lifecycle service backed by the given
// order store.
func NewOrderLifecycle(orders Orders, opts ...LifecycleOption) *OrderLifecycle {
	lc := &OrderLifecycle{
		orders: orders,
		logger: defLogger{},
		now:    time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(lc)
		}
	}

	return lc
}

// Create validates the input in order (items, shipping info, payment
// method) and reports only the first failure. On success the order is
// persisted unpaid and undelivered, owned by the calling principal.
// Monetary fields are stored exactly as submitted.
func (lc *OrderLifecycle) Create(ctx context.Context, principal Principal, input CreateOrderInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrMissingOrderItems
	}
	if input.ShippingInfo == nil {
		return nil, ErrMissingShippingInfo
	}
	if input.PaymentMethod == "" {
		return nil, ErrMissingPaymentMethod
	}

	now := lc.now()
	order := &Order{
		OwnerID:       principal.ID,
		Items:         input.Items,
		ShippingInfo:  input.ShippingInfo,
		PaymentMethod: input.PaymentMethod,
		Subtotal:      input.Subtotal,
		ShippingFee:   input.ShippingFee,
		TaxAmount:     input.TaxAmount,
		TotalAmount:   input.TotalAmount,
		CreatedAt:     &now,
	}

	created, err := lc.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	lc.logger.Info("order created", "order", created.ID, "owner", principal.ID)
	return created, nil
}

// GetByID fetches an order after validating the id shape; malformed
// ids fail before any store access. Ownership restriction is the
// calling route's job.
func (lc *OrderLifecycle) GetByID(ctx context.Context, id string) (*Order, error) {
	if !IsObjectID(id) {
		return nil, ErrInvalidIdentifier
	}
	return lc.orders.GetByID(ctx, id)
}

// MarkPaid re-fetches the order and records the externally supplied
// payment claim verbatim. Calling it again overwrites the previous
// payment metadata; there is no idempotency key.
func (lc *OrderLifecycle) MarkPaid(ctx context.Context, id string, claim PaymentResult) (*Order, error) {
	order, err := lc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := lc.now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &claim

	updated, err := lc.orders.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	lc.logger.Info("order paid", "order", updated.ID, "status", claim.Status)
	return updated, nil
}

// MarkDelivered re-fetches the order and records delivery. An unpaid
// order is rejected and left untouched: delivery can never precede
// payment.
func (lc *OrderLifecycle) MarkDelivered(ctx context.Context, id string) (*Order, error) {
	order, err := lc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTransition(order.Status(), OrderStatusDelivered) {
		return nil, ErrOrderNotPaid
	}

	now := lc.now()
	order.IsDelivered = true
	order.DeliveredAt = &now

	updated, err := lc.orders.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	lc.logger.Info("order delivered", "order", updated.ID)
	return updated, nil
}

// ListForOwner returns the caller's own orders, newest first.
func (lc *OrderLifecycle) ListForOwner(ctx context.Context, principal Principal) ([]*Order, error) {
	return lc.orders.ListByOwner(ctx, principal.ID)
}

// ListPage runs one of the canonical administrative views through the
// paginated query primitive.
func (lc *OrderLifecycle) ListPage(ctx context.Context, filter OrderFilter, req PageRequest) (Page[*Order], error) {
	return lc.orders.ListPage(ctx, filter, req)
}
