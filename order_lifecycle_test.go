package storefront_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storefront "github.com/shopkit/storefront"
)

var owner = storefront.Principal{ID: "64f1c0ffee0000000000aaaa"}

func validCreateInput() storefront.CreateOrderInput {
	return storefront.CreateOrderInput{
		Items: []storefront.OrderItem{
			{ProductID: "64f1c0ffee0000000000bbbb", Name: "Wireless Headphones", Quantity: 2, UnitPrice: 89.99},
		},
		ShippingInfo:  &storefront.ShippingInfo{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		PaymentMethod: "paypal",
		Subtotal:      179.98,
		ShippingFee:   5,
		TaxAmount:     18,
		TotalAmount:   202.98,
	}
}

func TestOrderCreateGuards(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*storefront.CreateOrderInput)
		wantErr error
	}{
		{
			name:    "no items",
			mutate:  func(in *storefront.CreateOrderInput) { in.Items = nil },
			wantErr: storefront.ErrMissingOrderItems,
		},
		{
			name:    "empty items",
			mutate:  func(in *storefront.CreateOrderInput) { in.Items = []storefront.OrderItem{} },
			wantErr: storefront.ErrMissingOrderItems,
		},
		{
			name:    "no shipping info",
			mutate:  func(in *storefront.CreateOrderInput) { in.ShippingInfo = nil },
			wantErr: storefront.ErrMissingShippingInfo,
		},
		{
			name:    "no payment method",
			mutate:  func(in *storefront.CreateOrderInput) { in.PaymentMethod = "" },
			wantErr: storefront.ErrMissingPaymentMethod,
		},
		{
			name: "items failure reported first",
			mutate: func(in *storefront.CreateOrderInput) {
				in.Items = nil
				in.ShippingInfo = nil
				in.PaymentMethod = ""
			},
			wantErr: storefront.ErrMissingOrderItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrders)
			lc := storefront.NewOrderLifecycle(orders)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := lc.Create(context.Background(), owner, input)
			assert.ErrorIs(t, err, tt.wantErr)
			orders.AssertNotCalled(t, "Create")
		})
	}
}

func TestOrderCreateStampsOwner(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders, storefront.WithLifecycleClock(func() time.Time {
		return now
	}))

	var persisted *storefront.Order
	orders.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*storefront.Order)
		}).
		Return(&storefront.Order{ID: "64f1c0ffee0000000000cccc"}, nil)

	created, err := lc.Create(context.Background(), owner, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000cccc", created.ID)

	require.NotNil(t, persisted)
	assert.Equal(t, owner.ID, persisted.OwnerID)
	assert.False(t, persisted.IsPaid)
	assert.False(t, persisted.IsDelivered)
	assert.Nil(t, persisted.PaidAt)
	assert.Nil(t, persisted.DeliveredAt)
	require.NotNil(t, persisted.CreatedAt)
	assert.Equal(t, now, *persisted.CreatedAt)
	assert.Equal(t, 202.98, persisted.TotalAmount)
}

func TestOrderGetByIDRejectsMalformedID(t *testing.T) {
	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders)

	for _, id := range []string{"", "not-an-id", "64f1c0ffee0000000000bee"} {
		_, err := lc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, storefront.ErrInvalidIdentifier, "id %q", id)
	}

	orders.AssertNotCalled(t, "GetByID")
}

func TestOrderMarkPaid(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	orderID := "64f1c0ffee0000000000cccc"

	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders, storefront.WithLifecycleClock(func() time.Time {
		return now
	}))

	orders.On("GetByID", mock.Anything, orderID).
		Return(&storefront.Order{ID: orderID, OwnerID: owner.ID}, nil)

	var updated *storefront.Order
	orders.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*storefront.Order)
		}).
		Return(&storefront.Order{ID: orderID, IsPaid: true}, nil)

	claim := storefront.PaymentResult{ID: "PAY-1", Status: "COMPLETED", PayerEmail: "buyer@example.com"}
	_, err := lc.MarkPaid(context.Background(), orderID, claim)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.IsPaid)
	require.NotNil(t, updated.PaidAt)
	assert.Equal(t, now, *updated.PaidAt)
	require.NotNil(t, updated.PaymentResult)
	assert.Equal(t, claim, *updated.PaymentResult)
}

func TestOrderMarkPaidOverwritesPreviousClaim(t *testing.T) {
	orderID := "64f1c0ffee0000000000cccc"
	firstPaidAt := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders, storefront.WithLifecycleClock(func() time.Time {
		return now
	}))

	orders.On("GetByID", mock.Anything, orderID).Return(&storefront.Order{
		ID:            orderID,
		OwnerID:       owner.ID,
		IsPaid:        true,
		PaidAt:        &firstPaidAt,
		PaymentResult: &storefront.PaymentResult{ID: "PAY-1", Status: "COMPLETED"},
	}, nil)

	var updated *storefront.Order
	orders.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*storefront.Order)
		}).
		Return(&storefront.Order{ID: orderID, IsPaid: true}, nil)

	_, err := lc.MarkPaid(context.Background(), orderID, storefront.PaymentResult{ID: "PAY-2", Status: "COMPLETED"})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "PAY-2", updated.PaymentResult.ID)
	assert.Equal(t, now, *updated.PaidAt)
}

func TestOrderMarkDeliveredRequiresPayment(t *testing.T) {
	orderID := "64f1c0ffee0000000000cccc"

	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders)

	orders.On("GetByID", mock.Anything, orderID).
		Return(&storefront.Order{ID: orderID, OwnerID: owner.ID}, nil)

	_, err := lc.MarkDelivered(context.Background(), orderID)
	assert.ErrorIs(t, err, storefront.ErrOrderNotPaid)
	orders.AssertNotCalled(t, "Update")
}

func TestOrderMarkDelivered(t *testing.T) {
	orderID := "64f1c0ffee0000000000cccc"
	paidAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC)

	orders := new(MockOrders)
	lc := storefront.NewOrderLifecycle(orders, storefront.WithLifecycleClock(func() time.Time {
		return now
	}))

	orders.On("GetByID", mock.Anything, orderID).Return(&storefront.Order{
		ID:      orderID,
		OwnerID: owner.ID,
		IsPaid:  true,
		PaidAt:  &paidAt,
	}, nil)

	var updated *storefront.Order
	orders.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*storefront.Order)
		}).
		Return(&storefront.Order{ID: orderID, IsPaid: true, IsDelivered: true}, nil)

	_, err := lc.MarkDelivered(context.Background(), orderID)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.IsDelivered)
	require.NotNil(t, updated.DeliveredAt)
	assert.Equal(t, now, *updated.DeliveredAt)
	assert.False(t, updated.DeliveredAt.Before(*updated.PaidAt))
}

func TestOrderStatus(t *testing.T) {
	assert.Equal(t, storefront.OrderStatusCreated, (&storefront.Order{}).Status())
	assert.Equal(t, storefront.OrderStatusPaid, (&storefront.Order{IsPaid: true}).Status())
	assert.Equal(t, storefront.OrderStatusDelivered, (&storefront.Order{IsPaid: true, IsDelivered: true}).Status())
}
