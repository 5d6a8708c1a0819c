package storefront_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	storefront "github.com/shopkit/storefront"
)

// MockUsers implements storefront.Users for testing.
type MockUsers struct {
	mock.Mock
}

var _ storefront.Users = (*MockUsers)(nil)

func (m *MockUsers) GetByID(ctx context.Context, id string) (*storefront.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*storefront.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*storefront.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*storefront.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) Register(ctx context.Context, user *storefront.User) (*storefront.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*storefront.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) Update(ctx context.Context, user *storefront.User) (*storefront.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*storefront.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) ResetPassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUsers) List(ctx context.Context) ([]*storefront.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*storefront.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrders implements storefront.Orders for testing.
type MockOrders struct {
	mock.Mock
}

var _ storefront.Orders = (*MockOrders)(nil)

func (m *MockOrders) Create(ctx context.Context, order *storefront.Order) (*storefront.Order, error) {
	args := m.Called(ctx, order)
	if o := args.Get(0); o != nil {
		return o.(*storefront.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) GetByID(ctx context.Context, id string) (*storefront.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*storefront.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) Update(ctx context.Context, order *storefront.Order) (*storefront.Order, error) {
	args := m.Called(ctx, order)
	if o := args.Get(0); o != nil {
		return o.(*storefront.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) ListByOwner(ctx context.Context, ownerID string) ([]*storefront.Order, error) {
	args := m.Called(ctx, ownerID)
	if o := args.Get(0); o != nil {
		return o.([]*storefront.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrders) ListPage(ctx context.Context, filter storefront.OrderFilter, req storefront.PageRequest) (storefront.Page[*storefront.Order], error) {
	args := m.Called(ctx, filter, req)
	return args.Get(0).(storefront.Page[*storefront.Order]), args.Error(1)
}

// MockProducts implements storefront.Products for testing.
type MockProducts struct {
	mock.Mock
}

var _ storefront.Products = (*MockProducts)(nil)

func (m *MockProducts) GetByID(ctx context.Context, id string) (*storefront.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*storefront.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProducts) List(ctx context.Context) ([]*storefront.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*storefront.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProducts) Create(ctx context.Context, product *storefront.Product) (*storefront.Product, error) {
	args := m.Called(ctx, product)
	if p := args.Get(0); p != nil {
		return p.(*storefront.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
