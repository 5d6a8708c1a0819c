package storefront

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the credential store record. PasswordHash never leaves the
// process: the json tag keeps it out of every response body.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            string     `bun:"id,pk" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	IsAdmin       bool       `bun:"is_admin" json:"isAdmin"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`
}

// Product is a catalog entry. The core only reads these; writes happen
// through the seeding command.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`
	ID            string     `bun:"id,pk" json:"id,omitempty"`
	OwnerID       string     `bun:"owner_id,notnull" json:"user,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Image         string     `bun:"image" json:"image,omitempty"`
	Brand         string     `bun:"brand" json:"brand,omitempty"`
	Category      string     `bun:"category" json:"category,omitempty"`
	Description   string     `bun:"description" json:"description,omitempty"`
	Rating        float64    `bun:"rating" json:"rating"`
	NumReviews    int        `bun:"num_reviews" json:"numReviews"`
	Price         float64    `bun:"price,notnull" json:"price"`
	CountInStock  int        `bun:"count_in_stock" json:"countInStock"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
}

// OrderItem is one line of an order. UnitPrice is the price snapshot
// taken at checkout; it is never recomputed from the catalog.
type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name,omitempty"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"qty"`
	UnitPrice float64 `json:"price"`
}

// ShippingInfo is the delivery address attached to an order.
type ShippingInfo struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// PaymentResult holds the externally supplied payment claim, stored
// verbatim when an order is marked paid.
type PaymentResult struct {
	ID         string `json:"id,omitempty"`
	Status     string `json:"status,omitempty"`
	UpdateTime string `json:"update_time,omitempty"`
	PayerEmail string `json:"email_address,omitempty"`
}

// Order is the order store record. OwnerID is stamped from the
// creating principal and immutable afterwards; the monetary fields are
// stored as submitted and only the pay/deliver transitions touch the
// record after creation.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:ord"`
	ID            string         `bun:"id,pk" json:"id,omitempty"`
	OwnerID       string         `bun:"owner_id,notnull" json:"user,omitempty"`
	Items         []OrderItem    `bun:"items,type:jsonb" json:"orderItems"`
	ShippingInfo  *ShippingInfo  `bun:"shipping_info,type:jsonb" json:"shippingInfo,omitempty"`
	PaymentMethod string         `bun:"payment_method,notnull" json:"paymentMethod,omitempty"`
	Subtotal      float64        `bun:"subtotal" json:"subtotal"`
	ShippingFee   float64        `bun:"shipping_fee" json:"shippingFee"`
	TaxAmount     float64        `bun:"tax_amount" json:"taxAmount"`
	TotalAmount   float64        `bun:"total_amount" json:"totalAmount"`
	IsPaid        bool           `bun:"is_paid" json:"isPaid"`
	PaidAt        *time.Time     `bun:"paid_at,nullzero" json:"paidAt,omitempty"`
	PaymentResult *PaymentResult `bun:"payment_result,type:jsonb,nullzero" json:"paymentResult,omitempty"`
	IsDelivered   bool           `bun:"is_delivered" json:"isDelivered"`
	DeliveredAt   *time.Time     `bun:"delivered_at,nullzero" json:"deliveredAt,omitempty"`
	CreatedAt     *time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
}

// OrderStatus is the derived lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusCreated is an order awaiting payment.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusPaid is a paid order awaiting delivery.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusDelivered is the terminal state.
	OrderStatusDelivered OrderStatus = "delivered"
)

// Status derives the lifecycle state from the stored flags. The pay
// and deliver transitions are the only writers of those flags, so a
// delivered-but-unpaid combination cannot be produced by this package.
func (o *Order) Status() OrderStatus {
	switch {
	case o.IsDelivered:
		return OrderStatusDelivered
	case o.IsPaid:
		return OrderStatusPaid
	default:
		return OrderStatusCreated
	}
}
