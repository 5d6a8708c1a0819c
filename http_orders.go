package storefront

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// OrdersController serves creation, lookup, the pay/deliver
// transitions and the administrative listings.
type OrdersController struct {
	lifecycle *OrderLifecycle
	logger    Logger
}

// NewOrdersController wires the order routes.
func NewOrdersController(lifecycle *OrderLifecycle, logger Logger) *OrdersController {
	if logger == nil {
		logger = defLogger{}
	}
	return &OrdersController{
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// CreateOrderPayload is the order creation body. Any user field a
// client sends is ignored; ownership comes from the principal.
type CreateOrderPayload struct {
	OrderItems    []OrderItem   `json:"orderItems"`
	ShippingInfo  *ShippingInfo `json:"shippingInfo"`
	PaymentMethod string        `json:"paymentMethod"`
	Subtotal      float64       `json:"subtotal"`
	ShippingFee   float64       `json:"shippingFee"`
	TaxAmount     float64       `json:"taxAmount"`
	TotalAmount   float64       `json:"totalAmount"`
}

// PaymentClaimPayload is the pay body, an opaque claim from the
// external payment collaborator.
type PaymentClaimPayload struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

// Create validates and persists a new order for the caller.
func (ctl *OrdersController) Create(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	payload := new(CreateOrderPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	order, err := ctl.lifecycle.Create(c.UserContext(), principal, CreateOrderInput{
		Items:         payload.OrderItems,
		ShippingInfo:  payload.ShippingInfo,
		PaymentMethod: payload.PaymentMethod,
		Subtotal:      payload.Subtotal,
		ShippingFee:   payload.ShippingFee,
		TaxAmount:     payload.TaxAmount,
		TotalAmount:   payload.TotalAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// GetByID returns one order. A non admin caller only sees their own
// orders; anyone else's answer is indistinguishable from a missing
// order.
func (ctl *OrdersController) GetByID(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	order, err := ctl.lifecycle.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	if !principal.IsAdmin && order.OwnerID != principal.ID {
		return ErrOrderNotFound
	}

	return c.JSON(order)
}

// ListMine returns the caller's orders, newest first.
func (ctl *OrdersController) ListMine(c *fiber.Ctx) error {
	principal, ok := PrincipalFromFiber(c)
	if !ok {
		return ErrAdminOnly
	}

	records, err := ctl.lifecycle.ListForOwner(c.UserContext(), principal)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// Pay records the payment claim on an order.
func (ctl *OrdersController) Pay(c *fiber.Ctx) error {
	payload := new(PaymentClaimPayload)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse body").
			WithCode(errors.CodeBadRequest)
	}

	order, err := ctl.lifecycle.MarkPaid(c.UserContext(), c.Params("id"), PaymentResult{
		ID:         payload.ID,
		Status:     payload.Status,
		UpdateTime: payload.UpdateTime,
		PayerEmail: payload.Payer.EmailAddress,
	})
	if err != nil {
		return err
	}

	return c.JSON(order)
}

// Deliver marks a paid order as delivered.
func (ctl *OrdersController) Deliver(c *fiber.Ctx) error {
	order, err := ctl.lifecycle.MarkDelivered(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// ListUnpaid is the admin view of orders awaiting payment.
func (ctl *OrdersController) ListUnpaid(c *fiber.Ctx) error {
	return ctl.listPage(c, FilterUnpaid)
}

// ListDelivered is the admin view of completed orders.
func (ctl *OrdersController) ListDelivered(c *fiber.Ctx) error {
	return ctl.listPage(c, FilterDelivered)
}

// ListPaidNotDelivered is the admin view of orders ready to ship.
func (ctl *OrdersController) ListPaidNotDelivered(c *fiber.Ctx) error {
	return ctl.listPage(c, FilterPaidNotDelivered)
}

func (ctl *OrdersController) listPage(c *fiber.Ctx, filter OrderFilter) error {
	req, err := ParsePageRequest(c.Query("page"), c.Query("size"))
	if err != nil {
		return err
	}

	page, err := ctl.lifecycle.ListPage(c.UserContext(), filter, req)
	if err != nil {
		return err
	}

	return c.JSON(page)
}
