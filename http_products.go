package storefront

import (
	"github.com/gofiber/fiber/v2"
)

// ProductsController serves the public catalog reads.
type ProductsController struct {
	products Products
}

// NewProductsController wires the catalog routes.
func NewProductsController(products Products) *ProductsController {
	return &ProductsController{products: products}
}

// List returns the whole catalog.
func (ctl *ProductsController) List(c *fiber.Ctx) error {
	records, err := ctl.products.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// GetByID returns one product. Malformed ids fail before the store is
// touched.
func (ctl *ProductsController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !IsObjectID(id) {
		return ErrInvalidIdentifier
	}

	record, err := ctl.products.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(record)
}
