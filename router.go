package storefront

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// ErrorHandler converts categorized errors into the API's status plus
// {"message": ...} contract. Anything uncategorized is a 500; the
// original cause is logged, never sent to the client.
func ErrorHandler(logger Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return func(c *fiber.Ctx, err error) error {
		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
			}
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
				WithCode(errors.CodeInternal)
		}

		status := richErr.Code
		if status == 0 {
			status = statusFromCategory(richErr.Category)
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				"status", status,
				"path", c.Path(),
				"error", err,
			)
		} else {
			logger.Debug("request rejected",
				"status", status,
				"path", c.Path(),
				"message", richErr.Message,
			)
		}

		return c.Status(status).JSON(fiber.Map{"message": richErr.Message})
	}
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		// Authorization failures share 401 with authentication ones;
		// the API never answers 403.
		return fiber.StatusUnauthorized
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Dependencies is everything the route table needs.
type Dependencies struct {
	Tokens   TokenService
	Users    Users
	Products Products
	Orders   Orders
	Logger   Logger
}

// NewApp builds the fiber application with the full route table and
// the shared error handler installed.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(deps.Logger),
	})

	RegisterRoutes(app, deps)
	return app
}

// RegisterRoutes mounts the API. The literal admin listing paths are
// registered before the ":id" routes so "unpaid" is never parsed as an
// order id.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	identity := NewIdentityProvider(deps.Users)
	if deps.Logger != nil {
		identity = identity.WithLogger(deps.Logger)
	}

	lifecycle := NewOrderLifecycle(deps.Orders, WithLifecycleLogger(deps.Logger))

	usersCtl := NewUsersController(deps.Users, identity, deps.Tokens, deps.Logger)
	productsCtl := NewProductsController(deps.Products)
	ordersCtl := NewOrdersController(lifecycle, deps.Logger)

	protected := Protected(deps.Tokens, deps.Users)
	adminOnly := AdminOnly()

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", usersCtl.Register)
	users.Post("/login", usersCtl.Login)
	users.Get("/profile", protected, usersCtl.Profile)
	users.Put("/profile", protected, usersCtl.UpdateProfile)
	users.Post("/change-password", protected, usersCtl.ChangePassword)
	users.Post("/reset-password", protected, adminOnly, usersCtl.ResetPassword)
	users.Get("/", protected, adminOnly, usersCtl.ListUsers)

	products := api.Group("/products")
	products.Get("/", productsCtl.List)
	products.Get("/:id", productsCtl.GetByID)

	orders := api.Group("/orders")
	orders.Post("/", protected, ordersCtl.Create)
	orders.Get("/", protected, ordersCtl.ListMine)
	orders.Get("/unpaid", protected, adminOnly, ordersCtl.ListUnpaid)
	orders.Get("/delivered", protected, adminOnly, ordersCtl.ListDelivered)
	orders.Get("/paid-but-not-delivered", protected, adminOnly, ordersCtl.ListPaidNotDelivered)
	orders.Get("/:id", protected, ordersCtl.GetByID)
	orders.Put("/:id/pay", protected, ordersCtl.Pay)
	orders.Put("/:id/deliver", protected, adminOnly, ordersCtl.Deliver)
}
