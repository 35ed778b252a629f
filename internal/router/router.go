package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hubsite/internal/auth"
	"hubsite/internal/handler"
	"hubsite/internal/session"
)

// Register wires routes and middleware. Protected routes sit behind the
// guard, which redirects anonymous callers to /login with a next parameter.
func Register(
	e *echo.Echo,
	sessions *session.Manager,
	guard *auth.Guard,
	authHandler *handler.AuthHandler,
	dataHubHandler *handler.DataHubHandler,
	bikeHandler *handler.BikeHandler,
	shopHandler *handler.ShopHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessions.Middleware())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/", func(c echo.Context) error {
		user := guard.CurrentUser(c)
		resp := map[string]interface{}{"message": "welcome to hubsite"}
		if user != nil {
			resp["user"] = user
		}
		return c.JSON(http.StatusOK, resp)
	})

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/contact", contactHandler.Submit)

	// Protected routes (require a signed-in session)
	protected := e.Group("", guard.RequireUser)

	protected.GET("/datahub", dataHubHandler.List)
	protected.POST("/datahub", dataHubHandler.Create)
	protected.DELETE("/datahub/:id", dataHubHandler.Delete)
	// Form-friendly alias for clients that cannot send DELETE.
	protected.POST("/datahub/:id/delete", dataHubHandler.Delete)

	protected.GET("/bikes", bikeHandler.List)
	protected.GET("/bikes/:id", bikeHandler.Get)
	protected.POST("/bikes/:id/book", bikeHandler.Book)
	protected.GET("/bookings/:id", bikeHandler.Confirmation)

	protected.GET("/petshop", shopHandler.ListProducts)
	protected.GET("/petshop/cart", shopHandler.ViewCart)
	protected.POST("/petshop/cart", shopHandler.AddToCart)
	protected.DELETE("/petshop/cart/:id", shopHandler.RemoveFromCart)
	protected.POST("/petshop/cart/:id/remove", shopHandler.RemoveFromCart)
	protected.POST("/petshop/checkout", shopHandler.Checkout)
	protected.GET("/petshop/orders/:id", shopHandler.OrderConfirmation)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
