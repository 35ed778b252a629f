package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hubsite/internal/cart"
	"hubsite/internal/service"
	"hubsite/internal/session"
)

// ShopHandler handles the pet shop catalog, cart, and checkout flow.
type ShopHandler struct {
	catalog  service.CatalogService
	checkout service.CheckoutService
	sessions *session.Manager
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(catalog service.CatalogService, checkout service.CheckoutService, sessions *session.Manager) *ShopHandler {
	return &ShopHandler{catalog: catalog, checkout: checkout, sessions: sessions}
}

// AddToCartRequest represents an add-to-cart submission. Quantity defaults
// to 1 when omitted.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" form:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

// CheckoutSubmitRequest represents the checkout contact form.
type CheckoutSubmitRequest struct {
	CustomerName string `json:"customer_name" form:"customer_name" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	Phone        string `json:"phone" form:"phone" validate:"required"`
}

// ListProducts returns the pet product catalog.
func (h *ShopHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

// ViewCart returns the materialized cart with a running total. Entries whose
// product has vanished from the catalog are not shown.
func (h *ShopHandler) ViewCart(c echo.Context) error {
	crt := h.sessions.Cart(c)
	lines, total, err := h.checkout.Materialize(c.Request().Context(), crt)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": lines,
		"total": total,
	})
}

// AddToCart increments the quantity for a product in the session cart.
// Product existence is not checked here; stale entries are dropped at
// materialize time.
func (h *ShopHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crt := h.sessions.Cart(c)
	crt.Add(req.ProductID, req.Quantity)
	if err := h.sessions.SaveCart(c, crt); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "added to cart",
		"cart":    crt,
	})
}

// RemoveFromCart drops a product from the session cart. Removing a product
// that is not in the cart succeeds quietly.
func (h *ShopHandler) RemoveFromCart(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	crt := h.sessions.Cart(c)
	crt.Remove(id)
	if err := h.sessions.SaveCart(c, crt); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "removed from cart",
		"cart":    crt,
	})
}

// Checkout converts the session cart into a persisted order. The cart is
// cleared only after the order commit succeeds.
func (h *ShopHandler) Checkout(c echo.Context) error {
	var req CheckoutSubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	crt := h.sessions.Cart(c)
	order, err := h.checkout.Checkout(c.Request().Context(), crt, service.CheckoutRequest{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		return domainError(err)
	}

	if err := h.sessions.SaveCart(c, cart.New()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "order placed successfully",
		"order":   order,
	})
}

// OrderConfirmation returns a persisted order with its items.
func (h *ShopHandler) OrderConfirmation(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	order, err := h.checkout.GetOrder(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"order": order})
}
