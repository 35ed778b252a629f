package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hubsite/internal/cart"
	apperrors "hubsite/internal/errors"
	"hubsite/internal/mail"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

// CartLine is one materialized cart entry joined against the catalog.
type CartLine struct {
	Product  model.PetProduct `json:"product"`
	Quantity int              `json:"quantity"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

// CheckoutRequest carries the customer contact fields of the checkout form.
type CheckoutRequest struct {
	CustomerName string
	Email        string
	Phone        string
}

// CheckoutService materializes carts and converts them into orders.
type CheckoutService interface {
	Materialize(ctx context.Context, crt cart.Cart) ([]CartLine, decimal.Decimal, error)
	Checkout(ctx context.Context, crt cart.Cart, req CheckoutRequest) (*model.PetOrder, error)
	GetOrder(ctx context.Context, id uint) (*model.PetOrder, error)
}

type checkoutService struct {
	catalog CatalogService
	orders  repository.OrderRepository
	mailer  mail.Sink
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(catalog CatalogService, orders repository.OrderRepository, mailer mail.Sink) CheckoutService {
	return &checkoutService{catalog: catalog, orders: orders, mailer: mailer}
}

// Materialize joins cart entries against current catalog rows and totals
// them. Entries whose product no longer exists are dropped silently.
func (s *checkoutService) Materialize(ctx context.Context, crt cart.Cart) ([]CartLine, decimal.Decimal, error) {
	products, err := s.catalog.ProductsByIDs(ctx, crt.IDs())
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]CartLine, 0, len(products))
	total := decimal.Zero
	for _, p := range products {
		qty := crt.Quantity(p.ID)
		if qty < 1 {
			continue
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, CartLine{Product: p, Quantity: qty, Subtotal: subtotal})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}

// Checkout turns a non-empty cart into one order plus line items, persisted
// atomically. The caller clears the session cart only after this returns
// nil. Receipt mail failures are logged and swallowed.
func (s *checkoutService) Checkout(ctx context.Context, crt cart.Cart, req CheckoutRequest) (*model.PetOrder, error) {
	if crt.IsEmpty() {
		return nil, apperrors.ErrEmptyCart
	}
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return nil, apperrors.ErrMissingFields
	}

	lines, total, err := s.Materialize(ctx, crt)
	if err != nil {
		return nil, err
	}
	// Every cart entry pointed at a vanished product.
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	order := &model.PetOrder{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		TotalAmount:  total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, model.PetOrderItem{
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			PriceEach:   line.Product.Price,
		})
	}

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	subject := "Your pet shop order"
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nThanks for your order.\n\n", order.CustomerName)
	for _, item := range order.Items {
		fmt.Fprintf(&sb, "  %d x %s @ %s\n", item.Quantity, item.ProductName, item.PriceEach.StringFixed(2))
	}
	fmt.Fprintf(&sb, "\nTotal: %s\nReference: %s\n", order.TotalAmount.StringFixed(2), order.Reference)
	if err := s.mailer.Send(order.Email, subject, sb.String()); err != nil {
		log.Printf("order %s: receipt email failed: %v", order.Reference, err)
	}

	return order, nil
}

// GetOrder looks up an order with its items for the confirmation page.
func (s *checkoutService) GetOrder(ctx context.Context, id uint) (*model.PetOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}
