package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"markethub/internal/domain"
	"markethub/internal/repository"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)

// CartSummary is the customer's cart with its derived amounts. Shipping
// is a flat fee applied only when the cart is non-empty.
type CartSummary struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Shipping float64           `json:"shipping"`
	Total    float64           `json:"total"`
}

// CartService defines the business logic for the active customer's cart.
// The cart is keyed by product id; one line per product.
type CartService interface {
	Summary(ctx context.Context, customerID string) (*CartSummary, error)
	AddItem(ctx context.Context, customerID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, customerID, productID string, delta int) error
	RemoveItem(ctx context.Context, customerID, productID string) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	shipping decimal.Decimal
}

// NewCartService creates a new instance of CartService. shippingFlatRate
// is the flat fee charged on any non-empty cart.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, shippingFlatRate float64) CartService {
	return &cartService{
		carts:    carts,
		products: products,
		shipping: decimal.NewFromFloat(shippingFlatRate),
	}
}

func (s *cartService) Summary(ctx context.Context, customerID string) (*CartSummary, error) {
	items, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	subtotal := itemsSubtotal(items)
	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = s.shipping
	}

	return &CartSummary{
		Items:    items,
		Subtotal: toAmount(subtotal),
		Shipping: toAmount(shipping),
		Total:    toAmount(subtotal.Add(shipping)),
	}, nil
}

// AddItem merges quantity into an existing line for the product or
// inserts a new line snapshotting the product as it is right now.
// Requesting more than the live stock (counting what is already in the
// cart) is rejected.
func (s *cartService) AddItem(ctx context.Context, customerID, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}

	items, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	merged := false
	for i := range items {
		if items[i].ID == productID {
			if items[i].Quantity+quantity > product.Stock {
				return ErrInsufficientStock
			}
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		if quantity > product.Stock {
			return ErrInsufficientStock
		}
		items = append(items, domain.CartItem{Product: *product, Quantity: quantity})
	}

	return s.carts.SaveCart(ctx, customerID, items)
}

// UpdateQuantity applies a delta to an existing line, clamped so the
// quantity never drops below one. Removal is explicit via RemoveItem.
// Absent product ids are a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, customerID, productID string, delta int) error {
	items, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	for i := range items {
		if items[i].ID == productID {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			return s.carts.SaveCart(ctx, customerID, items)
		}
	}
	return nil
}

// RemoveItem deletes the line if present; no-op otherwise.
func (s *cartService) RemoveItem(ctx context.Context, customerID, productID string) error {
	items, err := s.carts.GetCart(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.carts.SaveCart(ctx, customerID, kept)
}
