package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"markethub/internal/domain"
	"markethub/internal/repository"
)

var (
	ErrEmptyCart         = errors.New("cannot place an order with an empty cart")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

const timelineDateFormat = "Jan 2, 03:04 PM"

// Legal status transitions. Delivered and Cancelled are terminal.
var legalTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusProcessing: {domain.OrderStatusShipped, domain.OrderStatusCancelled},
	domain.OrderStatusShipped:    {domain.OrderStatusDelivered, domain.OrderStatusCancelled},
}

// PlaceOrderInput carries the checkout form fields.
type PlaceOrderInput struct {
	CustomerID      string
	CustomerName    string
	ShippingAddress string
	PaymentMethod   domain.PaymentMethod
}

// OrderService defines the business logic for the order ledger.
type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
	ListStoreOrders(ctx context.Context, storeID string) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
}

type orderService struct {
	orders   repository.OrderRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	shipping decimal.Decimal
	now      func() time.Time
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	products repository.ProductRepository,
	shippingFlatRate float64,
) OrderService {
	return &orderService{
		orders:   orders,
		carts:    carts,
		products: products,
		shipping: decimal.NewFromFloat(shippingFlatRate),
		now:      time.Now,
	}
}

// PlaceOrder snapshots the customer's cart into a new order, prepends it
// to the ledger, decrements sold stock and clears the cart. An empty
// cart is rejected. The order id is unique within the ledger; on the
// unlikely collision the id is regenerated.
func (s *orderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error) {
	items, err := s.carts.GetCart(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	placed := now.Format(timelineDateFormat)
	total := itemsSubtotal(items).Add(s.shipping)

	order := &domain.Order{
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		Items:           items,
		Total:           toAmount(total),
		Status:          domain.OrderStatusProcessing,
		PaymentMethod:   input.PaymentMethod,
		Date:            now.Format("2006-01-02"),
		ShippingAddress: input.ShippingAddress,
		Timeline: []domain.OrderStep{
			{Step: domain.StepOrderPlaced, Completed: true, Date: placed},
			{Step: domain.StepPaymentConfirmed, Completed: true, Date: placed},
			{Step: domain.StepProcessing, Completed: false},
			{Step: domain.StepShipped, Completed: false},
			{Step: domain.StepDelivered, Completed: false},
		},
	}

	for {
		order.ID = newOrderID()
		err = s.orders.InsertOrder(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrOrderExists) {
			return nil, fmt.Errorf("failed to insert order: %w", err)
		}
	}

	s.decrementStock(ctx, items)

	if err := s.carts.ClearCart(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListOrdersByCustomer(ctx, customerID)
}

func (s *orderService) ListStoreOrders(ctx context.Context, storeID string) ([]*domain.Order, error) {
	return s.orders.ListOrdersByStore(ctx, storeID)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindOrderByID(ctx, id)
}

// AdvanceStatus moves an order along the fulfillment graph:
// Processing→{Shipped,Cancelled}, Shipped→{Delivered,Cancelled}.
// Reaching Shipped or Delivered completes the matching timeline steps;
// cancellation leaves the remaining steps pending.
func (s *orderService) AdvanceStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	order.Status = next
	switch next {
	case domain.OrderStatusShipped:
		completeThrough(order, domain.StepShipped, s.now().Format(timelineDateFormat))
	case domain.OrderStatusDelivered:
		completeThrough(order, domain.StepDelivered, s.now().Format(timelineDateFormat))
	}

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// completeThrough marks every timeline step up to and including name as
// completed, timestamping only the newly completed ones.
func completeThrough(order *domain.Order, name, date string) {
	for i := range order.Timeline {
		if !order.Timeline[i].Completed {
			order.Timeline[i].Completed = true
			order.Timeline[i].Date = date
		}
		if order.Timeline[i].Step == name {
			return
		}
	}
}

// decrementStock reduces live stock for each sold line, clamped at zero.
// Products deleted between add-to-cart and checkout are skipped.
func (s *orderService) decrementStock(ctx context.Context, items []domain.CartItem) {
	for _, it := range items {
		product, err := s.products.FindProductByID(ctx, it.ID)
		if err != nil {
			continue
		}
		product.Stock = clampStock(product.Stock - it.Quantity)
		_ = s.products.UpdateProduct(ctx, product)
	}
}

func newOrderID() string {
	token := strings.ToUpper(uuid.NewString()[:8])
	return "ORD-" + token
}
