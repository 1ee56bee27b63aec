package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"markethub/internal/domain"
	"markethub/internal/repository"
)

func newOrderEnv(t *testing.T) (*repository.MemoryStore, CartService, OrderService) {
	t.Helper()
	store := newTestStore()
	cart := NewCartService(store, store, testShipping)
	orders := NewOrderService(store, store, store, testShipping)
	return store, cart, orders
}

func checkoutInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerID:      "c1",
		CustomerName:    "Alex Thompson",
		ShippingAddress: "456 Oak Lane, Seattle, WA 98101",
		PaymentMethod:   domain.PaymentMethodCard,
	}
}

func TestPlaceOrderComputesTotalAndClearsCart(t *testing.T) {
	_, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	// p1 = 29.99 ×2, p3 = 299.99 ×1, shipping 5.00
	if err := cart.AddItem(ctx, "c1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cart.AddItem(ctx, "c1", "p3", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := orders.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Total != 364.97 {
		t.Errorf("expected total 364.97, got %v", order.Total)
	}
	if order.Status != domain.OrderStatusProcessing {
		t.Errorf("expected Processing, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Errorf("expected 2 lines, got %d", len(order.Items))
	}

	summary, _ := cart.Summary(ctx, "c1")
	if len(summary.Items) != 0 {
		t.Errorf("cart should be empty after checkout, has %d lines", len(summary.Items))
	}

	// New orders go to the head of the ledger, seed orders behind.
	all, _ := orders.ListOrders(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 orders in ledger, got %d", len(all))
	}
	if all[0].ID != order.ID {
		t.Errorf("new order should be first, got %s", all[0].ID)
	}
}

func TestPlaceOrderTimeline(t *testing.T) {
	_, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	if err := cart.AddItem(ctx, "c1", "p7", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orders.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	want := domain.TimelineSteps()
	if len(order.Timeline) != len(want) {
		t.Fatalf("expected %d timeline steps, got %d", len(want), len(order.Timeline))
	}
	for i, step := range order.Timeline {
		if step.Step != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], step.Step)
		}
		completed := i < 2
		if step.Completed != completed {
			t.Errorf("step %q: expected completed=%v", step.Step, completed)
		}
		if completed && step.Date == "" {
			t.Errorf("completed step %q has no timestamp", step.Step)
		}
		if !completed && step.Date != "" {
			t.Errorf("pending step %q has timestamp %q", step.Step, step.Date)
		}
	}
}

func TestPlaceOrderEmptyCartRejected(t *testing.T) {
	_, _, orders := newOrderEnv(t)
	ctx := context.Background()

	before, _ := orders.ListOrders(ctx)
	_, err := orders.PlaceOrder(ctx, checkoutInput())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	after, _ := orders.ListOrders(ctx)
	if len(after) != len(before) {
		t.Errorf("ledger grew on rejected checkout: %d -> %d", len(before), len(after))
	}
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	store, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	if err := cart.AddItem(ctx, "c1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := orders.PlaceOrder(ctx, checkoutInput()); err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	product, _ := store.FindProductByID(ctx, "p1")
	if product.Stock != 48 {
		t.Errorf("expected stock 48 after selling 2 of 50, got %d", product.Stock)
	}
}

func TestProperty_OrderIDsNeverCollide(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sequential placements yield unique ids", prop.ForAll(
		func(count int) bool {
			_, cart, orders := newOrderEnv(t)
			ctx := context.Background()

			seen := make(map[string]bool)
			for i := 0; i < count; i++ {
				if err := cart.AddItem(ctx, "c1", "p8", 1); err != nil {
					return false
				}
				order, err := orders.PlaceOrder(ctx, checkoutInput())
				if err != nil {
					return false
				}
				if seen[order.ID] {
					return false
				}
				seen[order.ID] = true
			}
			return true
		},
		gen.IntRange(2, 20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAdvanceStatusFollowsGraph(t *testing.T) {
	_, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	if err := cart.AddItem(ctx, "c1", "p5", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	placed, err := orders.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// Processing -> Delivered skips Shipped and must be rejected.
	if _, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	shipped, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusShipped)
	if err != nil {
		t.Fatalf("ship failed: %v", err)
	}
	if shipped.Status != domain.OrderStatusShipped {
		t.Errorf("expected Shipped, got %s", shipped.Status)
	}
	// Shipping completes the Processing and Shipped steps.
	for i, step := range shipped.Timeline {
		wantCompleted := i < 4
		if step.Completed != wantCompleted {
			t.Errorf("after shipping, step %q completed=%v, want %v", step.Step, step.Completed, wantCompleted)
		}
	}

	delivered, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("deliver failed: %v", err)
	}
	for _, step := range delivered.Timeline {
		if !step.Completed {
			t.Errorf("after delivery, step %q still pending", step.Step)
		}
	}

	// Delivered is terminal.
	if _, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected terminal Delivered to reject transitions, got %v", err)
	}
}

func TestAdvanceStatusCancellation(t *testing.T) {
	_, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	if err := cart.AddItem(ctx, "c1", "p10", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	placed, err := orders.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	cancelled, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.OrderStatusCancelled {
		t.Errorf("expected Cancelled, got %s", cancelled.Status)
	}
	// Cancellation leaves the remaining fulfillment steps pending.
	for i, step := range cancelled.Timeline {
		wantCompleted := i < 2
		if step.Completed != wantCompleted {
			t.Errorf("cancelled order step %q completed=%v, want %v", step.Step, step.Completed, wantCompleted)
		}
	}

	if _, err := orders.AdvanceStatus(ctx, placed.ID, domain.OrderStatusShipped); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected terminal Cancelled to reject transitions, got %v", err)
	}
}

func TestAdvanceStatusUnknownOrder(t *testing.T) {
	_, _, orders := newOrderEnv(t)

	_, err := orders.AdvanceStatus(context.Background(), "ORD-MISSING", domain.OrderStatusShipped)
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderQueries(t *testing.T) {
	_, _, orders := newOrderEnv(t)
	ctx := context.Background()

	// Seed: ORD-5521 holds s1+s2 items, ORD-8829 holds an s4 item.
	byStore, _ := orders.ListStoreOrders(ctx, "s1")
	if len(byStore) != 1 || byStore[0].ID != "ORD-5521" {
		t.Errorf("expected [ORD-5521] for s1, got %v", orderIDs(byStore))
	}
	byStore, _ = orders.ListStoreOrders(ctx, "s4")
	if len(byStore) != 1 || byStore[0].ID != "ORD-8829" {
		t.Errorf("expected [ORD-8829] for s4, got %v", orderIDs(byStore))
	}
	byStore, _ = orders.ListStoreOrders(ctx, "s5")
	if len(byStore) != 0 {
		t.Errorf("expected no orders for s5, got %v", orderIDs(byStore))
	}

	byCustomer, _ := orders.ListCustomerOrders(ctx, "c1")
	if len(byCustomer) != 2 {
		t.Errorf("expected 2 seeded orders for c1, got %d", len(byCustomer))
	}
}

func TestOrderSnapshotIsDecoupled(t *testing.T) {
	store, cart, orders := newOrderEnv(t)
	ctx := context.Background()

	if err := cart.AddItem(ctx, "c1", "p1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	placed, err := orders.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	// Repricing the live product must not rewrite order history.
	product, _ := store.FindProductByID(ctx, "p1")
	product.Price = 999.99
	if err := store.UpdateProduct(ctx, product); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := orders.GetOrder(ctx, placed.ID)
	if got.Items[0].Price != 29.99 {
		t.Errorf("order snapshot changed with live product: %v", got.Items[0].Price)
	}
	if got.Total != placed.Total {
		t.Errorf("order total changed: %v -> %v", placed.Total, got.Total)
	}
}

func TestPlaceOrderDateFormats(t *testing.T) {
	store, cart, _ := newOrderEnv(t)
	ctx := context.Background()

	fixed := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	svc := &orderService{
		orders:   store,
		carts:    store,
		products: store,
		shipping: decimal.NewFromFloat(testShipping),
		now:      func() time.Time { return fixed },
	}

	if err := cart.AddItem(ctx, "c1", "p2", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.PlaceOrder(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.Date != "2024-06-01" {
		t.Errorf("expected date 2024-06-01, got %s", order.Date)
	}
	if order.Timeline[0].Date != "Jun 1, 02:30 PM" {
		t.Errorf("unexpected timeline timestamp: %s", order.Timeline[0].Date)
	}
}

func orderIDs(orders []*domain.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}
