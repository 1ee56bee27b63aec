// Package repository defines data access for the marketplace state. The
// only implementation is an in-memory container seeded at startup; the
// interfaces keep the door open for a persistent backend.
package repository

import (
	"context"
	"errors"

	"markethub/internal/domain"
)

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderExists      = errors.New("order id already exists")
	ErrCustomerNotFound = errors.New("customer not found")
)

// StoreRepository defines the interface for store data access
type StoreRepository interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	FindStoreByID(ctx context.Context, id string) (*domain.Store, error)
	UpdateStore(ctx context.Context, store *domain.Store) error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	ListProductsByStore(ctx context.Context, storeID string) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*domain.Product, error)
	FindProductByID(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
}

// OrderRepository defines the interface for the order ledger. The ledger
// is append-only and ordered most-recent-first.
type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	ListOrdersByStore(ctx context.Context, storeID string) ([]*domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
}

// CartRepository defines the interface for per-customer cart lines. A
// customer with no saved cart has an empty one.
type CartRepository interface {
	GetCart(ctx context.Context, customerID string) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, customerID string, items []domain.CartItem) error
	ClearCart(ctx context.Context, customerID string) error
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	FindCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	CountCustomers(ctx context.Context) (int, error)
}
