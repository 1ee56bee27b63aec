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
	ErrNegativePrice = errors.New("price must not be negative")
)

// ProductUpdate carries a partial edit; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *string
	Stock       *int
	Trending    *bool
}

// CatalogService defines the business logic over stores and products,
// plus the derived platform statistics.
type CatalogService interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*domain.Product, error)
	ListStoreProducts(ctx context.Context, storeID string) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error)
	UpdateStoreStatus(ctx context.Context, id string, status domain.StoreStatus) (*domain.Store, error)
	UpdateCommission(ctx context.Context, id string, rate float64) (*domain.Store, error)
	Stats(ctx context.Context) (*domain.PlatformStats, error)
}

type catalogService struct {
	stores    repository.StoreRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
) CatalogService {
	return &catalogService{
		stores:    stores,
		products:  products,
		orders:    orders,
		customers: customers,
	}
}

func (s *catalogService) ListStores(ctx context.Context) ([]*domain.Store, error) {
	return s.stores.ListStores(ctx)
}

func (s *catalogService) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	return s.stores.FindStoreByID(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *catalogService) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	return s.products.SearchProducts(ctx, query)
}

func (s *catalogService) ListStoreProducts(ctx context.Context, storeID string) ([]*domain.Product, error) {
	if _, err := s.stores.FindStoreByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.products.ListProductsByStore(ctx, storeID)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindProductByID(ctx, id)
}

// UpdateProduct merges the given fields into the existing record. Stock
// is clamped at zero; a negative price is rejected.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error) {
	product, err := s.products.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, ErrNegativePrice
		}
		product.Price = *update.Price
	}
	if update.Image != nil {
		product.Image = *update.Image
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Stock != nil {
		product.Stock = clampStock(*update.Stock)
	}
	if update.Trending != nil {
		product.Trending = *update.Trending
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// AdjustStock applies a stock delta, clamped so stock never drops below
// zero.
func (s *catalogService) AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error) {
	product, err := s.products.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Stock = clampStock(product.Stock + delta)
	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return product, nil
}

// UpdateStoreStatus replaces the store's status. Any status is reachable
// from any other; the literal itself is validated at the transport
// boundary.
func (s *catalogService) UpdateStoreStatus(ctx context.Context, id string, status domain.StoreStatus) (*domain.Store, error) {
	store, err := s.stores.FindStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store.Status = status
	if err := s.stores.UpdateStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update store status: %w", err)
	}
	return store, nil
}

// UpdateCommission replaces the store's commission rate, clamped to the
// [0,100] percentage range.
func (s *catalogService) UpdateCommission(ctx context.Context, id string, rate float64) (*domain.Store, error) {
	store, err := s.stores.FindStoreByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store.CommissionRate = clampCommission(rate)
	if err := s.stores.UpdateStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update commission: %w", err)
	}
	return store, nil
}

// Stats derives platform statistics from the current stores and orders.
// It is recomputed on every call; nothing is cached.
func (s *catalogService) Stats(ctx context.Context) (*domain.PlatformStats, error) {
	stores, err := s.stores.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	customers, err := s.customers.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	gmv := decimal.Zero
	for _, o := range orders {
		gmv = gmv.Add(decimal.NewFromFloat(o.Total))
	}

	revenue := decimal.Zero
	activeSellers := 0
	for _, st := range stores {
		if st.Status == domain.StoreStatusActive {
			activeSellers++
		}

		storeRevenue := decimal.Zero
		for _, o := range orders {
			if o.ContainsStore(st.ID) {
				storeRevenue = storeRevenue.Add(decimal.NewFromFloat(o.Total))
			}
		}
		rate := decimal.NewFromFloat(st.CommissionRate).Div(decimal.NewFromInt(100))
		revenue = revenue.Add(storeRevenue.Mul(rate))
	}

	return &domain.PlatformStats{
		TotalGMV:        toAmount(gmv),
		PlatformRevenue: toAmount(revenue),
		ActiveSellers:   activeSellers,
		TotalOrders:     len(orders),
		TotalCustomers:  customers,
	}, nil
}

func clampStock(stock int) int {
	if stock < 0 {
		return 0
	}
	return stock
}

func clampCommission(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
