package repository

import (
	"context"
	"strings"
	"sync"

	"markethub/internal/domain"
)

// MemoryStore is the single mutable state container backing every
// repository interface. One lock guards all state so each mutation is
// applied atomically and immediately visible to subsequent reads.
type MemoryStore struct {
	mu        sync.RWMutex
	customers []domain.Customer
	stores    []domain.Store
	products  []domain.Product
	orders    []domain.Order
	carts     map[string][]domain.CartItem
}

// NewMemoryStore builds a container over the given seed slices. The
// slices are copied; callers keep ownership of their arguments.
func NewMemoryStore(customers []domain.Customer, stores []domain.Store, products []domain.Product, orders []domain.Order) *MemoryStore {
	m := &MemoryStore{
		customers: append([]domain.Customer(nil), customers...),
		stores:    append([]domain.Store(nil), stores...),
		products:  append([]domain.Product(nil), products...),
		orders:    make([]domain.Order, 0, len(orders)),
		carts:     make(map[string][]domain.CartItem),
	}
	for i := range orders {
		m.orders = append(m.orders, copyOrder(&orders[i]))
	}
	return m
}

var (
	_ StoreRepository    = (*MemoryStore)(nil)
	_ ProductRepository  = (*MemoryStore)(nil)
	_ OrderRepository    = (*MemoryStore)(nil)
	_ CartRepository     = (*MemoryStore)(nil)
	_ CustomerRepository = (*MemoryStore)(nil)
)

func (m *MemoryStore) ListStores(ctx context.Context) ([]*domain.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Store, 0, len(m.stores))
	for i := range m.stores {
		s := m.stores[i]
		out = append(out, &s)
	}
	return out, nil
}

func (m *MemoryStore) FindStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.stores {
		if m.stores[i].ID == id {
			s := m.stores[i]
			return &s, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (m *MemoryStore) UpdateStore(ctx context.Context, store *domain.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.stores {
		if m.stores[i].ID == store.ID {
			m.stores[i] = *store
			return nil
		}
	}
	return ErrStoreNotFound
}

func (m *MemoryStore) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0, len(m.products))
	for i := range m.products {
		p := m.products[i]
		out = append(out, &p)
	}
	return out, nil
}

func (m *MemoryStore) ListProductsByStore(ctx context.Context, storeID string) ([]*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*domain.Product{}
	for i := range m.products {
		if m.products[i].StoreID == storeID {
			p := m.products[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindProductByID(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *MemoryStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = *product
			return nil
		}
	}
	return ErrProductNotFound
}

// InsertOrder prepends the order so listings stay most-recent-first. A
// duplicate id is rejected so callers can regenerate and retry.
func (m *MemoryStore) InsertOrder(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == order.ID {
			return ErrOrderExists
		}
	}
	m.orders = append([]domain.Order{copyOrder(order)}, m.orders...)
	return nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, 0, len(m.orders))
	for i := range m.orders {
		o := copyOrder(&m.orders[i])
		out = append(out, &o)
	}
	return out, nil
}

func (m *MemoryStore) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*domain.Order{}
	for i := range m.orders {
		if m.orders[i].CustomerID == customerID {
			o := copyOrder(&m.orders[i])
			out = append(out, &o)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListOrdersByStore(ctx context.Context, storeID string) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*domain.Order{}
	for i := range m.orders {
		if m.orders[i].ContainsStore(storeID) {
			o := copyOrder(&m.orders[i])
			out = append(out, &o)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.orders {
		if m.orders[i].ID == id {
			o := copyOrder(&m.orders[i])
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (m *MemoryStore) UpdateOrder(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == order.ID {
			m.orders[i] = copyOrder(order)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (m *MemoryStore) GetCart(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.CartItem(nil), m.carts[customerID]...), nil
}

func (m *MemoryStore) SaveCart(ctx context.Context, customerID string, items []domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[customerID] = append([]domain.CartItem(nil), items...)
	return nil
}

func (m *MemoryStore) ClearCart(ctx context.Context, customerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, customerID)
	return nil
}

func (m *MemoryStore) FindCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.customers {
		if m.customers[i].ID == id {
			c := m.customers[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (m *MemoryStore) CountCustomers(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.customers), nil
}

// SearchProducts returns products whose name contains the query,
// case-insensitively. An empty query matches everything.
func (m *MemoryStore) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.ListProducts(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*domain.Product{}
	for i := range m.products {
		if strings.Contains(strings.ToLower(m.products[i].Name), query) {
			p := m.products[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func copyOrder(o *domain.Order) domain.Order {
	out := *o
	out.Items = append([]domain.CartItem(nil), o.Items...)
	out.Timeline = append([]domain.OrderStep(nil), o.Timeline...)
	return out
}
