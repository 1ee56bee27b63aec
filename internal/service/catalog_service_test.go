package service

import (
	"context"
	"errors"
	"testing"

	"markethub/internal/domain"
	"markethub/internal/repository"
)

func newCatalog(t *testing.T) (*repository.MemoryStore, CatalogService) {
	t.Helper()
	store := newTestStore()
	return store, NewCatalogService(store, store, store, store)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	// p6 starts at 8.
	product, err := catalog.AdjustStock(ctx, "p6", -1)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if product.Stock != 7 {
		t.Errorf("expected stock 7, got %d", product.Stock)
	}

	product, err = catalog.AdjustStock(ctx, "p6", -100)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if product.Stock != 0 {
		t.Errorf("expected clamp at 0, got %d", product.Stock)
	}

	// Decrementing at zero stays at zero.
	product, err = catalog.AdjustStock(ctx, "p6", -1)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if product.Stock != 0 {
		t.Errorf("expected stock to stay 0, got %d", product.Stock)
	}
}

func TestUpdateCommissionClamps(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	tests := []struct {
		rate float64
		want float64
	}{
		{150, 100},
		{-5, 0},
		{55, 55},
	}
	for _, tt := range tests {
		store, err := catalog.UpdateCommission(ctx, "s1", tt.rate)
		if err != nil {
			t.Fatalf("update commission %v failed: %v", tt.rate, err)
		}
		if store.CommissionRate != tt.want {
			t.Errorf("rate %v: expected %v, got %v", tt.rate, tt.want, store.CommissionRate)
		}
	}

	if _, err := catalog.UpdateCommission(ctx, "nope", 10); !errors.Is(err, repository.ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestUpdateStoreStatus(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	store, err := catalog.UpdateStoreStatus(ctx, "s5", domain.StoreStatusActive)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if store.Status != domain.StoreStatusActive {
		t.Errorf("expected Active, got %s", store.Status)
	}

	// Any status is reachable from any other.
	store, err = catalog.UpdateStoreStatus(ctx, "s5", domain.StoreStatusSuspended)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if store.Status != domain.StoreStatusSuspended {
		t.Errorf("expected Suspended, got %s", store.Status)
	}
}

func TestUpdateProductMergesPartialFields(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	name := "Organic Cotton Tee"
	price := 34.99
	product, err := catalog.UpdateProduct(ctx, "p1", ProductUpdate{Name: &name, Price: &price})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if product.Name != name || product.Price != price {
		t.Errorf("edited fields not applied: %+v", product)
	}
	// Untouched fields survive the merge.
	if product.Stock != 50 || product.Category != "Fashion" || !product.Trending {
		t.Errorf("unrelated fields changed: %+v", product)
	}

	negative := -1.0
	if _, err := catalog.UpdateProduct(ctx, "p1", ProductUpdate{Price: &negative}); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("expected ErrNegativePrice, got %v", err)
	}

	below := -10
	product, err = catalog.UpdateProduct(ctx, "p1", ProductUpdate{Stock: &below})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if product.Stock != 0 {
		t.Errorf("expected stock clamp at 0, got %d", product.Stock)
	}
}

func TestSearchProducts(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	results, err := catalog.SearchProducts(ctx, "shirt")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p1" {
		t.Errorf("expected [p1] for %q, got %d results", "shirt", len(results))
	}

	// Matching is case-insensitive.
	upper, _ := catalog.SearchProducts(ctx, "SHIRT")
	if len(upper) != 1 {
		t.Errorf("expected case-insensitive match, got %d results", len(upper))
	}

	all, _ := catalog.SearchProducts(ctx, "")
	if len(all) != 10 {
		t.Errorf("empty query should return all 10 products, got %d", len(all))
	}

	none, _ := catalog.SearchProducts(ctx, "zzz")
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestStatsOverEmptyState(t *testing.T) {
	store := repository.NewMemoryStore(nil, nil, nil, nil)
	catalog := NewCatalogService(store, store, store, store)

	stats, err := catalog.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalGMV != 0 || stats.PlatformRevenue != 0 || stats.ActiveSellers != 0 || stats.TotalOrders != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestStatsOverSeedData(t *testing.T) {
	_, catalog := newCatalog(t)

	stats, err := catalog.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	// GMV = 359.97 + 45.00
	if stats.TotalGMV != 404.97 {
		t.Errorf("expected GMV 404.97, got %v", stats.TotalGMV)
	}
	// ORD-5521 (359.97) spans s1 (10%) and s2 (8%); ORD-8829 (45.00)
	// belongs to s4 (15%): 35.997 + 28.7976 + 6.75 = 71.5446
	if stats.PlatformRevenue != 71.54 {
		t.Errorf("expected platform revenue 71.54, got %v", stats.PlatformRevenue)
	}
	// s5 is Pending, the other four are Active.
	if stats.ActiveSellers != 4 {
		t.Errorf("expected 4 active sellers, got %d", stats.ActiveSellers)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", stats.TotalOrders)
	}
	if stats.TotalCustomers != 1 {
		t.Errorf("expected 1 customer, got %d", stats.TotalCustomers)
	}
}

func TestStatsAreRecomputed(t *testing.T) {
	_, catalog := newCatalog(t)
	ctx := context.Background()

	before, _ := catalog.Stats(ctx)
	if _, err := catalog.UpdateCommission(ctx, "s1", 50); err != nil {
		t.Fatalf("update commission failed: %v", err)
	}
	after, _ := catalog.Stats(ctx)

	if after.PlatformRevenue <= before.PlatformRevenue {
		t.Errorf("stats not recomputed: %v -> %v", before.PlatformRevenue, after.PlatformRevenue)
	}
}

func TestListStoreProductsUnknownStore(t *testing.T) {
	_, catalog := newCatalog(t)

	_, err := catalog.ListStoreProducts(context.Background(), "nope")
	if !errors.Is(err, repository.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
