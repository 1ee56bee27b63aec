package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"markethub/internal/middleware"
	"markethub/internal/repository"
	"markethub/internal/service"
)

// AdjustStockRequest represents a ±delta stock adjustment
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// EditProductRequest represents a partial product edit; omitted fields
// are left untouched.
type EditProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Trending    *bool    `json:"trending"`
}

// SyncResponse acknowledges a completed inventory sync
type SyncResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// SellerHandler serves the seller inventory panel: the store's own
// products and orders, stock adjustments and the external inventory
// sync trigger.
type SellerHandler struct {
	catalog service.CatalogService
	orders  service.OrderService
	sync    service.SyncService
	logger  *zap.Logger
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(catalog service.CatalogService, orders service.OrderService, sync service.SyncService, logger *zap.Logger) *SellerHandler {
	return &SellerHandler{
		catalog: catalog,
		orders:  orders,
		sync:    sync,
		logger:  logger,
	}
}

// RegisterRoutes registers all seller routes
func (h *SellerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/seller/{storeID}", func(r chi.Router) {
		r.Get("/store", h.GetStore)
		r.Get("/products", h.ListProducts)
		r.Get("/orders", h.ListOrders)
		r.Post("/products/{productID}/stock", h.AdjustStock)
		r.Put("/products/{productID}", h.EditProduct)
		r.Post("/sync", h.SyncInventory)
	})
}

// GetStore returns the seller's own store record
func (h *SellerHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.catalog.GetStore(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// ListProducts returns the store's own products
func (h *SellerHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListStoreProducts(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListOrders returns orders containing at least one of the store's items
func (h *SellerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListStoreOrders(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// AdjustStock applies a stock delta, clamped so stock never goes
// negative
func (h *SellerHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	productID := chi.URLParam(r, "productID")
	if !h.ownsProduct(w, r, productID) {
		return
	}

	product, err := h.catalog.AdjustStock(r.Context(), productID, req.Delta)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Stock adjusted",
		zap.String("product_id", product.ID),
		zap.Int("delta", req.Delta),
		zap.Int("stock", product.Stock),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// EditProduct merges the given fields into the product record
func (h *SellerHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	var req EditProductRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	productID := chi.URLParam(r, "productID")
	if !h.ownsProduct(w, r, productID) {
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), productID, service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Stock:       req.Stock,
		Trending:    req.Trending,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// SyncInventory invokes the external commerce-platform sync and waits
// for its acknowledgement. No local state changes.
func (h *SellerHandler) SyncInventory(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	if err := h.sync.SyncInventory(r.Context(), storeID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Inventory sync acknowledged", zap.String("store_id", storeID))
	middleware.RespondWithJSON(w, http.StatusOK, SyncResponse{Status: "synced", Store: storeID})
}

// ownsProduct verifies the product belongs to the route's store. A
// product from another store reads as not found.
func (h *SellerHandler) ownsProduct(w http.ResponseWriter, r *http.Request, productID string) bool {
	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return false
	}
	if product.StoreID != chi.URLParam(r, "storeID") {
		middleware.RespondWithError(w, http.StatusNotFound, repository.ErrProductNotFound.Error())
		return false
	}
	return true
}
