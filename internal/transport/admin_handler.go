package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"markethub/internal/domain"
	"markethub/internal/middleware"
	"markethub/internal/service"
)

// UpdateStoreStatusRequest represents an approve/suspend action
type UpdateStoreStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Pending Suspended"`
}

// UpdateCommissionRequest represents a commission rate change
type UpdateCommissionRequest struct {
	Rate float64 `json:"rate" validate:"gte=0,lte=100"`
}

// AdvanceOrderRequest represents an order fulfillment transition
type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=Shipped Delivered Cancelled"`
}

// AdminHandler serves the marketplace console: aggregate statistics,
// store moderation and the global order feed.
type AdminHandler struct {
	catalog service.CatalogService
	orders  service.OrderService
	logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(catalog service.CatalogService, orders service.OrderService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		orders:  orders,
		logger:  logger,
	}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/stats", h.Stats)
		r.Get("/stores", h.ListStores)
		r.Patch("/stores/{storeID}/status", h.UpdateStoreStatus)
		r.Patch("/stores/{storeID}/commission", h.UpdateCommission)
		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{orderID}/status", h.AdvanceOrder)
	})
}

// Stats returns platform statistics derived from the current state
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// ListStores returns every store for moderation
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.catalog.ListStores(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, stores)
}

// UpdateStoreStatus approves, suspends or parks a store. Any status is
// reachable from any other.
func (h *AdminHandler) UpdateStoreStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStoreStatusRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	store, err := h.catalog.UpdateStoreStatus(r.Context(), chi.URLParam(r, "storeID"), domain.StoreStatus(req.Status))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Store status updated",
		zap.String("store_id", store.ID),
		zap.String("status", string(store.Status)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// UpdateCommission sets a store's commission rate; the service clamps
// the value to the [0,100] range.
func (h *AdminHandler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	var req UpdateCommissionRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	store, err := h.catalog.UpdateCommission(r.Context(), chi.URLParam(r, "storeID"), req.Rate)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Commission updated",
		zap.String("store_id", store.ID),
		zap.Float64("rate", store.CommissionRate),
	)
	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// ListOrders returns every order on the platform, most recent first
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// AdvanceOrder moves an order along its fulfillment timeline; illegal
// transitions are rejected.
func (h *AdminHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req AdvanceOrderRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	order, err := h.orders.AdvanceStatus(r.Context(), chi.URLParam(r, "orderID"), domain.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Order status advanced",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, order)
}
