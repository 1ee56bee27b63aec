package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"markethub/internal/domain"
	"markethub/internal/middleware"
	"markethub/internal/repository"
	"markethub/internal/service"
)

// customerHeader optionally overrides the active customer; the demo has
// a single seeded shopper used as the default.
const customerHeader = "X-Customer-ID"

// AddCartItemRequest represents the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateQuantityRequest represents a cart line quantity adjustment
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CheckoutRequest represents the checkout form payload
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=COD Card"`
}

// CustomerHandler serves the customer shopping surface: catalog
// browsing, cart management, checkout and order history.
type CustomerHandler struct {
	catalog           service.CatalogService
	cart              service.CartService
	orders            service.OrderService
	customers         repository.CustomerRepository
	defaultCustomerID string
	logger            *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(
	catalog service.CatalogService,
	cart service.CartService,
	orders service.OrderService,
	customers repository.CustomerRepository,
	defaultCustomerID string,
	logger *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		catalog:           catalog,
		cart:              cart,
		orders:            orders,
		customers:         customers,
		defaultCustomerID: defaultCustomerID,
		logger:            logger,
	}
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/customer", func(r chi.Router) {
		r.Get("/profile", h.Profile)
		r.Get("/stores", h.ListStores)
		r.Get("/stores/{storeID}", h.GetStore)
		r.Get("/stores/{storeID}/products", h.ListStoreProducts)
		r.Get("/products", h.ListProducts)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items/{productID}", h.UpdateQuantity)
		r.Delete("/cart/items/{productID}", h.RemoveCartItem)

		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{orderID}", h.GetOrder)
	})
}

func (h *CustomerHandler) customerID(r *http.Request) string {
	if id := r.Header.Get(customerHeader); id != "" {
		return id
	}
	return h.defaultCustomerID
}

// Profile returns the active customer record
func (h *CustomerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.FindCustomerByID(r.Context(), h.customerID(r))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, customer)
}

// ListStores returns every store on the marketplace
func (h *CustomerHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.catalog.ListStores(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, stores)
}

// GetStore returns a single store
func (h *CustomerHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.catalog.GetStore(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, store)
}

// ListStoreProducts returns one store's catalog
func (h *CustomerHandler) ListStoreProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListStoreProducts(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// ListProducts returns the catalog, filtered by the optional ?q= name
// search (case-insensitive substring).
func (h *CustomerHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetCart returns the cart with derived subtotal, shipping and total
func (h *CustomerHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Summary(r.Context(), h.customerID(r))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// AddCartItem adds a product to the cart, merging quantities per
// product id
func (h *CustomerHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	customerID := h.customerID(r)
	if err := h.cart.AddItem(r.Context(), customerID, req.ProductID, req.Quantity); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	summary, err := h.cart.Summary(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// UpdateQuantity adjusts a cart line by a delta; quantity never drops
// below one
func (h *CustomerHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	customerID := h.customerID(r)
	if err := h.cart.UpdateQuantity(r.Context(), customerID, chi.URLParam(r, "productID"), req.Delta); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	summary, err := h.cart.Summary(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// RemoveCartItem deletes a cart line
func (h *CustomerHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	customerID := h.customerID(r)
	if err := h.cart.RemoveItem(r.Context(), customerID, chi.URLParam(r, "productID")); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	summary, err := h.cart.Summary(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// Checkout converts the cart into an order. Empty carts are rejected.
func (h *CustomerHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), service.PlaceOrderInput{
		CustomerID:      h.customerID(r),
		CustomerName:    req.Name,
		ShippingAddress: req.Address,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("customer_id", order.CustomerID),
		zap.Float64("total", order.Total),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// ListOrders returns the customer's order history, most recent first
func (h *CustomerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListCustomerOrders(r.Context(), h.customerID(r))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder returns one of the customer's orders with its fulfillment
// timeline. Orders belonging to other customers read as not found.
func (h *CustomerHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if order.CustomerID != h.customerID(r) {
		middleware.RespondWithError(w, http.StatusNotFound, repository.ErrOrderNotFound.Error())
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}
