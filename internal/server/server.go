package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"markethub/internal/config"
	custommiddleware "markethub/internal/middleware"
	"markethub/internal/platform"
	"markethub/internal/repository"
	"markethub/internal/service"
	"markethub/internal/transport"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer wires the role surfaces over the shared state container.
func NewServer(cfg *config.Config, logger *zap.Logger, store *repository.MemoryStore) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize services over the shared in-memory state
	catalogService := service.NewCatalogService(store, store, store, store)
	cartService := service.NewCartService(store, store, cfg.Market.ShippingFlatRate)
	orderService := service.NewOrderService(store, store, store, cfg.Market.ShippingFlatRate)
	syncService := service.NewSyncService(store, platform.NewStubClient(cfg.Market.SyncDelay))

	// Initialize handlers, one per role surface
	customerHandler := transport.NewCustomerHandler(catalogService, cartService, orderService, store, cfg.Market.DefaultCustomerID, logger)
	sellerHandler := transport.NewSellerHandler(catalogService, orderService, syncService, logger)
	adminHandler := transport.NewAdminHandler(catalogService, orderService, logger)

	// Register routes
	customerHandler.RegisterRoutes(router)
	sellerHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
