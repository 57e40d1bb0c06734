package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pricelink/supplier-mapping-service/internal/auth"
	"github.com/pricelink/supplier-mapping-service/internal/config"
	"github.com/pricelink/supplier-mapping-service/internal/delivery/http/handlers"
	"github.com/pricelink/supplier-mapping-service/internal/delivery/http/middleware"
)

type Handlers struct {
	Import     *handlers.ImportHandler
	Seller     *handlers.SellerHandler
	Auth       *handlers.AuthHandler
	Supplier   *handlers.SupplierHandler
	Moderation *handlers.ModerationHandler
	Analytics  *handlers.AnalyticsHandler
}

type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

func NewServer(cfg *config.MappingConfig, log *slog.Logger, sessions *auth.SessionManager, h Handlers) *Server {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(30 * time.Second))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Post("/import/price_items", h.Import.ImportPriceItems)

		r.Route("/seller", func(r chi.Router) {
			r.Get("/groups", h.Seller.Groups)
			r.Get("/suppliers", h.Seller.SearchSuppliers)
			r.Post("/mappings", h.Seller.CreateMapping)
			r.Post("/issues", h.Seller.CreateIssue)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(sessions))

				r.Get("/suppliers", h.Supplier.List)
				r.Post("/suppliers", h.Supplier.Create)
				r.Put("/suppliers/{supplierID}", h.Supplier.Update)
				r.Delete("/suppliers/{supplierID}", h.Supplier.Delete)

				r.Get("/mappings/pending", h.Moderation.Pending)
				r.Post("/mappings/{mappingID}/approve", h.Moderation.Approve)
				r.Post("/mappings/{mappingID}/reject", h.Moderation.Reject)
				r.Get("/moderation/history", h.Moderation.History)
				r.Get("/issues", h.Moderation.Issues)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/mappings", h.Analytics.ApprovedMappings)
			r.Get("/mappings/by_packet", h.Analytics.ApprovedByPacket)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("http server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
