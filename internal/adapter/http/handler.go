package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP over the ledger and its award registry.
type Handler struct {
	svc      port.LedgerUseCase
	registry port.AwardRegistry
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. When reg is not
// nil request metrics are recorded into it and exposed on /metrics.
func NewHandler(svc port.LedgerUseCase, registry port.AwardRegistry, reg *prometheus.Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, registry: registry, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if reg != nil {
		r.Use(newRequestMetrics(reg).middleware)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ledger", h.handleOverview)
		r.Get("/accounts/{account}/payouts", h.handlePayouts)

		r.Route("/admins/{account}", func(r chi.Router) {
			r.Get("/", h.handleIsAdmin)
			r.With(h.requireCaller).Put("/", h.handleAssignAdmin)
			r.With(h.requireCaller).Delete("/", h.handleRevokeAdmin)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.With(h.requireCaller).Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Get("/{id}/status", h.handleCampaignStatus)
			r.With(h.requireCaller).Post("/{id}/donations", h.handleDonate)
			r.With(h.requireCaller).Post("/{id}/withdrawal", h.handleWithdraw)
		})
		r.Get("/archive/{id}", h.handleGetArchived)

		r.Get("/awards", h.handleAwards)
		r.Get("/awards/{id}", h.handleAward)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
