package httpadapter

import (
	"log/slog"
	"net/http"

	"affiliate-escrow/internal/config/configs"
	"affiliate-escrow/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SignerHeader carries the hex address of the party that signed the
// request. Verifying it is the job of whatever sits in front of the
// service; the handler trusts it.
const SignerHeader = "X-Signer"

// Handler is the inbound HTTP adapter. It decodes requests into use case
// calls and renders results and errors as JSON.
type Handler struct {
	svc      port.EscrowUseCase
	logger   *slog.Logger
	router   chi.Router
	currency configs.Currency
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler, chi.Router)

// WithCurrency sets how amounts are displayed.
func WithCurrency(c configs.Currency) HandlerOption {
	return func(h *Handler, _ chi.Router) { h.currency = c }
}

// WithMetrics serves metrics at path.
func WithMetrics(path string, metrics http.Handler) HandlerOption {
	return func(_ *Handler, r chi.Router) { r.Method(http.MethodGet, path, metrics) }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.EscrowUseCase, logger *slog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		currency: configs.Currency{Decimals: 9, Symbol: "SOL"},
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	for _, opt := range opts {
		opt(h, r)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{campaignID}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Get("/vault", h.handleGetVault)
			r.Get("/events", h.handleListEvents)
			r.Post("/links", h.handleCreateAffiliateLink)
		})
		r.Get("/links/{linkID}", h.handleGetAffiliateLink)
		r.Post("/settlements", h.handleProcessAffiliateMint)
		r.Get("/accounts/{address}", h.handleGetAccount)
		r.Get("/assets/{asset}/holders/{holder}", h.handleGetHolding)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
