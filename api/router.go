package api

import (
	"net/http"
	"priority1_quote_server/api/debug"
	"priority1_quote_server/api/health"
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/api/quotes"
	"priority1_quote_server/api/session"
	"priority1_quote_server/api/ui"
	"priority1_quote_server/config"
	"priority1_quote_server/services"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds request bodies; a shipment request is a few hundred bytes
const maxBodyBytes = 64 * 1024

func App(cfg *structs.Config, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	// create loggers
	mwLogger := config.NewLogger(cfg, false)
	standardLogger := config.NewLogger(cfg, true)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.CacheService, sm.SessionService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(maxBodyBytes))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before session / csrf)
	r.Use(mw.SetupCORS().Handler)

	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(
		ui.NewUIRoutesManager(standardLogger),
		health.NewHealthRoutesManager(sm.HealthService),
		session.NewSessionRoutesManager(standardLogger, sm.SessionService, cfg, mw),
		quotes.NewQuoteRoutesManager(standardLogger, sm.QuoteService, sm.SessionService, mw),
		debug.NewDebugRoutesManager(cfg, mw),
	).RegisterRoutes(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
