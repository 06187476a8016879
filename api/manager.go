package api

import (
	"priority1_quote_server/api/debug"
	"priority1_quote_server/api/health"
	"priority1_quote_server/api/quotes"
	"priority1_quote_server/api/session"
	"priority1_quote_server/api/ui"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	uiRoutes      *ui.UIRoutesManager
	healthRoutes  *health.HealthRoutesManager
	sessionRoutes *session.SessionRoutesManager
	quoteRoutes   *quotes.QuoteRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	uiRoutes *ui.UIRoutesManager,
	healthRoutes *health.HealthRoutesManager,
	sessionRoutes *session.SessionRoutesManager,
	quoteRoutes *quotes.QuoteRoutesManager,
	debugRoutes *debug.DebugRoutesManager,
) *routerManager {
	return &routerManager{
		uiRoutes:      uiRoutes,
		healthRoutes:  healthRoutes,
		sessionRoutes: sessionRoutes,
		quoteRoutes:   quoteRoutes,
		debugRoutes:   debugRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.uiRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.sessionRoutes.RegisterRoutes(r)
	rm.quoteRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
