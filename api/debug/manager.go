package debug

import (
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/config"
	"priority1_quote_server/structs"

	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	cfg *structs.Config
	mw  *middleware.Middleware
}

func NewDebugRoutesManager(cfg *structs.Config, mw *middleware.Middleware) *DebugRoutesManager {
	return &DebugRoutesManager{
		cfg: cfg,
		mw:  mw,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if !config.IsProduction(drm.cfg) {
		r.Route("/debug", func(r chi.Router) {
			r.Use(drm.mw.SessionMiddleware)
			r.Get("/session", drm.HandleListSlots)
			r.Get("/session/{slot}", drm.HandleGetSlot)
		})
	}
}
