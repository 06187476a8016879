package session

import (
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/services"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SessionRoutesManager struct {
	logger         *gecho.Logger
	sessionService *services.SessionService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewSessionRoutesManager(
	logger *gecho.Logger,
	sessionService *services.SessionService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *SessionRoutesManager {
	return &SessionRoutesManager{
		logger:         logger,
		sessionService: sessionService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (srm *SessionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Use(srm.mw.SessionMiddleware)

		// Must be called before any state-changing route
		r.Get("/", srm.HandleGetSession)

		r.Group(func(r chi.Router) {
			r.Use(srm.mw.CSRFMiddleware())
			r.Delete("/", srm.HandleDeleteSession)
		})
	})
}
