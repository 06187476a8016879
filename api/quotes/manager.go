package quotes

import (
	"net/http"
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/services"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type QuoteRoutesManager struct {
	logger         *gecho.Logger
	quoteService   *services.QuoteService
	sessionService *services.SessionService
	mw             *middleware.Middleware
}

func NewQuoteRoutesManager(
	logger *gecho.Logger,
	quoteService *services.QuoteService,
	sessionService *services.SessionService,
	mw *middleware.Middleware,
) *QuoteRoutesManager {
	return &QuoteRoutesManager{
		logger:         logger,
		quoteService:   quoteService,
		sessionService: sessionService,
		mw:             mw,
	}
}

func (qrm *QuoteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.Use(qrm.mw.SessionMiddleware)

		r.Get("/request", qrm.HandleGetRequest)
		r.Get("/options", qrm.HandleGetOptions)
		r.Get("/draft", qrm.HandleGetDraft)

		// State-changing phases
		r.Group(func(r chi.Router) {
			r.Use(qrm.mw.CSRFMiddleware())
			r.Post("/request", qrm.HandleSubmitRequest)
			r.Post("/generate", qrm.HandleGenerateQuote)
			r.Post("/select", qrm.HandleSelectOption)
		})
	})
}

// session returns the request's session; SessionMiddleware guarantees one.
func (qrm *QuoteRoutesManager) session(w http.ResponseWriter, r *http.Request) (*structs.Session, bool) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		qrm.logger.Error("Session missing from request context", gecho.Field("path", r.URL.Path))
		gecho.InternalServerError(w, gecho.Send())
		return nil, false
	}
	return session, true
}
