package middleware

import (
	"priority1_quote_server/config"
	"priority1_quote_server/lib"
	"priority1_quote_server/services"
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg            *structs.Config
	logger         *gecho.Logger
	cacheService   *services.CacheService
	sessionService *services.SessionService
}

// NewMiddleware builds the middleware set. cacheService may be nil, which
// disables rate limiting.
func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService *services.CacheService, sessionService *services.SessionService) *Middleware {
	return &Middleware{
		cfg:            cfg,
		logger:         logger,
		cacheService:   cacheService,
		sessionService: sessionService,
	}
}

// CookieOptions returns the cookie attributes for the configured environment.
func (mw *Middleware) CookieOptions() lib.CookieOptions {
	return lib.CookieOptions{
		Production: config.IsProduction(mw.cfg),
		Domain:     mw.cfg.Server.CookieDomain,
	}
}
