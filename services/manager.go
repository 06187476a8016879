package services

import (
	"priority1_quote_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService   *CacheService // nil when the cache is disabled
	SessionService *SessionService
	QuoteService   *QuoteService
	HealthService  *HealthService
}

// NewServiceManager wires the services for cfg. Sessions live in Redis when
// the cache is enabled and in process memory otherwise.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config) *ServiceManager {
	var cacheService *CacheService
	var store SessionStore

	if cfg.Cache.Enabled {
		cacheService = NewCacheService(logger, cfg)
		store = NewRedisSessionStore(cacheService, cfg.Session.TTL)
	} else {
		store = NewMemorySessionStore(cfg.Session.TTL)
	}

	return NewServiceManagerWith(logger, cfg, cacheService, store, NewRateQuoter(logger, cfg))
}

// NewServiceManagerWith wires the services around explicit dependencies.
func NewServiceManagerWith(logger *gecho.Logger, cfg *structs.Config, cacheService *CacheService, store SessionStore, quoter RateQuoter) *ServiceManager {
	return &ServiceManager{
		CacheService:   cacheService,
		SessionService: NewSessionService(logger, cfg, store),
		QuoteService:   NewQuoteService(logger, quoter),
		HealthService:  NewHealthService(logger, cacheService),
	}
}

// Close releases the connections held by the services.
func (sm *ServiceManager) Close() error {
	if sm.CacheService != nil {
		return sm.CacheService.Close()
	}
	return nil
}
