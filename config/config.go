package config

import (
	"priority1_quote_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

const DefaultQuoterEndpoint = "https://api.priority1.com/v2/parcel/quotes/rates"

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = Load()
	})
	return configInstance
}

// Load builds a fresh configuration from the environment.
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "Priority1 Quote Demo"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8082"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			CookieDomain:   getEnvAsString("SERVER_COOKIE_DOMAIN", ""),
		},
		Cors: &structs.CorsConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:8082", "http://localhost:3000"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token"}),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "X-RateLimit-Remaining"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Cache: &structs.CacheConfig{
			Enabled:         getEnvAsBool("CACHE_ENABLED", false),
			Address:         getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
			Username:        getEnvAsString("CACHE_USERNAME", ""),
			Password:        getEnvAsString("CACHE_PASSWORD", ""),
			DB:              getEnvAsInt("CACHE_DB", 0),
			PoolSize:        getEnvAsInt("CACHE_POOL_SIZE", 10),
			MinIdleConns:    getEnvAsInt("CACHE_MIN_IDLE_CONNS", 2),
			MaxIdleConns:    getEnvAsInt("CACHE_MAX_IDLE_CONNS", 5),
			PoolTimeout:     getEnvAsTimeDuration("CACHE_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     getEnvAsTimeDuration("CACHE_IDLE_TIMEOUT", 5*time.Minute),
			DialTimeout:     getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    getEnvAsTimeDuration("CACHE_WRITE_TIMEOUT", 3*time.Second),
			MaxRetries:      getEnvAsInt("CACHE_MAX_RETRIES", 3),
			MinRetryBackoff: getEnvAsTimeDuration("CACHE_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: getEnvAsTimeDuration("CACHE_MAX_RETRY_BACKOFF", 512*time.Millisecond),
		},
		RateLimit: &structs.RateLimitConfig{
			Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", false),
			QuoteLimit:    getEnvAsInt("RATE_LIMIT_QUOTE_LIMIT", 10),
			QuoteWindow:   getEnvAsTimeDuration("RATE_LIMIT_QUOTE_WINDOW", time.Minute),
			GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL_LIMIT", 120),
			GeneralWindow: getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
		},
		Session: &structs.SessionConfig{
			Secret:     getEnvAsString("SESSION_SECRET", "default_session_secret"),
			TTL:        getEnvAsTimeDuration("SESSION_TTL", 2*time.Hour),
			CookieName: getEnvAsString("SESSION_COOKIE_NAME", "quote_session"),
		},
		Quoter: &structs.QuoterConfig{
			Mode:     getEnvAsString("QUOTER_MODE", "stub"),
			Endpoint: getEnvAsString("QUOTER_ENDPOINT", DefaultQuoterEndpoint),
			ApiKey:   getEnvAsString("QUOTER_API_KEY", ""),
			Timeout:  getEnvAsTimeDuration("QUOTER_TIMEOUT", 0),
		},
	}
}

func GetLogLevel(cfg *structs.Config) string {
	if IsProduction(cfg) {
		return "info"
	}
	return "debug"
}

func IsProduction(cfg *structs.Config) bool {
	return cfg.Server.Environment == "production"
}
