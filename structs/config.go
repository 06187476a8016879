package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Session   *SessionConfig
	Quoter    *QuoterConfig
}

type ServerConfig struct {
	AppName        string        // Priority1 Quote Demo
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
	CookieDomain   string        // empty for host-only cookies
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type CacheConfig struct {
	Enabled  bool
	Address  string
	Username string
	Password string
	DB       int

	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	QuoteLimit    int // outbound quote requests per window
	QuoteWindow   time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

// QuoterConfig selects and configures the rate-quoting collaborator.
type QuoterConfig struct {
	Mode     string // stub, live
	Endpoint string
	ApiKey   string
	Timeout  time.Duration // zero keeps the transport default
}
