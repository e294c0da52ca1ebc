package middleware

import (
	"jasper/pkg/log"
)

// Config configures the shared HTTP middleware.
type Config struct {
	RateLimitEnabled  bool
	RequestsPerMinute int
	Burst             int
	MaxClients        int
	// AllowedOrigins restricts CORS. Empty allows any origin.
	AllowedOrigins []string
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	origins map[string]bool
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMinute, cfg.Burst, cfg.MaxClients)
	}
	if len(cfg.AllowedOrigins) > 0 {
		mw.origins = make(map[string]bool, len(cfg.AllowedOrigins))
		for _, o := range cfg.AllowedOrigins {
			mw.origins[o] = true
		}
	}
	return mw
}
