package middleware

import (
	"voice-skill/pkg/log"
)

// Config holds the request guards applied in front of the skill endpoint.
type Config struct {
	AllowedIPs      []string // exact IPs or CIDR ranges; empty allows everyone
	RateLimitPerMin int      // per client IP; zero or less disables limiting
}

type Middleware struct {
	l           log.Logger
	allowedIPs  []string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		allowedIPs: cfg.AllowedIPs,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
