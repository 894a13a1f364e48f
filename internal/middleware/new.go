package middleware

import (
	"library-circulation/config"
	"library-circulation/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rlCfg config.RateLimitConfig) Middleware {
	var limiter *rateLimiter
	if rlCfg.Enabled {
		limiter = newRateLimiter(rlCfg.RequestsPerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
