package middleware

import (
	"golang.org/x/time/rate"

	"meeting-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. requestsPerMin caps the expensive remote
// routes (analyze/publish); <=0 disables limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var limiter *rate.Limiter
	if requestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMin)/60.0), requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
