package middleware

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket shared by every route it wraps.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimiter builds the limiter from config. It returns nil when rate
// limiting is disabled.
func NewRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled || cfg.RateLimit.RPS <= 0 {
		return nil
	}

	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), burst),
		logger:  logger,
	}
}

// Limit rejects requests with 429 once the bucket is empty. A nil
// *RateLimiter passes every request through.
func (m *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if m == nil {
		return next
	}

	return func(c echo.Context) error {
		if !m.limiter.Allow() {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("path", c.Path()))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests", nil)
		}

		return next(c)
	}
}
