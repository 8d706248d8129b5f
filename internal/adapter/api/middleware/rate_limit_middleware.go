package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"orbitmarket/pkg/logger"
)

// RateLimit returns per-IP rate limiting middleware backed by an in-memory
// store. Limits are per server instance.
func RateLimit(requests int64, window time.Duration) echo.MiddlewareFunc {
	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: window,
		Limit:  requests,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, err := instance.Get(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
			c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))

			if ctx.Reached {
				logger.Warn("Rate limit reached for %s on %s", c.RealIP(), c.Path())
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": ctx.Reset - time.Now().Unix(),
				})
			}

			return next(c)
		}
	}
}

// IntakeRateLimit throttles the public contact and application forms.
func IntakeRateLimit() echo.MiddlewareFunc {
	return RateLimit(5, time.Minute)
}

// AssistantRateLimit throttles the streaming assistant endpoint.
func AssistantRateLimit() echo.MiddlewareFunc {
	return RateLimit(20, time.Minute)
}

// CheckoutRateLimit throttles checkout session creation.
func CheckoutRateLimit() echo.MiddlewareFunc {
	return RateLimit(10, time.Minute)
}
