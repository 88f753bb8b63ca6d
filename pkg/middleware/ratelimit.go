package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/norman8823/tariff-analyzer/internal/dto"
)

func NewRateLimiterMiddleware() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				// 10 req/s sustained, bursts of 30, state expires after
				// 3 minutes of inactivity.
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			},
		),

		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},

		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(http.StatusForbidden,
				dto.NewErrorResponse(http.StatusForbidden, "Access forbidden: Rate limiter error occurred"))
		},

		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(http.StatusTooManyRequests, "Too many requests: Rate limit exceeded. Please try again later"))
		},
	}

	return middleware.RateLimiterWithConfig(config)
}
