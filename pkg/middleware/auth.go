package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
)

// OwnerContextKey is the echo context key under which the authenticated
// subject is stored.
const OwnerContextKey = "owner_id"

// OwnerID returns the authenticated subject for the current request, or ""
// when the request did not pass through the auth middleware.
func OwnerID(c echo.Context) string {
	owner, _ := c.Get(OwnerContextKey).(string)
	return owner
}

// NewAuthMiddleware verifies the bearer token issued by the external identity
// provider and stores its subject claim on the request context. The subject is
// an opaque string; this service never interprets it beyond equality checks.
func NewAuthMiddleware(cfg config.Auth) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized,
					dto.NewErrorResponse(http.StatusUnauthorized, "Missing or malformed credentials"))
			}

			claims := jwt.RegisteredClaims{}
			_, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			if err != nil || claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized,
					dto.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials"))
			}

			c.Set(OwnerContextKey, claims.Subject)
			return next(c)
		}
	}
}
