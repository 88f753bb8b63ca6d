package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norman8823/tariff-analyzer/config"
)

var testAuthConfig = config.Auth{
	Issuer:   "https://issuer.example.com/",
	Audience: "tariff-analyzer-api",
	Secret:   "test-secret",
}

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "auth0|user-1",
		Issuer:    testAuthConfig.Issuer,
		Audience:  jwt.ClaimStrings{testAuthConfig.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func newAuthTestServer() (*echo.Echo, *string) {
	e := echo.New()
	var seenOwner string
	e.GET("/protected", func(c echo.Context) error {
		seenOwner = OwnerID(c)
		return c.NoContent(http.StatusOK)
	}, NewAuthMiddleware(testAuthConfig))
	return e, &seenOwner
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, seenOwner := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, validClaims(), testAuthConfig.Secret))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "auth0|user-1", *seenOwner)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{
			"wrong signing secret",
			"Bearer " + func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "auth0|user-1",
					Issuer:    testAuthConfig.Issuer,
					Audience:  jwt.ClaimStrings{testAuthConfig.Audience},
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				})
				signed, _ := token.SignedString([]byte("other-secret"))
				return signed
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, seenOwner := newAuthTestServer()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Empty(t, *seenOwner)
		})
	}
}

func TestAuthMiddleware_WrongAudience(t *testing.T) {
	e, _ := newAuthTestServer()

	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"another-api"}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, claims, testAuthConfig.Secret))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e, _ := newAuthTestServer()

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, claims, testAuthConfig.Secret))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	e, _ := newAuthTestServer()

	claims := validClaims()
	claims.Subject = ""

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, claims, testAuthConfig.Secret))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
