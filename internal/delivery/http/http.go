package http

import (
	"context"
	"net/http"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/internal/service"
	"github.com/norman8823/tariff-analyzer/pkg/middleware"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	auth      echo.MiddlewareFunc
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service, auth echo.MiddlewareFunc) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		auth:      auth,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", nil))
	})

	base := h.echo.Group("/api", middleware.NewRateLimiterMiddleware())
	h.SetupAnalysis(base)
	h.SetupNews(base)
}
