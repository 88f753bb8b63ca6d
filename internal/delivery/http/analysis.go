package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/internal/service"
	"github.com/norman8823/tariff-analyzer/pkg/middleware"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	base.POST("/analyze", h.analyze, h.auth)
	base.GET("/analyses", h.listAnalyses, h.auth)
	base.GET("/analyses/:id", h.getAnalysis, h.auth)
}

func (h *HttpAPIHandler) analyze(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AnalyzeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.AnalysisService.Analyze(ctx, middleware.OwnerID(c), *req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("Text is required"))
		}
		// No internal detail crosses this boundary.
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to analyze text"))
	}

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) listAnalyses(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.service.AnalysisService.List(ctx, middleware.OwnerID(c), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch analyses"))
	}

	return c.JSON(http.StatusOK, items)
}

func (h *HttpAPIHandler) getAnalysis(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid analysis id"))
	}

	analysis, err := h.service.AnalysisService.Get(ctx, middleware.OwnerID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Analysis not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Unauthorized"))
		default:
			return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch analysis"))
		}
	}

	return c.JSON(http.StatusOK, analysis)
}
