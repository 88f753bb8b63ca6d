package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/pkg/middleware"
)

func (h *HttpAPIHandler) SetupNews(base *echo.Group) {
	base.POST("/fetch-news", h.fetchNews, h.auth)
	base.GET("/searches", h.listSearches, h.auth)
	base.GET("/news", h.getCachedNews)
	base.POST("/news/refresh", h.refreshNews)
}

func (h *HttpAPIHandler) fetchNews(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.FetchNewsRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	articles, err := h.service.NewsService.Fetch(ctx, middleware.OwnerID(c), *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch news articles"))
	}

	return c.JSON(http.StatusOK, dto.FetchNewsResponse{Articles: articles})
}

func (h *HttpAPIHandler) listSearches(c echo.Context) error {
	ctx := c.Request().Context()

	searches, err := h.service.NewsService.History(ctx, middleware.OwnerID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch search history"))
	}

	return c.JSON(http.StatusOK, searches)
}

func (h *HttpAPIHandler) getCachedNews(c echo.Context) error {
	ctx := c.Request().Context()

	refresh := c.QueryParam("refresh") != ""
	entry, err := h.service.NewsService.Cached(ctx, refresh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch news articles"))
	}

	return c.JSON(http.StatusOK, entry)
}

func (h *HttpAPIHandler) refreshNews(c echo.Context) error {
	ctx := c.Request().Context()

	entry, err := h.service.NewsService.Refresh(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to refresh news articles"))
	}

	return c.JSON(http.StatusOK, entry)
}
