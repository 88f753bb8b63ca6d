package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/internal/model"
	"github.com/norman8823/tariff-analyzer/internal/newscache"
	"github.com/norman8823/tariff-analyzer/internal/service"
	"github.com/norman8823/tariff-analyzer/pkg/middleware"
)

const testOwner = "auth0|user-1"

type fakeAnalysisService struct {
	analyzeResp *dto.AnalyzeResponse
	analyzeErr  error
	items       []model.AnalysisListItem
	record      *model.Analysis
	getErr      error

	lastOwner string
	lastQuery string
}

func (f *fakeAnalysisService) Analyze(ctx context.Context, userID string, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	f.lastOwner = userID
	return f.analyzeResp, f.analyzeErr
}

func (f *fakeAnalysisService) List(ctx context.Context, userID, query string) ([]model.AnalysisListItem, error) {
	f.lastOwner = userID
	f.lastQuery = query
	return f.items, nil
}

func (f *fakeAnalysisService) Get(ctx context.Context, userID string, id uint) (*model.Analysis, error) {
	f.lastOwner = userID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.record, nil
}

type fakeNewsService struct {
	articles    []dto.Article
	fetchErr    error
	searches    []model.Search
	entry       *newscache.Entry
	lastRefresh bool
	lastOwner   string
}

func (f *fakeNewsService) Fetch(ctx context.Context, userID string, req dto.FetchNewsRequest) ([]dto.Article, error) {
	return f.articles, f.fetchErr
}

func (f *fakeNewsService) History(ctx context.Context, userID string) ([]model.Search, error) {
	f.lastOwner = userID
	return f.searches, nil
}

func (f *fakeNewsService) Cached(ctx context.Context, refresh bool) (*newscache.Entry, error) {
	f.lastRefresh = refresh
	return f.entry, nil
}

func (f *fakeNewsService) Refresh(ctx context.Context) (*newscache.Entry, error) {
	return f.entry, nil
}

func fakeAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(middleware.OwnerContextKey, testOwner)
		return next(c)
	}
}

func newTestHandler(analysisSvc service.AnalysisService, newsSvc service.NewsService) *echo.Echo {
	e := echo.New()
	services := &service.Service{
		AnalysisService: analysisSvc,
		NewsService:     newsSvc,
	}
	h := NewHttpAPIHandler(context.Background(), e, goValidator.New(), services, fakeAuth)

	base := e.Group("/api")
	h.SetupAnalysis(base)
	h.SetupNews(base)
	return e
}

func TestAnalyze_Success(t *testing.T) {
	analysisSvc := &fakeAnalysisService{
		analyzeResp: &dto.AnalyzeResponse{Summary: "s", Sentiment: "**Part 2: positive", AnalysisID: 3},
	}
	e := newTestHandler(analysisSvc, &fakeNewsService{})

	body := `{"title":"Steel","text":"Tariffs on steel announced."}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOwner, analysisSvc.lastOwner)

	var resp dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(3), resp.AnalysisID)
}

func TestAnalyze_MissingText(t *testing.T) {
	e := newTestHandler(&fakeAnalysisService{}, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"title":"no text"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_ServiceFailure(t *testing.T) {
	e := newTestHandler(&fakeAnalysisService{analyzeErr: errors.New("backend exploded")}, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"t"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail must not leak into the response body.
	assert.NotContains(t, w.Body.String(), "exploded")

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Failed to analyze text", resp.Message)
}

func TestAnalyze_WhitespaceText(t *testing.T) {
	analysisSvc := &fakeAnalysisService{analyzeErr: service.ErrInvalidInput}
	e := newTestHandler(analysisSvc, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListAnalyses(t *testing.T) {
	analysisSvc := &fakeAnalysisService{items: []model.AnalysisListItem{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
	e := newTestHandler(analysisSvc, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/analyses?q=steel", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "steel", analysisSvc.lastQuery)

	var items []model.AnalysisListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestGetAnalysis_Statuses(t *testing.T) {
	tests := []struct {
		name     string
		getErr   error
		wantCode int
	}{
		{"owned record", nil, http.StatusOK},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"other owner", service.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysisSvc := &fakeAnalysisService{
				record: &model.Analysis{ID: 5, UserID: testOwner, Title: "mine"},
				getErr: tt.getErr,
			}
			e := newTestHandler(analysisSvc, &fakeNewsService{})

			req := httptest.NewRequest(http.MethodGet, "/api/analyses/5", nil)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.getErr != nil {
				assert.NotContains(t, w.Body.String(), "mine")

				var resp dto.BaseResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}

func TestGetAnalysis_BadID(t *testing.T) {
	e := newTestHandler(&fakeAnalysisService{}, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/analyses/not-a-number", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchNews(t *testing.T) {
	newsSvc := &fakeNewsService{articles: []dto.Article{{Title: "Tariff hit", URL: "u"}}}
	e := newTestHandler(&fakeAnalysisService{}, newsSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/fetch-news", strings.NewReader(`{"keywords":"steel"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FetchNewsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "Tariff hit", resp.Articles[0].Title)
}

func TestFetchNews_BadDate(t *testing.T) {
	e := newTestHandler(&fakeAnalysisService{}, &fakeNewsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/fetch-news", strings.NewReader(`{"from_date":"April 1st"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSearches(t *testing.T) {
	newsSvc := &fakeNewsService{searches: []model.Search{
		{ID: 2, UserID: testOwner, Keywords: "steel tariffs"},
		{ID: 1, UserID: testOwner, Keywords: "customs duty"},
	}}
	e := newTestHandler(&fakeAnalysisService{}, newsSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/searches", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOwner, newsSvc.lastOwner)

	var searches []model.Search
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searches))
	require.Len(t, searches, 2)
	assert.Equal(t, "steel tariffs", searches[0].Keywords)
}

func TestGetCachedNews_RefreshParam(t *testing.T) {
	newsSvc := &fakeNewsService{entry: &newscache.Entry{LastUpdated: 123}}
	e := newTestHandler(&fakeAnalysisService{}, newsSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, newsSvc.lastRefresh)

	req = httptest.NewRequest(http.MethodGet, "/api/news?refresh=1", nil)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, newsSvc.lastRefresh)
}
