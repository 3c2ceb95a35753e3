package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolioai/storage"
)

func newPortfolioRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	handler := NewPortfolioHandler(store, nil, zap.NewNop())

	r := gin.New()
	r.POST("/api/portfolio/generate", handler.Generate)
	r.POST("/api/portfolio/deploy", handler.Deploy)
	r.GET("/api/portfolio/:slug", handler.GetBySlug)
	return r
}

func validPortfolioBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"name":   "John Smith",
		"email":  "john@x.com",
		"skills": "Go, Docker",
		"github": "https://github.com/jsmith",
	})
	return body
}

func TestPortfolioGenerate(t *testing.T) {
	r := newPortfolioRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/generate", bytes.NewReader(validPortfolioBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		HTML string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.HTML, "John Smith")
	assert.Contains(t, resp.HTML, "<h3>Go</h3>")
}

func TestPortfolioGenerate_MissingRequiredField(t *testing.T) {
	r := newPortfolioRouter(t)

	body, _ := json.Marshal(map[string]any{"name": "John Smith"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required field: email")
}

func TestPortfolioDeployThenGet(t *testing.T) {
	r := newPortfolioRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/deploy", bytes.NewReader(validPortfolioBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slug string `json:"slug"`
		URL  string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^john-smith-[0-9a-f]{8}$`, resp.Slug)
	assert.Equal(t, "/api/portfolio/"+resp.Slug, resp.URL)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.URL, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "John Smith")
}

func TestPortfolioGet_Unknown(t *testing.T) {
	r := newPortfolioRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/never-deployed", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "portfolio not found")
}

func TestPortfolioDeploy_SameNameTwiceDistinctSlugs(t *testing.T) {
	r := newPortfolioRouter(t)

	deploy := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/deploy", bytes.NewReader(validPortfolioBody()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Slug string `json:"slug"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Slug
	}

	first := deploy()
	second := deploy()
	assert.NotEqual(t, first, second)

	for _, slug := range []string{first, second} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/"+slug, nil))
		assert.Equal(t, http.StatusOK, w.Code, slug)
	}
}
