package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/go-docgen-api/internal/config"
	"github.com/docsmith/go-docgen-api/internal/handlers"
	"github.com/docsmith/go-docgen-api/internal/provider"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Provider: config.ProviderConfig{
			HuggingFaceModel:   config.DefaultHuggingFaceModel,
			OpenAIModel:        config.DefaultOpenAIModel,
			FallbackModels:     config.DefaultFallbackModels(),
			HuggingFaceBaseURL: config.DefaultHuggingFaceBaseURL,
			OpenAIBaseURL:      config.DefaultOpenAIBaseURL,
			Timeout:            time.Second,
		},
	}

	httpClient := &http.Client{Timeout: time.Second}
	hf := provider.NewHuggingFaceClient(cfg.Provider.HuggingFaceBaseURL, cfg.Provider.FallbackModels, httpClient)
	openai := provider.NewOpenAIClient(cfg.Provider.OpenAIBaseURL, false, httpClient)

	return SetupRoutes(handlers.NewAPIHandlers(cfg, hf, openai))
}

func TestRoutesRegistered(t *testing.T) {
	handler := testHandler(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"home page", http.MethodGet, "/", http.StatusOK},
		{"health endpoint", http.MethodGet, "/health", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"generate-docs rejects GET", http.MethodGet, "/generate-docs", http.StatusMethodNotAllowed},
		{"generate-docs rejects empty body", http.MethodPost, "/generate-docs", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutesApplyCorrelationMiddleware(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestSwaggerRouteServed(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "text/html"))
}

func TestPprofRouteServed(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
