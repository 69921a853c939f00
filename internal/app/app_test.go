package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "hf_testkey1234567890")
	t.Setenv("OPENAI_API_KEY", "")

	application, err := NewApp()
	require.NoError(t, err)
	require.NotNil(t, application)

	assert.NotNil(t, application.Config)
	assert.NotNil(t, application.HuggingFace)
	assert.NotNil(t, application.OpenAI)
	assert.NotNil(t, application.Handlers)
	assert.True(t, application.Config.Provider.HasHuggingFaceKey())
	assert.False(t, application.Config.Provider.HasOpenAIKey())
}

func TestNewAppRejectsMalformedKey(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "not-a-huggingface-key")

	application, err := NewApp()
	require.Error(t, err)
	assert.Nil(t, application)
}

func TestAppSetupRoutes(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	application, err := NewApp()
	require.NoError(t, err)

	handler := application.SetupRoutes()
	require.NotNil(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
