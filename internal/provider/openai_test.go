package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestClient(serverURL string, enabled bool) *OpenAIClient {
	return NewOpenAIClient(serverURL, enabled, &http.Client{Timeout: 5 * time.Second})
}

func TestOpenAIGenerateDisabled(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newOpenAITestClient(server.URL, false)
	outcome := client.Generate(context.Background(), "prompt", "sk-key", "gpt-3.5-turbo")

	require.False(t, outcome.OK)
	assert.Equal(t, UnavailableMessage, outcome.Text)
	assert.Zero(t, requests.Load(), "disabled client must make zero network calls")
}

func TestOpenAIGenerateSuccess(t *testing.T) {
	var capturedRequest chatCompletionRequest
	var capturedAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedRequest))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"generated docs"}}]}`))
	}))
	defer server.Close()

	client := newOpenAITestClient(server.URL, true)
	outcome := client.Generate(context.Background(), "document this code", "sk-testkey", "gpt-3.5-turbo")

	require.True(t, outcome.OK)
	assert.Equal(t, "generated docs", outcome.Text)
	assert.Equal(t, "Bearer sk-testkey", capturedAuth)

	require.Len(t, capturedRequest.Messages, 2)
	assert.Equal(t, "system", capturedRequest.Messages[0].Role)
	assert.Contains(t, capturedRequest.Messages[0].Content, "technical documentation expert")
	assert.Equal(t, "user", capturedRequest.Messages[1].Role)
	assert.Equal(t, "document this code", capturedRequest.Messages[1].Content)
	assert.Equal(t, "gpt-3.5-turbo", capturedRequest.Model)
}

func TestOpenAIGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newOpenAITestClient(server.URL, true)
	outcome := client.Generate(context.Background(), "prompt", "sk-key", "gpt-3.5-turbo")

	require.False(t, outcome.OK)
	assert.NotEmpty(t, outcome.Text)
}

func TestOpenAIGenerateAPIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantText   string
	}{
		{
			name:       "structured API error",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":{"message":"Incorrect API key provided"}}`,
			wantText:   "Incorrect API key provided",
		},
		{
			name:       "opaque error body",
			statusCode: http.StatusBadGateway,
			body:       "upstream broken",
			wantText:   "chat completion request failed with status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newOpenAITestClient(server.URL, true)
			outcome := client.Generate(context.Background(), "prompt", "sk-key", "gpt-3.5-turbo")

			require.False(t, outcome.OK)
			assert.Equal(t, tt.wantText, outcome.Text)
		})
	}
}

func TestExtractChatText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{
			name:     "typed accessor",
			body:     `{"choices":[{"message":{"content":"structured"}}]}`,
			wantText: "structured",
		},
		{
			name: "map accessor when typed decode rejects the shape",
			// content as array breaks the typed struct but the map walk
			// still cannot find a string, so the body is stringified
			body:     `{"choices":[{"message":{"content":["part"]}}]}`,
			wantText: `{"choices":[{"message":{"content":["part"]}}]}`,
		},
		{
			name:     "empty choices stringifies whole body",
			body:     `{"choices":[]}`,
			wantText: `{"choices":[]}`,
		},
		{
			name:     "unrecognized shape stringifies whole body",
			body:     `{"output":"something"}`,
			wantText: `{"output":"something"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := extractChatText([]byte(tt.body))
			require.True(t, outcome.OK, "extraction never fails on a 2xx body")
			assert.Equal(t, tt.wantText, outcome.Text)
		})
	}
}
