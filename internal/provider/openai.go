package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/utils"
)

// systemInstruction frames every chat-completion request
const systemInstruction = "You are a technical documentation expert. Generate clear and concise documentation for the given code."

// UnavailableMessage is returned when chat-completion support is disabled for
// the running environment
const UnavailableMessage = "OpenAI client not available in this environment."

// OpenAIClient calls an OpenAI-style chat-completion API. There is no retry
// and no fallback list; a single request either produces text or a failure.
type OpenAIClient struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

// NewOpenAIClient creates a chat-completion client. The enabled flag is the
// capability check resolved once at startup; when false every call fails
// immediately without touching the network.
func NewOpenAIClient(baseURL string, enabled bool, httpClient *http.Client) *OpenAIClient {
	return &OpenAIClient{
		baseURL:    baseURL,
		enabled:    enabled,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatCompletionError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate issues one chat-completion request carrying the fixed system
// instruction plus the user prompt, and extracts the generated text
func (c *OpenAIClient) Generate(ctx context.Context, prompt, apiKey, model string) Outcome {
	if !c.enabled {
		return Failure(UnavailableMessage)
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return Failure(err.Error())
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Failure(err.Error())
	}
	req.Header.Set(utils.HeaderAuthorization, "Bearer "+apiKey)
	req.Header.Set(utils.HeaderContentType, utils.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ErrorCtx(ctx, "Chat completion request failed",
			"model", model,
			"error", err,
		)
		return Failure(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Failure(chatErrorMessage(resp.StatusCode, body))
	}

	return extractChatText(body)
}

// extractChatText pulls the generated text out of a chat-completion body.
// Response shape varies across API versions, so three accessors are tried in
// order and the first that succeeds wins: the typed first-choice message
// content, a dynamic map walk of the same path, and finally the stringified
// body. The last step never fails.
func extractChatText(body []byte) Outcome {
	var typed chatCompletionResponse
	if err := json.Unmarshal(body, &typed); err == nil && len(typed.Choices) > 0 {
		return Success(typed.Choices[0].Message.Content)
	}

	var dynamic map[string]any
	if err := json.Unmarshal(body, &dynamic); err == nil {
		if choices, ok := dynamic["choices"].([]any); ok && len(choices) > 0 {
			if first, ok := choices[0].(map[string]any); ok {
				if message, ok := first["message"].(map[string]any); ok {
					if content, ok := message["content"].(string); ok {
						return Success(content)
					}
				}
			}
		}
	}

	return Success(string(body))
}

// chatErrorMessage prefers the API's own error message over a generic one
func chatErrorMessage(status int, body []byte) string {
	var apiErr chatCompletionError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("chat completion request failed with status %d", status)
}
