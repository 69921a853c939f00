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

// maxNewTokens caps the generation length requested from the inference API
const maxNewTokens = 512

// HuggingFaceClient calls the Hugging Face Inference Router for text
// generation. A 404 from the configured model triggers an ordered retry
// against a small list of public fallback models.
type HuggingFaceClient struct {
	baseURL        string
	fallbackModels []string
	httpClient     *http.Client
}

// NewHuggingFaceClient creates a client for the given inference router base
// URL and fallback model list
func NewHuggingFaceClient(baseURL string, fallbackModels []string, httpClient *http.Client) *HuggingFaceClient {
	return &HuggingFaceClient{
		baseURL:        baseURL,
		fallbackModels: fallbackModels,
		httpClient:     httpClient,
	}
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Options    generationOptions    `json:"options"`
	Parameters generationParameters `json:"parameters"`
}

type generationOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type generationParameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

// Generate posts the prompt to the configured model's endpoint and reduces
// the response to an Outcome. Transport failures are terminal; a 404 engages
// the fallback protocol; any 200 body goes through the shape normalizer.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt, apiKey, model string) Outcome {
	payload, err := json.Marshal(generationRequest{
		Inputs:     prompt,
		Options:    generationOptions{WaitForModel: true},
		Parameters: generationParameters{MaxNewTokens: maxNewTokens},
	})
	if err != nil {
		return Failure(fmt.Sprintf("Request error: %v", err))
	}

	status, body, err := c.post(ctx, model, apiKey, payload)
	if err != nil {
		logger.ErrorCtx(ctx, "Hugging Face request failed",
			"model", model,
			"error", err,
		)
		return Failure(fmt.Sprintf("Request error: %v", err))
	}

	if status != http.StatusOK {
		if status == http.StatusNotFound {
			logger.WarnCtx(ctx, "Model not found, trying fallback models",
				"model", model,
				"fallback_count", len(c.fallbackModels),
			)
			if outcome, done := c.tryFallbacks(ctx, apiKey, payload); done {
				return outcome
			}
			// No fallback produced a 200: surface the original 404's error
			// content rather than a synthesized message.
		}
		return statusFailure(status, body)
	}

	return DecodeGeneration(body)
}

// tryFallbacks reissues the identical payload against each fallback model in
// order. Transport errors and non-200 responses skip to the next model; the
// first 200 response ends the protocol whether or not its body parses.
func (c *HuggingFaceClient) tryFallbacks(ctx context.Context, apiKey string, payload []byte) (Outcome, bool) {
	for _, fallbackModel := range c.fallbackModels {
		status, body, err := c.post(ctx, fallbackModel, apiKey, payload)
		if err != nil {
			logger.DebugCtx(ctx, "Fallback model unreachable",
				"fallback_model", fallbackModel,
				"error", err,
			)
			continue
		}
		if status != http.StatusOK {
			logger.DebugCtx(ctx, "Fallback model returned non-200",
				"fallback_model", fallbackModel,
				"status_code", status,
			)
			continue
		}

		logger.InfoCtx(ctx, "Fallback model responded",
			"fallback_model", fallbackModel,
		)

		var value any
		if err := json.Unmarshal(body, &value); err != nil {
			return Failure(fmt.Sprintf("Parse error from fallback model %s", fallbackModel)), true
		}
		return NormalizeGeneration(value), true
	}

	return Outcome{}, false
}

func (c *HuggingFaceClient) post(ctx context.Context, model, apiKey string, payload []byte) (int, []byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set(utils.HeaderAuthorization, "Bearer "+apiKey)
	req.Header.Set(utils.HeaderContentType, utils.ContentTypeJSON)
	req.Header.Set(utils.HeaderAccept, utils.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// statusFailure formats a non-200 response into a failure message, preferring
// the JSON payload over raw text when the body decodes
func statusFailure(status int, body []byte) Outcome {
	var compact bytes.Buffer
	if json.Valid(body) && json.Compact(&compact, body) == nil {
		return Failure(fmt.Sprintf("Error %d: %s", status, compact.String()))
	}
	return Failure(fmt.Sprintf("Error %d: %s", status, string(body)))
}
