package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/docsmith/go-docgen-api/internal/config"
	"github.com/docsmith/go-docgen-api/internal/errors"
	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/monitoring"
	"github.com/docsmith/go-docgen-api/internal/provider"
	"github.com/docsmith/go-docgen-api/internal/utils"
	"github.com/docsmith/go-docgen-api/internal/validator"
)

// noAPIKeyMessage is returned when neither provider credential is configured
const noAPIKeyMessage = "No API key found. Set HUGGINGFACE_API_KEY (hf_...) or OPENAI_API_KEY (sk-...)."

// Provider names used in logs and metrics
const (
	providerHuggingFace = "huggingface"
	providerOpenAI      = "openai"
)

// startTime tracks when the application started
var startTime = time.Now()

// GenerateDocsResponse is the success body of the documentation endpoint
type GenerateDocsResponse struct {
	Documentation string `json:"documentation"`
}

// HealthResponse represents the structured health check response
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Services  map[string]string      `json:"services"`
	Details   map[string]interface{} `json:"details"`
}

// APIHandlers contains the dependencies needed for API handlers
type APIHandlers struct {
	Config      *config.Config
	HuggingFace *provider.HuggingFaceClient
	OpenAI      *provider.OpenAIClient
}

// NewAPIHandlers creates a new APIHandlers instance
func NewAPIHandlers(cfg *config.Config, hf *provider.HuggingFaceClient, openai *provider.OpenAIClient) *APIHandlers {
	return &APIHandlers{
		Config:      cfg,
		HuggingFace: hf,
		OpenAI:      openai,
	}
}

// GenerateDocsHandler handles the documentation generation endpoint
// @Summary      Generate documentation for code
// @Description  Builds a documentation prompt from the submitted code and forwards it to the configured text-generation provider. Hugging Face is preferred when its credential is configured; otherwise the OpenAI chat-completion API is used.
// @Tags         documentation
// @Accept       json
// @Produce      json
// @Param        request  body      validator.GenerateDocsRequest  true  "Code to document"
// @Success      200      {object}  handlers.GenerateDocsResponse  "Generated documentation"
// @Failure      400      {object}  errors.ErrorResponse           "Missing code or missing credentials"
// @Failure      502      {object}  errors.ErrorResponse           "Provider failure"
// @Failure      500      {object}  errors.ErrorResponse           "Unexpected error"
// @Router       /generate-docs [post]
func (h *APIHandlers) GenerateDocsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Catch-all boundary: nothing below may take the process down
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%v", rec)
			logger.ErrorCtx(ctx, "Unhandled panic in generate-docs handler", "error", err)
			errors.HandleError(w, errors.NewInternalError(err.Error()), http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		errors.HandleError(w, errors.NewValidationError("method not allowed"), http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		errors.HandleError(w, errors.NewInternalError(err.Error()), http.StatusInternalServerError)
		return
	}

	request, err := validator.ValidateGenerateDocsRequest(body)
	if err != nil {
		errors.HandleError(w, errors.NewValidationError(err.Error()), http.StatusBadRequest)
		return
	}

	prompt := provider.BuildPrompt(request.Code)
	outcome, selected, ok := h.dispatch(ctx, prompt)
	if !ok {
		logger.WarnCtx(ctx, "No provider credential configured")
		errors.HandleError(w, errors.NewValidationError(noAPIKeyMessage), http.StatusBadRequest)
		return
	}

	monitoring.RecordProvider(selected)

	if !outcome.OK {
		logger.WarnCtx(ctx, "Provider call failed",
			"provider", selected,
			"message", outcome.Text,
		)
		errors.HandleError(w, errors.NewProviderError(outcome.Text), http.StatusBadGateway)
		return
	}

	logger.InfoCtx(ctx, "Documentation generated",
		"provider", selected,
		"documentation_length", len(outcome.Text),
	)

	writeJSON(w, http.StatusOK, GenerateDocsResponse{Documentation: outcome.Text})
}

// dispatch picks exactly one provider by configured credential, preferring
// Hugging Face, and forwards the prompt. The false return means no credential
// with a recognized prefix exists.
func (h *APIHandlers) dispatch(ctx context.Context, prompt string) (provider.Outcome, string, bool) {
	pc := h.Config.Provider

	if pc.HasHuggingFaceKey() {
		ctx = context.WithValue(ctx, logger.ProviderKey, providerHuggingFace)
		ctx = context.WithValue(ctx, logger.ModelKey, pc.HuggingFaceModel)
		return h.HuggingFace.Generate(ctx, prompt, pc.HuggingFaceAPIKey, pc.HuggingFaceModel), providerHuggingFace, true
	}

	if pc.HasOpenAIKey() {
		ctx = context.WithValue(ctx, logger.ProviderKey, providerOpenAI)
		ctx = context.WithValue(ctx, logger.ModelKey, pc.OpenAIModel)
		return h.OpenAI.Generate(ctx, prompt, pc.OpenAIAPIKey, pc.OpenAIModel), providerOpenAI, true
	}

	return provider.Outcome{}, "", false
}

// HealthHandler handles the health check endpoint
// @Summary      Health check endpoint
// @Description  Returns structured health information including status, configured providers, and version details
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  handlers.HealthResponse  "Structured health response"
// @Router       /health [get]
func (h *APIHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	uptime := int64(time.Since(startTime).Seconds())

	version := os.Getenv("VERSION")
	if version == "" {
		version = "unknown"
	}

	services := make(map[string]string)
	overallStatus := "healthy"

	pc := h.Config.Provider
	if pc.HasHuggingFaceKey() {
		services["huggingface"] = "configured"
	} else {
		services["huggingface"] = "not_configured"
	}

	if pc.HasOpenAIKey() && pc.OpenAIEnabled {
		services["openai"] = "configured"
	} else if pc.HasOpenAIKey() {
		services["openai"] = "disabled"
	} else {
		services["openai"] = "not_configured"
	}

	// The service can start without credentials but cannot serve generations
	if !pc.HasHuggingFaceKey() && !pc.HasOpenAIKey() {
		overallStatus = "degraded"
	}

	healthResponse := HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
		Details: map[string]interface{}{
			"version": version,
			"uptime":  uptime,
		},
	}

	if overallStatus != "healthy" {
		logger.Warn("Health check degraded",
			"overall_status", overallStatus,
			"services_status", services,
		)
	}

	writeJSON(w, http.StatusOK, healthResponse)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal response", "error", err)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}
	_, _ = w.Write(jsonBytes)
}
