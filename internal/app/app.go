package app

import (
	"net/http"

	"github.com/docsmith/go-docgen-api/internal/config"
	"github.com/docsmith/go-docgen-api/internal/handlers"
	"github.com/docsmith/go-docgen-api/internal/httpclient"
	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/provider"
	"github.com/docsmith/go-docgen-api/internal/router"
)

// App centralizes the application's dependencies and configuration
type App struct {
	Config      *config.Config
	HuggingFace *provider.HuggingFaceClient
	OpenAI      *provider.OpenAIClient
	Handlers    *handlers.APIHandlers
}

// NewApp creates a new App instance with all dependencies
func NewApp() (*App, error) {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientFactory := httpclient.NewFactory(httpclient.Options{
		Timeout: cfg.Provider.Timeout,
	})
	providerClient := clientFactory.CreateDefaultClient()

	hf := provider.NewHuggingFaceClient(cfg.Provider.HuggingFaceBaseURL, cfg.Provider.FallbackModels, providerClient)
	openai := provider.NewOpenAIClient(cfg.Provider.OpenAIBaseURL, cfg.Provider.OpenAIEnabled, providerClient)

	apiHandlers := handlers.NewAPIHandlers(cfg, hf, openai)

	logger.Info("Application initialized",
		"huggingface_configured", cfg.Provider.HasHuggingFaceKey(),
		"openai_configured", cfg.Provider.HasOpenAIKey(),
		"openai_enabled", cfg.Provider.OpenAIEnabled,
		"huggingface_model", cfg.Provider.HuggingFaceModel,
		"fallback_models", cfg.Provider.FallbackModels,
		"provider_timeout", cfg.Provider.Timeout,
	)

	return &App{
		Config:      cfg,
		HuggingFace: hf,
		OpenAI:      openai,
		Handlers:    apiHandlers,
	}, nil
}

// SetupRoutes returns the configured HTTP handler
func (a *App) SetupRoutes() http.Handler {
	return router.SetupRoutes(a.Handlers)
}
