package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/docsmith/go-docgen-api/internal/app"
	"github.com/docsmith/go-docgen-api/internal/config"
	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/middleware"
)

// @title           DocGen API
// @version         1.0
// @description     A web backend that generates documentation for code by proxying to text-generation providers (Hugging Face Inference API or OpenAI chat completions).

// @contact.name   API Support
// @contact.url    https://github.com/docsmith/go-docgen-api

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load .env before anything reads configuration
	if err := config.LoadEnvFile(); err != nil {
		_, _ = os.Stderr.WriteString("FATAL: Failed to load environment file: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize structured logging
	if err := logger.InitFromEnv(); err != nil {
		// Can't use logger here as it failed to initialize
		_, _ = os.Stderr.WriteString("FATAL: Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Create and initialize the application
	application, err := app.NewApp()
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	handler := middleware.CORSMiddleware(application.SetupRoutes())

	addr := fmt.Sprintf("%s:%d", application.Config.Server.Host, application.Config.Server.Port)
	logger.Info("Server starting", "address", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  application.Config.Server.ReadTimeout,
		WriteTimeout: application.Config.Server.WriteTimeout,
		IdleTimeout:  application.Config.Server.IdleTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
