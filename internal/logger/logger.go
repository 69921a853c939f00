package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Context keys
type contextKey string

const (
	RequestIDKey     contextKey = "request_id"
	CorrelationIDKey contextKey = "correlation_id"
	ProviderKey      contextKey = "provider"
	ModelKey         contextKey = "model"
)

// Global logger instance
var Logger *slog.Logger

// Config for logger initialization
type Config struct {
	Level       slog.Level
	Format      string // "json" or "text"
	Output      string // "stdout", "stderr", or file path
	TimeFormat  string
	ServiceName string
	Environment string
}

// DefaultConfig is used when no overrides are provided
var DefaultConfig = Config{
	Level:       LevelInfo,
	Format:      "json",
	Output:      "stdout",
	TimeFormat:  time.RFC3339,
	ServiceName: "docgen-api",
	Environment: "development",
}

// StructuredLogEntry is the wire format emitted by the JSON handler
type StructuredLogEntry struct {
	Timestamp   string         `json:"timestamp"`
	Level       string         `json:"level"`
	Message     string         `json:"message"`
	Service     string         `json:"service"`
	Environment string         `json:"environment"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Request     map[string]any `json:"request,omitempty"`
	Error       map[string]any `json:"error,omitempty"`
}

// Init initializes the global logger
func Init(config Config) error {
	var output *os.File
	var err error

	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		output, err = os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Output, err)
		}
	}

	var handler slog.Handler
	switch config.Format {
	case "json":
		handler = &StructuredJSONHandler{
			writer:      output,
			level:       config.Level,
			serviceName: config.ServiceName,
			environment: config.Environment,
			timeFormat:  config.TimeFormat,
		}
	default:
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{Level: config.Level})
	}

	Logger = slog.New(handler)
	return nil
}

// StructuredJSONHandler implements a custom JSON handler for the structured format
type StructuredJSONHandler struct {
	writer      io.Writer
	level       slog.Level
	serviceName string
	environment string
	timeFormat  string
}

func (h *StructuredJSONHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *StructuredJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	timeFormat := h.timeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}

	entry := StructuredLogEntry{
		Timestamp:   r.Time.Format(timeFormat),
		Level:       r.Level.String(),
		Message:     r.Message,
		Service:     h.serviceName,
		Environment: h.environment,
		Attributes:  make(map[string]any),
	}

	// Extract tracking values from context
	if ctx != nil {
		if requestID := ctx.Value(RequestIDKey); requestID != nil {
			if entry.Request == nil {
				entry.Request = make(map[string]any)
			}
			entry.Request["request_id"] = requestID
		}
		if correlationID := ctx.Value(CorrelationIDKey); correlationID != nil {
			if entry.Request == nil {
				entry.Request = make(map[string]any)
			}
			entry.Request["correlation_id"] = correlationID
		}
		if provider := ctx.Value(ProviderKey); provider != nil {
			entry.Attributes["provider"] = provider
		}
		if model := ctx.Value(ModelKey); model != nil {
			entry.Attributes["model"] = model
		}
	}

	// Route record attributes to the appropriate sections
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		value := a.Value.Any()

		switch {
		case strings.HasPrefix(key, "request_"):
			if entry.Request == nil {
				entry.Request = make(map[string]any)
			}
			entry.Request[strings.TrimPrefix(key, "request_")] = value
		case key == "error":
			if entry.Error == nil {
				entry.Error = make(map[string]any)
			}
			if err, ok := value.(error); ok {
				entry.Error["message"] = err.Error()
				entry.Error["type"] = fmt.Sprintf("%T", err)
			} else {
				entry.Error["message"] = fmt.Sprintf("%v", value)
			}
		default:
			entry.Attributes[key] = value
		}
		return true
	})

	if len(entry.Attributes) == 0 {
		entry.Attributes = nil
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := h.writer.Write(jsonData); err != nil {
		return err
	}
	_, err = h.writer.Write([]byte("\n"))
	return err
}

// Convenience functions using the global logger

func Debug(msg string, args ...any) {
	if Logger != nil {
		Logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
	}
}

// Context-aware convenience functions

func DebugCtx(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.DebugContext(ctx, msg, args...)
	}
}

func InfoCtx(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.InfoContext(ctx, msg, args...)
	}
}

func WarnCtx(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.WarnContext(ctx, msg, args...)
	}
}

func ErrorCtx(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.ErrorContext(ctx, msg, args...)
	}
}

// InitFromEnv initializes the logger with environment-based configuration
func InitFromEnv() error {
	config := DefaultConfig

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		switch strings.ToUpper(level) {
		case "DEBUG":
			config.Level = LevelDebug
		case "INFO":
			config.Level = LevelInfo
		case "WARN", "WARNING":
			config.Level = LevelWarn
		case "ERROR":
			config.Level = LevelError
		}
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = format
	}

	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = output
	}

	if serviceName := os.Getenv("SERVICE_NAME"); serviceName != "" {
		config.ServiceName = serviceName
	}

	if environment := os.Getenv("ENVIRONMENT"); environment != "" {
		config.Environment = environment
	} else if env := os.Getenv("ENV"); env != "" {
		config.Environment = env
	}

	return Init(config)
}
