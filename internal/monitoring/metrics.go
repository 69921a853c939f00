package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/docsmith/go-docgen-api/internal/logger"
)

// Metrics holds application metrics
type Metrics struct {
	mu                    sync.RWMutex
	RequestCount          int64
	RequestDuration       time.Duration
	ErrorCount            int64
	ProviderRequestCounts map[string]int64
	StatusCodeCounts      map[int]int64
	StartTime             time.Time
}

// Global metrics instance
var globalMetrics = &Metrics{
	ProviderRequestCounts: make(map[string]int64),
	StatusCodeCounts:      make(map[int]int64),
	StartTime:             time.Now(),
}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records a request with its duration and status
func (m *Metrics) RecordRequest(duration time.Duration, statusCode int, provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount++
	m.RequestDuration += duration
	m.StatusCodeCounts[statusCode]++

	if provider != "" {
		m.ProviderRequestCounts[provider]++
	}

	if statusCode >= 400 {
		m.ErrorCount++
	}
}

// RecordProvider records which provider served a generation request
func RecordProvider(provider string) {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()
	globalMetrics.ProviderRequestCounts[provider]++
}

// GetStats returns current statistics
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uptime := time.Since(m.StartTime)
	avgDuration := time.Duration(0)
	if m.RequestCount > 0 {
		avgDuration = m.RequestDuration / time.Duration(m.RequestCount)
	}

	// Copy maps to avoid race conditions
	providerCounts := make(map[string]int64)
	for k, v := range m.ProviderRequestCounts {
		providerCounts[k] = v
	}

	statusCounts := make(map[int]int64)
	for k, v := range m.StatusCodeCounts {
		statusCounts[k] = v
	}

	errorRate := 0.0
	if m.RequestCount > 0 {
		errorRate = float64(m.ErrorCount) / float64(m.RequestCount)
	}

	return map[string]interface{}{
		"uptime_seconds":      uptime.Seconds(),
		"total_requests":      m.RequestCount,
		"total_errors":        m.ErrorCount,
		"average_duration_ms": avgDuration.Milliseconds(),
		"error_rate":          errorRate,
		"provider_requests":   providerCounts,
		"status_code_counts":  statusCounts,
		"start_time":          m.StartTime.Format(time.RFC3339),
	}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount = 0
	m.RequestDuration = 0
	m.ErrorCount = 0
	m.ProviderRequestCounts = make(map[string]int64)
	m.StatusCodeCounts = make(map[int]int64)
	m.StartTime = time.Now()
}

// MetricsMiddleware wraps HTTP handlers to collect metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		globalMetrics.RecordRequest(duration, wrapper.statusCode, "")

		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", wrapper.statusCode,
			"duration_ms", duration.Milliseconds(),
		)
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// SetupPprofRoutes adds pprof endpoints to the router
func SetupPprofRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/debug/pprof/heap", pprof.Handler("heap"))
}

// MetricsHandler returns current metrics as JSON
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats := globalMetrics.GetStats()

	jsonBytes, err := json.Marshal(stats)
	if err != nil {
		http.Error(w, `{"error":"failed to encode metrics"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(jsonBytes)
}
