package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/docsmith/go-docgen-api/internal/logger"
	"github.com/docsmith/go-docgen-api/internal/utils"
)

// trackingIDSources records where each tracking ID came from, for debugging
// proxy and load-balancer setups
type trackingIDSources struct {
	RequestIDSource     string
	CorrelationIDSource string
}

// RequestCorrelationMiddleware assigns request and correlation IDs with a
// priority cascade, echoes them on the response, and logs the request cycle
func RequestCorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, correlationID, sources := extractTrackingIDs(r)

		w.Header().Set(utils.HeaderRequestID, requestID)
		w.Header().Set(utils.HeaderCorrelationID, correlationID)

		ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, logger.CorrelationIDKey, correlationID)

		logger.DebugCtx(ctx, "Tracking IDs assigned",
			"request_id_source", sources.RequestIDSource,
			"correlation_id_source", sources.CorrelationIDSource,
		)

		// Health checks are frequent and boring; skip the request log
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		start := time.Now()

		logger.InfoCtx(ctx, "Incoming request",
			"request_method", r.Method,
			"request_path", r.URL.Path,
			"request_user_agent", r.Header.Get(utils.HeaderUserAgent),
			"request_client_ip", clientIP(r),
			"request_headers", utils.SanitizeHeaders(r.Header),
		)

		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r.WithContext(ctx))

		logger.InfoCtx(ctx, "Request completed",
			"request_method", r.Method,
			"request_path", r.URL.Path,
			"status_code", wrapper.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// extractTrackingIDs implements the priority cascade: client-supplied header,
// then CDN ray ID, then a generated ID
func extractTrackingIDs(r *http.Request) (requestID, correlationID string, sources trackingIDSources) {
	if clientRequestID := r.Header.Get(utils.HeaderRequestID); clientRequestID != "" {
		requestID = clientRequestID
		sources.RequestIDSource = "client-x-request-id"
	} else if cfRay := r.Header.Get(utils.HeaderCloudFlareRay); cfRay != "" {
		requestID = cfRay
		sources.RequestIDSource = "cloudflare-ray"
	} else {
		requestID = utils.GenerateRequestID()
		sources.RequestIDSource = "generated"
	}

	if clientCorrelationID := r.Header.Get(utils.HeaderCorrelationID); clientCorrelationID != "" {
		correlationID = clientCorrelationID
		sources.CorrelationIDSource = "client-x-correlation-id"
	} else {
		correlationID = utils.GenerateCorrelationID()
		sources.CorrelationIDSource = "generated-uuid"
	}

	return requestID, correlationID, sources
}

// clientIP extracts the client IP with a priority cascade
func clientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get(utils.HeaderXForwardedFor); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if realIP := r.Header.Get(utils.HeaderXRealIP); realIP != "" {
		return realIP
	}
	if cfIP := r.Header.Get(utils.HeaderCFConnectingIP); cfIP != "" {
		return cfIP
	}
	return r.RemoteAddr
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
