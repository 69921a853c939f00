package utils

// HTTP Header Constants
const (
	// Standard HTTP Headers
	HeaderContentType    = "Content-Type"
	HeaderContentLength  = "Content-Length"
	HeaderUserAgent      = "User-Agent"
	HeaderAccept         = "Accept"
	HeaderCacheControl   = "Cache-Control"
	HeaderAuthorization  = "Authorization"

	// Request/Response Tracking Headers
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderResponseTime  = "X-Response-Time"

	// Client IP Headers (priority order)
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderCloudFlareRay  = "cf-ray"

	// Security Headers
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXFrameOptions       = "X-Frame-Options"

	// CORS Headers
	HeaderAccessControlAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders = "Access-Control-Allow-Headers"
)

// Content Type Constants
const (
	ContentTypeJSON     = "application/json"
	ContentTypeHTMLUTF8 = "text/html; charset=utf-8"
)

// Security Header Values
const (
	XContentTypeOptionsNoSniff = "nosniff"
	XFrameOptionsDeny          = "DENY"
)

// CORS Values
const (
	CORSAllowOriginAll  = "*"
	CORSAllowMethodsAll = "POST, GET, OPTIONS"
	CORSAllowHeadersStd = "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, X-Correlation-ID, Authorization"
)

// Service Values
const (
	ServiceName = "DocGen-API/1.0"
)
