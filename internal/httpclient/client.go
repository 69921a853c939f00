package httpclient

import (
	"net/http"
	"time"
)

// Options holds HTTP client configuration options
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// Factory creates configured HTTP clients for outbound provider calls
type Factory struct {
	defaultOptions Options
}

// NewFactory creates a new HTTP client factory with default options
func NewFactory(defaultOptions Options) *Factory {
	if defaultOptions.Timeout == 0 {
		defaultOptions.Timeout = 60 * time.Second
	}
	if defaultOptions.UserAgent == "" {
		defaultOptions.UserAgent = "DocGen-API/1.0"
	}

	return &Factory{
		defaultOptions: defaultOptions,
	}
}

// CreateClient creates a new HTTP client with the specified options
func (f *Factory) CreateClient(options Options) *http.Client {
	if options.Timeout == 0 {
		options.Timeout = f.defaultOptions.Timeout
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}

// CreateDefaultClient creates a client with default options
func (f *Factory) CreateDefaultClient() *http.Client {
	return f.CreateClient(Options{})
}
