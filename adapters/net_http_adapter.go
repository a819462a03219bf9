package adapters

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultUserAgent = "beacon-go"

// maxResponseBytes bounds how much of the response body is retained.
const maxResponseBytes = 1024

// NetHTTPAdapter is the standard HTTP adapter implementation using the
// net/http package. Certificate validation follows the Go default chain
// validation; use NewNetHTTPAdapterWithTLSConfig for a custom policy.
type NetHTTPAdapter struct {
	client *http.Client
}

// Ensure NetHTTPAdapter implements HTTPAdapter interface
var _ HTTPAdapter = (*NetHTTPAdapter)(nil)

// NewNetHTTPAdapter creates a new NetHTTPAdapter instance with default
// TLS validation and a 30 second request timeout.
func NewNetHTTPAdapter() HTTPAdapter {
	return &NetHTTPAdapter{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewNetHTTPAdapterWithTLSConfig creates a NetHTTPAdapter that uses the
// provided TLS configuration, for deployments that require certificate
// pinning or revocation checking beyond the default chain validation.
func NewNetHTTPAdapterWithTLSConfig(tlsConfig *tls.Config) HTTPAdapter {
	return &NetHTTPAdapter{
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		},
	}
}

// Send posts the URL-encoded payload to the endpoint with the given headers.
func (h *NetHTTPAdapter) Send(endpoint string, body string, headers map[string]string) (*HTTPResponse, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", defaultUserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	return &HTTPResponse{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:   string(data),
	}, nil
}
