package adapters

// HTTPResponse represents the response from an HTTP request.
type HTTPResponse struct {
	OK     bool
	Status int
	Body   string
}

// HTTPAdapter is an interface for HTTP communication.
// Implement this interface to use custom HTTP clients.
type HTTPAdapter interface {
	// Send uploads a URL-encoded payload to the specified endpoint.
	//
	// Parameters:
	//   - endpoint: The collection endpoint URL
	//   - body: URL-encoded payload string
	//   - headers: Optional custom headers to merge with defaults
	//
	// Returns HTTP response or error.
	Send(endpoint string, body string, headers map[string]string) (*HTTPResponse, error)
}
