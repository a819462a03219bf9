package beacon

import (
	"fmt"

	"github.com/statbeam/beacon-go/adapters"
)

// Re-export adapter types for convenience
type (
	HTTPAdapter        = adapters.HTTPAdapter
	HTTPResponse       = adapters.HTTPResponse
	PreferenceStore    = adapters.PreferenceStore
	LoggerAdapter      = adapters.LoggerAdapter
	LogLevel           = adapters.LogLevel
	DeviceIDProvider   = adapters.DeviceIDProvider
	SystemInfoProvider = adapters.SystemInfoProvider
	AppInfoProvider    = adapters.AppInfoProvider
)

// HTTPError reports a non-2xx response from the collection endpoint.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP request failed with status %d", e.Status)
}

// Int returns a pointer to i, for the optional event value.
func Int(i int) *int {
	return &i
}
