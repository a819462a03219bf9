package beacon

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// DefaultEndpoint is the fixed collection endpoint events are sent to
// unless overridden via ClientConfig.Endpoint or BEACON_ENDPOINT.
const DefaultEndpoint = "https://stats.statbeam.io/collect"

// prefNamespace prefixes every key this package writes to the
// preference store.
const prefNamespace = "beacon"

// DisableApplicationTracking is the option key that suppresses the
// app-identity fields (an, aid, aiid) from every payload.
const DisableApplicationTracking = "DisableApplicationTracking"

// RuntimeMode distinguishes events originating from the editor from
// events originating from a shipped player build.
type RuntimeMode string

const (
	RuntimeModeEditor RuntimeMode = "editor"
	RuntimeModePlayer RuntimeMode = "player"
)

var (
	ErrMissingTrackingID     = errors.New("TrackingID is required")
	ErrMissingPackageVersion = errors.New("PackageVersion is required")
)

// ClientConfig configures a Client. TrackingID and PackageVersion are
// required; everything else has a default.
type ClientConfig struct {
	TrackingID     string
	PackageVersion string
	// Options maps option names to boolean flags. Recognized:
	// DisableApplicationTracking.
	Options map[string]bool
	// Endpoint defaults to DefaultEndpoint.
	Endpoint string
	// RuntimeMode defaults to RuntimeModeEditor.
	RuntimeMode RuntimeMode
	// Disabled turns every TrackEvent into a logged no-op. Also
	// settable via the BEACON_DISABLED environment variable.
	Disabled bool
	Adapters struct {
		HTTPAdapter     HTTPAdapter
		PreferenceStore PreferenceStore
		LoggerAdapter   LoggerAdapter
		DeviceID        DeviceIDProvider
		SystemInfo      SystemInfoProvider
		AppInfo         AppInfoProvider
	}
}

type envOverrides struct {
	Endpoint string `env:"BEACON_ENDPOINT"`
	Disabled bool   `env:"BEACON_DISABLED"`
}

// applyEnvOverrides lets the environment override the endpoint and opt
// out of telemetry entirely without touching host application code.
func applyEnvOverrides(config *ClientConfig) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return err
	}
	if overrides.Endpoint != "" {
		config.Endpoint = overrides.Endpoint
	}
	if overrides.Disabled {
		config.Disabled = true
	}
	return nil
}
