package beacon

import (
	"sync"

	"github.com/statbeam/beacon-go/adapters"
)

// Client is the top-level anonymous usage-telemetry client. It builds
// the session-invariant default payload once during Init, records a
// one-time "updated_version" event per package version, and fires each
// tracked event as an independent asynchronous beacon.
//
// The zero value is not usable; construct with NewClient.
type Client struct {
	config      ClientConfig
	builder     *PayloadBuilder
	httpAdapter HTTPAdapter
	prefStore   PreferenceStore
	logger      LoggerAdapter

	// defaultPayload is written once during Init and only read after,
	// so TrackEvent never needs more than the read lock.
	defaultPayload string
	initialized    bool
	mu             sync.RWMutex
}

// NewClient creates a new telemetry client.
func NewClient(config ClientConfig) (*Client, error) {
	// Validate required fields
	if config.TrackingID == "" {
		return nil, ErrMissingTrackingID
	}
	if config.PackageVersion == "" {
		return nil, ErrMissingPackageVersion
	}

	// Set defaults
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.RuntimeMode == "" {
		config.RuntimeMode = RuntimeModeEditor
	}
	if err := applyEnvOverrides(&config); err != nil {
		return nil, err
	}

	client := &Client{config: config}

	// Use provided adapters or defaults
	if config.Adapters.HTTPAdapter != nil {
		client.httpAdapter = config.Adapters.HTTPAdapter
	} else {
		client.httpAdapter = adapters.NewNetHTTPAdapter()
	}

	if config.Adapters.PreferenceStore != nil {
		client.prefStore = config.Adapters.PreferenceStore
	} else {
		client.prefStore = adapters.NewFilePreferenceStore("beacon_prefs.json")
	}

	if config.Adapters.LoggerAdapter != nil {
		client.logger = config.Adapters.LoggerAdapter
	} else {
		client.logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	deviceID := config.Adapters.DeviceID
	if deviceID == nil {
		deviceID = adapters.NewMachineDeviceID(client.prefStore)
	}

	systemInfo := config.Adapters.SystemInfo
	if systemInfo == nil {
		systemInfo = adapters.RuntimeSystemInfo{}
	}

	client.builder = NewPayloadBuilder(deviceID, systemInfo, config.Adapters.AppInfo, config.RuntimeMode, client.logger)

	return client, nil
}

// Init builds and caches the default payload, then runs the version
// gate, which fires one "updated_version" event on a fresh installation
// or a package version change. Init is idempotent: repeated calls are
// no-ops and never emit a second event for the same version. Must be
// called before TrackEvent.
func (c *Client) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if c.config.Disabled {
		c.initialized = true
		c.logger.Debug("Telemetry disabled, events will be dropped")
		return nil
	}

	payload, err := c.builder.BuildDefaultPayload(c.config.TrackingID, c.config.PackageVersion, c.config.Options)
	if err != nil {
		return err
	}
	c.defaultPayload = payload
	c.initialized = true

	sink := func(category, action string, value *int) {
		c.dispatch(BuildEventPayload(payload, category, action, value))
	}
	if err := CheckAndMaybeTrackUpdate(c.config.TrackingID, c.config.PackageVersion, c.prefStore, sink); err != nil {
		// Best-effort: a broken preference store must not break Init.
		c.logger.Error("Version update check failed: %v", err)
	}

	c.logger.Info("Client initialized successfully")
	return nil
}

// TrackEvent fires an event beacon with the given category, action and
// optional value (see Int). It never blocks and never fails the caller:
// a call before Init is a logged no-op, and delivery failures are
// logged and dropped.
func (c *Client) TrackEvent(category, action string, value *int) {
	c.mu.RLock()
	initialized := c.initialized
	defaultPayload := c.defaultPayload
	c.mu.RUnlock()

	if !initialized {
		c.logger.Warn("TrackEvent called before Init, dropping %s/%s", category, action)
		return
	}
	if c.config.Disabled {
		c.logger.Debug("Telemetry disabled, dropping %s/%s", category, action)
		return
	}
	if defaultPayload == "" {
		c.logger.Warn("Default payload missing, dropping %s/%s", category, action)
		return
	}

	c.dispatch(BuildEventPayload(defaultPayload, category, action, value))
}

// dispatch sends a fully-built payload through a fresh single-use
// reporter. Each event owns its own transfer; nothing is shared or
// reused across events.
func (c *Client) dispatch(payload string) {
	reporter := NewReporter(c.httpAdapter, c.logger)
	err := reporter.Send(c.config.Endpoint, payload, func(result string, err error) {
		if err != nil {
			c.logger.Error("Event delivery failed: %v", err)
			return
		}
		c.logger.Debug("Event delivered")
	})
	if err != nil {
		// Unreachable on a fresh reporter, but keep the taxonomy honest.
		c.logger.Error("Failed to dispatch event: %v", err)
	}
}
