package beacon

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	protocolVersion = "1"
	hitTypeEvent    = "event"

	// Encoded-length bounds for the optional app-identity fields.
	// Fields exceeding their bound are omitted rather than truncated,
	// so the endpoint never receives a semantically wrong value.
	maxProductNameLen = 100
	maxBundleIDLen    = 150
	maxCompanyNameLen = 150
)

// PayloadBuilder assembles the session-invariant default payload once
// and seeds every per-event payload from it. The default payload is a
// valid URL query string with a fixed, append-only field order.
type PayloadBuilder struct {
	deviceID    DeviceIDProvider
	systemInfo  SystemInfoProvider
	appInfo     AppInfoProvider
	runtimeMode RuntimeMode
	logger      LoggerAdapter
}

// NewPayloadBuilder creates a PayloadBuilder over the given environment
// collaborators. appInfo may be nil when the host has no identity to report.
func NewPayloadBuilder(deviceID DeviceIDProvider, systemInfo SystemInfoProvider, appInfo AppInfoProvider, runtimeMode RuntimeMode, logger LoggerAdapter) *PayloadBuilder {
	return &PayloadBuilder{
		deviceID:    deviceID,
		systemInfo:  systemInfo,
		appInfo:     appInfo,
		runtimeMode: runtimeMode,
		logger:      logger,
	}
}

// BuildDefaultPayload builds the per-session default payload. Field
// order: v, t, tid, cid, ua, av, ds, then conditionally an, aid, aiid.
// Empty trackingID or packageVersion is a programmer error and fails
// eagerly. App-identity fields are suppressed entirely when
// opts[DisableApplicationTracking] is set.
func (b *PayloadBuilder) BuildDefaultPayload(trackingID, packageVersion string, opts map[string]bool) (string, error) {
	if trackingID == "" {
		return "", ErrMissingTrackingID
	}
	if packageVersion == "" {
		return "", ErrMissingPackageVersion
	}

	deviceID, err := b.deviceID.DeviceID()
	if err != nil {
		return "", fmt.Errorf("failed to obtain device id: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("v=" + protocolVersion)
	sb.WriteString("&t=" + hitTypeEvent)
	sb.WriteString("&tid=" + url.QueryEscape(trackingID))
	sb.WriteString("&cid=" + url.QueryEscape(deviceID))
	sb.WriteString("&ua=" + url.QueryEscape(b.systemInfo.OperatingSystem()))
	sb.WriteString("&av=" + url.QueryEscape(packageVersion))
	sb.WriteString("&ds=" + string(b.runtimeMode))

	if !opts[DisableApplicationTracking] && b.appInfo != nil {
		b.appendBounded(&sb, "an", b.appInfo.ProductName(), maxProductNameLen)
		b.appendBounded(&sb, "aid", b.appInfo.BundleIdentifier(), maxBundleIDLen)
		b.appendBounded(&sb, "aiid", b.appInfo.CompanyName(), maxCompanyNameLen)
	}

	return sb.String(), nil
}

// appendBounded appends key=value when value is non-empty and its
// encoded form fits within maxLen. Oversized values are omitted, not
// truncated.
func (b *PayloadBuilder) appendBounded(sb *strings.Builder, key, value string, maxLen int) {
	if value == "" {
		return
	}
	encoded := url.QueryEscape(value)
	if len(encoded) > maxLen {
		b.logger.Debug("Omitting %s: encoded length %d exceeds %d", key, len(encoded), maxLen)
		return
	}
	sb.WriteString("&" + key + "=" + encoded)
}

// BuildEventPayload appends the event-specific fields to a default
// payload: ec, ea, and ev only when value is non-nil. Category and
// action have no length bound; that check is delegated to the endpoint.
func BuildEventPayload(defaultPayload, category, action string, value *int) string {
	var sb strings.Builder
	sb.WriteString(defaultPayload)
	sb.WriteString("&ec=" + url.QueryEscape(category))
	sb.WriteString("&ea=" + url.QueryEscape(action))
	if value != nil {
		sb.WriteString("&ev=" + strconv.Itoa(*value))
	}
	return sb.String()
}
