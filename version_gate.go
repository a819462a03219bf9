package beacon

import (
	"fmt"
)

const lastKnownVersionKey = "LastKnownPackageVersion"

// EventSink receives synthetic events emitted during initialization.
type EventSink func(category, action string, value *int)

func versionPrefKey(trackingID string) string {
	return fmt.Sprintf("%s.%s.%s", prefNamespace, trackingID, lastKnownVersionKey)
}

// CheckAndMaybeTrackUpdate compares currentVersion against the version
// persisted for trackingID. On a fresh installation or a version change
// it persists currentVersion and emits exactly one
// ("Version", "updated_version") event through sink. A repeated check
// within the same version performs no write and emits nothing.
func CheckAndMaybeTrackUpdate(trackingID, currentVersion string, store PreferenceStore, sink EventSink) error {
	key := versionPrefKey(trackingID)

	lastKnown, ok, err := store.GetString(key)
	if err != nil {
		return fmt.Errorf("failed to read last known version: %w", err)
	}
	if ok && lastKnown == currentVersion {
		return nil
	}

	if err := store.SetString(key, currentVersion); err != nil {
		return fmt.Errorf("failed to persist package version: %w", err)
	}

	sink("Version", "updated_version", nil)
	return nil
}
