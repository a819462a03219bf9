package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// deviceIDPrefKey is where the random fallback id is persisted so it
// stays stable across restarts on machines without usable hardware signals.
const deviceIDPrefKey = "beacon.DeviceID"

// DeviceIDProvider is an interface for obtaining an anonymous,
// installation-stable device identifier.
type DeviceIDProvider interface {
	// DeviceID returns the identifier, or error if none could be derived.
	DeviceID() (string, error)
}

// MachineDeviceID derives a device identifier from hardware signals:
// the MAC addresses of physical network interfaces plus the hostname,
// sorted and hashed into a hex SHA-256 fingerprint. The id is stable
// across reboots but sensitive to hardware changes. When no signals are
// available it falls back to a random UUID persisted in the preference
// store.
type MachineDeviceID struct {
	store PreferenceStore
}

// Ensure MachineDeviceID implements DeviceIDProvider interface
var _ DeviceIDProvider = (*MachineDeviceID)(nil)

// NewMachineDeviceID creates a MachineDeviceID backed by the given
// preference store for the fallback path.
func NewMachineDeviceID(store PreferenceStore) *MachineDeviceID {
	return &MachineDeviceID{store: store}
}

// DeviceID returns the hardware fingerprint, or a persisted random UUID
// when no hardware signals can be collected.
func (m *MachineDeviceID) DeviceID() (string, error) {
	signals := collectHardwareSignals()
	if len(signals) > 0 {
		sort.Strings(signals)
		sum := sha256.Sum256([]byte(strings.Join(signals, "|")))
		return hex.EncodeToString(sum[:]), nil
	}
	return m.persistedFallback()
}

func (m *MachineDeviceID) persistedFallback() (string, error) {
	if m.store != nil {
		if id, ok, err := m.store.GetString(deviceIDPrefKey); err == nil && ok && id != "" {
			return id, nil
		}
	}
	id := uuid.NewString()
	if m.store != nil {
		if err := m.store.SetString(deviceIDPrefKey, id); err != nil {
			return "", err
		}
	}
	return id, nil
}

func collectHardwareSignals() []string {
	var signals []string

	ifaces, err := net.Interfaces()
	if err == nil {
		for _, iface := range ifaces {
			if iface.Flags&net.FlagLoopback != 0 {
				continue
			}
			if len(iface.HardwareAddr) == 0 {
				continue
			}
			signals = append(signals, "mac:"+iface.HardwareAddr.String())
		}
	}

	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		signals = append(signals, "host:"+hostname)
	}

	return signals
}
