package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineDeviceID_Stable(t *testing.T) {
	store := NewMemoryPreferenceStore()
	provider := NewMachineDeviceID(store)

	first, err := provider.DeviceID()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := provider.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMachineDeviceID_SameMachineSameID(t *testing.T) {
	store := NewMemoryPreferenceStore()

	first, err := NewMachineDeviceID(store).DeviceID()
	require.NoError(t, err)
	second, err := NewMachineDeviceID(store).DeviceID()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMachineDeviceID_PersistedFallback(t *testing.T) {
	store := NewMemoryPreferenceStore()
	provider := NewMachineDeviceID(store)

	first, err := provider.persistedFallback()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	persisted, ok, err := store.GetString(deviceIDPrefKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, persisted)

	second, err := provider.persistedFallback()
	require.NoError(t, err)
	assert.Equal(t, first, second, "fallback id survives via the preference store")
}

func TestMachineDeviceID_FallbackWithoutStore(t *testing.T) {
	provider := NewMachineDeviceID(nil)

	id, err := provider.persistedFallback()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
