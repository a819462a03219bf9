package adapters

import "sync"

// MemoryPreferenceStore keeps preferences in process memory only.
// Useful for tests and for hosts that manage persistence themselves.
type MemoryPreferenceStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// Ensure MemoryPreferenceStore implements PreferenceStore interface
var _ PreferenceStore = (*MemoryPreferenceStore)(nil)

// NewMemoryPreferenceStore creates a new empty MemoryPreferenceStore.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{values: make(map[string]string)}
}

// GetString retrieves the value stored under key.
func (m *MemoryPreferenceStore) GetString(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// SetString stores value under key.
func (m *MemoryPreferenceStore) SetString(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
