package adapters

// PreferenceStore is an interface for persistent key-value preferences.
// Implement this interface to use custom storage backends (registry,
// platform preference APIs, database, etc.).
type PreferenceStore interface {
	// GetString retrieves the value stored under key.
	//
	// Returns the value, whether the key was present, and an error if
	// the lookup itself failed.
	GetString(key string) (string, bool, error)

	// SetString persists value under key.
	//
	// Returns error if the write fails.
	SetString(key, value string) error
}
