package adapters

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"github.com/natefinch/atomic"
)

// FilePreferenceStore is the default preference store implementation.
// Stores preferences as a flat JSON object in a file.
type FilePreferenceStore struct {
	filepath string
	mu       sync.Mutex
}

// Ensure FilePreferenceStore implements PreferenceStore interface
var _ PreferenceStore = (*FilePreferenceStore)(nil)

// NewFilePreferenceStore creates a new FilePreferenceStore instance.
//
// Parameters:
//   - filepath: Path to the file where preferences will be stored
func NewFilePreferenceStore(filepath string) *FilePreferenceStore {
	return &FilePreferenceStore{filepath: filepath}
}

// GetString retrieves the value stored under key.
// A missing file is treated as an empty store.
func (f *FilePreferenceStore) GetString(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefs, err := f.load()
	if err != nil {
		return "", false, err
	}
	value, ok := prefs[key]
	return value, ok, nil
}

// SetString persists value under key. The file is replaced atomically
// so a crash mid-write never leaves a corrupt store behind.
func (f *FilePreferenceStore) SetString(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefs, err := f.load()
	if err != nil {
		return err
	}
	prefs[key] = value

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return atomic.WriteFile(f.filepath, bytes.NewReader(data))
}

func (f *FilePreferenceStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	prefs := map[string]string{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
