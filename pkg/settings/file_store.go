package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/surface-duo/posture-go/pkg/lockpolicy"
)

// FileVersion is the current version of the settings file format.
const FileVersion = 1

// record is the on-disk form. The lock mode is stored as the integer the
// device property uses so unknown values decode to Dynamic.
type record struct {
	Version         int       `json:"version"`
	SavedAt         time.Time `json:"saved_at"`
	LockMode        int       `json:"posture_lock"`
	HingeDisabled   bool      `json:"disable_hinge"`
	PeekModeEnabled bool      `json:"peek_mode_enabled"`
}

// FileStore persists the user-editable settings as JSON. Panel geometry is
// not persisted; it comes from the defaults passed to OpenFileStore.
type FileStore struct {
	mu      sync.Mutex
	path    string
	current Settings
}

// OpenFileStore loads path, falling back to defaults when it does not exist.
func OpenFileStore(path string, defaults Settings) (*FileStore, error) {
	s := &FileStore{path: path, current: defaults}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the cached settings.
func (s *FileStore) Snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reload re-reads the file. A missing file keeps the current values.
func (s *FileStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("settings %s: %w", s.path, err)
	}

	s.current.LockMode = lockpolicy.ModeFromInt(r.LockMode)
	s.current.HingeDisabled = r.HingeDisabled
	s.current.PeekModeEnabled = r.PeekModeEnabled
	return nil
}

// Update applies fn and writes the result to disk.
func (s *FileStore) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	fn(&next)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(record{
		Version:         FileVersion,
		SavedAt:         time.Now(),
		LockMode:        int(next.LockMode),
		HingeDisabled:   next.HingeDisabled,
		PeekModeEnabled: next.PeekModeEnabled,
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}

	s.current = next
	return nil
}
