// Package settings provides the user settings the posture service polls on
// every event: side lock, hinge compensation, peek mode and panel geometry.
package settings

import (
	"sync"

	"github.com/surface-duo/posture-go/pkg/lockpolicy"
)

// Panel geometry defaults for the first generation device.
const (
	DefaultPanelWidth  = 1350
	DefaultPanelHeight = 1350
	DefaultHingeGap    = 84
)

// Panel describes one physical panel and the gap between the two.
type Panel struct {
	Width    int32 `json:"width" mapstructure:"width"`
	Height   int32 `json:"height" mapstructure:"height"`
	HingeGap int32 `json:"hinge_gap" mapstructure:"hinge_gap"`
}

// DefaultPanel returns the default panel geometry.
func DefaultPanel() Panel {
	return Panel{Width: DefaultPanelWidth, Height: DefaultPanelHeight, HingeGap: DefaultHingeGap}
}

// Offset returns the horizontal distance from the spanned display centre to
// a single panel centre. With hinge compensation disabled the gap is ignored.
func (p Panel) Offset(hingeDisabled bool) int32 {
	if hingeDisabled {
		return p.Width / 2
	}
	return (p.Width + p.HingeGap) / 2
}

// Settings is one consistent snapshot.
type Settings struct {
	LockMode        lockpolicy.LockMode
	HingeDisabled   bool
	PeekModeEnabled bool
	Panel           Panel
}

// Default returns Dynamic lock, hinge compensation on, peek mode off and the
// default panel.
func Default() Settings {
	return Settings{
		LockMode: lockpolicy.Dynamic,
		Panel:    DefaultPanel(),
	}
}

// PanelOffset returns the offset for the current hinge setting.
func (s Settings) PanelOffset() int32 {
	return s.Panel.Offset(s.HingeDisabled)
}

// Provider returns the current settings. Implementations must be safe for
// concurrent use.
type Provider interface {
	Snapshot() Settings
}

// MemoryStore keeps settings in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	current  Settings
	onChange func(Settings)
}

// NewMemoryStore creates a store holding s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{current: s}
}

// Snapshot returns the current settings.
func (m *MemoryStore) Snapshot() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update applies fn to the settings.
func (m *MemoryStore) Update(fn func(*Settings)) {
	m.mu.Lock()
	fn(&m.current)
	s := m.current
	cb := m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(s)
	}
}

// OnChange sets a callback invoked after every Update.
func (m *MemoryStore) OnChange(fn func(Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}
