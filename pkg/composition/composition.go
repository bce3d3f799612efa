// Package composition turns a committed posture into display hardware
// commands: panel composition, touch state, window geometry, device-state
// requests, launcher restarts and the peek overlay.
package composition

import (
	"context"
	"fmt"
	"strings"
)

// ID is a panel composition understood by the display topology service.
type ID int32

const (
	// Left shows a single logical display on the left panel.
	Left ID = 0

	// Right shows a single logical display on the right panel.
	Right ID = 1

	// Dual spans the logical display across both panels.
	Dual ID = 2

	// Unset is the value before any composition has been issued.
	Unset ID = 5
)

// String returns a human-readable composition name.
func (id ID) String() string {
	switch id {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Dual:
		return "DUAL"
	case Unset:
		return "UNSET"
	default:
		return fmt.Sprintf("ID(%d)", int32(id))
	}
}

// ManualMode is the quick-settings override of automatic composition.
type ManualMode uint8

const (
	// ManualAutomatic follows the posture sensor.
	ManualAutomatic ManualMode = iota
	// ManualLeft pins the display to the left panel.
	ManualLeft
	// ManualRight pins the display to the right panel.
	ManualRight
	// ManualTablet spans both panels.
	ManualTablet
)

// String returns a human-readable mode name.
func (m ManualMode) String() string {
	switch m {
	case ManualAutomatic:
		return "AUTOMATIC"
	case ManualLeft:
		return "LEFT"
	case ManualRight:
		return "RIGHT"
	case ManualTablet:
		return "TABLET"
	default:
		return "UNKNOWN"
	}
}

// Next returns the mode that follows m in the tile cycle
// Automatic, Left, Right, Tablet, Automatic.
func (m ManualMode) Next() ManualMode {
	switch m {
	case ManualAutomatic:
		return ManualLeft
	case ManualLeft:
		return ManualRight
	case ManualRight:
		return ManualTablet
	default:
		return ManualAutomatic
	}
}

// ParseManualMode parses a mode name.
func ParseManualMode(s string) (ManualMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "automatic", "auto", "3":
		return ManualAutomatic, nil
	case "left", "1":
		return ManualLeft, nil
	case "right", "2":
		return ManualRight, nil
	case "tablet", "dual", "0":
		return ManualTablet, nil
	}
	return ManualAutomatic, fmt.Errorf("unknown manual mode %q", s)
}

// HardwareLink is the subset of the hardware link manager the driver uses.
type HardwareLink interface {
	EnsureConnected(ctx context.Context) bool
	TryConnect(ctx context.Context) bool
	SetComposition(id int32) error
	SetTouchState(id int32) error
	SetHingeAngle(angle int32) error
}
