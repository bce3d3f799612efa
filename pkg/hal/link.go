package hal

import (
	"context"

	"github.com/surface-duo/posture-go/pkg/version"
)

// LinkID identifies one of the hardware links.
type LinkID uint8

const (
	// LinkDisplay is the display topology service.
	LinkDisplay LinkID = iota + 1

	// LinkTouch is the touch/pen service.
	LinkTouch
)

// Links returns all link identifiers in connect order.
func Links() []LinkID {
	return []LinkID{LinkDisplay, LinkTouch}
}

// String returns a human-readable link name.
func (l LinkID) String() string {
	switch l {
	case LinkDisplay:
		return "DISPLAY"
	case LinkTouch:
		return "TOUCH"
	default:
		return "UNKNOWN"
	}
}

// State represents the state of a single link.
type State uint8

const (
	// StateDisconnected indicates no usable handle.
	StateDisconnected State = iota

	// StateConnecting indicates a lookup is in progress.
	StateConnecting

	// StateConnected indicates a live handle with a death watch.
	StateConnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Binder is a handle to a remote hardware service.
type Binder interface {
	// Descriptor returns the interface the handle was obtained for.
	Descriptor() version.Descriptor

	// LinkToDeath registers fn to be called once if the remote service dies.
	LinkToDeath(fn func()) error

	// UnlinkToDeath removes the death watch. Safe to call more than once.
	UnlinkToDeath()
}

// DisplayTopology is the display composition service.
type DisplayTopology interface {
	Binder
	SetComposition(id int32) error
}

// TouchPen is the touch and pen controller service. Both generations expose
// the same calls.
type TouchPen interface {
	Binder
	SetDisplayState(state int32) error
	HingeAngle(angle int32) error
}

// Locator looks up hardware services. Lookups must honour ctx cancellation.
type Locator interface {
	DisplayTopology(ctx context.Context) (DisplayTopology, error)
	TouchPen(ctx context.Context, d version.Descriptor) (TouchPen, error)
}
