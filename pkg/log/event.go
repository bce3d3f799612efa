package log

import "time"

// Event is one trace record. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one run of the service (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Source is the component that emitted the event.
	Source Source `cbor:"3,keyasint"`

	// Category classifies the payload.
	Category Category `cbor:"4,keyasint"`

	// Sequence is the actor's event counter at the time of emission.
	Sequence uint64 `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Sensor     *SensorEvent     `cbor:"10,keyasint,omitempty"`
	Transition *TransitionEvent `cbor:"11,keyasint,omitempty"`
	Hardware   *HardwareEvent   `cbor:"12,keyasint,omitempty"`
	LinkState  *LinkStateEvent  `cbor:"13,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"14,keyasint,omitempty"`
}

// Source identifies the emitting component.
type Source uint8

const (
	SourceSensor Source = iota
	SourceResolver
	SourceDriver
	SourceHAL
	SourceService
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceSensor:
		return "SENSOR"
	case SourceResolver:
		return "RESOLVER"
	case SourceDriver:
		return "DRIVER"
	case SourceHAL:
		return "HAL"
	case SourceService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event payload.
type Category uint8

const (
	CategoryInput Category = iota
	CategoryTransition
	CategoryHardware
	CategoryLink
	CategoryError
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "INPUT"
	case CategoryTransition:
		return "TRANSITION"
	case CategoryHardware:
		return "HARDWARE"
	case CategoryLink:
		return "LINK"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SensorEvent captures a raw input.
type SensorEvent struct {
	// Kind is POSTURE, HINGE, HALL, ROTATION, POWER or MANUAL.
	Kind string `cbor:"1,keyasint"`

	// Code is the raw posture code (posture events only).
	Code float32 `cbor:"2,keyasint,omitempty"`

	// Value is the integer reading: hinge angle, hall value, rotation code,
	// power connected (1/0) or manual mode.
	Value int32 `cbor:"3,keyasint,omitempty"`

	// Rotation is the raw rotation code sent with a posture event.
	Rotation int32 `cbor:"4,keyasint,omitempty"`
}

// TransitionEvent captures a posture decision.
type TransitionEvent struct {
	// From is the current posture before the event, empty if none.
	From string `cbor:"1,keyasint,omitempty"`

	// Candidate is the decoded sensor posture.
	Candidate string `cbor:"2,keyasint"`

	// To is the committed posture.
	To string `cbor:"3,keyasint"`

	// Outcome is the lock policy outcome.
	Outcome string `cbor:"4,keyasint"`

	// Pending is the posture parked by the rotation gate, if any.
	Pending string `cbor:"5,keyasint,omitempty"`

	// Promoted marks a transition caused by a rotation-changed notification.
	Promoted bool `cbor:"6,keyasint,omitempty"`
}

// HardwareEvent captures what the composition driver issued.
type HardwareEvent struct {
	Class             string `cbor:"1,keyasint"`
	Composition       int32  `cbor:"2,keyasint"`
	Issued            bool   `cbor:"3,keyasint,omitempty"`
	DeviceState       string `cbor:"4,keyasint,omitempty"`
	LauncherRestarted bool   `cbor:"5,keyasint,omitempty"`
	Overlay           string `cbor:"6,keyasint,omitempty"`
	Sleep             bool   `cbor:"7,keyasint,omitempty"`

	// Trigger is what caused the application (posture, manual, reapply, ...).
	Trigger string `cbor:"8,keyasint,omitempty"`
}

// LinkStateEvent captures a hardware link state change.
type LinkStateEvent struct {
	Link     string `cbor:"1,keyasint"`
	OldState string `cbor:"2,keyasint,omitempty"`
	NewState string `cbor:"3,keyasint"`

	// TouchVersion is the connected touch generation, for the touch link.
	TouchVersion string `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a dropped input or swallowed failure.
type ErrorEventData struct {
	// Source where the error occurred.
	Source Source `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
