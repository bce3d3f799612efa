// Package platform declares the operating-system collaborators the posture
// service drives besides the hardware links: window geometry, display
// offset, device-state requests, the launcher, the peek overlay, power and
// sensor registration.
package platform

// DeviceState is the fold state requested from the device-state manager.
type DeviceState uint8

const (
	DeviceStateClosed DeviceState = iota
	DeviceStateHalfOpen
	DeviceStateFlat
	DeviceStateFolded
)

// String returns a human-readable state name.
func (s DeviceState) String() string {
	switch s {
	case DeviceStateClosed:
		return "CLOSED"
	case DeviceStateHalfOpen:
		return "HALF_OPEN"
	case DeviceStateFlat:
		return "FLAT"
	case DeviceStateFolded:
		return "FOLDED"
	default:
		return "UNKNOWN"
	}
}

// Code returns the integer identifier the device-state manager expects.
func (s DeviceState) Code() int32 {
	return int32(s)
}

// SensorKind identifies a sensor the service subscribes to.
type SensorKind uint8

const (
	SensorPosture SensorKind = iota + 1
	SensorHinge
	SensorHall
)

// String returns a human-readable sensor name.
func (k SensorKind) String() string {
	switch k {
	case SensorPosture:
		return "POSTURE"
	case SensorHinge:
		return "HINGE"
	case SensorHall:
		return "HALL"
	default:
		return "UNKNOWN"
	}
}

// Reason is passed along with sleep and wake requests.
type Reason string

const (
	ReasonLidSwitch    Reason = "lid_switch"
	ReasonPostureClose Reason = "posture_closed"
	ReasonPeekTimeout  Reason = "peek_timeout"
)

// WindowManager controls the logical display size.
type WindowManager interface {
	SetForcedSize(width, height int32) error
	ClearForcedSize() error

	// IsRotationFrozen reports whether the user locked screen rotation.
	IsRotationFrozen() bool
}

// DisplayManager positions the logical display on the panel pair.
type DisplayManager interface {
	SetDisplayOffset(dx, dy int32) error
}

// DeviceStateRequester submits fold state requests.
type DeviceStateRequester interface {
	RequestDeviceState(state DeviceState) error
}

// Launcher restarts the home launcher so it relayouts for a new screen count.
type Launcher interface {
	RestartLauncher() error
}

// Overlay shows the peek-mode overlay.
type Overlay interface {
	Show(sleepAfter, hingeDisabled bool)
	Hide()
}

// Power controls screen power.
type Power interface {
	GoToSleep(reason Reason)
	WakeUp(reason Reason)
}

// Sensors registers and unregisters sensor listeners.
type Sensors interface {
	Register(kind SensorKind) error
	Unregister(kind SensorKind)
}

// Platform bundles the collaborators.
type Platform struct {
	Windows     WindowManager
	Displays    DisplayManager
	DeviceState DeviceStateRequester
	Launcher    Launcher
	Overlay     Overlay
	Power       Power
	Sensors     Sensors
}
