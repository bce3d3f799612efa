package service

import (
	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/timers"
)

// EventKind identifies an event type.
type EventKind uint8

const (
	KindPosture EventKind = iota
	KindHinge
	KindHall
	KindRotationChanged
	KindLinkDeath
	KindPower
	KindManualPosture
	KindRetryReconnect
	KindHealthCheck
	KindTimerExpired
	KindSnapshot
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case KindPosture:
		return "POSTURE"
	case KindHinge:
		return "HINGE"
	case KindHall:
		return "HALL"
	case KindRotationChanged:
		return "ROTATION"
	case KindLinkDeath:
		return "LINK_DEATH"
	case KindPower:
		return "POWER"
	case KindManualPosture:
		return "MANUAL"
	case KindRetryReconnect:
		return "RETRY_RECONNECT"
	case KindHealthCheck:
		return "HEALTH_CHECK"
	case KindTimerExpired:
		return "TIMER"
	case KindSnapshot:
		return "SNAPSHOT"
	default:
		return "UNKNOWN"
	}
}

// Event is an input to the service event loop.
type Event interface {
	Kind() EventKind
}

// PostureEvent is a raw posture sensor reading.
type PostureEvent struct {
	Code         float32
	RotationCode int32
}

// HingeEvent is a hinge angle reading in degrees.
type HingeEvent struct {
	Angle int32
}

// HallEvent is a hall sensor reading; 0 means the lid is closed.
type HallEvent struct {
	Value int32
}

// RotationChangedEvent reports the display rotation the system settled on.
type RotationChangedEvent struct {
	RotationCode int32
}

// LinkDeathEvent reports that the service behind a hardware link died.
type LinkDeathEvent struct {
	Link hal.LinkID
}

// PowerEvent reports a charger being connected or disconnected.
type PowerEvent struct {
	Connected bool
}

// ManualPostureEvent sets the quick-settings posture mode.
type ManualPostureEvent struct {
	Mode composition.ManualMode
}

// RetryReconnectEvent retries a reconnect that left a link down.
type RetryReconnectEvent struct{}

// HealthCheckEvent connects any link that is down.
type HealthCheckEvent struct{}

// TimerExpiredEvent delivers a timer expiry.
type TimerExpiredEvent struct {
	Purpose timers.Purpose

	// Generation identifies the timer. An expiry whose timer was cancelled
	// or replaced after it fired is dropped.
	Generation uint64
}

type snapshotQuery struct{}

func (PostureEvent) Kind() EventKind         { return KindPosture }
func (HingeEvent) Kind() EventKind           { return KindHinge }
func (HallEvent) Kind() EventKind            { return KindHall }
func (RotationChangedEvent) Kind() EventKind { return KindRotationChanged }
func (LinkDeathEvent) Kind() EventKind       { return KindLinkDeath }
func (PowerEvent) Kind() EventKind           { return KindPower }
func (ManualPostureEvent) Kind() EventKind   { return KindManualPosture }
func (RetryReconnectEvent) Kind() EventKind  { return KindRetryReconnect }
func (HealthCheckEvent) Kind() EventKind     { return KindHealthCheck }
func (TimerExpiredEvent) Kind() EventKind    { return KindTimerExpired }
func (snapshotQuery) Kind() EventKind        { return KindSnapshot }

// NextManualMode returns the mode the quick-settings tile switches to from
// m: Automatic, Left, Right, Tablet and back to Automatic.
func NextManualMode(m composition.ManualMode) composition.ManualMode {
	return m.Next()
}
