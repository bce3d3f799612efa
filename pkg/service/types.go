package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	plog "github.com/surface-duo/posture-go/pkg/log"
	"github.com/surface-duo/posture-go/pkg/metrics"
	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/settings"
	"github.com/surface-duo/posture-go/pkg/timers"
)

// Service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrAlreadyStarted = errors.New("service already started")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrStopped        = errors.New("service stopped")
)

// ServiceState represents the service state.
type ServiceState uint8

const (
	// StateIdle - service created but not started.
	StateIdle ServiceState = iota

	// StateRunning - event loop is running.
	StateRunning

	// StateStopping - service is shutting down.
	StateStopping

	// StateStopped - service has stopped.
	StateStopped
)

// String returns the state name.
func (s ServiceState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Default configuration values.
const (
	DefaultQueueSize      = 64
	DefaultHealthInterval = 30 * time.Second
)

// Config configures a Service.
type Config struct {
	// Links is the hardware link manager. Required.
	Links LinkManager

	// Settings is polled on every event. Required.
	Settings settings.Provider

	// Platform holds the OS collaborators. Nil members are skipped.
	Platform platform.Platform

	// PeekAngleThreshold arms peek mode below this hinge angle.
	PeekAngleThreshold int32

	// SensorSuspendDelay is how long after the lid closes the posture and
	// hinge sensors stay registered.
	SensorSuspendDelay time.Duration

	// OverlayHideDelay is how long the peek overlay stays up.
	OverlayHideDelay time.Duration

	// ScreenOffDelay is the pause between hiding an overlay shown with
	// sleep-after and putting the device to sleep.
	ScreenOffDelay time.Duration

	// HealthInterval is the period of the link health sweep.
	// Zero disables the sweep.
	HealthInterval time.Duration

	// QueueSize is the event queue capacity.
	QueueSize int

	// Trace receives structured trace events. Nil disables tracing.
	Trace plog.Logger

	// Metrics receives counters. Nil disables metrics.
	Metrics *metrics.Metrics

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns a config with default timings. Links and Settings
// must still be set.
func DefaultConfig() Config {
	return Config{
		PeekAngleThreshold: composition.DefaultPeekAngleThreshold,
		SensorSuspendDelay: timers.SensorSuspendDelay,
		OverlayHideDelay:   timers.OverlayHideDelay,
		HealthInterval:     DefaultHealthInterval,
		QueueSize:          DefaultQueueSize,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch {
	case c.Links == nil:
		return errors.Join(ErrInvalidConfig, errors.New("links are required"))
	case c.Settings == nil:
		return errors.Join(ErrInvalidConfig, errors.New("settings provider is required"))
	case c.SensorSuspendDelay < 0 || c.OverlayHideDelay < 0 || c.ScreenOffDelay < 0:
		return errors.Join(ErrInvalidConfig, errors.New("negative timer delay"))
	case c.SensorSuspendDelay > timers.MaxDelay || c.OverlayHideDelay > timers.MaxDelay || c.ScreenOffDelay > timers.MaxDelay:
		return errors.Join(ErrInvalidConfig, timers.ErrInvalidDuration)
	case c.HealthInterval < 0:
		return errors.Join(ErrInvalidConfig, errors.New("negative health interval"))
	case c.QueueSize < 0:
		return errors.Join(ErrInvalidConfig, errors.New("negative queue size"))
	}
	return nil
}

// Snapshot is a consistent view of the service state, taken on the event
// loop.
type Snapshot struct {
	State ServiceState

	// Current is the committed posture, nil before the first posture event.
	Current *posture.Posture

	// Pending is the posture parked by the rotation gate, if any.
	Pending *posture.Posture

	Composition       composition.ID
	PreviousWasTablet bool
	ManualMode        composition.ManualMode

	Hall          int32
	PeekArmed     bool
	HingeAngle    int32
	HasHingeAngle bool

	Display      hal.State
	Touch        hal.State
	TouchVersion hal.TouchVersion

	// LastResult is what the last driver call did.
	LastResult composition.Result

	// Timers lists the outstanding timer purposes.
	Timers []timers.Purpose

	// Processed counts handled events.
	Processed uint64
}

// TimerPending reports whether a timer for p is outstanding.
func (s Snapshot) TimerPending(p timers.Purpose) bool {
	for _, t := range s.Timers {
		if t == p {
			return true
		}
	}
	return false
}

// NotificationType identifies a service notification.
type NotificationType uint8

const (
	// NotifyPostureCommitted - the current posture changed.
	NotifyPostureCommitted NotificationType = iota

	// NotifyRotationPending - a posture was parked awaiting rotation.
	NotifyRotationPending

	// NotifyCompositionApplied - a composition was issued to the hardware.
	NotifyCompositionApplied

	// NotifyLinkUp - a hardware link connected.
	NotifyLinkUp

	// NotifyLinkDown - a hardware link disconnected.
	NotifyLinkDown

	// NotifyDecodeError - a posture event was dropped.
	NotifyDecodeError

	// NotifyManualMode - the manual posture mode changed.
	NotifyManualMode
)

// String returns the notification type name.
func (t NotificationType) String() string {
	switch t {
	case NotifyPostureCommitted:
		return "POSTURE_COMMITTED"
	case NotifyRotationPending:
		return "ROTATION_PENDING"
	case NotifyCompositionApplied:
		return "COMPOSITION_APPLIED"
	case NotifyLinkUp:
		return "LINK_UP"
	case NotifyLinkDown:
		return "LINK_DOWN"
	case NotifyDecodeError:
		return "DECODE_ERROR"
	case NotifyManualMode:
		return "MANUAL_MODE"
	default:
		return "UNKNOWN"
	}
}

// Notification reports something the service did.
type Notification struct {
	Type NotificationType

	// Posture is set for posture notifications.
	Posture *posture.Posture

	// Composition is set for NotifyCompositionApplied.
	Composition composition.ID

	// Link is set for link notifications.
	Link hal.LinkID

	// Mode is set for NotifyManualMode.
	Mode composition.ManualMode

	// Error is set for NotifyDecodeError.
	Error error
}

// NotificationHandler receives service notifications. Handlers run on their
// own goroutine and must not block the caller.
type NotificationHandler func(Notification)
