// Package timers keeps one cancellable timer slot per purpose.
//
// Scheduling a purpose that already has a running timer replaces it, so at
// most one expiry per purpose is ever outstanding. Expiry callbacks run on the
// timer goroutine; owners that need serialised handling forward them into
// their own event loop and check IsCurrent before acting, since the slot may
// have been cancelled or replaced while the expiry was queued.
package timers

import (
	"errors"
	"sync"
	"time"
)

// Timer errors.
var (
	ErrTimerNotFound   = errors.New("timer not found")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Default delays used by the posture service.
const (
	// SensorSuspendDelay is how long after the lid closes the posture and
	// hinge sensors stay registered.
	SensorSuspendDelay = 1000 * time.Millisecond

	// OverlayHideDelay is the default peek overlay lifetime.
	OverlayHideDelay = 5 * time.Second

	// MaxDelay bounds any single timer.
	MaxDelay = 10 * time.Minute
)

// Purpose identifies a timer slot.
type Purpose uint8

const (
	// SensorSuspend unregisters the posture and hinge sensors after the lid closes.
	SensorSuspend Purpose = iota + 1

	// OverlayHide hides the peek overlay.
	OverlayHide

	// ScreenOff puts the device to sleep after an overlay shown with sleepAfter.
	ScreenOff

	// Reconnect delivers a backoff retry for a hardware link that stayed down.
	Reconnect
)

// String returns a human-readable purpose name.
func (p Purpose) String() string {
	switch p {
	case SensorSuspend:
		return "SENSOR_SUSPEND"
	case OverlayHide:
		return "OVERLAY_HIDE"
	case ScreenOff:
		return "SCREEN_OFF"
	case Reconnect:
		return "RECONNECT"
	default:
		return "UNKNOWN"
	}
}

// Timer describes a scheduled slot.
type Timer struct {
	Purpose   Purpose
	StartTime time.Time
	Delay     time.Duration

	// generation distinguishes a replaced timer whose AfterFunc already fired
	// from the one currently in the slot.
	generation uint64
	timer      *time.Timer
}

// ExpiresAt returns when the timer will fire.
func (t *Timer) ExpiresAt() time.Time {
	return t.StartTime.Add(t.Delay)
}

// Remaining returns time until expiry.
func (t *Timer) Remaining() time.Duration {
	remaining := t.Delay - time.Since(t.StartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Manager holds the timer slots.
type Manager struct {
	mu sync.Mutex

	timers     map[Purpose]*Timer
	generation uint64

	// latest is the generation of the last Schedule or Cancel per purpose.
	latest map[Purpose]uint64

	onExpiry func(p Purpose, gen uint64)
}

// NewManager creates an empty timer manager.
func NewManager() *Manager {
	return &Manager{
		timers: make(map[Purpose]*Timer),
		latest: make(map[Purpose]uint64),
	}
}

// Schedule starts a timer for purpose p, replacing any timer already running
// for the same purpose.
func (m *Manager) Schedule(p Purpose, delay time.Duration) error {
	if delay < 0 || delay > MaxDelay {
		return ErrInvalidDuration
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.timers[p]; ok {
		existing.timer.Stop()
	}

	m.generation++
	gen := m.generation
	m.latest[p] = gen
	t := &Timer{
		Purpose:    p,
		StartTime:  time.Now(),
		Delay:      delay,
		generation: gen,
	}
	t.timer = time.AfterFunc(delay, func() {
		m.expire(p, gen)
	})
	m.timers[p] = t
	return nil
}

// Cancel stops the timer for purpose p without firing its callback. An
// expiry of p already handed to the callback stops being current.
func (m *Manager) Cancel(p Purpose) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.latest[p] = m.generation

	t, ok := m.timers[p]
	if !ok {
		return ErrTimerNotFound
	}
	t.timer.Stop()
	delete(m.timers, p)
	return nil
}

// CancelAll stops every outstanding timer.
func (m *Manager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	for p := range m.latest {
		m.latest[p] = m.generation
	}
	for p, t := range m.timers {
		t.timer.Stop()
		delete(m.timers, p)
	}
}

// IsCurrent reports whether gen is still the latest generation of p, i.e.
// p was neither rescheduled nor cancelled since that timer was started.
func (m *Manager) IsCurrent(p Purpose, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return gen != 0 && m.latest[p] == gen
}

// Pending reports whether a timer for p is outstanding.
func (m *Manager) Pending(p Purpose) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.timers[p]
	return ok
}

// Get returns a copy of the timer for p, or nil.
func (m *Manager) Get(p Purpose) *Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.timers[p]
	if !ok {
		return nil
	}
	return &Timer{
		Purpose:   t.Purpose,
		StartTime: t.StartTime,
		Delay:     t.Delay,
	}
}

// Count returns the number of outstanding timers.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// OnExpiry sets the callback invoked when a timer fires. gen identifies the
// timer for IsCurrent.
func (m *Manager) OnExpiry(fn func(p Purpose, gen uint64)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpiry = fn
}

func (m *Manager) expire(p Purpose, gen uint64) {
	m.mu.Lock()
	t, ok := m.timers[p]
	if !ok || t.generation != gen {
		m.mu.Unlock()
		return
	}
	delete(m.timers, p)
	callback := m.onExpiry
	m.mu.Unlock()

	if callback != nil {
		callback(p, gen)
	}
}
