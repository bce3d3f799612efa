package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
	"github.com/surface-duo/posture-go/pkg/timers"
)

func withDelays(suspend, overlay time.Duration) option {
	return func(c *service.Config, _ *hal.Config) {
		c.SensorSuspendDelay = suspend
		c.OverlayHideDelay = overlay
	}
}

func hasCall(calls []simhw.Call, args ...any) bool {
	for _, c := range calls {
		if len(c.Args) != len(args) {
			continue
		}
		match := true
		for i := range args {
			if c.Args[i] != args[i] {
				match = false
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestHallCloseSuspendsSensorsAfterDelay(t *testing.T) {
	f := newFixture(t, withDelays(50*time.Millisecond, time.Second))
	f.start(t)

	f.dispatch(t, service.HallEvent{Value: 1})
	snap := f.dispatch(t, service.HallEvent{Value: 0})

	assert.True(t, snap.TimerPending(timers.SensorSuspend))
	assert.True(t, f.dev.State().Registered[platform.SensorPosture])
	assert.True(t, hasCall(f.dev.CallsNamed("power.GoToSleep"), string(platform.ReasonLidSwitch)))

	require.Eventually(t, func() bool {
		s := f.dev.State()
		return !s.Registered[platform.SensorPosture] && !s.Registered[platform.SensorHinge]
	}, 2*time.Second, 10*time.Millisecond)

	// The hall sensor itself stays registered to catch the lid opening.
	assert.True(t, f.dev.State().Registered[platform.SensorHall])
}

func TestHallReopenCancelsSuspend(t *testing.T) {
	f := newFixture(t, withDelays(150*time.Millisecond, time.Second))
	f.start(t)

	f.dispatch(t, service.HallEvent{Value: 1})
	f.dispatch(t, service.HallEvent{Value: 0})
	snap := f.dispatch(t, service.HallEvent{Value: 1})

	assert.False(t, snap.TimerPending(timers.SensorSuspend))
	assert.True(t, hasCall(f.dev.CallsNamed("power.WakeUp"), string(platform.ReasonLidSwitch)))

	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, f.dev.CallsNamed("sensors.Unregister"))
	assert.True(t, f.dev.State().Registered[platform.SensorPosture])
}

func TestHallOpenAfterSuspendReregistersSensors(t *testing.T) {
	f := newFixture(t, withDelays(20*time.Millisecond, time.Second))
	f.start(t)

	f.dispatch(t, service.HallEvent{Value: 0})
	require.Eventually(t, func() bool {
		return !f.dev.State().Registered[platform.SensorPosture]
	}, 2*time.Second, 10*time.Millisecond)

	snap := f.dispatch(t, service.HallEvent{Value: 1})
	assert.Equal(t, int32(1), snap.Hall)
	state := f.dev.State()
	assert.True(t, state.Registered[platform.SensorPosture])
	assert.True(t, state.Registered[platform.SensorHinge])
	assert.False(t, state.Asleep)
}

func TestHallRepeatedOpenDoesNotWakeAgain(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.dispatch(t, service.HallEvent{Value: 1})
	f.dispatch(t, service.HallEvent{Value: 2})
	assert.Len(t, f.dev.CallsNamed("power.WakeUp"), 1)
}

func TestClosedWithPeekOverlayDefersSleep(t *testing.T) {
	f := newFixture(t, withDelays(time.Second, 30*time.Millisecond))
	f.store.Update(func(s *settings.Settings) { s.PeekModeEnabled = true })
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 20})
	snap := f.dispatch(t, postureEvent(posture.Closed, posture.R0))

	assert.True(t, snap.LastResult.SleepDeferred)
	assert.False(t, snap.LastResult.SleepRequested)
	assert.True(t, f.dev.State().OverlayShown)
	assert.True(t, hasCall(f.dev.CallsNamed("overlay.Show"), false, false))

	require.Eventually(t, func() bool {
		s := f.dev.State()
		return !s.OverlayShown && s.Asleep
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, hasCall(f.dev.CallsNamed("power.GoToSleep"), string(platform.ReasonPeekTimeout)))
}

func TestLeavingClosedCancelsOverlayTimers(t *testing.T) {
	f := newFixture(t, withDelays(time.Second, 100*time.Millisecond))
	f.store.Update(func(s *settings.Settings) { s.PeekModeEnabled = true })
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 20})
	snap := f.dispatch(t, postureEvent(posture.Closed, posture.R0))
	require.True(t, snap.TimerPending(timers.OverlayHide))

	snap = f.dispatch(t, postureEvent(posture.Book, posture.R0))
	assert.False(t, snap.TimerPending(timers.OverlayHide))
	assert.False(t, f.dev.State().OverlayShown)

	time.Sleep(200 * time.Millisecond)
	assert.False(t, f.dev.State().Asleep)
}

func TestPowerEventWhileClosedShowsOverlayThenSleeps(t *testing.T) {
	f := newFixture(t, withDelays(time.Second, 30*time.Millisecond))
	f.store.Update(func(s *settings.Settings) { s.PeekModeEnabled = true })
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 20})
	f.dispatch(t, postureEvent(posture.Closed, posture.R0))
	require.Eventually(t, func() bool { return f.dev.State().Asleep }, 2*time.Second, 10*time.Millisecond)
	f.dev.ResetCalls()

	snap := f.dispatch(t, service.PowerEvent{Connected: true})
	assert.True(t, snap.TimerPending(timers.OverlayHide))
	assert.True(t, hasCall(f.dev.CallsNamed("overlay.Show"), true, false))

	require.Eventually(t, func() bool {
		return hasCall(f.dev.CallsNamed("power.GoToSleep"), string(platform.ReasonPeekTimeout))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPowerEventIgnoredWhenNotClosed(t *testing.T) {
	f := newFixture(t)
	f.store.Update(func(s *settings.Settings) { s.PeekModeEnabled = true })
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 20})
	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	snap := f.dispatch(t, service.PowerEvent{Connected: false})

	assert.False(t, snap.TimerPending(timers.OverlayHide))
	assert.Empty(t, f.dev.CallsNamed("overlay.Show"))
}

// slowStates stalls the event loop on the first Flat request.
type slowStates struct {
	platform.DeviceStateRequester
	delay time.Duration
	once  sync.Once
}

func (s *slowStates) RequestDeviceState(state platform.DeviceState) error {
	if state == platform.DeviceStateFlat {
		s.once.Do(func() { time.Sleep(s.delay) })
	}
	return s.DeviceStateRequester.RequestDeviceState(state)
}

func TestScreenOffQueuedBeforeOpenIsDropped(t *testing.T) {
	var states *slowStates
	f := newFixture(t, func(c *service.Config, h *hal.Config) {
		withDelays(time.Second, 10*time.Millisecond)(c, h)
		c.ScreenOffDelay = 50 * time.Millisecond
		states = &slowStates{DeviceStateRequester: c.Platform.DeviceState, delay: 200 * time.Millisecond}
		c.Platform.DeviceState = states
	})
	f.store.Update(func(s *settings.Settings) { s.PeekModeEnabled = true })
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 20})
	f.dispatch(t, postureEvent(posture.Closed, posture.R0))
	require.Eventually(t, func() bool {
		return f.snapshot(t).TimerPending(timers.ScreenOff)
	}, 2*time.Second, 5*time.Millisecond)

	// ScreenOff fires while the open is being handled; its expiry is queued
	// behind the posture event that cancels it.
	f.dispatch(t, postureEvent(posture.Book, posture.R0))

	time.Sleep(100 * time.Millisecond)
	f.snapshot(t)
	assert.False(t, hasCall(f.dev.CallsNamed("power.GoToSleep"), string(platform.ReasonPeekTimeout)))
	assert.False(t, f.dev.State().Asleep)
}
