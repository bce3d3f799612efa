package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
	"github.com/surface-duo/posture-go/pkg/timers"
)

func postureEvent(v posture.Value, r posture.Rotation) service.PostureEvent {
	return service.PostureEvent{Code: v.Code(), RotationCode: r.Code()}
}

func TestFirstPostureCommitsUnconditionally(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	snap := f.dispatch(t, postureEvent(posture.Book, posture.R0))

	require.NotNil(t, snap.Current)
	assert.Equal(t, posture.New(posture.Book, posture.R0), *snap.Current)
	assert.Equal(t, composition.Dual, snap.Composition)
	assert.Equal(t, []int32{2}, compositions(f.hw.CallsNamed("display.SetComposition")))
	assert.Equal(t, []int32{2}, compositions(f.hw.CallsNamed("touch.SetDisplayState")))

	state := f.dev.State()
	assert.False(t, state.ForcedSize)
	assert.Len(t, f.dev.CallsNamed("wm.ClearForcedSize"), 1)
	assert.Equal(t, platform.DeviceStateFlat, state.DeviceState)
	assert.Zero(t, state.LauncherRestarts)
}

func TestClosedThenBrochureRight(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	snap := f.dispatch(t, postureEvent(posture.Closed, posture.R0))
	assert.Equal(t, composition.Dual, snap.Composition)
	assert.True(t, snap.LastResult.SleepRequested)

	snap = f.dispatch(t, postureEvent(posture.BrochureRight, posture.R0))
	assert.Equal(t, composition.Right, snap.Composition)
	assert.Equal(t, []int32{2, 1}, compositions(f.hw.CallsNamed("display.SetComposition")))

	state := f.dev.State()
	assert.Equal(t, int32(717), state.OffsetX)
	assert.True(t, state.ForcedSize)
	assert.Equal(t, int32(1350), state.ForcedWidth)
	assert.Equal(t, platform.DeviceStateFolded, state.DeviceState)
	assert.Equal(t, 1, state.LauncherRestarts)
}

func TestSinglePostureOffsetFollowsRotationAndHinge(t *testing.T) {
	f := newFixture(t)
	f.store.Update(func(s *settings.Settings) { s.HingeDisabled = true })
	f.start(t)

	f.dispatch(t, postureEvent(posture.TentLeft, posture.R180))
	assert.Equal(t, int32(675), f.dev.State().OffsetX)
}

func TestRepeatedPostureIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.dispatch(t, postureEvent(posture.BrochureLeft, posture.R0))
	snap := f.dispatch(t, postureEvent(posture.BrochureLeft, posture.R0))

	assert.Equal(t, composition.Left, snap.Composition)
	assert.False(t, snap.LastResult.Issued)
	assert.Len(t, f.hw.CallsNamed("display.SetComposition"), 1)
}

func TestUnknownPostureCodeIsDropped(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	snap := f.dispatch(t, service.PostureEvent{Code: 99.0})
	assert.Nil(t, snap.Current)
	assert.Equal(t, composition.Unset, snap.Composition)
	assert.Empty(t, f.hw.CallsNamed("display.SetComposition"))

	// The next valid event is still the first commit.
	snap = f.dispatch(t, postureEvent(posture.FlipPortraitRight, posture.R0))
	require.NotNil(t, snap.Current)
	assert.Equal(t, posture.FlipPortraitRight, snap.Current.Value)
}

func TestLockRightRemapsIntoSingleScreen(t *testing.T) {
	f := newFixture(t)
	f.store.Update(func(s *settings.Settings) { s.LockMode = lockpolicy.LockRight })
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	snap := f.dispatch(t, postureEvent(posture.BrochureLeft, posture.R0))

	require.NotNil(t, snap.Current)
	assert.Equal(t, posture.BrochureRight, snap.Current.Value)
	assert.Equal(t, composition.Right, snap.Composition)

	// A locked single-screen posture cannot flip sides directly.
	snap = f.dispatch(t, postureEvent(posture.TentLeft, posture.R0))
	assert.Equal(t, posture.BrochureRight, snap.Current.Value)
	assert.Equal(t, composition.Right, snap.Composition)
}

func TestRotationGatePromotesOnMatchingRotation(t *testing.T) {
	f := newFixture(t)
	f.dev.SetRotationFrozen(true)
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	snap := f.dispatch(t, postureEvent(posture.FlatDualLandscape, posture.R90))

	// Committed immediately and parked.
	require.NotNil(t, snap.Current)
	assert.Equal(t, posture.FlatDualLandscape, snap.Current.Value)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, posture.New(posture.FlatDualLandscape, posture.R90), *snap.Pending)

	// A mismatching rotation leaves the pending posture in place.
	snap = f.dispatch(t, service.RotationChangedEvent{RotationCode: posture.R0.Code()})
	assert.NotNil(t, snap.Pending)

	snap = f.dispatch(t, service.RotationChangedEvent{RotationCode: posture.R90.Code()})
	assert.Nil(t, snap.Pending)
	assert.Equal(t, posture.New(posture.FlatDualLandscape, posture.R90), *snap.Current)
}

func TestRotationGateNotFrozenCommitsWithoutPending(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	snap := f.dispatch(t, postureEvent(posture.FlatDualLandscape, posture.R90))
	assert.Nil(t, snap.Pending)
}

func TestRotationGatePendingSupersededByNextPosture(t *testing.T) {
	f := newFixture(t)
	f.dev.SetRotationFrozen(true)
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	snap := f.dispatch(t, postureEvent(posture.FlatDualLandscape, posture.R90))
	require.NotNil(t, snap.Pending)

	snap = f.dispatch(t, postureEvent(posture.Palette, posture.R90))
	assert.Nil(t, snap.Pending)

	// The abandoned posture is never promoted by a late rotation callback.
	snap = f.dispatch(t, service.RotationChangedEvent{RotationCode: posture.R90.Code()})
	assert.Equal(t, posture.Palette, snap.Current.Value)
}

func TestHardwareDeathReappliesComposition(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	snap := f.dispatch(t, postureEvent(posture.BrochureRight, posture.R0))
	require.Equal(t, composition.Right, snap.Composition)
	f.hw.ResetCalls()

	f.hw.Kill(hal.LinkDisplay)
	snap = f.snapshot(t)

	assert.Equal(t, hal.StateConnected, snap.Display)
	assert.Equal(t, hal.StateConnected, snap.Touch)
	assert.Equal(t, []int32{1}, compositions(f.hw.CallsNamed("display.SetComposition")))
	assert.Equal(t, []int32{1}, compositions(f.hw.CallsNamed("touch.SetDisplayState")))
	assert.False(t, snap.TimerPending(timers.Reconnect))
}

func TestDeathBeforeAnyPostureDoesNotIssueComposition(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.hw.Kill(hal.LinkTouch)
	snap := f.snapshot(t)

	assert.Equal(t, hal.StateConnected, snap.Touch)
	assert.Empty(t, f.hw.CallsNamed("display.SetComposition"))
}

func TestReconnectRetriesWithBackoff(t *testing.T) {
	f := newFixture(t, func(_ *service.Config, h *hal.Config) {
		h.Backoff = hal.BackoffConfig{Initial: 200 * time.Millisecond, Max: time.Second}
	})
	f.start(t)
	f.dispatch(t, postureEvent(posture.Book, posture.R0))

	f.hw.SetDown(hal.LinkTouch, true)
	snap := f.snapshot(t)
	assert.Equal(t, hal.StateDisconnected, snap.Touch)
	assert.True(t, snap.TimerPending(timers.Reconnect))

	f.hw.ResetCalls()
	f.hw.SetDown(hal.LinkTouch, false)

	require.Eventually(t, func() bool {
		return f.links.State(hal.LinkTouch) == hal.StateConnected
	}, 3*time.Second, 20*time.Millisecond)

	snap = f.snapshot(t)
	assert.False(t, snap.TimerPending(timers.Reconnect))
	assert.Contains(t, compositions(f.hw.CallsNamed("touch.SetDisplayState")), int32(2))
}

// The composition is recorded even when the hardware rejects the call; a
// later death-triggered reapply brings the hardware back in line.
func TestCompositionRecordedWhenHardwareFails(t *testing.T) {
	f := newFixture(t)
	f.start(t)
	f.hw.FailCalls(true)

	snap := f.dispatch(t, postureEvent(posture.TentRight, posture.R0))
	assert.Equal(t, composition.Right, snap.Composition)
	assert.True(t, snap.LastResult.Issued)

	f.hw.FailCalls(false)
	f.hw.ResetCalls()
	f.hw.Kill(hal.LinkDisplay)
	f.snapshot(t)
	assert.Equal(t, []int32{1}, compositions(f.hw.CallsNamed("display.SetComposition")))
}

func TestManualModePinsComposition(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))

	snap := f.dispatch(t, service.ManualPostureEvent{Mode: composition.ManualLeft})
	assert.Equal(t, composition.ManualLeft, snap.ManualMode)
	assert.Equal(t, composition.Left, snap.Composition)
	assert.True(t, snap.LastResult.LauncherRestarted)
	assert.Equal(t, int32(-717), f.dev.State().OffsetX)

	// Posture keeps tracking but the composition stays pinned.
	snap = f.dispatch(t, postureEvent(posture.BrochureRight, posture.R0))
	assert.Equal(t, posture.BrochureRight, snap.Current.Value)
	assert.Equal(t, composition.Left, snap.Composition)

	snap = f.dispatch(t, service.ManualPostureEvent{Mode: composition.ManualAutomatic})
	assert.Equal(t, composition.Right, snap.Composition)
}

func TestNextManualModeCycles(t *testing.T) {
	m := composition.ManualAutomatic
	var seen []composition.ManualMode
	for i := 0; i < 4; i++ {
		m = service.NextManualMode(m)
		seen = append(seen, m)
	}
	assert.Equal(t, []composition.ManualMode{
		composition.ManualLeft,
		composition.ManualRight,
		composition.ManualTablet,
		composition.ManualAutomatic,
	}, seen)
}

func TestHingeAngleForwardedAndArmsPeek(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	snap := f.dispatch(t, service.HingeEvent{Angle: 30})
	assert.True(t, snap.PeekArmed)
	assert.True(t, snap.HasHingeAngle)
	assert.Equal(t, int32(30), snap.HingeAngle)
	assert.Equal(t, []int32{30}, compositions(f.hw.CallsNamed("touch.HingeAngle")))

	snap = f.dispatch(t, service.HingeEvent{Angle: 180})
	assert.False(t, snap.PeekArmed)
}
