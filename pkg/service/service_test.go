package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/platform"
	platformmocks "github.com/surface-duo/posture-go/pkg/platform/mocks"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
)

type fixture struct {
	svc   *service.Service
	links *hal.Manager
	hw    *simhw.HAL
	dev   *simhw.Device
	store *settings.MemoryStore
}

type option func(*service.Config, *hal.Config)

func newFixture(t *testing.T, opts ...option) *fixture {
	t.Helper()

	f := &fixture{
		hw:    simhw.NewHAL(hal.TouchV2),
		dev:   simhw.NewDevice(),
		store: settings.NewMemoryStore(settings.Default()),
	}

	halConfig := hal.DefaultConfig()
	config := service.DefaultConfig()
	config.Settings = f.store
	config.Platform = f.dev.Platform()
	config.HealthInterval = 0
	for _, opt := range opts {
		opt(&config, &halConfig)
	}

	f.links = hal.NewManager(f.hw, halConfig)
	config.Links = f.links

	svc, err := service.New(config)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f *fixture) start(t *testing.T) service.Snapshot {
	t.Helper()
	require.NoError(t, f.svc.Start(context.Background()))
	t.Cleanup(func() { _ = f.svc.Stop() })
	return f.snapshot(t)
}

func (f *fixture) dispatch(t *testing.T, ev service.Event) service.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := f.svc.Dispatch(ctx, ev)
	require.NoError(t, err)
	return snap
}

func (f *fixture) snapshot(t *testing.T) service.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := f.svc.Snapshot(ctx)
	require.NoError(t, err)
	return snap
}

func compositions(calls []simhw.Call) []int32 {
	out := make([]int32, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Int(0))
	}
	return out
}

func TestNewRequiresLinksAndSettings(t *testing.T) {
	config := service.DefaultConfig()
	_, err := service.New(config)
	assert.ErrorIs(t, err, service.ErrInvalidConfig)

	config.Links = hal.NewManager(simhw.NewHAL(hal.TouchV2), hal.DefaultConfig())
	_, err = service.New(config)
	assert.ErrorIs(t, err, service.ErrInvalidConfig)

	config.Settings = settings.NewMemoryStore(settings.Default())
	config.OverlayHideDelay = -time.Second
	_, err = service.New(config)
	assert.ErrorIs(t, err, service.ErrInvalidConfig)
}

func TestLifecycle(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, service.StateIdle, f.svc.State())
	assert.ErrorIs(t, f.svc.Post(service.HingeEvent{Angle: 90}), service.ErrNotStarted)
	assert.ErrorIs(t, f.svc.Stop(), service.ErrNotStarted)

	require.NoError(t, f.svc.Start(context.Background()))
	assert.ErrorIs(t, f.svc.Start(context.Background()), service.ErrAlreadyStarted)
	assert.Equal(t, service.StateRunning, f.svc.State())

	snap := f.snapshot(t)
	assert.Equal(t, hal.StateConnected, snap.Display)
	assert.Equal(t, hal.StateConnected, snap.Touch)
	assert.Equal(t, hal.TouchV2, snap.TouchVersion)

	state := f.dev.State()
	assert.True(t, state.Registered[platform.SensorPosture])
	assert.True(t, state.Registered[platform.SensorHinge])
	assert.True(t, state.Registered[platform.SensorHall])

	require.NoError(t, f.svc.Stop())
	assert.Equal(t, service.StateStopped, f.svc.State())
	assert.ErrorIs(t, f.svc.Post(service.HingeEvent{Angle: 90}), service.ErrStopped)
	_, err := f.svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, service.ErrStopped)

	state = f.dev.State()
	assert.False(t, state.Registered[platform.SensorPosture])
	assert.False(t, state.Registered[platform.SensorHall])
	assert.Equal(t, hal.StateDisconnected, f.links.State(hal.LinkDisplay))
	assert.Equal(t, hal.StateDisconnected, f.links.State(hal.LinkTouch))
}

func TestDispatchHonoursContext(t *testing.T) {
	f := newFixture(t)
	f.start(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.svc.Dispatch(ctx, service.HingeEvent{Angle: 10})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRestartAfterStop(t *testing.T) {
	f := newFixture(t)
	f.start(t)
	require.NoError(t, f.svc.Stop())

	require.NoError(t, f.svc.Start(context.Background()))
	snap := f.snapshot(t)
	assert.Equal(t, service.StateRunning, snap.State)
	assert.Equal(t, hal.StateConnected, snap.Display)
}

func TestStartConnectsLateHALOnHealthCheck(t *testing.T) {
	f := newFixture(t, func(_ *service.Config, h *hal.Config) {
		h.ConnectInterval = time.Millisecond
	})
	f.hw.SetDown(hal.LinkDisplay, true)

	snap := f.start(t)
	assert.Equal(t, hal.StateDisconnected, snap.Display)
	assert.Equal(t, hal.StateConnected, snap.Touch)

	// Composition is recorded even though the display is missing.
	snap = f.dispatch(t, service.PostureEvent{Code: 3})
	assert.EqualValues(t, 2, snap.Composition)
	assert.Empty(t, f.hw.CallsNamed("display.SetComposition"))

	f.hw.SetDown(hal.LinkDisplay, false)
	time.Sleep(5 * time.Millisecond)
	snap = f.dispatch(t, service.HealthCheckEvent{})
	assert.Equal(t, hal.StateConnected, snap.Display)
	assert.Equal(t, []int32{2}, compositions(f.hw.CallsNamed("display.SetComposition")))
}

func TestHingeTrafficDoesNotStallPostureConnect(t *testing.T) {
	f := newFixture(t, func(_ *service.Config, h *hal.Config) {
		h.ConnectInterval = time.Hour
		h.ConnectBurst = 1
	})
	f.hw.SetDown(hal.LinkDisplay, true)
	f.hw.SetDown(hal.LinkTouch, true)
	f.start(t)

	f.dispatch(t, service.HingeEvent{Angle: 170})
	f.dispatch(t, service.HingeEvent{Angle: 168})

	snap := f.dispatch(t, postureEvent(posture.BrochureRight, posture.R0))
	assert.Equal(t, composition.Right, snap.Composition)
	assert.Empty(t, f.hw.CallsNamed("display.SetComposition"))

	f.hw.SetDown(hal.LinkDisplay, false)
	f.hw.SetDown(hal.LinkTouch, false)

	// Same composition as recorded; the link catching up re-issues it.
	snap = f.dispatch(t, postureEvent(posture.BrochureRight, posture.R0))
	assert.Equal(t, hal.StateConnected, snap.Display)
	assert.Equal(t, hal.StateConnected, snap.Touch)
	assert.Equal(t, []int32{1}, compositions(f.hw.CallsNamed("display.SetComposition")))
	assert.Equal(t, []int32{1}, compositions(f.hw.CallsNamed("touch.SetDisplayState")))
}

func TestHealthSweepRunsPeriodically(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the cron sweep")
	}

	f := newFixture(t, func(c *service.Config, h *hal.Config) {
		c.HealthInterval = time.Second
		h.ConnectInterval = time.Millisecond
	})
	f.hw.SetDown(hal.LinkDisplay, true)
	f.start(t)
	f.hw.SetDown(hal.LinkDisplay, false)

	require.Eventually(t, func() bool {
		return f.links.State(hal.LinkDisplay) == hal.StateConnected
	}, 5*time.Second, 50*time.Millisecond)
}

func TestSensorsRegisteredOnStartAndReleasedOnStop(t *testing.T) {
	sensors := platformmocks.NewMockSensors(t)
	sensors.EXPECT().Register(platform.SensorPosture).Return(nil).Once()
	sensors.EXPECT().Register(platform.SensorHinge).Return(nil).Once()
	sensors.EXPECT().Register(platform.SensorHall).Return(errors.New("no hall sensor")).Once()
	sensors.EXPECT().Unregister(platform.SensorPosture).Return().Once()
	sensors.EXPECT().Unregister(platform.SensorHinge).Return().Once()
	sensors.EXPECT().Unregister(platform.SensorHall).Return().Once()

	f := newFixture(t, func(c *service.Config, _ *hal.Config) {
		c.Platform.Sensors = sensors
	})

	// A failed registration is logged and the service still runs.
	snap := f.start(t)
	assert.Equal(t, service.StateRunning, snap.State)

	require.NoError(t, f.svc.Stop())
}

func TestNotifications(t *testing.T) {
	f := newFixture(t)

	got := make(chan service.Notification, 16)
	f.svc.OnNotification(func(n service.Notification) { got <- n })
	f.start(t)

	f.dispatch(t, service.PostureEvent{Code: 99})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case n := <-got:
			if n.Type != service.NotifyDecodeError {
				continue
			}
			assert.Error(t, n.Error)
			return
		case <-deadline:
			t.Fatal("no decode error notification")
		}
	}
}

func TestRotationPendingNotification(t *testing.T) {
	f := newFixture(t)
	f.dev.SetRotationFrozen(true)

	got := make(chan service.Notification, 16)
	f.svc.OnNotification(func(n service.Notification) { got <- n })
	f.start(t)

	f.dispatch(t, postureEvent(posture.Book, posture.R0))
	f.dispatch(t, postureEvent(posture.FlatDualLandscape, posture.R90))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case n := <-got:
			if n.Type != service.NotifyRotationPending {
				continue
			}
			require.NotNil(t, n.Posture)
			assert.Equal(t, posture.New(posture.FlatDualLandscape, posture.R90), *n.Posture)
			return
		case <-deadline:
			t.Fatal("no rotation pending notification")
		}
	}
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "RUNNING", service.StateRunning.String())
	assert.Equal(t, "UNKNOWN", service.ServiceState(99).String())
	assert.Equal(t, "LINK_DEATH", service.KindLinkDeath.String())
	assert.Equal(t, "ROTATION_PENDING", service.NotifyRotationPending.String())
	assert.Equal(t, service.KindPosture, service.PostureEvent{}.Kind())
	assert.Equal(t, service.KindTimerExpired, service.TimerExpiredEvent{}.Kind())
}
