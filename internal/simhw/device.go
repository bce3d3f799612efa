package simhw

import (
	"sync"

	"github.com/surface-duo/posture-go/pkg/platform"
)

// DeviceState is a snapshot of the simulated platform.
type DeviceState struct {
	RotationFrozen bool

	ForcedWidth  int32
	ForcedHeight int32
	ForcedSize   bool

	OffsetX int32
	OffsetY int32

	DeviceState          platform.DeviceState
	DeviceStateRequested bool

	LauncherRestarts int

	OverlayShown      bool
	OverlaySleepAfter bool

	Asleep bool

	Registered map[platform.SensorKind]bool
}

// Device simulates the platform collaborators. It implements every
// interface in package platform and records the calls made on it.
type Device struct {
	mu    sync.Mutex
	state DeviceState
	log   callLog

	failGeometry bool
}

var (
	_ platform.WindowManager        = (*Device)(nil)
	_ platform.DisplayManager       = (*Device)(nil)
	_ platform.DeviceStateRequester = (*Device)(nil)
	_ platform.Launcher             = (*Device)(nil)
	_ platform.Overlay              = (*Device)(nil)
	_ platform.Power                = (*Device)(nil)
	_ platform.Sensors              = (*Device)(nil)
)

// NewDevice creates an awake device with no sensors registered.
func NewDevice() *Device {
	return &Device{
		state: DeviceState{Registered: make(map[platform.SensorKind]bool)},
	}
}

// Platform returns d wired into every collaborator slot.
func (d *Device) Platform() platform.Platform {
	return platform.Platform{
		Windows:     d,
		Displays:    d,
		DeviceState: d,
		Launcher:    d,
		Overlay:     d,
		Power:       d,
		Sensors:     d,
	}
}

// SetRotationFrozen sets what IsRotationFrozen reports.
func (d *Device) SetRotationFrozen(frozen bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.RotationFrozen = frozen
}

// FailGeometry makes forced size and offset calls fail while set.
func (d *Device) FailGeometry(fail bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failGeometry = fail
}

// State returns a snapshot of the device.
func (d *Device) State() DeviceState {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.Registered = make(map[platform.SensorKind]bool, len(d.state.Registered))
	for k, v := range d.state.Registered {
		s.Registered[k] = v
	}
	return s
}

// Calls returns every recorded platform call.
func (d *Device) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.log.snapshot()
}

// CallsNamed returns the recorded calls with the given name.
func (d *Device) CallsNamed(name string) []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.log.named(name)
}

// ResetCalls clears the call record.
func (d *Device) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.reset()
}

func (d *Device) SetForcedSize(width, height int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("wm.SetForcedSize", width, height)
	if d.failGeometry {
		return ErrCallRejected
	}
	d.state.ForcedWidth, d.state.ForcedHeight, d.state.ForcedSize = width, height, true
	return nil
}

func (d *Device) ClearForcedSize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("wm.ClearForcedSize")
	if d.failGeometry {
		return ErrCallRejected
	}
	d.state.ForcedWidth, d.state.ForcedHeight, d.state.ForcedSize = 0, 0, false
	return nil
}

func (d *Device) IsRotationFrozen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.RotationFrozen
}

func (d *Device) SetDisplayOffset(dx, dy int32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("display.SetDisplayOffset", dx, dy)
	if d.failGeometry {
		return ErrCallRejected
	}
	d.state.OffsetX, d.state.OffsetY = dx, dy
	return nil
}

func (d *Device) RequestDeviceState(state platform.DeviceState) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("devicestate.Request", state.String())
	d.state.DeviceState = state
	d.state.DeviceStateRequested = true
	return nil
}

func (d *Device) RestartLauncher() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("launcher.Restart")
	d.state.LauncherRestarts++
	return nil
}

func (d *Device) Show(sleepAfter, hingeDisabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("overlay.Show", sleepAfter, hingeDisabled)
	d.state.OverlayShown = true
	d.state.OverlaySleepAfter = sleepAfter
}

func (d *Device) Hide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("overlay.Hide")
	d.state.OverlayShown = false
	d.state.OverlaySleepAfter = false
}

func (d *Device) GoToSleep(reason platform.Reason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("power.GoToSleep", string(reason))
	d.state.Asleep = true
}

func (d *Device) WakeUp(reason platform.Reason) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("power.WakeUp", string(reason))
	d.state.Asleep = false
}

func (d *Device) Register(kind platform.SensorKind) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("sensors.Register", kind.String())
	d.state.Registered[kind] = true
	return nil
}

func (d *Device) Unregister(kind platform.SensorKind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.record("sensors.Unregister", kind.String())
	d.state.Registered[kind] = false
}
