package composition

import (
	"context"
	"log/slog"

	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/settings"
)

// DefaultPeekAngleThreshold is the hinge angle below which peek mode arms.
const DefaultPeekAngleThreshold = 50

// Config configures a Driver.
type Config struct {
	// PeekAngleThreshold arms peek mode for hinge angles strictly below it.
	PeekAngleThreshold int32

	// Logger receives driver messages. Nil disables logging.
	Logger *slog.Logger
}

// OverlayAction records what the driver did with the peek overlay.
type OverlayAction uint8

const (
	OverlayUntouched OverlayAction = iota
	OverlayHidden
	OverlayShown
)

// String returns a human-readable action name.
func (a OverlayAction) String() string {
	switch a {
	case OverlayUntouched:
		return "UNTOUCHED"
	case OverlayHidden:
		return "HIDDEN"
	case OverlayShown:
		return "SHOWN"
	default:
		return "UNKNOWN"
	}
}

// Result describes the side effects of one Apply or ApplyManual call.
type Result struct {
	Class       posture.Class
	Composition ID

	// Issued is true when SetComposition was sent to the hardware.
	Issued bool

	LauncherRestarted bool

	// DeviceState is only meaningful when DeviceStateRequested is set.
	DeviceState          platform.DeviceState
	DeviceStateRequested bool

	Overlay OverlayAction

	// SleepRequested is true when entering Closed put the device to sleep.
	SleepRequested bool

	// SleepDeferred is true when entering Closed showed the peek overlay
	// instead; the caller sleeps once the overlay is dismissed.
	SleepDeferred bool
}

// Driver applies postures to the hardware. It is not safe for concurrent
// use; the posture service calls it from its event loop only.
type Driver struct {
	hw       HardwareLink
	platform platform.Platform
	config   Config
	logger   *slog.Logger

	current           ID
	previousWasTablet bool
	lastClass         posture.Class

	// geometryForced is set while a single-panel size and offset are in
	// effect. Peek keeps composition Dual without clearing them.
	geometryForced bool

	peekArmed bool
	lastAngle int32
	hasAngle  bool

	onCallError func(op string, err error)
}

// NewDriver creates a driver. Nil platform members are skipped.
func NewDriver(hw HardwareLink, p platform.Platform, config Config) *Driver {
	if config.PeekAngleThreshold <= 0 {
		config.PeekAngleThreshold = DefaultPeekAngleThreshold
	}
	return &Driver{
		hw:                hw,
		platform:          p,
		config:            config,
		logger:            config.Logger,
		current:           Unset,
		previousWasTablet: true,
		lastClass:         posture.ClassUnknown,
	}
}

// OnCallError sets a callback invoked for every swallowed hardware or
// platform error.
func (d *Driver) OnCallError(fn func(op string, err error)) {
	d.onCallError = fn
}

// Current returns the last recorded composition.
func (d *Driver) Current() ID {
	return d.current
}

// PreviousWasTablet reports whether the last Tablet/Single application was Tablet.
func (d *Driver) PreviousWasTablet() bool {
	return d.previousWasTablet
}

// GeometryForced reports whether a single-panel size and offset are applied.
func (d *Driver) GeometryForced() bool {
	return d.geometryForced
}

// PeekArmed reports whether the last hinge angle was below the peek threshold.
func (d *Driver) PeekArmed() bool {
	return d.peekArmed
}

// LastHingeAngle returns the last forwarded hinge angle.
func (d *Driver) LastHingeAngle() (int32, bool) {
	return d.lastAngle, d.hasAngle
}

// Apply drives the hardware into the configuration for p.
func (d *Driver) Apply(ctx context.Context, p posture.Posture, s settings.Settings) Result {
	class := p.Class()
	res := Result{Class: class, Composition: d.current}

	switch class {
	case posture.ClassTablet:
		d.requestDeviceState(&res, platform.DeviceStateFlat)
		d.hideOverlay(&res)
		if d.current != Dual || d.geometryForced {
			d.clearGeometry()
			d.setComposition(ctx, &res, Dual)
		}
		d.restartLauncher(&res, true)

	case posture.ClassSingleLeft, posture.ClassSingleRight:
		target, sign := Left, int32(-1)
		if class == posture.ClassSingleRight {
			target, sign = Right, 1
		}
		if p.Rotation != posture.R0 && p.Rotation != posture.RotationUnknown {
			sign = -sign
		}

		d.requestDeviceState(&res, platform.DeviceStateFolded)
		d.hideOverlay(&res)
		if d.current != target {
			d.singleGeometry(s, sign*s.PanelOffset())
			d.setComposition(ctx, &res, target)
			d.restartLauncher(&res, false)
		}

	case posture.ClassClosed:
		d.requestDeviceState(&res, platform.DeviceStateClosed)
		d.clearGeometry()
		d.setComposition(ctx, &res, Dual)
		d.peekOverlay(&res, s)
		if d.lastClass != posture.ClassClosed {
			if res.Overlay == OverlayShown {
				res.SleepDeferred = true
			} else {
				d.sleep(&res, platform.ReasonPostureClose)
			}
		}

	case posture.ClassPeekLeft, posture.ClassPeekRight:
		d.requestDeviceState(&res, platform.DeviceStateHalfOpen)
		d.setComposition(ctx, &res, Dual)
		d.peekOverlay(&res, s)

	default:
		d.debugLog("composition: unhandled posture", "posture", p.String())
		return res
	}

	d.lastClass = class
	res.Composition = d.current
	return res
}

// ApplyManual pins the composition for a quick-settings mode. For
// ManualAutomatic it re-applies current, if any.
func (d *Driver) ApplyManual(ctx context.Context, mode ManualMode, current *posture.Posture, s settings.Settings) Result {
	res := Result{Class: posture.ClassUnknown, Composition: d.current}

	switch mode {
	case ManualTablet:
		res.Class = posture.ClassTablet
		d.clearGeometry()
		d.setComposition(ctx, &res, Dual)
		d.restartLauncher(&res, true)
	case ManualLeft:
		res.Class = posture.ClassSingleLeft
		d.singleGeometry(s, -s.PanelOffset())
		d.setComposition(ctx, &res, Left)
		d.restartLauncher(&res, false)
	case ManualRight:
		res.Class = posture.ClassSingleRight
		d.singleGeometry(s, s.PanelOffset())
		d.setComposition(ctx, &res, Right)
		d.restartLauncher(&res, false)
	case ManualAutomatic:
		if current == nil {
			return res
		}
		return d.Apply(ctx, *current, s)
	}

	d.lastClass = res.Class
	res.Composition = d.current
	return res
}

// Reapply re-issues the recorded composition to both services. Used after a
// hardware service restarted and lost its state.
func (d *Driver) Reapply(ctx context.Context) Result {
	res := Result{Class: d.lastClass, Composition: d.current}
	if d.current == Unset {
		return res
	}
	d.setComposition(ctx, &res, d.current)
	return res
}

// SetHingeAngle forwards angle to the touch service and arms or disarms peek
// mode.
func (d *Driver) SetHingeAngle(ctx context.Context, angle int32) {
	d.hw.TryConnect(ctx)
	if err := d.hw.SetHingeAngle(angle); err != nil {
		d.callFailed("set_hinge_angle", err)
	}
	d.lastAngle = angle
	d.hasAngle = true
	d.peekArmed = angle < d.config.PeekAngleThreshold
}

// ShowPowerOverlay shows the overlay with sleepAfter set when the lid is
// closed, peek is armed and peek mode is enabled. It reports whether the
// overlay was shown.
func (d *Driver) ShowPowerOverlay(s settings.Settings) bool {
	if d.lastClass != posture.ClassClosed || !d.peekArmed || !s.PeekModeEnabled {
		return false
	}
	if d.platform.Overlay != nil {
		d.platform.Overlay.Show(true, s.HingeDisabled)
	}
	return true
}

// HideOverlay hides the peek overlay.
func (d *Driver) HideOverlay() {
	if d.platform.Overlay != nil {
		d.platform.Overlay.Hide()
	}
}

// setComposition records id even when the hardware calls fail; a later
// death-triggered Reapply brings the hardware back in line.
func (d *Driver) setComposition(ctx context.Context, res *Result, id ID) {
	d.hw.EnsureConnected(ctx)
	if err := d.hw.SetComposition(int32(id)); err != nil {
		d.callFailed("set_composition", err)
	}
	if err := d.hw.SetTouchState(int32(id)); err != nil {
		d.callFailed("set_touch_state", err)
	}
	d.current = id
	res.Issued = true
	res.Composition = id
	d.debugLog("composition: set", "composition", id.String())
}

func (d *Driver) restartLauncher(res *Result, isTablet bool) {
	if d.previousWasTablet != isTablet {
		if d.platform.Launcher != nil {
			if err := d.platform.Launcher.RestartLauncher(); err != nil {
				d.callFailed("restart_launcher", err)
			}
		}
		res.LauncherRestarted = true
	}
	d.previousWasTablet = isTablet
}

func (d *Driver) clearGeometry() {
	d.geometryForced = false
	if w := d.platform.Windows; w != nil {
		if err := w.ClearForcedSize(); err != nil {
			d.callFailed("clear_forced_size", err)
		}
	}
	if dm := d.platform.Displays; dm != nil {
		if err := dm.SetDisplayOffset(0, 0); err != nil {
			d.callFailed("set_display_offset", err)
		}
	}
}

func (d *Driver) singleGeometry(s settings.Settings, dx int32) {
	d.geometryForced = true
	if dm := d.platform.Displays; dm != nil {
		if err := dm.SetDisplayOffset(dx, 0); err != nil {
			d.callFailed("set_display_offset", err)
		}
	}
	if w := d.platform.Windows; w != nil {
		if err := w.SetForcedSize(s.Panel.Width, s.Panel.Height); err != nil {
			d.callFailed("set_forced_size", err)
		}
	}
}

func (d *Driver) requestDeviceState(res *Result, state platform.DeviceState) {
	res.DeviceState = state
	res.DeviceStateRequested = true
	if r := d.platform.DeviceState; r != nil {
		if err := r.RequestDeviceState(state); err != nil {
			d.callFailed("request_device_state", err)
		}
	}
}

func (d *Driver) hideOverlay(res *Result) {
	d.HideOverlay()
	res.Overlay = OverlayHidden
}

func (d *Driver) peekOverlay(res *Result, s settings.Settings) {
	if d.peekArmed && s.PeekModeEnabled {
		if d.platform.Overlay != nil {
			d.platform.Overlay.Show(false, s.HingeDisabled)
		}
		res.Overlay = OverlayShown
		return
	}
	d.hideOverlay(res)
}

func (d *Driver) sleep(res *Result, reason platform.Reason) {
	if d.platform.Power != nil {
		d.platform.Power.GoToSleep(reason)
	}
	res.SleepRequested = true
}

func (d *Driver) callFailed(op string, err error) {
	if d.logger != nil {
		d.logger.Warn("composition: call failed", "op", op, "error", err)
	}
	if d.onCallError != nil {
		d.onCallError(op, err)
	}
}

func (d *Driver) debugLog(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
