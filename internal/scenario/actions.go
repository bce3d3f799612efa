package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
)

// env is the simulated world a scenario runs in.
type env struct {
	svc   *service.Service
	links *hal.Manager
	hw    *simhw.HAL
	dev   *simhw.Device
	store *settings.MemoryStore
}

type actionFunc func(ctx context.Context, e *env, params map[string]any) error

var actions = map[string]actionFunc{
	"posture":         actionPosture,
	"hinge":           actionHinge,
	"hall":            actionHall,
	"rotation":        actionRotation,
	"power":           actionPower,
	"manual":          actionManual,
	"kill":            actionKill,
	"link_down":       actionLinkDown,
	"fail_calls":      actionFailCalls,
	"freeze_rotation": actionFreezeRotation,
	"settings":        actionSettings,
	"health_check":    dispatchAction(service.HealthCheckEvent{}),
	"retry":           dispatchAction(service.RetryReconnectEvent{}),
	"reset_calls":     actionResetCalls,
	"wait":            actionWait,
}

func dispatch(ctx context.Context, e *env, ev service.Event) error {
	_, err := e.svc.Dispatch(ctx, ev)
	return err
}

func dispatchAction(ev service.Event) actionFunc {
	return func(ctx context.Context, e *env, _ map[string]any) error {
		return dispatch(ctx, e, ev)
	}
}

// actionPosture sends a posture reading given by name ("value") or raw
// sensor code ("code"), with an optional rotation.
func actionPosture(ctx context.Context, e *env, params map[string]any) error {
	var ev service.PostureEvent

	if raw, ok := params["code"]; ok {
		code, ok := toFloat(raw)
		if !ok {
			return fmt.Errorf("parameter \"code\": want number, got %T", raw)
		}
		ev.Code = code
	} else {
		name, err := paramString(params, "value")
		if err != nil {
			return err
		}
		v, err := posture.ParseValue(name)
		if err != nil {
			return err
		}
		ev.Code = v.Code()
	}

	if raw, ok := params["rotation"]; ok {
		if n, ok := toInt(raw); ok {
			ev.RotationCode = n
		} else {
			r, err := posture.ParseRotation(fmt.Sprint(raw))
			if err != nil {
				return err
			}
			ev.RotationCode = r.Code()
		}
	}
	return dispatch(ctx, e, ev)
}

func actionHinge(ctx context.Context, e *env, params map[string]any) error {
	angle, err := paramInt(params, "angle")
	if err != nil {
		return err
	}
	return dispatch(ctx, e, service.HingeEvent{Angle: angle})
}

func actionHall(ctx context.Context, e *env, params map[string]any) error {
	v, err := paramInt(params, "value")
	if err != nil {
		return err
	}
	return dispatch(ctx, e, service.HallEvent{Value: v})
}

func actionRotation(ctx context.Context, e *env, params map[string]any) error {
	raw, ok := params["rotation"]
	if !ok {
		return fmt.Errorf("missing parameter %q", "rotation")
	}
	r, err := posture.ParseRotation(fmt.Sprint(raw))
	if err != nil {
		return err
	}
	return dispatch(ctx, e, service.RotationChangedEvent{RotationCode: r.Code()})
}

func actionPower(ctx context.Context, e *env, params map[string]any) error {
	connected, err := paramBool(params, "connected", true)
	if err != nil {
		return err
	}
	return dispatch(ctx, e, service.PowerEvent{Connected: connected})
}

func actionManual(ctx context.Context, e *env, params map[string]any) error {
	s, err := paramString(params, "mode")
	if err != nil {
		return err
	}
	mode, err := composition.ParseManualMode(s)
	if err != nil {
		return err
	}
	return dispatch(ctx, e, service.ManualPostureEvent{Mode: mode})
}

// actionKill kills a hardware service and waits until the service loop has
// handled the death notice.
func actionKill(ctx context.Context, e *env, params map[string]any) error {
	s, err := paramString(params, "link")
	if err != nil {
		return err
	}
	link, err := parseLink(s)
	if err != nil {
		return err
	}
	e.hw.Kill(link)
	_, err = e.svc.Snapshot(ctx)
	return err
}

func actionLinkDown(ctx context.Context, e *env, params map[string]any) error {
	s, err := paramString(params, "link")
	if err != nil {
		return err
	}
	link, err := parseLink(s)
	if err != nil {
		return err
	}
	down, err := paramBool(params, "down", true)
	if err != nil {
		return err
	}
	e.hw.SetDown(link, down)
	_, err = e.svc.Snapshot(ctx)
	return err
}

func actionFailCalls(_ context.Context, e *env, params map[string]any) error {
	fail, err := paramBool(params, "fail", true)
	if err != nil {
		return err
	}
	e.hw.FailCalls(fail)
	return nil
}

func actionFreezeRotation(_ context.Context, e *env, params map[string]any) error {
	frozen, err := paramBool(params, "frozen", true)
	if err != nil {
		return err
	}
	e.dev.SetRotationFrozen(frozen)
	return nil
}

func actionSettings(_ context.Context, e *env, params map[string]any) error {
	var mode *lockpolicy.LockMode
	if _, ok := params["lock_mode"]; ok {
		s, _ := paramString(params, "lock_mode")
		m, err := lockpolicy.ParseMode(s)
		if err != nil {
			return err
		}
		mode = &m
	}
	current := e.store.Snapshot()
	hinge, err := paramBool(params, "hinge_disabled", current.HingeDisabled)
	if err != nil {
		return err
	}
	peek, err := paramBool(params, "peek_mode_enabled", current.PeekModeEnabled)
	if err != nil {
		return err
	}

	e.store.Update(func(s *settings.Settings) {
		if mode != nil {
			s.LockMode = *mode
		}
		s.HingeDisabled = hinge
		s.PeekModeEnabled = peek
	})
	return nil
}

func actionResetCalls(_ context.Context, e *env, _ map[string]any) error {
	e.hw.ResetCalls()
	e.dev.ResetCalls()
	return nil
}

func actionWait(ctx context.Context, e *env, params map[string]any) error {
	d, err := paramDuration(params, "duration")
	if err != nil {
		return err
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
		return ctx.Err()
	}
	// Let expiries posted during the wait drain.
	_, err = e.svc.Snapshot(ctx)
	return err
}
