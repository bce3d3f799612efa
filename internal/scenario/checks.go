package scenario

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/timers"
)

type checkFunc func(e *env, snap service.Snapshot, want any) error

var checks = map[string]checkFunc{
	"posture":              checkPosture(func(s service.Snapshot) *posture.Posture { return s.Current }),
	"pending":              checkPosture(func(s service.Snapshot) *posture.Posture { return s.Pending }),
	"composition":          checkInt(func(_ *env, s service.Snapshot) int32 { return int32(s.Composition) }),
	"offset_x":             checkInt(func(e *env, _ service.Snapshot) int32 { return e.dev.State().OffsetX }),
	"launcher_restarts":    checkInt(func(e *env, _ service.Snapshot) int32 { return int32(e.dev.State().LauncherRestarts) }),
	"hall":                 checkInt(func(_ *env, s service.Snapshot) int32 { return s.Hall }),
	"forced_size":          checkBool(func(e *env, _ service.Snapshot) bool { return e.dev.State().ForcedSize }),
	"overlay_shown":        checkBool(func(e *env, _ service.Snapshot) bool { return e.dev.State().OverlayShown }),
	"asleep":               checkBool(func(e *env, _ service.Snapshot) bool { return e.dev.State().Asleep }),
	"peek_armed":           checkBool(func(_ *env, s service.Snapshot) bool { return s.PeekArmed }),
	"issued":               checkBool(func(_ *env, s service.Snapshot) bool { return s.LastResult.Issued }),
	"launcher_restarted":   checkBool(func(_ *env, s service.Snapshot) bool { return s.LastResult.LauncherRestarted }),
	"sleep_requested":      checkBool(func(_ *env, s service.Snapshot) bool { return s.LastResult.SleepRequested }),
	"device_state":         checkName(func(e *env, _ service.Snapshot) string { return e.dev.State().DeviceState.String() }),
	"manual_mode":          checkName(func(_ *env, s service.Snapshot) string { return s.ManualMode.String() }),
	"display":              checkName(func(_ *env, s service.Snapshot) string { return s.Display.String() }),
	"touch":                checkName(func(_ *env, s service.Snapshot) string { return s.Touch.String() }),
	"touch_version":        checkName(func(_ *env, s service.Snapshot) string { return s.TouchVersion.String() }),
	"sensors_registered":   checkSensors(true),
	"sensors_unregistered": checkSensors(false),
	"timers_pending":       checkTimers(true),
	"timers_idle":          checkTimers(false),
	"hw_calls":             checkHardwareCalls,
	"platform_calls":       checkPlatformCalls,
}

func checkPosture(get func(service.Snapshot) *posture.Posture) checkFunc {
	return func(_ *env, snap service.Snapshot, want any) error {
		got := "none"
		if p := get(snap); p != nil {
			got = p.String()
		}
		w := strings.ToUpper(strings.ReplaceAll(fmt.Sprint(want), "-", "_"))
		if !strings.Contains(w, "@") && w != "NONE" {
			w += "@R0"
		}
		if got != w {
			return fmt.Errorf("got %s, want %s", got, w)
		}
		return nil
	}
}

func checkInt(get func(*env, service.Snapshot) int32) checkFunc {
	return func(e *env, snap service.Snapshot, want any) error {
		w, ok := toInt(want)
		if !ok {
			return fmt.Errorf("want integer, got %T", want)
		}
		if got := get(e, snap); got != w {
			return fmt.Errorf("got %d, want %d", got, w)
		}
		return nil
	}
}

func checkBool(get func(*env, service.Snapshot) bool) checkFunc {
	return func(e *env, snap service.Snapshot, want any) error {
		w, ok := want.(bool)
		if !ok {
			return fmt.Errorf("want bool, got %T", want)
		}
		if got := get(e, snap); got != w {
			return fmt.Errorf("got %t, want %t", got, w)
		}
		return nil
	}
}

func checkName(get func(*env, service.Snapshot) string) checkFunc {
	return func(e *env, snap service.Snapshot, want any) error {
		got := get(e, snap)
		w := strings.ToUpper(strings.ReplaceAll(fmt.Sprint(want), "-", "_"))
		if got != w {
			return fmt.Errorf("got %s, want %s", got, w)
		}
		return nil
	}
}

func checkSensors(registered bool) checkFunc {
	return func(e *env, _ service.Snapshot, want any) error {
		names, ok := toStrings(want)
		if !ok {
			return fmt.Errorf("want list of sensors, got %T", want)
		}
		state := e.dev.State()
		for _, name := range names {
			kind, err := parseSensor(name)
			if err != nil {
				return err
			}
			if state.Registered[kind] != registered {
				return fmt.Errorf("sensor %s registered=%t, want %t", kind, state.Registered[kind], registered)
			}
		}
		return nil
	}
}

func checkTimers(pending bool) checkFunc {
	return func(_ *env, snap service.Snapshot, want any) error {
		names, ok := toStrings(want)
		if !ok {
			return fmt.Errorf("want list of timers, got %T", want)
		}
		for _, name := range names {
			p, err := parsePurpose(name)
			if err != nil {
				return err
			}
			if snap.TimerPending(p) != pending {
				return fmt.Errorf("timer %s pending=%t, want %t", p, !pending, pending)
			}
		}
		return nil
	}
}

// checkHardwareCalls compares the first argument of every recorded call per
// name, e.g. {"display.SetComposition": [2, 1]}.
func checkHardwareCalls(e *env, _ service.Snapshot, want any) error {
	m, ok := want.(map[string]any)
	if !ok {
		return fmt.Errorf("want map of call lists, got %T", want)
	}
	for name, raw := range m {
		list, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("%s: want list, got %T", name, raw)
		}
		wantArgs := make([]int32, 0, len(list))
		for _, item := range list {
			n, ok := toInt(item)
			if !ok {
				return fmt.Errorf("%s: want integers, got %T", name, item)
			}
			wantArgs = append(wantArgs, n)
		}

		calls := e.hw.CallsNamed(name)
		gotArgs := make([]int32, 0, len(calls))
		for _, c := range calls {
			gotArgs = append(gotArgs, c.Int(0))
		}
		if !reflect.DeepEqual(gotArgs, wantArgs) {
			return fmt.Errorf("%s: got %v, want %v", name, gotArgs, wantArgs)
		}
	}
	return nil
}

// checkPlatformCalls compares call counts per name, e.g. {"launcher.Restart": 1}.
func checkPlatformCalls(e *env, _ service.Snapshot, want any) error {
	m, ok := want.(map[string]any)
	if !ok {
		return fmt.Errorf("want map of call counts, got %T", want)
	}
	for name, raw := range m {
		n, ok := toInt(raw)
		if !ok {
			return fmt.Errorf("%s: want integer, got %T", name, raw)
		}
		if got := len(e.dev.CallsNamed(name)); int32(got) != n {
			return fmt.Errorf("%s: got %d calls, want %d", name, got, n)
		}
	}
	return nil
}

func parseSensor(s string) (platform.SensorKind, error) {
	for _, k := range []platform.SensorKind{platform.SensorPosture, platform.SensorHinge, platform.SensorHall} {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sensor %q", s)
}

func parsePurpose(s string) (timers.Purpose, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for _, p := range []timers.Purpose{timers.SensorSuspend, timers.OverlayHide, timers.ScreenOff, timers.Reconnect} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown timer %q", s)
}
