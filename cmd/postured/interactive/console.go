// Package interactive provides the interactive console of postured.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
)

// UpdateFunc mutates the persisted user settings.
type UpdateFunc func(fn func(*settings.Settings)) error

// Target is what the console drives.
type Target struct {
	Service *service.Service
	HAL     *simhw.HAL
	Device  *simhw.Device
	Update  UpdateFunc
}

// Console is a readline loop that injects events into the service.
type Console struct {
	rl *readline.Instance
	t  Target
}

const dispatchTimeout = 5 * time.Second

// New creates a console.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "posture> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl}, nil
}

// Stdout returns a writer that coordinates with the prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that coordinates with the prompt. Route log output
// here so it does not garble the input line.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run reads commands until quit, EOF or ctx is done. cancel is called on exit.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, t Target) {
	defer c.rl.Close()
	c.t = t

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}
		if err := c.execute(ctx, cmd, parts[1:]); err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		}
	}
}

func (c *Console) execute(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		c.printHelp()
		return nil
	case "posture", "p":
		return c.cmdPosture(ctx, args)
	case "code":
		return c.cmdCode(ctx, args)
	case "hinge", "h":
		return c.cmdInt(ctx, args, "hinge <angle>", func(v int32) service.Event { return service.HingeEvent{Angle: v} })
	case "hall":
		return c.cmdInt(ctx, args, "hall <value>", func(v int32) service.Event { return service.HallEvent{Value: v} })
	case "rotate", "r":
		return c.cmdRotate(ctx, args)
	case "power":
		connected := len(args) == 0 || onOff(args[0])
		return c.dispatch(ctx, service.PowerEvent{Connected: connected})
	case "manual", "m":
		return c.cmdManual(ctx, args)
	case "kill":
		return c.cmdLink(ctx, args, func(l hal.LinkID) { c.t.HAL.Kill(l) })
	case "down":
		return c.cmdLink(ctx, args, func(l hal.LinkID) { c.t.HAL.SetDown(l, true) })
	case "up":
		return c.cmdLink(ctx, args, func(l hal.LinkID) { c.t.HAL.SetDown(l, false) })
	case "freeze":
		c.t.Device.SetRotationFrozen(len(args) == 0 || onOff(args[0]))
		return nil
	case "lock":
		return c.cmdLock(args)
	case "hinge-disabled":
		return c.cmdToggle(args, func(s *settings.Settings, on bool) { s.HingeDisabled = on })
	case "peek":
		return c.cmdToggle(args, func(s *settings.Settings, on bool) { s.PeekModeEnabled = on })
	case "health":
		return c.dispatch(ctx, service.HealthCheckEvent{})
	case "status", "s":
		return c.cmdStatus(ctx)
	case "calls":
		c.cmdCalls()
		return nil
	}
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Posture Console Commands:
  Sensors:
    posture <name> [rot]  - Inject a posture by name (e.g. book, brochure_right 90)
    code <value> [rot]    - Inject a raw sensor code (e.g. 3.0)
    hinge <angle>         - Inject a hinge angle
    hall <value>          - Inject a hall sensor value (0 = lid closed)
    rotate <rot>          - Report a display rotation change
    power [on|off]        - Report charger connect or disconnect

  Hardware:
    kill <link>           - Kill the display or touch service
    down <link>           - Stop a service (lookups fail)
    up <link>             - Restart a stopped service
    health                - Run the link health check now

  Settings:
    manual [mode]         - Set manual mode, or cycle it without an argument
    lock <mode>           - Set the lock mode: dynamic, right, left
    hinge-disabled on|off - Toggle hinge compensation
    peek on|off           - Toggle peek mode
    freeze [on|off]       - Freeze or unfreeze rotation

  General:
    status                - Show service state
    calls                 - Show recorded hardware and platform calls
    help                  - Show this help
    quit                  - Exit`)
}

func (c *Console) dispatch(ctx context.Context, ev service.Event) error {
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	snap, err := c.t.Service.Dispatch(ctx, ev)
	if err != nil {
		return err
	}
	c.printSummary(snap)
	return nil
}

func (c *Console) cmdPosture(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: posture <name> [rotation]")
	}
	v, err := posture.ParseValue(args[0])
	if err != nil {
		return err
	}
	rot, err := rotationArg(args[1:])
	if err != nil {
		return err
	}
	return c.dispatch(ctx, service.PostureEvent{Code: v.Code(), RotationCode: rot.Code()})
}

func (c *Console) cmdCode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: code <value> [rotation]")
	}
	f, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("invalid code %q", args[0])
	}
	rot, err := rotationArg(args[1:])
	if err != nil {
		return err
	}
	return c.dispatch(ctx, service.PostureEvent{Code: float32(f), RotationCode: rot.Code()})
}

func (c *Console) cmdInt(ctx context.Context, args []string, usage string, build func(int32) service.Event) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	return c.dispatch(ctx, build(int32(n)))
}

func (c *Console) cmdRotate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: rotate <rotation>")
	}
	rot, err := posture.ParseRotation(args[0])
	if err != nil {
		return err
	}
	return c.dispatch(ctx, service.RotationChangedEvent{RotationCode: rot.Code()})
}

func (c *Console) cmdManual(ctx context.Context, args []string) error {
	var mode composition.ManualMode
	if len(args) == 0 {
		snap, err := c.t.Service.Snapshot(ctx)
		if err != nil {
			return err
		}
		mode = service.NextManualMode(snap.ManualMode)
	} else {
		m, err := composition.ParseManualMode(args[0])
		if err != nil {
			return err
		}
		mode = m
	}
	return c.dispatch(ctx, service.ManualPostureEvent{Mode: mode})
}

func (c *Console) cmdLink(ctx context.Context, args []string, fn func(hal.LinkID)) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: <command> display|touch")
	}
	var link hal.LinkID
	switch strings.ToLower(args[0]) {
	case "display", "d":
		link = hal.LinkDisplay
	case "touch", "t":
		link = hal.LinkTouch
	default:
		return fmt.Errorf("unknown link %q", args[0])
	}
	fn(link)
	return c.cmdStatus(ctx)
}

func (c *Console) cmdLock(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: lock dynamic|right|left")
	}
	mode, err := lockpolicy.ParseMode(args[0])
	if err != nil {
		return err
	}
	return c.t.Update(func(s *settings.Settings) { s.LockMode = mode })
}

func (c *Console) cmdToggle(args []string, set func(*settings.Settings, bool)) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: <command> on|off")
	}
	on := onOff(args[0])
	return c.t.Update(func(s *settings.Settings) { set(s, on) })
}

func (c *Console) cmdStatus(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	snap, err := c.t.Service.Snapshot(ctx)
	if err != nil {
		return err
	}

	w := c.rl.Stdout()
	fmt.Fprintf(w, "Service:      %s (%d events)\n", snap.State, snap.Processed)
	fmt.Fprintf(w, "Posture:      %s\n", postureName(snap.Current))
	fmt.Fprintf(w, "Pending:      %s\n", postureName(snap.Pending))
	fmt.Fprintf(w, "Composition:  %s\n", snap.Composition)
	fmt.Fprintf(w, "Manual mode:  %s\n", snap.ManualMode)
	fmt.Fprintf(w, "Hall:         %d\n", snap.Hall)
	if snap.HasHingeAngle {
		fmt.Fprintf(w, "Hinge:        %d (peek armed: %t)\n", snap.HingeAngle, snap.PeekArmed)
	}
	fmt.Fprintf(w, "Display link: %s\n", snap.Display)
	fmt.Fprintf(w, "Touch link:   %s (%s)\n", snap.Touch, snap.TouchVersion)
	for _, p := range snap.Timers {
		fmt.Fprintf(w, "Timer:        %s\n", p)
	}

	dev := c.t.Device.State()
	fmt.Fprintf(w, "Device state: %s\n", dev.DeviceState)
	fmt.Fprintf(w, "Offset:       %d,%d (forced size: %t)\n", dev.OffsetX, dev.OffsetY, dev.ForcedSize)
	fmt.Fprintf(w, "Overlay:      %t  Asleep: %t\n", dev.OverlayShown, dev.Asleep)
	return nil
}

func (c *Console) cmdCalls() {
	w := c.rl.Stdout()
	for _, call := range c.t.HAL.Calls() {
		fmt.Fprintf(w, "  hal  %s\n", call)
	}
	for _, call := range c.t.Device.Calls() {
		fmt.Fprintf(w, "  os   %s\n", call)
	}
}

func (c *Console) printSummary(snap service.Snapshot) {
	fmt.Fprintf(c.rl.Stdout(), "-> %s composition=%s manual=%s\n",
		postureName(snap.Current), snap.Composition, snap.ManualMode)
}

func rotationArg(args []string) (posture.Rotation, error) {
	if len(args) == 0 {
		return posture.R0, nil
	}
	return posture.ParseRotation(args[0])
}

func postureName(p *posture.Posture) string {
	if p == nil {
		return "none"
	}
	return p.String()
}

func onOff(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
