package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/surface-duo/posture-go/internal/simhw"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	plog "github.com/surface-duo/posture-go/pkg/log"
	"github.com/surface-duo/posture-go/pkg/service"
	"github.com/surface-duo/posture-go/pkg/settings"
)

// DefaultTimeout bounds a scenario that does not set its own timeout.
const DefaultTimeout = 30 * time.Second

// Options configures a Runner.
type Options struct {
	// Logger receives service debug output. Nil disables it.
	Logger *slog.Logger

	// Trace receives the service trace of every run. Nil disables tracing.
	Trace plog.Logger

	// Timeout overrides DefaultTimeout for scenarios without a timeout.
	Timeout time.Duration
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario    *Scenario
	Passed      bool
	Error       error
	StepResults []*StepResult
	Duration    time.Duration
	SessionID   string
}

// StepResult is the outcome of one step.
type StepResult struct {
	Index    int
	Step     Step
	Passed   bool
	Error    error
	Checks   []CheckResult
	Duration time.Duration
}

// CheckResult is one evaluated expectation.
type CheckResult struct {
	Key    string
	Passed bool
	Error  error
}

// SuiteResult aggregates several runs.
type SuiteResult struct {
	Name      string
	Results   []*Result
	PassCount int
	FailCount int
	Duration  time.Duration
}

// Runner executes scenarios, each against a fresh simulated device.
type Runner struct {
	opts Options
}

// NewRunner creates a runner.
func NewRunner(opts Options) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Runner{opts: opts}
}

// RunAll runs every scenario in order.
func (r *Runner) RunAll(ctx context.Context, name string, scenarios []*Scenario) *SuiteResult {
	start := time.Now()
	suite := &SuiteResult{Name: name}
	for _, sc := range scenarios {
		res := r.Run(ctx, sc)
		suite.Results = append(suite.Results, res)
		if res.Passed {
			suite.PassCount++
		} else {
			suite.FailCount++
		}
	}
	suite.Duration = time.Since(start)
	return suite
}

// Run executes one scenario. Execution stops at the first failing step.
func (r *Runner) Run(ctx context.Context, sc *Scenario) *Result {
	start := time.Now()
	res := &Result{Scenario: sc}
	defer func() { res.Duration = time.Since(start) }()

	timeout := r.opts.Timeout
	if sc.Timeout != "" {
		d, err := time.ParseDuration(sc.Timeout)
		if err != nil {
			res.Error = fmt.Errorf("invalid timeout %q: %w", sc.Timeout, err)
			return res
		}
		timeout = d
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	e, err := r.build(sc.Setup)
	if err != nil {
		res.Error = fmt.Errorf("setup: %w", err)
		return res
	}
	res.SessionID = e.svc.SessionID()

	if err := e.svc.Start(ctx); err != nil {
		res.Error = fmt.Errorf("start: %w", err)
		return res
	}
	defer func() { _ = e.svc.Stop() }()

	// The start-up health check is queued; let it finish first.
	if _, err := e.svc.Snapshot(ctx); err != nil {
		res.Error = fmt.Errorf("start: %w", err)
		return res
	}

	for i, step := range sc.Steps {
		sr := r.runStep(ctx, e, i, step)
		res.StepResults = append(res.StepResults, sr)
		if !sr.Passed {
			res.Error = fmt.Errorf("step %d (%s): %w", i+1, step.Action, sr.Error)
			return res
		}
	}
	res.Passed = true
	return res
}

func (r *Runner) runStep(ctx context.Context, e *env, index int, step Step) *StepResult {
	start := time.Now()
	sr := &StepResult{Index: index, Step: step}
	defer func() { sr.Duration = time.Since(start) }()

	action, ok := actions[step.Action]
	if !ok {
		sr.Error = fmt.Errorf("unknown action %q", step.Action)
		return sr
	}
	if err := action(ctx, e, step.Params); err != nil {
		sr.Error = err
		return sr
	}
	if len(step.Expect) == 0 {
		sr.Passed = true
		return sr
	}

	snap, err := e.svc.Snapshot(ctx)
	if err != nil {
		sr.Error = err
		return sr
	}

	keys := make([]string, 0, len(step.Expect))
	for k := range step.Expect {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		cr := CheckResult{Key: key, Passed: true}
		check, ok := checks[key]
		if !ok {
			cr.Error = fmt.Errorf("unknown expectation %q", key)
		} else if err := check(e, snap, step.Expect[key]); err != nil {
			cr.Error = err
		}
		if cr.Error != nil {
			cr.Passed = false
			errs = append(errs, fmt.Errorf("%s: %w", key, cr.Error))
		}
		sr.Checks = append(sr.Checks, cr)
	}
	sr.Error = errors.Join(errs...)
	sr.Passed = sr.Error == nil
	return sr
}

// build wires a fresh service to simulated hardware.
func (r *Runner) build(setup Setup) (*env, error) {
	touch, err := parseTouchVersion(setup.TouchVersion)
	if err != nil {
		return nil, err
	}

	initial := settings.Default()
	if setup.LockMode != "" {
		mode, err := lockpolicy.ParseMode(setup.LockMode)
		if err != nil {
			return nil, err
		}
		initial.LockMode = mode
	}
	initial.HingeDisabled = setup.HingeDisabled
	initial.PeekModeEnabled = setup.PeekModeEnabled

	e := &env{
		hw:    simhw.NewHAL(touch),
		dev:   simhw.NewDevice(),
		store: settings.NewMemoryStore(initial),
	}
	e.dev.SetRotationFrozen(setup.RotationFrozen)
	for _, name := range setup.Down {
		link, err := parseLink(name)
		if err != nil {
			return nil, err
		}
		e.hw.SetDown(link, true)
	}

	halConfig := hal.DefaultConfig()
	halConfig.ConnectInterval = time.Millisecond
	halConfig.Logger = r.opts.Logger
	if setup.RetryInitial != "" {
		d, err := time.ParseDuration(setup.RetryInitial)
		if err != nil {
			return nil, fmt.Errorf("retry_initial: %w", err)
		}
		halConfig.Backoff.Initial = d
		halConfig.Backoff.Jitter = 0
	}
	e.links = hal.NewManager(e.hw, halConfig)

	config := service.DefaultConfig()
	config.Links = e.links
	config.Settings = e.store
	config.Platform = e.dev.Platform()
	config.HealthInterval = 0
	config.Trace = r.opts.Trace
	config.Logger = r.opts.Logger
	if setup.SensorSuspend != "" {
		d, err := time.ParseDuration(setup.SensorSuspend)
		if err != nil {
			return nil, fmt.Errorf("sensor_suspend: %w", err)
		}
		config.SensorSuspendDelay = d
	}
	if setup.OverlayHide != "" {
		d, err := time.ParseDuration(setup.OverlayHide)
		if err != nil {
			return nil, fmt.Errorf("overlay_hide: %w", err)
		}
		config.OverlayHideDelay = d
	}

	svc, err := service.New(config)
	if err != nil {
		return nil, err
	}
	e.svc = svc
	return e, nil
}
