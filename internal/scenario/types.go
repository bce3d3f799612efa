// Package scenario loads YAML posture scenarios and runs them against a
// posture service wired to simulated hardware.
package scenario

import "strconv"

// Scenario is one scripted run of the posture service.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "SC-DEATH-001").
	ID string `yaml:"id"`

	// Name is a human-readable name.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// Setup configures the simulated device before the service starts.
	Setup Setup `yaml:"setup"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Timeout bounds the whole run (e.g., "10s").
	Timeout string `yaml:"timeout,omitempty"`

	Tags []string `yaml:"tags,omitempty"`
}

// Setup describes the starting state.
type Setup struct {
	LockMode        string `yaml:"lock_mode,omitempty"`
	HingeDisabled   bool   `yaml:"hinge_disabled,omitempty"`
	PeekModeEnabled bool   `yaml:"peek_mode_enabled,omitempty"`
	RotationFrozen  bool   `yaml:"rotation_frozen,omitempty"`

	// TouchVersion is the installed touch service: "v1", "v2" or "none".
	TouchVersion string `yaml:"touch_version,omitempty"`

	// Down lists links whose service is stopped at start ("display", "touch").
	Down []string `yaml:"down,omitempty"`

	// SensorSuspend and OverlayHide override the timer delays.
	SensorSuspend string `yaml:"sensor_suspend,omitempty"`
	OverlayHide   string `yaml:"overlay_hide,omitempty"`

	// RetryInitial overrides the first reconnect retry delay.
	RetryInitial string `yaml:"retry_initial,omitempty"`
}

// Step is one action and the state expected after it.
type Step struct {
	// Action is the action to perform (e.g., "posture", "kill").
	Action string `yaml:"action"`

	// Params are parameters for the action.
	Params map[string]any `yaml:"params,omitempty"`

	// Expect maps check names to expected values.
	Expect map[string]any `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
