package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

type captureLogger struct {
	mu     sync.Mutex
	events []plog.Event
}

func (c *captureLogger) Log(e plog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func TestRunnerTestdataScenariosPass(t *testing.T) {
	scenarios, err := LoadDirectory("testdata")
	require.NoError(t, err)

	runner := NewRunner(Options{})
	for _, sc := range scenarios {
		t.Run(sc.ID, func(t *testing.T) {
			res := runner.Run(context.Background(), sc)
			assert.True(t, res.Passed, "%v", res.Error)
			assert.NotEmpty(t, res.SessionID)
			assert.Len(t, res.StepResults, len(sc.Steps))
		})
	}
}

func TestRunnerStopsAtFirstFailure(t *testing.T) {
	sc, err := Parse([]byte(`
id: SC-FAIL
steps:
  - action: posture
    params: {value: book}
    expect:
      composition: 1
      posture: book
  - action: hinge
    params: {angle: 90}
`))
	require.NoError(t, err)

	res := NewRunner(Options{}).Run(context.Background(), sc)
	assert.False(t, res.Passed)
	require.Len(t, res.StepResults, 1)

	sr := res.StepResults[0]
	require.Len(t, sr.Checks, 2)
	assert.Equal(t, "composition", sr.Checks[0].Key)
	assert.False(t, sr.Checks[0].Passed)
	assert.True(t, sr.Checks[1].Passed)
	assert.Contains(t, res.Error.Error(), "got 2, want 1")
}

func TestRunnerActionError(t *testing.T) {
	sc := &Scenario{ID: "SC-ERR", Steps: []Step{{Action: "posture", Params: map[string]any{"value": "sideways"}}}}
	res := NewRunner(Options{}).Run(context.Background(), sc)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Error.Error(), "unknown posture name")
}

func TestRunnerInvalidSetup(t *testing.T) {
	sc := &Scenario{
		ID:    "SC-SETUP",
		Setup: Setup{TouchVersion: "v9"},
		Steps: []Step{{Action: "health_check"}},
	}
	res := NewRunner(Options{}).Run(context.Background(), sc)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Error.Error(), "setup")
}

func TestRunnerSetupStartsWithLinkDown(t *testing.T) {
	sc, err := Parse([]byte(`
id: SC-DOWN
setup:
  touch_version: v1
  down: [display]
steps:
  - action: health_check
    expect:
      display: disconnected
      touch: connected
      touch_version: v1
  - action: link_down
    params: {link: display, down: false}
  - action: wait
    params: {duration: 20ms}
  - action: health_check
    expect:
      display: connected
`))
	require.NoError(t, err)

	res := NewRunner(Options{}).Run(context.Background(), sc)
	assert.True(t, res.Passed, "%v", res.Error)
}

func TestRunnerTracesSession(t *testing.T) {
	trace := &captureLogger{}
	sc := &Scenario{ID: "SC-TRACE", Steps: []Step{{Action: "posture", Params: map[string]any{"value": "book"}}}}

	res := NewRunner(Options{Trace: trace}).Run(context.Background(), sc)
	require.True(t, res.Passed, "%v", res.Error)
	require.NotEmpty(t, trace.events)
	for _, e := range trace.events {
		assert.Equal(t, res.SessionID, e.SessionID)
	}
}

func TestRunAllAndReporters(t *testing.T) {
	scenarios := []*Scenario{
		{ID: "SC-OK", Name: "ok", Steps: []Step{{Action: "hinge", Params: map[string]any{"angle": 90}}}},
		{ID: "SC-BAD", Name: "bad", Steps: []Step{{Action: "hinge", Params: map[string]any{"angle": 90}, Expect: map[string]any{"peek_armed": true}}}},
	}
	suite := NewRunner(Options{}).RunAll(context.Background(), "unit", scenarios)
	assert.Equal(t, 1, suite.PassCount)
	assert.Equal(t, 1, suite.FailCount)

	var text bytes.Buffer
	NewTextReporter(&text, true).ReportSuite(suite)
	assert.Contains(t, text.String(), "[PASS] SC-OK - ok")
	assert.Contains(t, text.String(), "[FAIL] SC-BAD - bad")
	assert.Contains(t, text.String(), "[FAILED] peek_armed")
	assert.Contains(t, text.String(), "Failed: 1")

	var out bytes.Buffer
	NewJSONReporter(&out, false).ReportSuite(suite)
	var decoded JSONSuiteResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Total)
	require.Len(t, decoded.Scenarios, 2)
	assert.False(t, decoded.Scenarios[1].Passed)
	assert.Contains(t, decoded.Scenarios[1].Steps[0].Failed, "peek_armed")
}
