package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Reporter formats run results.
type Reporter interface {
	ReportSuite(result *SuiteResult)
	ReportScenario(result *Result)
}

// TextReporter writes human-readable reports.
type TextReporter struct {
	writer  io.Writer
	verbose bool
}

// NewTextReporter creates a text reporter. Verbose adds per-step detail.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{writer: w, verbose: verbose}
}

// ReportSuite writes every scenario and a summary.
func (r *TextReporter) ReportSuite(result *SuiteResult) {
	fmt.Fprintf(r.writer, "\n=== Suite: %s ===\n", result.Name)
	fmt.Fprintf(r.writer, "Duration: %s\n\n", result.Duration.Round(time.Millisecond))

	for _, res := range result.Results {
		r.ReportScenario(res)
	}

	fmt.Fprintf(r.writer, "\n--- Summary ---\n")
	fmt.Fprintf(r.writer, "Total:  %d\n", len(result.Results))
	fmt.Fprintf(r.writer, "Passed: %d\n", result.PassCount)
	fmt.Fprintf(r.writer, "Failed: %d\n", result.FailCount)
}

// ReportScenario writes one scenario result.
func (r *TextReporter) ReportScenario(result *Result) {
	status := "PASS"
	if !result.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(r.writer, "[%s] %s - %s (%s)\n",
		status, result.Scenario.ID, result.Scenario.Name, result.Duration.Round(time.Millisecond))

	if !result.Passed && result.Error != nil {
		fmt.Fprintf(r.writer, "       Error: %v\n", result.Error)
	}

	if !r.verbose {
		return
	}
	for _, sr := range result.StepResults {
		stepStatus := "PASS"
		if !sr.Passed {
			stepStatus = "FAIL"
		}
		fmt.Fprintf(r.writer, "    [%s] Step %d: %s (%s)\n",
			stepStatus, sr.Index+1, sr.Step.Action, sr.Duration.Round(time.Millisecond))
		for _, cr := range sr.Checks {
			if cr.Passed {
				fmt.Fprintf(r.writer, "           [OK] %s\n", cr.Key)
			} else {
				fmt.Fprintf(r.writer, "           [FAILED] %s: %v\n", cr.Key, cr.Error)
			}
		}
	}
}

// JSONReporter writes JSON reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{writer: w, pretty: pretty}
}

// JSONSuiteResult is the JSON form of a SuiteResult.
type JSONSuiteResult struct {
	Name       string               `json:"name"`
	Total      int                  `json:"total"`
	Passed     int                  `json:"passed"`
	Failed     int                  `json:"failed"`
	DurationMs int64                `json:"duration_ms"`
	Scenarios  []JSONScenarioResult `json:"scenarios"`
}

// JSONScenarioResult is the JSON form of a Result.
type JSONScenarioResult struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Passed     bool             `json:"passed"`
	Error      string           `json:"error,omitempty"`
	SessionID  string           `json:"session_id,omitempty"`
	DurationMs int64            `json:"duration_ms"`
	Steps      []JSONStepResult `json:"steps,omitempty"`
}

// JSONStepResult is the JSON form of a StepResult.
type JSONStepResult struct {
	Index      int               `json:"index"`
	Action     string            `json:"action"`
	Passed     bool              `json:"passed"`
	Error      string            `json:"error,omitempty"`
	Failed     map[string]string `json:"failed_checks,omitempty"`
	DurationMs int64             `json:"duration_ms"`
}

// ReportSuite writes the suite as one JSON document.
func (r *JSONReporter) ReportSuite(result *SuiteResult) {
	out := JSONSuiteResult{
		Name:       result.Name,
		Total:      len(result.Results),
		Passed:     result.PassCount,
		Failed:     result.FailCount,
		DurationMs: result.Duration.Milliseconds(),
	}
	for _, res := range result.Results {
		out.Scenarios = append(out.Scenarios, scenarioToJSON(res))
	}
	r.writeJSON(out)
}

// ReportScenario writes one scenario as a JSON document.
func (r *JSONReporter) ReportScenario(result *Result) {
	r.writeJSON(scenarioToJSON(result))
}

func scenarioToJSON(result *Result) JSONScenarioResult {
	out := JSONScenarioResult{
		ID:         result.Scenario.ID,
		Name:       result.Scenario.Name,
		Passed:     result.Passed,
		SessionID:  result.SessionID,
		DurationMs: result.Duration.Milliseconds(),
	}
	if result.Error != nil {
		out.Error = result.Error.Error()
	}
	for _, sr := range result.StepResults {
		js := JSONStepResult{
			Index:      sr.Index,
			Action:     sr.Step.Action,
			Passed:     sr.Passed,
			DurationMs: sr.Duration.Milliseconds(),
		}
		if sr.Error != nil {
			js.Error = sr.Error.Error()
		}
		for _, cr := range sr.Checks {
			if cr.Passed {
				continue
			}
			if js.Failed == nil {
				js.Failed = make(map[string]string)
			}
			js.Failed[cr.Key] = cr.Error.Error()
		}
		out.Steps = append(out.Steps, js)
	}
	return out
}

func (r *JSONReporter) writeJSON(v any) {
	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		fmt.Fprintf(r.writer, `{"error": %q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(r.writer, string(data))
}
