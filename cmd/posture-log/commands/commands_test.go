package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	plog "github.com/surface-duo/posture-go/pkg/log"
)

func createTestTrace(t *testing.T, events []plog.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.plog")

	logger, err := plog.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func sampleEvents() []plog.Event {
	ts := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return []plog.Event{
		{
			Timestamp: ts, SessionID: "aaaaaaaa-1111", Sequence: 1,
			Source: plog.SourceSensor, Category: plog.CategoryInput,
			Sensor: &plog.SensorEvent{Kind: "POSTURE", Code: 3.0},
		},
		{
			Timestamp: ts.Add(time.Millisecond), SessionID: "aaaaaaaa-1111", Sequence: 1,
			Source: plog.SourceResolver, Category: plog.CategoryTransition,
			Transition: &plog.TransitionEvent{Candidate: "BOOK@R0", To: "BOOK@R0", Outcome: "ACCEPTED"},
		},
		{
			Timestamp: ts.Add(2 * time.Millisecond), SessionID: "aaaaaaaa-1111", Sequence: 1,
			Source: plog.SourceDriver, Category: plog.CategoryHardware,
			Hardware: &plog.HardwareEvent{Class: "DUAL", Composition: 2, Issued: true, Trigger: "posture"},
		},
		{
			Timestamp: ts.Add(3 * time.Millisecond), SessionID: "bbbbbbbb-2222", Sequence: 4,
			Source: plog.SourceHAL, Category: plog.CategoryLink,
			LinkState: &plog.LinkStateEvent{Link: "DISPLAY", OldState: "CONNECTED", NewState: "DISCONNECTED"},
		},
		{
			Timestamp: ts.Add(4 * time.Millisecond), SessionID: "bbbbbbbb-2222", Sequence: 5,
			Source: plog.SourceSensor, Category: plog.CategoryError,
			Error: &plog.ErrorEventData{Source: plog.SourceSensor, Message: "unknown posture code 99.0"},
		},
	}
}

func TestViewFormatsEveryPayload(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"[aaaaaaaa] #1 SENSOR   Input POSTURE",
		"Code: 3.0",
		"- -> BOOK@R0 (candidate BOOK@R0, ACCEPTED)",
		"Composition: 2  Issued: true",
		"Trigger: posture",
		"DISPLAY: CONNECTED -> DISCONNECTED",
		"Message: unknown posture code 99.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestViewFiltersByCategoryAndSession(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	cat := plog.CategoryHardware
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if strings.Contains(buf.String(), "Input") || !strings.Contains(buf.String(), "Hardware") {
		t.Errorf("category filter not applied:\n%s", buf.String())
	}

	buf.Reset()
	if err := RunView(path, ViewFilter{SessionPrefix: "bbbb"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if strings.Contains(buf.String(), "aaaaaaaa") {
		t.Errorf("session filter not applied:\n%s", buf.String())
	}
}

func TestViewMissingFile(t *testing.T) {
	err := RunView(filepath.Join(t.TempDir(), "missing.plog"), ViewFilter{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCollectStats(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	stats, err := Collect(path, ViewFilter{})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents: got %d, want 5", stats.TotalEvents)
	}
	if stats.InputsByKind["POSTURE"] != 1 {
		t.Errorf("InputsByKind[POSTURE]: got %d, want 1", stats.InputsByKind["POSTURE"])
	}
	if stats.Outcomes["ACCEPTED"] != 1 {
		t.Errorf("Outcomes[ACCEPTED]: got %d, want 1", stats.Outcomes["ACCEPTED"])
	}
	if stats.Compositions[2] != 1 {
		t.Errorf("Compositions[2]: got %d, want 1", stats.Compositions[2])
	}
	if len(stats.Sessions) != 2 {
		t.Errorf("Sessions: got %d, want 2", len(stats.Sessions))
	}
	if stats.LinkDowns != 1 || stats.Errors != 1 {
		t.Errorf("LinkDowns/Errors: got %d/%d, want 1/1", stats.LinkDowns, stats.Errors)
	}
	if got := stats.Sessions["aaaaaaaa-1111"].LastPosture; got != "BOOK@R0" {
		t.Errorf("LastPosture: got %q, want BOOK@R0", got)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total Events: 5", "TRANSITION:", "Sessions: 2", "Link Downs: 1", "Errors: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportJSONL(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunExport(path, ViewFilter{}, "jsonl", &buf); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines: got %d, want 5", len(lines))
	}

	var first plog.Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if first.Sensor == nil || first.Sensor.Kind != "POSTURE" {
		t.Errorf("first event: got %+v", first)
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunExport(path, ViewFilter{}, "csv", &buf); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines: got %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,session_id") {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.Contains(lines[3], "composition=2 issued=true trigger=posture") {
		t.Errorf("hardware row: got %q", lines[3])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTrace(t, sampleEvents())
	if err := RunExport(path, ViewFilter{}, "xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseFlags(t *testing.T) {
	if s, err := ParseSource("hal"); err != nil || s != plog.SourceHAL {
		t.Errorf("ParseSource(hal): got %v, %v", s, err)
	}
	if _, err := ParseSource("kernel"); err == nil {
		t.Error("expected error for unknown source")
	}
	if c, err := ParseCategory("Transition"); err != nil || c != plog.CategoryTransition {
		t.Errorf("ParseCategory(Transition): got %v, %v", c, err)
	}
	if _, err := ParseCategory("state"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRootCommandRunsView(t *testing.T) {
	path := createTestTrace(t, sampleEvents())

	root := newRoot()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"view", "--category", "link", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(buf.String(), "DISPLAY: CONNECTED -> DISCONNECTED") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	categoryFlag = ""
}
