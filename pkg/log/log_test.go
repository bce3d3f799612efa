package log

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type captureLogger struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureLogger) Log(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func TestEncodeDecodeTransition(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	in := Event{
		Timestamp: ts,
		SessionID: "s-1",
		Source:    SourceResolver,
		Category:  CategoryTransition,
		Sequence:  7,
		Transition: &TransitionEvent{
			From:      "BOOK@R0",
			Candidate: "BROCHURE_LEFT@R0",
			To:        "BROCHURE_RIGHT@R0",
			Outcome:   "REMAPPED",
		},
	}

	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}

	if !out.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanosecond precision)", out.Timestamp, ts)
	}
	if out.Transition == nil || out.Transition.To != "BROCHURE_RIGHT@R0" {
		t.Errorf("Transition = %+v", out.Transition)
	}
	if out.Sensor != nil || out.Hardware != nil {
		t.Error("unexpected payloads decoded")
	}
}

func TestFileLoggerAndReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.plog")

	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	session := NewSession(fl)
	session.Sensor(SensorEvent{Kind: "POSTURE", Code: 7, Rotation: 0})
	session.Sensor(SensorEvent{Kind: "HINGE", Value: 40})
	session.Hardware(HardwareEvent{Class: "SINGLE_RIGHT", Composition: 1, Issued: true})
	session.Error(SourceSensor, "unknown posture code 99", "decode")

	if fl.Count() != 4 {
		t.Errorf("Count() = %d, want 4", fl.Count())
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Logging after close is ignored.
	fl.Log(Event{})

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	var seqs []uint64
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if e.SessionID != session.ID() {
			t.Errorf("SessionID = %q, want %q", e.SessionID, session.ID())
		}
		seqs = append(seqs, e.Sequence)
	}
	if len(seqs) != 4 || seqs[0] != 1 || seqs[3] != 4 {
		t.Errorf("sequences = %v, want 1..4", seqs)
	}
}

func TestFileLoggerEventsVisibleBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.plog")

	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer fl.Close()

	fl.Log(Event{Sequence: 1, Source: SourceSensor, Category: CategoryInput})
	fl.Log(Event{Sequence: 2, Source: SourceSensor, Category: CategoryInput})

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()

	var seqs []uint64
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		seqs = append(seqs, e.Sequence)
	}
	if len(seqs) != 2 || seqs[1] != 2 {
		t.Errorf("sequences read from live file = %v, want [1 2]", seqs)
	}
}

func TestDecodeAllStopsAtTruncatedEvent(t *testing.T) {
	var buf bytes.Buffer
	for i := uint64(1); i <= 3; i++ {
		data, err := EncodeEvent(Event{Sequence: i, Source: SourceSensor, Category: CategoryInput})
		if err != nil {
			t.Fatalf("EncodeEvent: %v", err)
		}
		buf.Write(data)
	}
	last, _ := EncodeEvent(Event{Sequence: 4})
	buf.Write(last[:len(last)/2])

	var seqs []uint64
	err := DecodeAll(&buf, func(e Event) error {
		seqs = append(seqs, e.Sequence)
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(seqs) != 3 || seqs[2] != 3 {
		t.Errorf("sequences = %v, want 1..3", seqs)
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.plog")
	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}

	s := NewSession(fl)
	s.Sensor(SensorEvent{Kind: "HALL", Value: 0})
	s.Sensor(SensorEvent{Kind: "HINGE", Value: 10})
	s.Link(LinkStateEvent{Link: "DISPLAY", OldState: "CONNECTED", NewState: "DISCONNECTED"})
	fl.Close()

	cat := CategoryLink
	r, err := NewFilteredReader(path, Filter{Category: &cat})
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	e, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if e.LinkState == nil || e.LinkState.Link != "DISPLAY" {
		t.Errorf("LinkState = %+v", e.LinkState)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("second Next() error = %v, want io.EOF", err)
	}
	r.Close()

	r, err = NewFilteredReader(path, Filter{SensorKind: "HINGE"})
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	defer r.Close()
	e, err = r.Next()
	if err != nil || e.Sensor.Value != 10 {
		t.Errorf("Next() = %+v, %v", e.Sensor, err)
	}
}

func TestFilterTimeRange(t *testing.T) {
	base := time.Now()
	start := base.Add(-time.Second)
	end := base.Add(time.Second)
	f := Filter{TimeStart: &start, TimeEnd: &end}

	if !f.matches(Event{Timestamp: base}) {
		t.Error("event inside range should match")
	}
	if f.matches(Event{Timestamp: end}) {
		t.Error("TimeEnd is exclusive")
	}
	if f.matches(Event{Timestamp: start.Add(-time.Nanosecond)}) {
		t.Error("event before range should not match")
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{SessionID: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("fan-out counts = %d, %d, want 1, 1", len(a.events), len(b.events))
	}
}

func TestSessionStampsEvents(t *testing.T) {
	c := &captureLogger{}
	s := NewSession(c)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.Transition(TransitionEvent{Candidate: "BOOK@R0", To: "BOOK@R0", Outcome: "INITIAL"})

	if len(c.events) != 1 {
		t.Fatalf("got %d events", len(c.events))
	}
	e := c.events[0]
	if e.SessionID == "" || e.SessionID != s.ID() {
		t.Errorf("SessionID = %q", e.SessionID)
	}
	if !e.Timestamp.Equal(fixed) || e.Sequence != 1 {
		t.Errorf("Timestamp = %v, Sequence = %d", e.Timestamp, e.Sequence)
	}
	if e.Category != CategoryTransition || e.Source != SourceResolver {
		t.Errorf("Category = %v, Source = %v", e.Category, e.Source)
	}

	if NewSession(nil).ID() == s.ID() {
		t.Error("sessions should get distinct IDs")
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := NewSlogAdapter(logger)

	a.Log(Event{
		SessionID: "abc",
		Source:    SourceDriver,
		Category:  CategoryHardware,
		Hardware: &HardwareEvent{
			Class:             "TABLET",
			Composition:       2,
			Issued:            true,
			LauncherRestarted: true,
		},
	})

	out := buf.String()
	for _, want := range []string{"msg=trace", "session=abc", "source=DRIVER", "composition=2", "launcher_restarted=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if SourceHAL.String() != "HAL" || Source(42).String() != "UNKNOWN" {
		t.Error("Source.String mismatch")
	}
	if CategoryError.String() != "ERROR" || Category(42).String() != "UNKNOWN" {
		t.Error("Category.String mismatch")
	}
}
