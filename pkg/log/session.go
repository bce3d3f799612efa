package log

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session stamps events with a session ID, timestamp and sequence number
// before handing them to a Logger.
type Session struct {
	id     string
	logger Logger
	seq    atomic.Uint64
	now    func() time.Time
}

// NewSession creates a session with a fresh random ID. A nil logger
// discards events.
func NewSession(logger Logger) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		id:     uuid.NewString(),
		logger: logger,
		now:    time.Now,
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Emit stamps and logs event.
func (s *Session) Emit(event Event) {
	event.SessionID = s.id
	event.Sequence = s.seq.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.logger.Log(event)
}

// Sensor logs a raw input.
func (s *Session) Sensor(e SensorEvent) {
	s.Emit(Event{Source: SourceSensor, Category: CategoryInput, Sensor: &e})
}

// Transition logs a posture decision.
func (s *Session) Transition(e TransitionEvent) {
	s.Emit(Event{Source: SourceResolver, Category: CategoryTransition, Transition: &e})
}

// Hardware logs a composition application.
func (s *Session) Hardware(e HardwareEvent) {
	s.Emit(Event{Source: SourceDriver, Category: CategoryHardware, Hardware: &e})
}

// Link logs a link state change.
func (s *Session) Link(e LinkStateEvent) {
	s.Emit(Event{Source: SourceHAL, Category: CategoryLink, LinkState: &e})
}

// Error logs a dropped input or swallowed failure.
func (s *Session) Error(source Source, message, context string) {
	s.Emit(Event{
		Source:   source,
		Category: CategoryError,
		Error:    &ErrorEventData{Source: source, Message: message, Context: context},
	})
}
