package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	plog "github.com/surface-duo/posture-go/pkg/log"
	"github.com/surface-duo/posture-go/pkg/metrics"
	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/rotationgate"
	"github.com/surface-duo/posture-go/pkg/settings"
	"github.com/surface-duo/posture-go/pkg/timers"
)

// Service is the posture service.
type Service struct {
	config   Config
	logger   *slog.Logger
	trace    *plog.Session
	metrics  *metrics.Metrics
	links    LinkManager
	settings settings.Provider
	platform platform.Platform
	driver   *composition.Driver
	gate     *rotationgate.Gate
	timers   *timers.Manager

	mu       sync.RWMutex
	state    ServiceState
	cancel   context.CancelFunc
	inbox    chan envelope
	done     chan struct{}
	cron     *cron.Cron
	handlers []NotificationHandler

	// Owned by the event loop.
	current           *posture.Posture
	manual            composition.ManualMode
	hall              int32
	sleepAfterOverlay bool
	last              composition.Result
	processed         uint64
}

type envelope struct {
	event    Event
	reply    chan Snapshot
	enqueued time.Time
}

// New creates a service. It does not touch the hardware until Start.
func New(config Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.QueueSize == 0 {
		config.QueueSize = DefaultQueueSize
	}

	s := &Service{
		config:   config,
		logger:   config.Logger,
		trace:    plog.NewSession(config.Trace),
		metrics:  config.Metrics,
		links:    config.Links,
		settings: config.Settings,
		platform: config.Platform,
		gate:     rotationgate.New(),
		timers:   timers.NewManager(),
		state:    StateIdle,
	}

	s.driver = composition.NewDriver(config.Links, config.Platform, composition.Config{
		PeekAngleThreshold: config.PeekAngleThreshold,
		Logger:             config.Logger,
	})
	s.driver.OnCallError(s.callFailed)
	s.gate.OnPending(func(p posture.Posture) {
		s.notify(Notification{Type: NotifyRotationPending, Posture: &p})
	})

	s.timers.OnExpiry(func(p timers.Purpose, gen uint64) {
		_ = s.Post(TimerExpiredEvent{Purpose: p, Generation: gen})
	})
	s.links.OnDeath(func(link hal.LinkID) {
		if err := s.Post(LinkDeathEvent{Link: link}); err != nil {
			s.debugLog("service: death notice dropped", "link", link.String(), "error", err)
		}
	})
	s.links.OnStateChange(s.linkStateChanged)

	return s, nil
}

// SessionID returns the trace session ID of this service instance.
func (s *Service) SessionID() string {
	return s.trace.ID()
}

// State returns the lifecycle state.
func (s *Service) State() ServiceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OnNotification registers a notification handler.
func (s *Service) OnNotification(handler NotificationHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// Start registers the sensors, starts the event loop and the health sweep,
// and queues an initial hardware connect.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle && s.state != StateStopped {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.inbox = make(chan envelope, s.config.QueueSize)
	s.done = make(chan struct{})
	s.cron = nil

	if s.config.HealthInterval > 0 {
		c := cron.New()
		spec := fmt.Sprintf("@every %s", s.config.HealthInterval)
		if _, err := c.AddFunc(spec, func() { _ = s.Post(HealthCheckEvent{}) }); err != nil {
			cancel()
			s.mu.Unlock()
			return fmt.Errorf("schedule health sweep: %w", err)
		}
		s.cron = c
	}
	s.state = StateRunning
	c := s.cron
	s.mu.Unlock()

	s.registerSensors(platform.SensorPosture, platform.SensorHinge, platform.SensorHall)

	go s.loop(loopCtx)
	if c != nil {
		c.Start()
	}

	s.debugLog("service: started", "session", s.trace.ID())
	return s.Post(HealthCheckEvent{})
}

// Stop stops the event loop, cancels all timers, unregisters the sensors and
// releases the hardware links. Events still queued are discarded.
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.state = StateStopping
	c := s.cron
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	s.cancel()
	<-s.done

	s.timers.CancelAll()
	if sensors := s.platform.Sensors; sensors != nil {
		sensors.Unregister(platform.SensorPosture)
		sensors.Unregister(platform.SensorHinge)
		sensors.Unregister(platform.SensorHall)
	}
	s.links.Release()

	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()

	s.debugLog("service: stopped")
	return nil
}

// Post queues ev without waiting for it to be handled. It blocks only while
// the queue is full.
func (s *Service) Post(ev Event) error {
	return s.enqueue(context.Background(), envelope{event: ev})
}

// Dispatch queues ev, waits until it has been handled and returns the state
// afterwards.
func (s *Service) Dispatch(ctx context.Context, ev Event) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := s.enqueue(ctx, envelope{event: ev, reply: reply}); err != nil {
		return Snapshot{}, err
	}

	s.mu.RLock()
	done := s.done
	s.mu.RUnlock()

	select {
	case snap := <-reply:
		return snap, nil
	case <-done:
		return Snapshot{}, ErrStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Snapshot returns the state after every event queued so far was handled.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.Dispatch(ctx, snapshotQuery{})
}

func (s *Service) enqueue(ctx context.Context, env envelope) error {
	s.mu.RLock()
	state := s.state
	inbox, done := s.inbox, s.done
	s.mu.RUnlock()

	switch state {
	case StateRunning:
	case StateIdle:
		return ErrNotStarted
	default:
		return ErrStopped
	}

	env.enqueued = time.Now()
	select {
	case inbox <- env:
		return nil
	case <-done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) loop(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-s.inbox:
			s.handle(ctx, env)
		}
	}
}

func (s *Service) handle(ctx context.Context, env envelope) {
	start := time.Now()
	s.processed++

	switch ev := env.event.(type) {
	case PostureEvent:
		s.handlePosture(ctx, ev)
	case HingeEvent:
		s.handleHinge(ctx, ev)
	case HallEvent:
		s.handleHall(ev)
	case RotationChangedEvent:
		s.handleRotationChanged(ctx, ev)
	case LinkDeathEvent:
		s.handleLinkDeath(ctx, ev)
	case PowerEvent:
		s.handlePower(ev)
	case ManualPostureEvent:
		s.handleManual(ctx, ev)
	case RetryReconnectEvent:
		s.recoverLinks(ctx, "retry")
	case HealthCheckEvent:
		s.handleHealthCheck(ctx)
	case TimerExpiredEvent:
		s.handleTimer(ctx, ev)
	case snapshotQuery:
	default:
		s.logWarn("service: unknown event", "type", fmt.Sprintf("%T", env.event))
	}

	s.metrics.ObserveEvent(env.event.Kind().String(), time.Since(start))
	if wait := start.Sub(env.enqueued); wait > time.Second {
		s.debugLog("service: event queued for long", "kind", env.event.Kind().String(), "wait", wait)
	}

	if env.reply != nil {
		env.reply <- s.snapshot()
	}
}

func (s *Service) snapshot() Snapshot {
	angle, hasAngle := s.driver.LastHingeAngle()
	snap := Snapshot{
		State:             s.State(),
		Current:           copyPosture(s.current),
		Pending:           s.gate.Pending(),
		Composition:       s.driver.Current(),
		PreviousWasTablet: s.driver.PreviousWasTablet(),
		ManualMode:        s.manual,
		Hall:              s.hall,
		PeekArmed:         s.driver.PeekArmed(),
		HingeAngle:        angle,
		HasHingeAngle:     hasAngle,
		Display:           s.links.State(hal.LinkDisplay),
		Touch:             s.links.State(hal.LinkTouch),
		TouchVersion:      s.links.TouchVersion(),
		LastResult:        s.last,
		Processed:         s.processed,
	}
	for _, p := range []timers.Purpose{timers.SensorSuspend, timers.OverlayHide, timers.ScreenOff, timers.Reconnect} {
		if s.timers.Pending(p) {
			snap.Timers = append(snap.Timers, p)
		}
	}
	return snap
}

func (s *Service) notify(n Notification) {
	s.mu.RLock()
	handlers := s.handlers
	s.mu.RUnlock()

	for _, handler := range handlers {
		go handler(n)
	}
}

func (s *Service) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Service) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func copyPosture(p *posture.Posture) *posture.Posture {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
