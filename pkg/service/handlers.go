package service

import (
	"context"
	"time"

	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/lockpolicy"
	plog "github.com/surface-duo/posture-go/pkg/log"
	"github.com/surface-duo/posture-go/pkg/platform"
	"github.com/surface-duo/posture-go/pkg/posture"
	"github.com/surface-duo/posture-go/pkg/settings"
	"github.com/surface-duo/posture-go/pkg/timers"
)

func (s *Service) handlePosture(ctx context.Context, ev PostureEvent) {
	s.trace.Sensor(plog.SensorEvent{Kind: "POSTURE", Code: ev.Code, Rotation: ev.RotationCode})

	candidate, err := posture.FromCodes(ev.Code, ev.RotationCode)
	if err != nil {
		s.logWarn("service: dropping posture event", "code", ev.Code, "error", err)
		s.metrics.DecodeError()
		s.trace.Error(plog.SourceSensor, err.Error(), "decode posture")
		s.notify(Notification{Type: NotifyDecodeError, Error: err})
		return
	}

	s.commit(ctx, candidate, s.settings.Snapshot())
}

// commit runs candidate through the lock policy and the rotation gate,
// updates the current posture and applies it unless a manual mode is pinned.
func (s *Service) commit(ctx context.Context, candidate posture.Posture, cfg settings.Settings) {
	from := copyPosture(s.current)

	res := lockpolicy.Resolve(from, candidate, cfg.LockMode)
	s.metrics.Resolution(res.Outcome.String())

	next := res.Posture
	if res.Outcome.Gated() {
		next = s.gate.Commit(from, res.Posture, s.rotationFrozen())
	} else {
		s.gate.Supersede()
	}
	s.current = &next

	pending := s.gate.Pending()
	s.trace.Transition(plog.TransitionEvent{
		From:      postureString(from),
		Candidate: candidate.String(),
		To:        next.String(),
		Outcome:   res.Outcome.String(),
		Pending:   postureString(pending),
	})

	if from == nil || *from != next {
		s.debugLog("service: posture committed", "from", postureString(from), "to", next.String(), "outcome", res.Outcome.String())
		s.notify(Notification{Type: NotifyPostureCommitted, Posture: copyPosture(&next)})
	}

	s.syncLinks(ctx, "posture")

	if s.manual != composition.ManualAutomatic {
		s.debugLog("service: manual mode pinned, not applying", "mode", s.manual.String())
		return
	}
	s.record(s.driver.Apply(ctx, next, cfg), "posture")
}

func (s *Service) handleHinge(ctx context.Context, ev HingeEvent) {
	s.trace.Sensor(plog.SensorEvent{Kind: "HINGE", Value: ev.Angle})
	s.driver.SetHingeAngle(ctx, ev.Angle)
}

// handleHall suspends the posture and hinge sensors shortly after the lid
// closes and restores them when it opens again.
func (s *Service) handleHall(ev HallEvent) {
	s.trace.Sensor(plog.SensorEvent{Kind: "HALL", Value: ev.Value})

	prev := s.hall
	s.hall = ev.Value

	if ev.Value == 0 {
		s.schedule(timers.SensorSuspend, s.config.SensorSuspendDelay)
		if p := s.platform.Power; p != nil {
			p.GoToSleep(platform.ReasonLidSwitch)
		}
		return
	}
	if prev != 0 {
		return
	}

	s.cancelTimer(timers.SensorSuspend)
	if p := s.platform.Power; p != nil {
		p.WakeUp(platform.ReasonLidSwitch)
	}
	s.debugLog("service: lid opened, registering sensors")
	s.registerSensors(platform.SensorPosture, platform.SensorHinge)
}

func (s *Service) handleRotationChanged(ctx context.Context, ev RotationChangedEvent) {
	s.trace.Sensor(plog.SensorEvent{Kind: "ROTATION", Value: ev.RotationCode})

	promoted, ok := s.gate.OnRotationChanged(posture.DecodeRotation(ev.RotationCode), s.rotationFrozen())
	if !ok {
		return
	}

	from := copyPosture(s.current)
	s.current = &promoted
	s.trace.Transition(plog.TransitionEvent{
		From:      postureString(from),
		Candidate: promoted.String(),
		To:        promoted.String(),
		Outcome:   "PROMOTED",
		Promoted:  true,
	})
	s.debugLog("service: pending posture promoted", "posture", promoted.String())
	s.notify(Notification{Type: NotifyPostureCommitted, Posture: copyPosture(&promoted)})

	s.syncLinks(ctx, "rotation")
	if s.manual == composition.ManualAutomatic {
		s.record(s.driver.Apply(ctx, promoted, s.settings.Snapshot()), "rotation")
	}
}

func (s *Service) handleLinkDeath(ctx context.Context, ev LinkDeathEvent) {
	s.logWarn("service: hardware service died", "link", ev.Link.String())
	s.trace.Error(plog.SourceHAL, "service died", ev.Link.String())
	s.recoverLinks(ctx, "death")
}

// recoverLinks reconnects both links and re-issues the recorded composition.
// If a link stays down a backoff retry is scheduled.
func (s *Service) recoverLinks(ctx context.Context, cause string) {
	ok := s.links.Reconnect(ctx)
	s.metrics.Reconnect(cause, ok)
	s.record(s.driver.Reapply(ctx), "reapply")

	if ok {
		s.cancelTimer(timers.Reconnect)
		return
	}
	delay := s.links.NextRetryDelay()
	s.logWarn("service: hardware still unavailable, retrying", "cause", cause, "delay", delay)
	s.schedule(timers.Reconnect, delay)
}

func (s *Service) handleHealthCheck(ctx context.Context) {
	s.syncLinks(ctx, "health")
}

// syncLinks connects missing links. When that brings the hardware up, the
// recorded composition is re-issued, since it may have been recorded while
// the hardware was away.
func (s *Service) syncLinks(ctx context.Context, trigger string) {
	was := s.links.Connected()
	if !s.links.EnsureConnected(ctx) || was {
		return
	}
	if s.driver.Current() != composition.Unset {
		s.record(s.driver.Reapply(ctx), trigger)
	}
}

func (s *Service) handlePower(ev PowerEvent) {
	var v int32
	if ev.Connected {
		v = 1
	}
	s.trace.Sensor(plog.SensorEvent{Kind: "POWER", Value: v})

	if s.driver.ShowPowerOverlay(s.settings.Snapshot()) {
		s.debugLog("service: power changed while closed, showing overlay")
		s.sleepAfterOverlay = true
		s.schedule(timers.OverlayHide, s.config.OverlayHideDelay)
	}
}

func (s *Service) handleManual(ctx context.Context, ev ManualPostureEvent) {
	s.trace.Sensor(plog.SensorEvent{Kind: "MANUAL", Value: int32(ev.Mode)})

	s.manual = ev.Mode
	s.notify(Notification{Type: NotifyManualMode, Mode: ev.Mode})
	s.record(s.driver.ApplyManual(ctx, ev.Mode, copyPosture(s.current), s.settings.Snapshot()), "manual")
}

func (s *Service) handleTimer(ctx context.Context, ev TimerExpiredEvent) {
	p := ev.Purpose
	if !s.timers.IsCurrent(p, ev.Generation) {
		s.debugLog("service: stale timer expiry dropped", "purpose", p.String())
		return
	}
	s.debugLog("service: timer expired", "purpose", p.String())

	switch p {
	case timers.SensorSuspend:
		if s.hall != 0 {
			return
		}
		if sensors := s.platform.Sensors; sensors != nil {
			sensors.Unregister(platform.SensorPosture)
			sensors.Unregister(platform.SensorHinge)
		}

	case timers.OverlayHide:
		s.driver.HideOverlay()
		if s.sleepAfterOverlay {
			s.sleepAfterOverlay = false
			s.schedule(timers.ScreenOff, s.config.ScreenOffDelay)
		}

	case timers.ScreenOff:
		if pw := s.platform.Power; pw != nil {
			pw.GoToSleep(platform.ReasonPeekTimeout)
		}

	case timers.Reconnect:
		if s.links.Connected() {
			return
		}
		s.recoverLinks(ctx, "retry")
	}
}

// record traces and counts a driver result and keeps the overlay timers in
// step with what the driver did to the overlay.
func (s *Service) record(res composition.Result, trigger string) {
	s.last = res

	hw := plog.HardwareEvent{
		Class:             res.Class.String(),
		Composition:       int32(res.Composition),
		Issued:            res.Issued,
		LauncherRestarted: res.LauncherRestarted,
		Overlay:           res.Overlay.String(),
		Sleep:             res.SleepRequested,
		Trigger:           trigger,
	}
	if res.DeviceStateRequested {
		hw.DeviceState = res.DeviceState.String()
	}
	s.trace.Hardware(hw)

	if res.Issued {
		s.metrics.Applied(res.Class.String(), trigger, int32(res.Composition), res.LauncherRestarted)
		s.notify(Notification{Type: NotifyCompositionApplied, Composition: res.Composition})
	}

	switch res.Overlay {
	case composition.OverlayShown:
		if res.SleepDeferred {
			s.sleepAfterOverlay = true
		}
		s.schedule(timers.OverlayHide, s.config.OverlayHideDelay)
	case composition.OverlayHidden:
		s.sleepAfterOverlay = false
		s.cancelTimer(timers.OverlayHide)
		s.cancelTimer(timers.ScreenOff)
	}
}

func (s *Service) linkStateChanged(link hal.LinkID, oldState, newState hal.State) {
	e := plog.LinkStateEvent{Link: link.String(), OldState: oldState.String(), NewState: newState.String()}
	if link == hal.LinkTouch && newState == hal.StateConnected {
		e.TouchVersion = s.links.TouchVersion().String()
	}
	s.trace.Link(e)
	s.metrics.LinkState(link.String(), newState == hal.StateConnected)

	switch {
	case newState == hal.StateConnected:
		s.notify(Notification{Type: NotifyLinkUp, Link: link})
	case oldState == hal.StateConnected:
		s.notify(Notification{Type: NotifyLinkDown, Link: link})
	}
}

func (s *Service) callFailed(op string, err error) {
	s.metrics.CallError(op)
	s.trace.Error(plog.SourceDriver, err.Error(), op)
}

func (s *Service) rotationFrozen() bool {
	if w := s.platform.Windows; w != nil {
		return w.IsRotationFrozen()
	}
	return false
}

func (s *Service) registerSensors(kinds ...platform.SensorKind) {
	sensors := s.platform.Sensors
	if sensors == nil {
		return
	}
	for _, k := range kinds {
		if err := sensors.Register(k); err != nil {
			s.logWarn("service: sensor registration failed", "sensor", k.String(), "error", err)
		}
	}
}

func (s *Service) schedule(p timers.Purpose, delay time.Duration) {
	if err := s.timers.Schedule(p, delay); err != nil {
		s.logWarn("service: schedule failed", "purpose", p.String(), "delay", delay, "error", err)
	}
}

func (s *Service) cancelTimer(p timers.Purpose) {
	_ = s.timers.Cancel(p)
}

func postureString(p *posture.Posture) string {
	if p == nil {
		return ""
	}
	return p.String()
}
