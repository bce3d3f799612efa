// Package lockpolicy decides which posture becomes current when a new sensor
// reading arrives, honoring the user's single-screen side lock.
package lockpolicy

import (
	"fmt"
	"strings"

	"github.com/surface-duo/posture-go/pkg/posture"
)

// LockMode constrains which panel single-screen postures resolve to.
type LockMode uint8

const (
	// Dynamic trusts the raw classification with no side bias.
	Dynamic LockMode = iota
	// LockRight forces single-screen postures onto the right panel.
	LockRight
	// LockLeft forces single-screen postures onto the left panel.
	LockLeft
)

// ModeFromInt decodes the persisted integer setting. Unknown values fall back
// to Dynamic.
func ModeFromInt(v int) LockMode {
	switch v {
	case 1:
		return LockRight
	case 2:
		return LockLeft
	default:
		return Dynamic
	}
}

// ParseMode parses "dynamic", "right" or "left".
func ParseMode(s string) (LockMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dynamic", "0":
		return Dynamic, nil
	case "right", "lock-right", "1":
		return LockRight, nil
	case "left", "lock-left", "2":
		return LockLeft, nil
	}
	return Dynamic, fmt.Errorf("unknown lock mode %q", s)
}

// String returns the mode name.
func (m LockMode) String() string {
	switch m {
	case Dynamic:
		return "DYNAMIC"
	case LockRight:
		return "LOCK_RIGHT"
	case LockLeft:
		return "LOCK_LEFT"
	default:
		return "UNKNOWN"
	}
}

// Outcome describes how a candidate posture was handled.
type Outcome uint8

const (
	// OutcomeInitial - no current posture, candidate committed.
	OutcomeInitial Outcome = iota
	// OutcomeClosedOverride - current or candidate is Closed, candidate committed.
	OutcomeClosedOverride
	// OutcomeUnchanged - candidate equals current.
	OutcomeUnchanged
	// OutcomeAccepted - candidate accepted as-is.
	OutcomeAccepted
	// OutcomeRemapped - candidate mirrored onto the locked side.
	OutcomeRemapped
	// OutcomeRejected - candidate dropped, current kept.
	OutcomeRejected
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInitial:
		return "INITIAL"
	case OutcomeClosedOverride:
		return "CLOSED_OVERRIDE"
	case OutcomeUnchanged:
		return "UNCHANGED"
	case OutcomeAccepted:
		return "ACCEPTED"
	case OutcomeRemapped:
		return "REMAPPED"
	case OutcomeRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Gated reports whether the resolved posture must pass through the rotation
// gate before it is committed.
func (o Outcome) Gated() bool {
	return o == OutcomeAccepted || o == OutcomeRemapped
}

// Resolution is the result of Resolve.
type Resolution struct {
	Posture posture.Posture
	Outcome Outcome
}

// Resolve returns the posture that should become current when candidate
// arrives while current is committed. A nil current means nothing has been
// committed yet. Resolve never fails; ambiguous cases commit the candidate.
func Resolve(current *posture.Posture, candidate posture.Posture, mode LockMode) Resolution {
	if current == nil {
		return Resolution{Posture: candidate, Outcome: OutcomeInitial}
	}

	// Closed absorbs in both directions.
	if current.Value == posture.Closed || candidate.Value == posture.Closed {
		return Resolution{Posture: candidate, Outcome: OutcomeClosedOverride}
	}

	if *current == candidate {
		return Resolution{Posture: *current, Outcome: OutcomeUnchanged}
	}

	switch mode {
	case LockRight:
		return resolveLocked(*current, candidate, true)
	case LockLeft:
		return resolveLocked(*current, candidate, false)
	default:
		return Resolution{Posture: candidate, Outcome: OutcomeAccepted}
	}
}

func resolveLocked(current, candidate posture.Posture, right bool) Resolution {
	side := posture.ClassSingleLeft
	if right {
		side = posture.ClassSingleRight
	}

	// A locked single-screen posture only leaves through its own side or a
	// dual-screen posture.
	if current.Class().IsSingleScreen() {
		c := candidate.Class()
		if c == side || c == posture.ClassTablet {
			return Resolution{Posture: candidate, Outcome: OutcomeAccepted}
		}
		return Resolution{Posture: current, Outcome: OutcomeRejected}
	}

	if candidate.Class() == side {
		return Resolution{Posture: candidate, Outcome: OutcomeAccepted}
	}

	mirrored := posture.Posture{
		Value:    posture.Mirror(candidate.Value, right),
		Rotation: candidate.Rotation,
	}
	if mirrored == candidate {
		return Resolution{Posture: candidate, Outcome: OutcomeAccepted}
	}
	return Resolution{Posture: mirrored, Outcome: OutcomeRemapped}
}
