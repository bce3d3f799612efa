// Package rotationgate defers posture confirmation while display rotation is
// frozen and the orientation class is about to change.
//
// The posture sensor and the rotation sensor deliver independently. When the
// user has frozen rotation, a posture that flips orientation class
// (portrait to landscape or back) is committed right away so the composition
// follows it, and is also parked as pending. A later rotation-changed
// notification that reports the pending rotation while rotation is still
// frozen promotes the pending posture and the caller reprocesses it. Any newer
// posture supersedes the pending one; it is never retried from the rotation
// callback again.
package rotationgate

import (
	"sync"

	"github.com/surface-duo/posture-go/pkg/posture"
)

// Evaluate returns the posture to commit and the posture to park as pending
// (nil if none).
func Evaluate(current *posture.Posture, resolved posture.Posture, rotationLocked bool) (posture.Posture, *posture.Posture) {
	if !rotationLocked || current == nil {
		return resolved, nil
	}
	if posture.IsPortrait(current.Value) == posture.IsPortrait(resolved.Value) {
		return resolved, nil
	}
	pending := resolved
	return resolved, &pending
}

// Gate holds at most one pending posture.
type Gate struct {
	mu      sync.Mutex
	pending *posture.Posture

	onPending func(p posture.Posture)
}

// New creates an empty gate.
func New() *Gate {
	return &Gate{}
}

// Commit evaluates resolved against current and replaces the pending slot
// with the result. It returns the posture to commit.
func (g *Gate) Commit(current *posture.Posture, resolved posture.Posture, rotationLocked bool) posture.Posture {
	commit, pending := Evaluate(current, resolved, rotationLocked)

	g.mu.Lock()
	g.pending = pending
	fn := g.onPending
	g.mu.Unlock()

	if pending != nil && fn != nil {
		fn(*pending)
	}
	return commit
}

// Supersede drops the pending posture without evaluating anything.
func (g *Gate) Supersede() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
}

// OnRotationChanged promotes the pending posture when the reported rotation
// matches it and rotation is still frozen. ok is false when nothing was
// promoted; in that case the pending posture stays until superseded.
func (g *Gate) OnRotationChanged(rotation posture.Rotation, frozen bool) (promoted posture.Posture, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil || !frozen || g.pending.Rotation != rotation {
		return posture.Posture{}, false
	}
	promoted = *g.pending
	g.pending = nil
	return promoted, true
}

// Pending returns a copy of the pending posture, or nil.
func (g *Gate) Pending() *posture.Posture {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return nil
	}
	p := *g.pending
	return &p
}

// OnPending sets a callback invoked whenever a posture is parked.
func (g *Gate) OnPending(fn func(p posture.Posture)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onPending = fn
}
