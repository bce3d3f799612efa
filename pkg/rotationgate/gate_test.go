package rotationgate

import (
	"testing"

	"github.com/surface-duo/posture-go/pkg/posture"
)

func ptr(p posture.Posture) *posture.Posture { return &p }

var (
	book       = posture.New(posture.Book, posture.R0)
	brochureR  = posture.New(posture.BrochureRight, posture.R0)
	tentRight  = posture.New(posture.TentRight, posture.R90)
	paletteR90 = posture.New(posture.Palette, posture.R90)
)

func TestEvaluate_UnlockedCommitsImmediately(t *testing.T) {
	commit, pending := Evaluate(ptr(book), tentRight, false)
	if commit != tentRight {
		t.Errorf("commit = %v, want %v", commit, tentRight)
	}
	if pending != nil {
		t.Errorf("pending = %v, want nil", *pending)
	}
}

func TestEvaluate_LockedSameOrientation(t *testing.T) {
	commit, pending := Evaluate(ptr(book), brochureR, true)
	if commit != brochureR || pending != nil {
		t.Errorf("Evaluate = %v, %v; want immediate commit", commit, pending)
	}
}

func TestEvaluate_LockedOrientationChange(t *testing.T) {
	commit, pending := Evaluate(ptr(book), tentRight, true)
	if commit != tentRight {
		t.Errorf("commit = %v, want %v", commit, tentRight)
	}
	if pending == nil || *pending != tentRight {
		t.Fatalf("pending = %v, want %v", pending, tentRight)
	}
}

func TestEvaluate_NoCurrent(t *testing.T) {
	commit, pending := Evaluate(nil, tentRight, true)
	if commit != tentRight || pending != nil {
		t.Errorf("Evaluate(nil) = %v, %v", commit, pending)
	}
}

func TestGate_PromoteOnMatchingRotation(t *testing.T) {
	g := New()
	var parked []posture.Posture
	g.OnPending(func(p posture.Posture) { parked = append(parked, p) })

	g.Commit(ptr(book), tentRight, true)
	if len(parked) != 1 {
		t.Fatalf("OnPending called %d times, want 1", len(parked))
	}

	// Wrong rotation leaves the pending posture parked.
	if _, ok := g.OnRotationChanged(posture.R180, true); ok {
		t.Error("promoted on mismatched rotation")
	}
	if g.Pending() == nil {
		t.Fatal("pending dropped on mismatched rotation")
	}

	// Rotation unfrozen: not promoted.
	if _, ok := g.OnRotationChanged(posture.R90, false); ok {
		t.Error("promoted while rotation not frozen")
	}

	p, ok := g.OnRotationChanged(posture.R90, true)
	if !ok || p != tentRight {
		t.Errorf("OnRotationChanged = %v, %v; want %v, true", p, ok, tentRight)
	}
	if g.Pending() != nil {
		t.Error("pending not cleared after promotion")
	}
	if _, ok := g.OnRotationChanged(posture.R90, true); ok {
		t.Error("promoted twice")
	}
}

func TestGate_NewPostureSupersedesPending(t *testing.T) {
	g := New()
	g.Commit(ptr(book), tentRight, true)

	// Same-orientation commit clears the slot.
	g.Commit(ptr(tentRight), paletteR90, true)
	if g.Pending() != nil {
		t.Fatal("pending survived a newer posture")
	}
	if _, ok := g.OnRotationChanged(posture.R90, true); ok {
		t.Error("superseded posture was promoted")
	}
}

func TestGate_LastWriteWins(t *testing.T) {
	g := New()
	g.Commit(ptr(book), tentRight, true)

	flipL := posture.New(posture.FlipLandscapeLeft, posture.R270)
	g.Commit(ptr(book), flipL, true)

	got := g.Pending()
	if got == nil || *got != flipL {
		t.Fatalf("Pending() = %v, want %v", got, flipL)
	}
	g.Supersede()
	if g.Pending() != nil {
		t.Error("Supersede did not clear the slot")
	}
}
