package simhw

import (
	"context"
	"sync"

	"github.com/surface-duo/posture-go/pkg/hal"
	"github.com/surface-duo/posture-go/pkg/version"
)

// HAL simulates the two hardware services. It implements hal.Locator.
type HAL struct {
	mu sync.Mutex

	touch     hal.TouchVersion
	down      map[hal.LinkID]bool
	failCalls bool
	lookups   map[hal.LinkID]int

	handles map[hal.LinkID]*handle
	log     callLog
}

var _ hal.Locator = (*HAL)(nil)

// NewHAL creates a simulator with both services running. touch selects the
// installed touch service generation; hal.TouchNone installs none.
func NewHAL(touch hal.TouchVersion) *HAL {
	return &HAL{
		touch:   touch,
		down:    make(map[hal.LinkID]bool),
		lookups: make(map[hal.LinkID]int),
		handles: make(map[hal.LinkID]*handle),
	}
}

// DisplayTopology looks up the display topology service.
func (h *HAL) DisplayTopology(ctx context.Context) (hal.DisplayTopology, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lookups[hal.LinkDisplay]++
	if h.down[hal.LinkDisplay] {
		return nil, ErrServiceDown
	}
	hd := h.newHandleLocked(hal.LinkDisplay, version.DisplayTopologyV1_2)
	return &displayHandle{handle: hd}, nil
}

// TouchPen looks up the touch service for descriptor d. Only the installed
// generation answers.
func (h *HAL) TouchPen(ctx context.Context, d version.Descriptor) (hal.TouchPen, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lookups[hal.LinkTouch]++
	if h.down[hal.LinkTouch] || h.touch == hal.TouchNone {
		return nil, ErrServiceDown
	}
	if h.touch.Descriptor() != d {
		return nil, hal.ErrServiceNotFound
	}
	hd := h.newHandleLocked(hal.LinkTouch, d)
	return &touchHandle{handle: hd}, nil
}

// Kill makes the running service for link die. The service restarts at
// once, so the next lookup succeeds unless the link was stopped with SetDown.
func (h *HAL) Kill(link hal.LinkID) {
	h.mu.Lock()
	hd := h.handles[link]
	delete(h.handles, link)
	h.mu.Unlock()

	if hd != nil {
		hd.die()
	}
}

// SetDown stops or restarts the service for link. Stopping kills the
// current handle.
func (h *HAL) SetDown(link hal.LinkID, down bool) {
	h.mu.Lock()
	h.down[link] = down
	h.mu.Unlock()

	if down {
		h.Kill(link)
	}
}

// SetTouchVersion replaces the installed touch service generation. The
// running handle, if any, keeps its generation until it dies.
func (h *HAL) SetTouchVersion(v hal.TouchVersion) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.touch = v
}

// FailCalls makes every hardware call return ErrCallRejected while set.
func (h *HAL) FailCalls(fail bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failCalls = fail
}

// Lookups returns how many times link was looked up.
func (h *HAL) Lookups(link hal.LinkID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lookups[link]
}

// Calls returns every recorded hardware call.
func (h *HAL) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.log.snapshot()
}

// CallsNamed returns the recorded calls with the given name.
func (h *HAL) CallsNamed(name string) []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.log.named(name)
}

// ResetCalls clears the call record.
func (h *HAL) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log.reset()
}

func (h *HAL) newHandleLocked(link hal.LinkID, d version.Descriptor) *handle {
	hd := &handle{hal: h, link: link, desc: d}
	h.handles[link] = hd
	return hd
}

// invoke records a call made through hd, failing when hd is dead or calls
// are rejected. Calls that fail are still recorded.
func (h *HAL) invoke(hd *handle, name string, args ...any) error {
	dead := hd.isDead()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.log.record(name, args...)
	if dead {
		return ErrServiceDown
	}
	if h.failCalls {
		return ErrCallRejected
	}
	return nil
}

// handle is one connection to a simulated service.
type handle struct {
	hal  *HAL
	link hal.LinkID
	desc version.Descriptor

	mu    sync.Mutex
	dead  bool
	death func()
}

func (hd *handle) Descriptor() version.Descriptor {
	return hd.desc
}

func (hd *handle) LinkToDeath(fn func()) error {
	hd.mu.Lock()
	defer hd.mu.Unlock()
	if hd.dead {
		return ErrServiceDown
	}
	hd.death = fn
	return nil
}

func (hd *handle) UnlinkToDeath() {
	hd.mu.Lock()
	defer hd.mu.Unlock()
	hd.death = nil
}

func (hd *handle) isDead() bool {
	hd.mu.Lock()
	defer hd.mu.Unlock()
	return hd.dead
}

// die marks the handle dead and delivers the death notice on the caller's
// goroutine.
func (hd *handle) die() {
	hd.mu.Lock()
	if hd.dead {
		hd.mu.Unlock()
		return
	}
	hd.dead = true
	fn := hd.death
	hd.death = nil
	hd.mu.Unlock()

	if fn != nil {
		fn()
	}
}

type displayHandle struct {
	*handle
}

func (d *displayHandle) SetComposition(id int32) error {
	return d.hal.invoke(d.handle, "display.SetComposition", id)
}

type touchHandle struct {
	*handle
}

func (t *touchHandle) SetDisplayState(id int32) error {
	return t.hal.invoke(t.handle, "touch.SetDisplayState", id)
}

func (t *touchHandle) HingeAngle(angle int32) error {
	return t.hal.invoke(t.handle, "touch.HingeAngle", angle)
}
