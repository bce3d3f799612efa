package service

import (
	"context"
	"time"

	"github.com/surface-duo/posture-go/pkg/composition"
	"github.com/surface-duo/posture-go/pkg/hal"
)

// LinkManager is the hardware link manager as seen by the service.
// *hal.Manager implements it.
type LinkManager interface {
	composition.HardwareLink

	// Reconnect drops and re-establishes both links, reporting whether
	// both came up.
	Reconnect(ctx context.Context) bool

	// NextRetryDelay returns the next backoff delay for a reconnect retry.
	NextRetryDelay() time.Duration

	Connected() bool
	State(link hal.LinkID) hal.State
	TouchVersion() hal.TouchVersion

	OnDeath(fn func(link hal.LinkID))
	OnStateChange(fn func(link hal.LinkID, oldState, newState hal.State))

	Release()
}

var _ LinkManager = (*hal.Manager)(nil)
