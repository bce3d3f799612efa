package simhw

import "errors"

// Simulator errors.
var (
	// ErrServiceDown is returned by calls on a handle whose service died, and
	// by lookups while a service is stopped.
	ErrServiceDown = errors.New("service not running")

	// ErrCallRejected is returned by hardware calls while call failures are
	// injected.
	ErrCallRejected = errors.New("call rejected")
)
