package hal

import (
	"errors"
	"fmt"
)

// HAL errors.
var (
	// ErrHardwareUnavailable is returned when a call targets a link that is
	// not connected.
	ErrHardwareUnavailable = errors.New("hardware link unavailable")

	// ErrServiceNotFound is returned by a Locator when the requested
	// service is not registered.
	ErrServiceNotFound = errors.New("hal service not found")

	// ErrRateLimited is reported when a connect attempt was skipped by the
	// attempt limiter.
	ErrRateLimited = errors.New("connect attempt rate limited")
)

// CallError describes a failed call on a hardware link.
type CallError struct {
	Link LinkID
	Call string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("hal %s.%s: %v", e.Link, e.Call, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// guard runs a hardware call and converts both returned errors and panics
// raised by the service binding into a *CallError.
func guard(link LinkID, call string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallError{Link: link, Call: call, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if callErr := fn(); callErr != nil {
		return &CallError{Link: link, Call: call, Err: callErr}
	}
	return nil
}
