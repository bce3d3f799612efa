package posture

import (
	"errors"
	"fmt"
)

// ErrUnknownPostureCode is returned when a raw sensor code matches no posture.
var ErrUnknownPostureCode = errors.New("unknown posture code")

// UnknownCodeError carries the raw code that failed to decode.
type UnknownCodeError struct {
	Code float32
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnknownPostureCode, e.Code)
}

// Is reports whether target is ErrUnknownPostureCode.
func (e *UnknownCodeError) Is(target error) bool {
	return target == ErrUnknownPostureCode
}

// Value is a discrete posture sensor state.
type Value uint8

// Posture values in sensor code order.
const (
	Closed Value = iota
	PeekRight
	PeekLeft
	Book
	Palette
	FlatDualPortrait
	FlatDualLandscape
	BrochureRight
	TentRight
	FlipPortraitRight
	FlipLandscapeRight
	FlipPortraitLeft
	FlipLandscapeLeft
	BrochureLeft
	TentLeft
	RampRight
	RampLeft

	valueCount
)

// Values returns all posture values in code order.
func Values() []Value {
	vals := make([]Value, 0, valueCount)
	for v := Closed; v < valueCount; v++ {
		vals = append(vals, v)
	}
	return vals
}

// Decode maps a raw sensor code to a posture value by exact match.
func Decode(code float32) (Value, error) {
	for v := Closed; v < valueCount; v++ {
		if v.Code() == code {
			return v, nil
		}
	}
	return 0, &UnknownCodeError{Code: code}
}

// Code returns the raw sensor code of the value.
func (v Value) Code() float32 {
	return float32(v)
}

// Valid reports whether v is one of the defined posture values.
func (v Value) Valid() bool {
	return v < valueCount
}

// String returns the posture name.
func (v Value) String() string {
	switch v {
	case Closed:
		return "CLOSED"
	case PeekRight:
		return "PEEK_RIGHT"
	case PeekLeft:
		return "PEEK_LEFT"
	case Book:
		return "BOOK"
	case Palette:
		return "PALETTE"
	case FlatDualPortrait:
		return "FLAT_DUAL_PORTRAIT"
	case FlatDualLandscape:
		return "FLAT_DUAL_LANDSCAPE"
	case BrochureRight:
		return "BROCHURE_RIGHT"
	case TentRight:
		return "TENT_RIGHT"
	case FlipPortraitRight:
		return "FLIP_PORTRAIT_RIGHT"
	case FlipLandscapeRight:
		return "FLIP_LANDSCAPE_RIGHT"
	case FlipPortraitLeft:
		return "FLIP_PORTRAIT_LEFT"
	case FlipLandscapeLeft:
		return "FLIP_LANDSCAPE_LEFT"
	case BrochureLeft:
		return "BROCHURE_LEFT"
	case TentLeft:
		return "TENT_LEFT"
	case RampRight:
		return "RAMP_RIGHT"
	case RampLeft:
		return "RAMP_LEFT"
	default:
		return "UNKNOWN"
	}
}

// ParseValue parses a posture name as produced by String. Matching is
// case-insensitive and accepts '-' in place of '_'.
func ParseValue(s string) (Value, error) {
	name := normalizeName(s)
	for v := Closed; v < valueCount; v++ {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown posture name %q", s)
}
