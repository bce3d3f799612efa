package posture

import "fmt"

// Rotation is the display rotation reported alongside a posture.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
	RotationUnknown
)

// DecodeRotation maps a raw rotation code to a Rotation.
// Unmapped codes fall back to R0; decoding never fails.
func DecodeRotation(code int32) Rotation {
	switch code {
	case 0:
		return R0
	case 1:
		return R90
	case 2:
		return R180
	case 3:
		return R270
	default:
		return R0
	}
}

// Code returns the raw rotation code. RotationUnknown encodes as -1.
func (r Rotation) Code() int32 {
	if r >= RotationUnknown {
		return -1
	}
	return int32(r)
}

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	default:
		return "UNKNOWN"
	}
}

// ParseRotation parses "R0".."R270" or a bare angle ("90").
func ParseRotation(s string) (Rotation, error) {
	switch normalizeName(s) {
	case "R0", "0":
		return R0, nil
	case "R90", "90":
		return R90, nil
	case "R180", "180":
		return R180, nil
	case "R270", "270":
		return R270, nil
	}
	return RotationUnknown, fmt.Errorf("unknown rotation %q", s)
}
