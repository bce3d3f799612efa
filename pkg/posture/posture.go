package posture

import "strings"

// Posture is the unit the state machine reasons about. It is compared by
// value.
type Posture struct {
	Value    Value
	Rotation Rotation
}

// New returns a posture with the given value and rotation.
func New(v Value, r Rotation) Posture {
	return Posture{Value: v, Rotation: r}
}

// FromCodes decodes a raw sensor reading.
func FromCodes(code float32, rotationCode int32) (Posture, error) {
	v, err := Decode(code)
	if err != nil {
		return Posture{}, err
	}
	return Posture{Value: v, Rotation: DecodeRotation(rotationCode)}, nil
}

// Class returns the posture class of the value.
func (p Posture) Class() Class {
	return Classify(p.Value)
}

// String returns "VALUE@ROTATION".
func (p Posture) String() string {
	return p.Value.String() + "@" + p.Rotation.String()
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
}
