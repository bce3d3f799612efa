package hal

import "github.com/surface-duo/posture-go/pkg/version"

// TouchVersion identifies the touch service generation.
type TouchVersion uint8

const (
	// TouchNone means no touch service is connected.
	TouchNone TouchVersion = iota

	// TouchV1 is the original touchpen interface.
	TouchV1

	// TouchV2 is the touchpen 1.3 interface shipped on second generation hardware.
	TouchV2
)

// String returns a human-readable version name.
func (v TouchVersion) String() string {
	switch v {
	case TouchNone:
		return "NONE"
	case TouchV1:
		return "V1"
	case TouchV2:
		return "V2"
	default:
		return "UNKNOWN"
	}
}

// Descriptor returns the HAL descriptor looked up for this generation.
func (v TouchVersion) Descriptor() version.Descriptor {
	switch v {
	case TouchV1:
		return version.TouchPenV1_0
	case TouchV2:
		return version.TouchPenV1_3
	default:
		return version.Descriptor{}
	}
}

// touchVersionOf maps a descriptor reported by a service to its generation.
func touchVersionOf(d version.Descriptor) TouchVersion {
	switch version.TouchGeneration(d) {
	case 2:
		return TouchV2
	case 1:
		return TouchV1
	default:
		return TouchNone
	}
}

// TouchLink is a connected touch service of a specific generation.
// The set of implementations is closed: touchV1 and touchV2.
type TouchLink interface {
	Version() TouchVersion
	SetDisplayState(state int32) error
	HingeAngle(angle int32) error

	binder() Binder
}

type touchV1 struct {
	pen TouchPen
}

func (t *touchV1) Version() TouchVersion { return TouchV1 }

func (t *touchV1) SetDisplayState(state int32) error {
	return guard(LinkTouch, "SetDisplayState", func() error { return t.pen.SetDisplayState(state) })
}

func (t *touchV1) HingeAngle(angle int32) error {
	return guard(LinkTouch, "HingeAngle", func() error { return t.pen.HingeAngle(angle) })
}

func (t *touchV1) binder() Binder { return t.pen }

type touchV2 struct {
	pen TouchPen
}

func (t *touchV2) Version() TouchVersion { return TouchV2 }

func (t *touchV2) SetDisplayState(state int32) error {
	return guard(LinkTouch, "SetDisplayState", func() error { return t.pen.SetDisplayState(state) })
}

func (t *touchV2) HingeAngle(angle int32) error {
	return guard(LinkTouch, "HingeAngle", func() error { return t.pen.HingeAngle(angle) })
}

func (t *touchV2) binder() Binder { return t.pen }

// newTouchLink wraps pen for the generation it was looked up as. A service
// that reports a different generation than requested is rejected.
func newTouchLink(requested TouchVersion, pen TouchPen) (TouchLink, bool) {
	if got := touchVersionOf(pen.Descriptor()); got != requested {
		return nil, false
	}
	switch requested {
	case TouchV1:
		return &touchV1{pen: pen}, true
	case TouchV2:
		return &touchV2{pen: pen}, true
	default:
		return nil, false
	}
}
