package posture

// Class is the derived composition-relevant category of a posture value.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassTablet
	ClassSingleLeft
	ClassSingleRight
	ClassClosed
	ClassPeekLeft
	ClassPeekRight
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassTablet:
		return "TABLET"
	case ClassSingleLeft:
		return "SINGLE_LEFT"
	case ClassSingleRight:
		return "SINGLE_RIGHT"
	case ClassClosed:
		return "CLOSED"
	case ClassPeekLeft:
		return "PEEK_LEFT"
	case ClassPeekRight:
		return "PEEK_RIGHT"
	default:
		return "UNKNOWN"
	}
}

// IsSingleScreen reports whether the class drives exactly one panel.
func (c Class) IsSingleScreen() bool {
	return c == ClassSingleLeft || c == ClassSingleRight
}

// Classify returns the class of a posture value.
func Classify(v Value) Class {
	switch v {
	case Book, Palette, FlatDualPortrait, FlatDualLandscape:
		return ClassTablet
	case BrochureLeft, TentLeft, FlipPortraitLeft, FlipLandscapeLeft, RampLeft:
		return ClassSingleLeft
	case BrochureRight, TentRight, FlipPortraitRight, FlipLandscapeRight, RampRight:
		return ClassSingleRight
	case Closed:
		return ClassClosed
	case PeekLeft:
		return ClassPeekLeft
	case PeekRight:
		return ClassPeekRight
	default:
		return ClassUnknown
	}
}

// IsPortrait reports whether the posture value is held in portrait.
func IsPortrait(v Value) bool {
	switch v {
	case Book, FlatDualPortrait, PeekLeft, PeekRight,
		BrochureRight, FlipPortraitRight, BrochureLeft, FlipPortraitLeft:
		return true
	default:
		return false
	}
}

// IsLeftSided reports whether the value is a single-screen posture on the left panel.
func IsLeftSided(v Value) bool {
	return Classify(v) == ClassSingleLeft
}

// IsRightSided reports whether the value is a single-screen posture on the right panel.
func IsRightSided(v Value) bool {
	return Classify(v) == ClassSingleRight
}

// IsDualScreen reports whether the value spans both panels.
func IsDualScreen(v Value) bool {
	return Classify(v) == ClassTablet
}

// Mirror maps a single-screen posture to its equivalent on the requested
// side. Values that are already on that side, and all non single-screen
// values, are returned unchanged.
func Mirror(v Value, toRight bool) Value {
	if toRight {
		switch v {
		case BrochureLeft:
			return BrochureRight
		case TentLeft:
			return TentRight
		case FlipPortraitLeft:
			return FlipPortraitRight
		case FlipLandscapeLeft:
			return FlipLandscapeRight
		case RampLeft:
			return RampRight
		}
		return v
	}

	switch v {
	case BrochureRight:
		return BrochureLeft
	case TentRight:
		return TentLeft
	case FlipPortraitRight:
		return FlipPortraitLeft
	case FlipLandscapeRight:
		return FlipLandscapeLeft
	case RampRight:
		return RampLeft
	}
	return v
}
