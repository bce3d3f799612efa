// Package posture defines the fold sensor vocabulary of a dual-screen device.
//
// The posture sensor reports a raw float code for the physical shape of the
// device (book, tent, brochure, ...) and, optionally, an integer rotation
// code. This package decodes both into closed enumerations and provides the
// classification predicates the rest of the stack reasons about.
//
// # Classification
//
//	Tablet      Book, Palette, FlatDualPortrait, FlatDualLandscape
//	SingleLeft  BrochureLeft, TentLeft, FlipPortraitLeft, FlipLandscapeLeft, RampLeft
//	SingleRight BrochureRight, TentRight, FlipPortraitRight, FlipLandscapeRight, RampRight
//	Closed      Closed
//	PeekLeft    PeekLeft
//	PeekRight   PeekRight
//
// All functions in this package are pure.
package posture
