// Package version parses HAL interface versions and descriptors.
//
// HAL services are addressed by fully-qualified descriptors of the form
//
//	vendor.surface.touchpen@1.3::ITouchPen
//
// The touch panel exposes two incompatible interface generations. Versions
// with the same major number and a minor number at or above a known minimum
// are treated as compatible with that generation.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the version of this posture service.
const Current = "1.0"

// Known HAL packages and interfaces.
const (
	DisplayTopologyPackage = "vendor.surface.displaytopology"
	TouchPenPackage        = "vendor.surface.touchpen"

	DisplayTopologyInterface = "IDisplayTopology"
	TouchPenInterface        = "ITouchPen"
)

// HALVersion represents a parsed "major.minor" interface version.
type HALVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (HALVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return HALVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return HALVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return HALVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return HALVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) HALVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v HALVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v HALVersion) Compatible(other HALVersion) bool {
	return v.Major == other.Major
}

// AtLeast returns true if v is the same major version as min and its minor
// version is not lower.
func (v HALVersion) AtLeast(min HALVersion) bool {
	return v.Major == min.Major && v.Minor >= min.Minor
}

// Descriptor identifies a HAL interface.
type Descriptor struct {
	Package   string
	Version   HALVersion
	Interface string
}

// ParseDescriptor parses "package@major.minor::Interface".
func ParseDescriptor(s string) (Descriptor, error) {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return Descriptor{}, fmt.Errorf("invalid HAL descriptor %q: missing package", s)
	}
	rest := s[at+1:]

	sep := strings.Index(rest, "::")
	if sep < 0 {
		return Descriptor{}, fmt.Errorf("invalid HAL descriptor %q: missing interface", s)
	}

	v, err := Parse(rest[:sep])
	if err != nil {
		return Descriptor{}, fmt.Errorf("invalid HAL descriptor %q: %w", s, err)
	}

	iface := rest[sep+2:]
	if iface == "" {
		return Descriptor{}, fmt.Errorf("invalid HAL descriptor %q: empty interface", s)
	}

	return Descriptor{Package: s[:at], Version: v, Interface: iface}, nil
}

// String returns the fully-qualified descriptor.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%s::%s", d.Package, d.Version, d.Interface)
}

// Well-known descriptors.
var (
	DisplayTopologyV1_2 = Descriptor{DisplayTopologyPackage, HALVersion{1, 2}, DisplayTopologyInterface}
	TouchPenV1_0        = Descriptor{TouchPenPackage, HALVersion{1, 0}, TouchPenInterface}
	TouchPenV1_3        = Descriptor{TouchPenPackage, HALVersion{1, 3}, TouchPenInterface}
)

// TouchGeneration reports which touch protocol generation a descriptor
// speaks: 2 for 1.3 and later, 1 for older 1.x, 0 for anything else.
func TouchGeneration(d Descriptor) int {
	if d.Package != TouchPenPackage || d.Interface != TouchPenInterface {
		return 0
	}
	if d.Version.AtLeast(TouchPenV1_3.Version) {
		return 2
	}
	if d.Version.Compatible(TouchPenV1_0.Version) {
		return 1
	}
	return 0
}
