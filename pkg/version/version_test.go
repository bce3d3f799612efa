package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.3", 1, 3},
		{"2.0", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestParseDescriptor(t *testing.T) {
	d, err := ParseDescriptor("vendor.surface.touchpen@1.3::ITouchPen")
	if err != nil {
		t.Fatalf("ParseDescriptor error: %v", err)
	}
	if d != TouchPenV1_3 {
		t.Errorf("ParseDescriptor = %+v, want %+v", d, TouchPenV1_3)
	}
	if d.String() != "vendor.surface.touchpen@1.3::ITouchPen" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{
		"",
		"@1.0::ITouchPen",
		"vendor.surface.touchpen::ITouchPen",
		"vendor.surface.touchpen@1::ITouchPen",
		"vendor.surface.touchpen@1.0::",
		"vendor.surface.touchpen@1.0",
	} {
		if _, err := ParseDescriptor(bad); err == nil {
			t.Errorf("ParseDescriptor(%q) should fail", bad)
		}
	}
}

func TestTouchGeneration(t *testing.T) {
	tests := []struct {
		desc Descriptor
		want int
	}{
		{TouchPenV1_0, 1},
		{TouchPenV1_3, 2},
		{Descriptor{TouchPenPackage, HALVersion{1, 4}, TouchPenInterface}, 2},
		{Descriptor{TouchPenPackage, HALVersion{1, 2}, TouchPenInterface}, 1},
		{Descriptor{TouchPenPackage, HALVersion{2, 0}, TouchPenInterface}, 0},
		{DisplayTopologyV1_2, 0},
	}
	for _, tt := range tests {
		if got := TouchGeneration(tt.desc); got != tt.want {
			t.Errorf("TouchGeneration(%s) = %d, want %d", tt.desc, got, tt.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	if !MustParse("1.0").Compatible(MustParse("1.3")) {
		t.Error("1.0 should be compatible with 1.3")
	}
	if MustParse("1.3").AtLeast(MustParse("2.0")) {
		t.Error("1.3 is not at least 2.0")
	}
}
