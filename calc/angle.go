package calc

import (
	"fmt"
	"math"
	"strings"
)

// AngleMode selects how trigonometric functions interpret their arguments and results.
type AngleMode uint8

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// ToRadians converts a trigonometric argument given in m to radians.
func (m AngleMode) ToRadians(x float64) float64 {
	if m == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// FromRadians converts an inverse-trigonometric result from radians to m.
func (m AngleMode) FromRadians(x float64) float64 {
	if m == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

// ParseAngleMode accepts deg, degrees, rad and radians in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("unknown angle mode %q", s)
	}
}
