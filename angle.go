package cellgo

import (
	"fmt"
	"math"
)

// Angle represents a 1D angle in radians.
type Angle float64

// Angle units.
const (
	Radian Angle = 1
	Degree       = Radian * math.Pi / 180
)

// AngleFromDegrees returns an Angle for the given number of degrees.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg) * Degree
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a / Degree) }

// Abs returns the absolute value of the angle.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

func (a Angle) String() string {
	return fmt.Sprintf("%.7f", a.Degrees())
}
