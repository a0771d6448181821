package cellgo

import (
	"fmt"
	"math"
)

// Cap is a spherical cap: the portion of the sphere within a given opening
// angle of a center point. A negative radius denotes the empty cap and a
// radius of π (or more) the full sphere.
type Cap struct {
	Center Point
	Radius Angle
}

// EmptyCap returns a cap containing no points.
func EmptyCap() Cap {
	return Cap{Center: Point{X: 1}, Radius: -1}
}

// FullCap returns a cap containing the whole sphere.
func FullCap() Cap {
	return Cap{Center: Point{X: 1}, Radius: math.Pi}
}

// CapFromPoint returns a degenerate cap containing just p.
func CapFromPoint(p Point) Cap {
	return Cap{Center: p, Radius: 0}
}

// CapFromCenterAngle returns a cap with the given center and opening angle.
func CapFromCenterAngle(center Point, radius Angle) Cap {
	return Cap{Center: center, Radius: radius}
}

// IsEmpty reports whether the cap contains no points.
func (c Cap) IsEmpty() bool { return c.Radius < 0 }

// IsFull reports whether the cap contains the whole sphere.
func (c Cap) IsFull() bool { return c.Radius >= math.Pi }

// ContainsPoint reports whether the cap contains the unit point p.
func (c Cap) ContainsPoint(p Point) bool {
	return c.Center.Angle(p) <= c.Radius
}

// ContainsCap reports whether the cap contains every point of other.
func (c Cap) ContainsCap(other Cap) bool {
	if other.IsEmpty() {
		return true
	}
	if c.IsFull() {
		return true
	}
	return c.Center.Angle(other.Center)+other.Radius <= c.Radius
}

// Intersects reports whether the caps share any points.
func (c Cap) Intersects(other Cap) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	return c.Center.Angle(other.Center) <= c.Radius+other.Radius
}

// AddPoint returns the cap expanded to contain p. The center does not move.
func (c Cap) AddPoint(p Point) Cap {
	if c.IsEmpty() {
		return CapFromPoint(p)
	}
	if d := c.Center.Angle(p); d > c.Radius {
		return Cap{Center: c.Center, Radius: d}
	}
	return c
}

// AddCap returns the cap expanded to contain all of other. The center does
// not move.
func (c Cap) AddCap(other Cap) Cap {
	if other.IsEmpty() {
		return c
	}
	if c.IsEmpty() {
		return other
	}
	needed := c.Center.Angle(other.Center) + other.Radius
	if needed > c.Radius {
		return Cap{Center: c.Center, Radius: Angle(math.Min(float64(needed), math.Pi))}
	}
	return c
}

// Expanded returns the cap with its radius grown by distance.
func (c Cap) Expanded(distance Angle) Cap {
	if c.IsEmpty() {
		return c
	}
	return Cap{Center: c.Center, Radius: Angle(math.Min(float64(c.Radius+distance), math.Pi))}
}

func (c Cap) String() string {
	return fmt.Sprintf("[Center=%v, Radius=%v]", c.Center, c.Radius)
}
