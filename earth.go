package cellgo

import "fmt"

// EarthRadiusMeters is the radius of the earth in meters, in a spherical
// earth model.
const EarthRadiusMeters = 6371 * 1000

// Length is a distance on the earth's surface in meters.
type Length float64

// EarthDistance converts an angle on the unit sphere to a distance on the
// earth.
func EarthDistance(angle Angle) Length {
	return Length(angle.Radians() * EarthRadiusMeters)
}

// EarthAngle converts a distance on the earth to an angle on the unit
// sphere.
func EarthAngle(meters float64) Angle {
	return Angle(meters / EarthRadiusMeters)
}

// Area is an area on the earth's surface in square meters.
type Area float64

// EarthArea converts an area on the unit sphere to an area on the earth.
func EarthArea(unitSphereArea float64) Area {
	return Area(unitSphereArea * EarthRadiusMeters * EarthRadiusMeters)
}

const (
	km2 = 1000 * 1000
	cm2 = 100 * 100
)

// String formats the length in human-readable units.
func (l Length) String() string {
	switch {
	case l > 1000:
		return fmt.Sprintf("%.3f km", l/1000)
	case l < 1:
		return fmt.Sprintf("%.3f cm", l*100)
	default:
		return fmt.Sprintf("%.3f m", float64(l))
	}
}

// String formats the area in human-readable units.
func (a Area) String() string {
	switch {
	case a > km2:
		return fmt.Sprintf("%.3f km^2", a/km2)
	case a < 1:
		return fmt.Sprintf("%.3f cm^2", a*cm2)
	default:
		return fmt.Sprintf("%.3f m^2", float64(a))
	}
}
