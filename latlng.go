package cellgo

import (
	"fmt"
	"math"
)

// LatLng represents a point on the sphere as a latitude/longitude pair.
type LatLng struct {
	Lat, Lng Angle
}

// LatLngFromDegrees returns a LatLng for the given coordinates in degrees.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{AngleFromDegrees(lat), AngleFromDegrees(lng)}
}

// LatLngFromPoint returns the latitude/longitude of a unit Point.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{
		Lat: Angle(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))),
		Lng: Angle(math.Atan2(p.Y, p.X)),
	}
}

// IsValid reports whether the latitude is in [-90°, 90°] and the longitude
// in [-180°, 180°].
func (ll LatLng) IsValid() bool {
	return ll.Lat.Abs() <= math.Pi/2 && ll.Lng.Abs() <= math.Pi
}

// Normalized returns the closest valid LatLng, clamping the latitude and
// wrapping the longitude.
func (ll LatLng) Normalized() LatLng {
	lat := ll.Lat
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	lng := Angle(math.Remainder(ll.Lng.Radians(), 2*math.Pi))
	return LatLng{lat, lng}
}

// Distance returns the great-circle angle between ll and other.
//
// The haversine formulation keeps the result accurate for both small
// distances and nearly antipodal pairs.
func (ll LatLng) Distance(other LatLng) Angle {
	lat1, lat2 := ll.Lat.Radians(), other.Lat.Radians()
	dlat := math.Sin(0.5 * (lat2 - lat1))
	dlng := math.Sin(0.5 * (other.Lng - ll.Lng).Radians())
	x := dlat*dlat + dlng*dlng*math.Cos(lat1)*math.Cos(lat2)
	return Angle(2 * math.Asin(math.Sqrt(math.Min(1, x))))
}

func (ll LatLng) String() string {
	return fmt.Sprintf("[%.7f, %.7f]", ll.Lat.Degrees(), ll.Lng.Degrees())
}
