package cellgo

import "math"

// Point is a point on the unit sphere, represented as a 3D vector.
//
// Points returned by this package are unit length. The vector operations do
// not renormalize; callers composing long chains of arithmetic should call
// Normalize before comparing angles.
type Point struct {
	X, Y, Z float64
}

// PointFromLatLng converts a latitude/longitude pair to a unit Point.
func PointFromLatLng(ll LatLng) Point {
	phi := ll.Lat.Radians()
	theta := ll.Lng.Radians()
	cosphi := math.Cos(phi)
	return Point{
		X: math.Cos(theta) * cosphi,
		Y: math.Sin(theta) * cosphi,
		Z: math.Sin(phi),
	}
}

// Add returns the component-wise sum p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Mul returns p scaled by m.
func (p Point) Mul(m float64) Point {
	return Point{m * p.X, m * p.Y, m * p.Z}
}

// Dot returns the dot product p · o.
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Cross returns the cross product p × o.
func (p Point) Cross(o Point) Point {
	return Point{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

// Norm returns the vector's length.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns a unit vector in the same direction as p, or the zero
// vector if p is zero.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return Point{}
	}
	return p.Mul(1 / n)
}

// Angle returns the angle between p and o.
//
// This formulation is numerically stable for both nearly parallel and nearly
// antipodal inputs, unlike acos of the dot product.
func (p Point) Angle(o Point) Angle {
	return Angle(math.Atan2(p.Cross(o).Norm(), p.Dot(o)))
}

// ApproxEqual reports whether p and o are within 1e-14 radians of each other.
func (p Point) ApproxEqual(o Point) bool {
	return p.Angle(o) <= 1e-14
}
