package cellgo

import (
	"fmt"
	"math"
)

// Rect is a latitude/longitude rectangle: the product of a latitude interval
// and a (possibly wrapping) longitude interval, both in radians.
type Rect struct {
	Lat Interval
	Lng LngInterval
}

// EmptyRect returns a rectangle containing no points.
func EmptyRect() Rect {
	return Rect{Lat: EmptyInterval(), Lng: EmptyLngInterval()}
}

// FullRect returns a rectangle containing the whole sphere.
func FullRect() Rect {
	return Rect{Lat: Interval{-math.Pi / 2, math.Pi / 2}, Lng: FullLngInterval()}
}

// RectFromLatLng returns a degenerate rectangle containing just ll.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{
		Lat: IntervalFromPoint(ll.Lat.Radians()),
		Lng: LngInterval{ll.Lng.Radians(), ll.Lng.Radians()},
	}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool { return r.Lat.IsEmpty() }

// IsFull reports whether the rectangle contains the whole sphere.
func (r Rect) IsFull() bool {
	return r.Lat.Lo == -math.Pi/2 && r.Lat.Hi == math.Pi/2 && r.Lng.IsFull()
}

// Lo returns the south-west corner.
func (r Rect) Lo() LatLng { return LatLng{Angle(r.Lat.Lo), Angle(r.Lng.Lo)} }

// Hi returns the north-east corner.
func (r Rect) Hi() LatLng { return LatLng{Angle(r.Lat.Hi), Angle(r.Lng.Hi)} }

// ContainsLatLng reports whether the rectangle contains ll, which must be
// valid.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat.Radians()) && r.Lng.Contains(ll.Lng.Radians())
}

// ContainsPoint reports whether the rectangle contains the unit point p.
func (r Rect) ContainsPoint(p Point) bool {
	return r.ContainsLatLng(LatLngFromPoint(p))
}

// ContainsRect reports whether the rectangle contains every point of o.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Lat.ContainsInterval(o.Lat) && r.Lng.ContainsInterval(o.Lng)
}

// Intersects reports whether the rectangles share any points.
func (r Rect) Intersects(o Rect) bool {
	return r.Lat.Intersects(o.Lat) && r.Lng.Intersects(o.Lng)
}

// AddPoint returns the rectangle expanded to contain ll.
func (r Rect) AddPoint(ll LatLng) Rect {
	return Rect{
		Lat: r.Lat.AddPoint(ll.Lat.Radians()),
		Lng: r.Lng.AddPoint(ll.Lng.Radians()),
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{Lat: r.Lat.Union(o.Lat), Lng: r.Lng.Union(o.Lng)}
}

// Expanded returns the rectangle with its latitude range widened by
// margin.Lat and its longitude range by margin.Lng, clamped to legal
// bounds. Empty rectangles stay empty.
func (r Rect) Expanded(margin LatLng) Rect {
	if r.IsEmpty() {
		return r
	}
	lat := r.Lat.Expanded(margin.Lat.Radians())
	lat = Interval{math.Max(lat.Lo, -math.Pi/2), math.Min(lat.Hi, math.Pi/2)}
	return Rect{Lat: lat, Lng: r.Lng.Expanded(margin.Lng.Radians())}
}

// PolarClosure returns the rectangle widened to the full longitude range if
// it touches either pole: every longitude passes through a contained pole,
// so a bound at the pole must span all of them.
func (r Rect) PolarClosure() Rect {
	if r.Lat.Lo == -math.Pi/2 || r.Lat.Hi == math.Pi/2 {
		return Rect{Lat: r.Lat, Lng: FullLngInterval()}
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[Lo%v, Hi%v]", r.Lo(), r.Hi())
}
