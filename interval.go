package cellgo

import "math"

// Interval is a closed interval on the real line, used for latitude ranges
// in radians. An interval with Lo > Hi is empty.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval returns an empty interval.
func EmptyInterval() Interval { return Interval{1, 0} }

// IntervalFromPoint returns the degenerate interval [p, p].
func IntervalFromPoint(p float64) Interval { return Interval{p, p} }

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool { return i.Lo > i.Hi }

// Center returns the midpoint of the interval. Undefined for empty
// intervals.
func (i Interval) Center() float64 { return 0.5 * (i.Lo + i.Hi) }

// Length returns the length of the interval, negative if it is empty.
func (i Interval) Length() float64 { return i.Hi - i.Lo }

// Contains reports whether the interval contains p.
func (i Interval) Contains(p float64) bool { return i.Lo <= p && p <= i.Hi }

// ContainsInterval reports whether the interval contains o.
func (i Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

// Intersects reports whether the intervals share any points.
func (i Interval) Intersects(o Interval) bool {
	if i.Lo <= o.Lo {
		return o.Lo <= i.Hi && o.Lo <= o.Hi
	}
	return i.Lo <= o.Hi && i.Lo <= i.Hi
}

// AddPoint returns the interval expanded to contain p.
func (i Interval) AddPoint(p float64) Interval {
	if i.IsEmpty() {
		return Interval{p, p}
	}
	if p < i.Lo {
		return Interval{p, i.Hi}
	}
	if p > i.Hi {
		return Interval{i.Lo, p}
	}
	return i
}

// Union returns the smallest interval containing both i and o.
func (i Interval) Union(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	return Interval{math.Min(i.Lo, o.Lo), math.Max(i.Hi, o.Hi)}
}

// Expanded returns the interval with both endpoints moved outward by margin.
// Empty intervals stay empty.
func (i Interval) Expanded(margin float64) Interval {
	if i.IsEmpty() {
		return i
	}
	return Interval{i.Lo - margin, i.Hi + margin}
}

// LngInterval is a closed interval of longitudes in radians, with endpoints
// in [-π, π]. An interval with Lo > Hi is inverted and wraps across the
// antimeridian. [-π, π] is the full interval and [π, -π] the empty one.
type LngInterval struct {
	Lo, Hi float64
}

// EmptyLngInterval returns an empty longitude interval.
func EmptyLngInterval() LngInterval { return LngInterval{math.Pi, -math.Pi} }

// FullLngInterval returns the interval of all longitudes.
func FullLngInterval() LngInterval { return LngInterval{-math.Pi, math.Pi} }

// IsEmpty reports whether the interval contains no points.
func (i LngInterval) IsEmpty() bool { return i.Lo == math.Pi && i.Hi == -math.Pi }

// IsFull reports whether the interval contains all longitudes.
func (i LngInterval) IsFull() bool { return i.Lo == -math.Pi && i.Hi == math.Pi }

// isInverted reports whether the interval wraps across the antimeridian.
func (i LngInterval) isInverted() bool { return i.Lo > i.Hi }

// fastContains reports containment of p, assuming p is in [-π, π] and
// treating -π as π.
func (i LngInterval) fastContains(p float64) bool {
	if i.isInverted() {
		return (p >= i.Lo || p <= i.Hi) && !i.IsEmpty()
	}
	return i.Lo <= p && p <= i.Hi
}

// Contains reports whether the interval contains longitude p, for p in
// [-π, π].
func (i LngInterval) Contains(p float64) bool {
	if p == -math.Pi {
		p = math.Pi
	}
	return i.fastContains(p)
}

// ContainsInterval reports whether the interval contains o.
func (i LngInterval) ContainsInterval(o LngInterval) bool {
	if i.isInverted() {
		if o.isInverted() {
			return o.Lo >= i.Lo && o.Hi <= i.Hi
		}
		return (o.Lo >= i.Lo || o.Hi <= i.Hi) && !i.IsEmpty()
	}
	if o.isInverted() {
		return i.IsFull() || o.IsEmpty()
	}
	return o.Lo >= i.Lo && o.Hi <= i.Hi
}

// Intersects reports whether the intervals share any points.
func (i LngInterval) Intersects(o LngInterval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}
	if i.isInverted() {
		return o.isInverted() || o.Lo <= i.Hi || o.Hi >= i.Lo
	}
	if o.isInverted() {
		return o.Lo <= i.Hi || o.Hi >= i.Lo
	}
	return o.Lo <= i.Hi && o.Hi >= i.Lo
}

// positiveDistance returns the distance from a to b traveling in the
// direction of increasing longitude, in [0, 2π).
func positiveDistance(a, b float64) float64 {
	d := b - a
	if d >= 0 {
		return d
	}
	return (b + math.Pi) - (a - math.Pi)
}

// AddPoint returns the interval expanded to contain longitude p, growing
// toward whichever side is closer.
func (i LngInterval) AddPoint(p float64) LngInterval {
	if math.Abs(p) > math.Pi {
		return i
	}
	if p == -math.Pi {
		p = math.Pi
	}
	if i.fastContains(p) {
		return i
	}
	if i.IsEmpty() {
		return LngInterval{p, p}
	}
	if positiveDistance(p, i.Lo) < positiveDistance(i.Hi, p) {
		return LngInterval{p, i.Hi}
	}
	return LngInterval{i.Lo, p}
}

// Union returns the smallest interval containing both i and o.
func (i LngInterval) Union(o LngInterval) LngInterval {
	if o.IsEmpty() {
		return i
	}
	if i.fastContains(o.Lo) {
		if i.fastContains(o.Hi) {
			// Either i contains o, or the union is the full circle.
			if i.ContainsInterval(o) {
				return i
			}
			return FullLngInterval()
		}
		return LngInterval{i.Lo, o.Hi}
	}
	if i.fastContains(o.Hi) {
		return LngInterval{o.Lo, i.Hi}
	}
	// Disjoint, or o contains i.
	if i.IsEmpty() || o.fastContains(i.Lo) {
		return o
	}
	// Grow across the smaller gap.
	if positiveDistance(o.Hi, i.Lo) < positiveDistance(i.Hi, o.Lo) {
		return LngInterval{o.Lo, i.Hi}
	}
	return LngInterval{i.Lo, o.Hi}
}

// Expanded returns the interval with both endpoints moved outward by margin,
// saturating at the full interval.
func (i LngInterval) Expanded(margin float64) LngInterval {
	if margin <= 0 {
		return i
	}
	if i.IsEmpty() {
		return i
	}
	// Check whether the interval is already nearly full.
	if i.length()+2*margin >= 2*math.Pi {
		return FullLngInterval()
	}
	lo := math.Remainder(i.Lo-margin, 2*math.Pi)
	hi := math.Remainder(i.Hi+margin, 2*math.Pi)
	if lo <= -math.Pi {
		lo = math.Pi
	}
	return LngInterval{lo, hi}
}

// length returns the interval's angular length.
func (i LngInterval) length() float64 {
	l := i.Hi - i.Lo
	if l >= 0 {
		return l
	}
	l += 2 * math.Pi
	if l > 0 {
		return l
	}
	return -1
}
