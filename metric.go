package cellgo

import "math"

// Metric relates a geometric quantity of cells (edge length, width, area,
// ...) to the cell level. For a metric with derivative d and dimension dim,
// the quantity for cells at a given level is approximately d*2^(-dim*level)
// on the unit sphere.
//
// The tables below hold for the quadratic projection used by this package.
type Metric struct {
	// Deriv is the value of the metric at level 0.
	Deriv float64
	// Dim is 1 for length metrics and 2 for area metrics.
	Dim int
}

// Value returns the metric's value for cells at the given level.
func (m Metric) Value(level int) float64 {
	return math.Ldexp(m.Deriv, -m.Dim*level)
}

// MinLevel returns the minimum level such that the metric is at most the
// given value, or MaxLevel if there is no such level. The result is always
// a valid level.
func (m Metric) MinLevel(value float64) int {
	if value <= 0 {
		return MaxLevel
	}
	// Computes the floating-point level and rounds up. Frexp returns a
	// fraction in [0.5, 1) and the matching exponent.
	_, level := math.Frexp(value / m.Deriv)
	level = clampInt(-((level - 1) >> uint(m.Dim-1)), 0, MaxLevel)
	return level
}

// MaxLevel returns the maximum level such that the metric is at least the
// given value, or zero if there is no such level. The result is always a
// valid level.
func (m Metric) MaxLevel(value float64) int {
	if value <= 0 {
		return MaxLevel
	}
	_, level := math.Frexp(m.Deriv / value)
	level = clampInt((level-1)>>uint(m.Dim-1), 0, MaxLevel)
	return level
}

// ClosestLevel returns the level at which the metric is approximately the
// given value.
func (m Metric) ClosestLevel(value float64) int {
	x := 2 * value
	if m.Dim == 1 {
		x = math.Sqrt2 * value
	}
	return m.MinLevel(x)
}

// Length and area metrics for the quadratic projection.
var (
	MinAngleSpan = Metric{Deriv: 4. / 3, Dim: 1}
	MaxAngleSpan = Metric{Deriv: 1.704897179199218452, Dim: 1}
	AvgAngleSpan = Metric{Deriv: math.Pi / 2, Dim: 1}

	MinWidth = Metric{Deriv: 2 * math.Sqrt2 / 3, Dim: 1}
	MaxWidth = Metric{Deriv: MaxAngleSpan.Deriv, Dim: 1}
	AvgWidth = Metric{Deriv: 1.434523672886099389, Dim: 1}

	MinEdge = Metric{Deriv: 2 * math.Sqrt2 / 3, Dim: 1}
	MaxEdge = Metric{Deriv: MaxAngleSpan.Deriv, Dim: 1}
	AvgEdge = Metric{Deriv: 1.459213746386106062, Dim: 1}

	MinDiag = Metric{Deriv: 8 * math.Sqrt2 / 9, Dim: 1}
	MaxDiag = Metric{Deriv: 2.438654594434021032, Dim: 1}
	AvgDiag = Metric{Deriv: 2.060422738998471683, Dim: 1}

	MinArea = Metric{Deriv: 8 * math.Sqrt2 / 9, Dim: 2}
	MaxArea = Metric{Deriv: 2.635799256963161491, Dim: 2}
	AvgArea = Metric{Deriv: 4 * math.Pi / 6, Dim: 2}
)
