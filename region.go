package cellgo

// Region is the common interface of two-dimensional regions on the sphere.
// Bounds are conservative: they may overestimate the region, never
// underestimate it, so they are suitable as pre-filters in front of exact
// geometry.
type Region interface {
	// CapBound returns a spherical cap containing the region.
	CapBound() Cap

	// RectBound returns a latitude/longitude rectangle containing the
	// region.
	RectBound() Rect

	// ContainsCell reports whether the region completely contains the cell.
	ContainsCell(c Cell) bool

	// MayIntersect reports whether the region may intersect the cell. False
	// positives are allowed, false negatives are not.
	MayIntersect(c Cell) bool

	// ContainsPoint reports whether the region contains the unit point p.
	ContainsPoint(p Point) bool
}

// Both shapes of the package satisfy Region.
var (
	_ Region = Cell{}
	_ Region = CellUnion{}
)
