package cellgo

import "math"

// dblEpsilon is the rounding unit of float64 arithmetic.
const dblEpsilon = 2.220446049250313e-16

// poleMinLat is the smallest latitude reached by the polar face cells,
// asin(sqrt(1/3)) with a slack of one rounding unit.
var poleMinLat = math.Asin(math.Sqrt(1./3)) - 0.5*dblEpsilon

// Cell is a CellID decoded into its face and (u,v) extent, the form needed
// for geometric queries. Construct one with CellFromCellID.
type Cell struct {
	face  int8
	level int8
	id    CellID
	u, v  Interval
}

// CellFromCellID constructs a Cell from a valid CellID.
func CellFromCellID(id CellID) Cell {
	f, i, j, _ := id.faceIJOrientation()
	level := id.Level()
	u, v := ijLevelToBoundUV(i, j, level)
	return Cell{face: int8(f), level: int8(level), id: id, u: u, v: v}
}

// ijLevelToBoundUV returns the (u,v) extent of the cell at the given level
// containing leaf coordinates (i,j).
func ijLevelToBoundUV(i, j, level int) (u, v Interval) {
	cellSize := sizeIJ(level)
	iLo := i & -cellSize
	jLo := j & -cellSize
	u = Interval{stToUV(ijToSTMin(iLo)), stToUV(ijToSTMin(iLo + cellSize))}
	v = Interval{stToUV(ijToSTMin(jLo)), stToUV(ijToSTMin(jLo + cellSize))}
	return u, v
}

// ID returns the cell's CellID.
func (c Cell) ID() CellID { return c.id }

// Face returns the face number in [0,5].
func (c Cell) Face() int { return int(c.face) }

// Level returns the subdivision depth.
func (c Cell) Level() int { return int(c.level) }

// IsLeaf reports whether the cell is at MaxLevel.
func (c Cell) IsLeaf() bool { return int(c.level) == MaxLevel }

// Center returns the unit point at the cell's center.
func (c Cell) Center() Point { return c.id.Point() }

// Vertex returns the k-th (counterclockwise) corner of the cell as a unit
// point, for k in [0,3].
func (c Cell) Vertex(k int) Point {
	u := c.u.Lo
	if k == 1 || k == 2 {
		u = c.u.Hi
	}
	v := c.v.Lo
	if k >= 2 {
		v = c.v.Hi
	}
	return faceUVToXYZ(int(c.face), u, v).Normalize()
}

// latitude returns the latitude of the cell corner selected by i, j in
// {0,1}.
func (c Cell) latitude(i, j int) float64 {
	u := c.u.Lo
	if i == 1 {
		u = c.u.Hi
	}
	v := c.v.Lo
	if j == 1 {
		v = c.v.Hi
	}
	p := faceUVToXYZ(int(c.face), u, v)
	return math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))
}

// longitude returns the longitude of the cell corner selected by i, j in
// {0,1}.
func (c Cell) longitude(i, j int) float64 {
	u := c.u.Lo
	if i == 1 {
		u = c.u.Hi
	}
	v := c.v.Lo
	if j == 1 {
		v = c.v.Hi
	}
	p := faceUVToXYZ(int(c.face), u, v)
	return math.Atan2(p.Y, p.X)
}

// RectBound returns the smallest latitude/longitude rectangle containing
// the cell.
func (c Cell) RectBound() Rect {
	if c.level > 0 {
		// For non-face cells the latitude and longitude extremes are
		// attained at the vertices. The extreme-latitude vertex pair depends
		// on which way the face's v axis points, and for the polar faces on
		// the cell's quadrant.
		u := c.u.Lo + c.u.Hi
		v := c.v.Lo + c.v.Hi
		var i, j int
		if uAxis(int(c.face)).Z == 0 {
			if u < 0 {
				i = 1
			}
		} else if u > 0 {
			i = 1
		}
		if vAxis(int(c.face)).Z == 0 {
			if v < 0 {
				j = 1
			}
		} else if v > 0 {
			j = 1
		}
		lat := IntervalFromPoint(c.latitude(i, j)).AddPoint(c.latitude(1-i, 1-j))
		lng := EmptyLngInterval().AddPoint(c.longitude(i, 1-j)).AddPoint(c.longitude(1-i, j))
		// Grow by one rounding unit so the bound contains the result of
		// converting any contained point to a LatLng.
		margin := LatLng{Angle(2 * dblEpsilon), Angle(2 * dblEpsilon)}
		return Rect{Lat: lat, Lng: lng}.Expanded(margin).PolarClosure()
	}

	// Face cell bounds are known exactly.
	switch c.face {
	case 0:
		return Rect{Interval{-math.Pi / 4, math.Pi / 4}, LngInterval{-math.Pi / 4, math.Pi / 4}}
	case 1:
		return Rect{Interval{-math.Pi / 4, math.Pi / 4}, LngInterval{math.Pi / 4, 3 * math.Pi / 4}}
	case 2:
		return Rect{Interval{poleMinLat, math.Pi / 2}, FullLngInterval()}
	case 3:
		return Rect{Interval{-math.Pi / 4, math.Pi / 4}, LngInterval{3 * math.Pi / 4, -3 * math.Pi / 4}}
	case 4:
		return Rect{Interval{-math.Pi / 4, math.Pi / 4}, LngInterval{-3 * math.Pi / 4, -math.Pi / 4}}
	default:
		return Rect{Interval{-math.Pi / 2, -poleMinLat}, FullLngInterval()}
	}
}

// CapBound returns a spherical cap containing the cell. The cap is centered
// on the cell's (u,v) midpoint, which is not the centroid but close enough
// for a conservative bound.
func (c Cell) CapBound() Cap {
	center := faceUVToXYZ(int(c.face), c.u.Center(), c.v.Center()).Normalize()
	b := CapFromPoint(center)
	for k := 0; k < 4; k++ {
		b = b.AddPoint(c.Vertex(k))
	}
	return b
}

// ContainsPoint reports whether the cell contains the unit point p. Points
// exactly on a shared cell edge are reported as contained by both cells.
func (c Cell) ContainsPoint(p Point) bool {
	u, v, ok := faceXYZToUV(int(c.face), p)
	if !ok {
		return false
	}
	// Widen the bound by one rounding unit so that a point on the cell
	// boundary, round-tripped through the projection, still tests as
	// contained.
	return u >= c.u.Lo-dblEpsilon && u <= c.u.Hi+dblEpsilon &&
		v >= c.v.Lo-dblEpsilon && v <= c.v.Hi+dblEpsilon
}

// faceXYZToUV projects p to (u,v) on face f, reporting false if p is in the
// hemisphere away from the face.
func faceXYZToUV(f int, p Point) (u, v float64, ok bool) {
	switch f {
	case 0:
		if p.X <= 0 {
			return 0, 0, false
		}
	case 1:
		if p.Y <= 0 {
			return 0, 0, false
		}
	case 2:
		if p.Z <= 0 {
			return 0, 0, false
		}
	case 3:
		if p.X >= 0 {
			return 0, 0, false
		}
	case 4:
		if p.Y >= 0 {
			return 0, 0, false
		}
	default:
		if p.Z >= 0 {
			return 0, 0, false
		}
	}
	u, v = validFaceXYZToUV(f, p)
	return u, v, true
}

// ContainsCell reports whether the cell contains other. Part of the Region
// interface; equivalent to ID-range containment.
func (c Cell) ContainsCell(other Cell) bool {
	return c.id.Contains(other.id)
}

// MayIntersect reports whether the cell may intersect other. For cells of
// the same hierarchy this is exact.
func (c Cell) MayIntersect(other Cell) bool {
	return c.id.Intersects(other.id)
}
