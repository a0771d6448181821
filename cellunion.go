package cellgo

import (
	"slices"
	"sort"
)

// CellUnion represents a region as the union of a set of cells.
//
// The canonical form is sorted by ID, contains no cell that is an ancestor
// (or duplicate) of another, and contains no complete group of four sibling
// cells, which would have been replaced by their parent. NewCellUnion and
// the set-algebra constructors always return unions in canonical form; every
// query method assumes it.
//
// A CellUnion owns its slice. Normalize replaces the contents in place, so a
// union shared across goroutines must not be normalized concurrently with
// reads.
type CellUnion []CellID

// NewCellUnion constructs a CellUnion from the given IDs, which may be
// unsorted, duplicated or overlapping, and normalizes it.
func NewCellUnion(ids ...CellID) CellUnion {
	cu := CellUnion(slices.Clone(ids))
	cu.Normalize()
	return cu
}

// CellUnionFromRange constructs a CellUnion covering the leaf-cell range
// [begin, end). Both arguments must be leaf cells, with begin <= end. The
// result is minimal: each cell is as large as the range allows.
func CellUnionFromRange(begin, end CellID) CellUnion {
	var cu CellUnion
	for id := begin; id < end; {
		// Emit the largest ancestor that starts here and stays in range.
		best := id
		for !best.IsFace() {
			parent := best.immediateParent()
			if parent.RangeMin() != best.RangeMin() || parent.RangeMax() >= end {
				break
			}
			best = parent
		}
		cu = append(cu, best)
		id = best.RangeMax().Next()
	}
	// Sorted, disjoint and maximally coalesced by construction.
	return cu
}

// Normalize replaces the union's cells with the canonical form of the same
// covered area. It reports whether the number of cells decreased; a pass
// that only reorders or none at all reports false. Normalize is idempotent.
func (cu *CellUnion) Normalize() bool {
	n := len(*cu)
	if n == 0 {
		return false
	}
	ids := *cu
	slices.Sort(ids)

	out := make(CellUnion, 0, len(ids))
	for _, id := range ids {
		// Drop cells covered by the previous output cell. Sorted order
		// guarantees an ancestor sorts at or before all its descendants
		// within the ancestor's range.
		if len(out) > 0 && out[len(out)-1].Contains(id) {
			continue
		}

		// A larger cell subsumes any previous cells it contains.
		for len(out) > 0 && id.Contains(out[len(out)-1]) {
			out = out[:len(out)-1]
		}

		// Replace complete sibling groups by their parent, repeatedly: the
		// promoted parent may complete a group one level up.
		for len(out) >= 3 {
			a, b, c := out[len(out)-3], out[len(out)-2], out[len(out)-1]
			// The first three of four siblings XOR to the fourth, so this
			// cheaply rejects almost all non-sibling groups.
			if a^b^c != id {
				break
			}
			// Exact test: all four must agree above the 2-bit child
			// selector directly below the parent's level marker. A face
			// cell has no parent and always fails here.
			mask := CellID(id.lsb() << 1)
			mask = ^(mask + mask<<1)
			if a&mask != id&mask || b&mask != id&mask || c&mask != id&mask || id.IsFace() {
				break
			}
			out = out[:len(out)-3]
			id = id.immediateParent()
		}
		out = append(out, id)
	}

	*cu = out
	return len(out) < n
}

// IsValid reports whether the union is sorted and contains no cell covered
// by another, the precondition for the query methods. All IDs must be
// valid.
func (cu CellUnion) IsValid() bool {
	for i, id := range cu {
		if !id.IsValid() {
			return false
		}
		if i > 0 && cu[i-1].RangeMax() >= id.RangeMin() {
			return false
		}
	}
	return true
}

// IsNormalized reports whether the union is valid and no four cells form a
// coalescible sibling group, i.e. Normalize would leave it unchanged.
func (cu CellUnion) IsNormalized() bool {
	if !cu.IsValid() {
		return false
	}
	for i, id := range cu {
		if i < 3 || id.IsFace() {
			continue
		}
		if cu[i-3]^cu[i-2]^cu[i-1] != id {
			continue
		}
		mask := CellID(id.lsb() << 1)
		mask = ^(mask + mask<<1)
		if cu[i-3]&mask == id&mask && cu[i-2]&mask == id&mask && cu[i-1]&mask == id&mask {
			return false
		}
	}
	return true
}

// Validate returns an error if any cell ID is malformed or the union is not
// in canonical form.
func (cu CellUnion) Validate() error {
	for _, id := range cu {
		if !id.IsValid() {
			return &ErrInvalidCellID{ID: id}
		}
	}
	if !cu.IsNormalized() {
		return ErrNotNormalized
	}
	return nil
}

// Denormalize expands the union so that every resulting cell has a level of
// at least minLevel, and the offset of its level from minLevel is a multiple
// of levelMod. Cells already satisfying the constraints pass through
// unchanged; all others are replaced by their descendants at the smallest
// satisfying level, capped at MaxLevel. The output keeps the input order,
// with each cell's expansion in traversal order.
//
// minLevel must be in [0, MaxLevel] and levelMod in [1, 3].
func (cu CellUnion) Denormalize(minLevel, levelMod int) (CellUnion, error) {
	if minLevel < 0 || minLevel > MaxLevel {
		return nil, &ErrInvalidLevel{Level: minLevel}
	}
	if levelMod < 1 || levelMod > 3 {
		return nil, &ErrInvalidLevelMod{LevelMod: levelMod}
	}

	out := make(CellUnion, 0, len(cu))
	for _, id := range cu {
		level := id.Level()
		newLevel := level
		if newLevel < minLevel {
			newLevel = minLevel
		}
		newLevel += (levelMod - (newLevel-minLevel)%levelMod) % levelMod
		if newLevel > MaxLevel {
			newLevel = MaxLevel
		}
		if newLevel == level {
			out = append(out, id)
			continue
		}
		end := id.ChildEndAtLevel(newLevel)
		for ci := id.ChildBeginAtLevel(newLevel); ci != end; ci = ci.Next() {
			out = append(out, ci)
		}
	}
	return out, nil
}

// ContainsCellID reports whether the union contains id, i.e. some member
// cell is id or an ancestor of id.
func (cu CellUnion) ContainsCellID(id CellID) bool {
	// The candidate ancestor is the last member at or before id, or the
	// first member after it (which can only contain id if it equals it or
	// starts at or before id's range).
	i := sort.Search(len(cu), func(i int) bool { return cu[i] > id })
	if i != len(cu) && cu[i].RangeMin() <= id {
		return true
	}
	return i != 0 && cu[i-1].RangeMax() >= id
}

// IntersectsCellID reports whether the union intersects id, i.e. some
// member cell is an ancestor or descendant of id, or id itself.
func (cu CellUnion) IntersectsCellID(id CellID) bool {
	i := sort.Search(len(cu), func(i int) bool { return cu[i] > id })
	if i != len(cu) && cu[i].RangeMin() <= id.RangeMax() {
		return true
	}
	return i != 0 && cu[i-1].RangeMax() >= id.RangeMin()
}

// ContainsCellUnion reports whether the union contains every cell of o.
func (cu CellUnion) ContainsCellUnion(o CellUnion) bool {
	// TODO: this is O(n*log(m)); a merge over both sorted slices would be
	// O(n+m).
	for _, id := range o {
		if !cu.ContainsCellID(id) {
			return false
		}
	}
	return true
}

// IntersectsCellUnion reports whether the union intersects any cell of o.
func (cu CellUnion) IntersectsCellUnion(o CellUnion) bool {
	for _, id := range o {
		if cu.IntersectsCellID(id) {
			return true
		}
	}
	return false
}

// Equal reports whether the unions hold identical cells.
func (cu CellUnion) Equal(o CellUnion) bool {
	return slices.Equal(cu, o)
}

// CellUnionFromUnion returns the union of the covered areas of x and y, in
// canonical form.
func CellUnionFromUnion(x, y CellUnion) CellUnion {
	cu := make(CellUnion, 0, len(x)+len(y))
	cu = append(cu, x...)
	cu = append(cu, y...)
	cu.Normalize()
	return cu
}

// CellUnionFromIntersection returns the intersection of the covered areas
// of x and y, in canonical form. Both inputs must be normalized.
func CellUnionFromIntersection(x, y CellUnion) CellUnion {
	var cu CellUnion

	// Walk both sorted unions, using the fact that whenever two cells
	// overlap, one contains the other. Binary search skips over runs with
	// no counterpart.
	var i, j int
	for i < len(x) && j < len(y) {
		iMin := x[i].RangeMin()
		jMin := y[j].RangeMin()
		switch {
		case iMin > jMin:
			// Either y[j] contains x[i] or the two are disjoint.
			if x[i] <= y[j].RangeMax() {
				cu = append(cu, x[i])
				i++
			} else {
				// Advance j to the first cell possibly contained by x[i];
				// the previous cell may now contain it.
				j = y.lowerBound(j+1, iMin)
				if x[i] <= y[j-1].RangeMax() {
					j--
				}
			}
		case jMin > iMin:
			if y[j] <= x[i].RangeMax() {
				cu = append(cu, y[j])
				j++
			} else {
				i = x.lowerBound(i+1, jMin)
				if y[j] <= x[i-1].RangeMax() {
					i--
				}
			}
		default:
			// Same RangeMin, so one contains the other; keep the smaller
			// (larger-valued) cell.
			if x[i] < y[j] {
				cu = append(cu, x[i])
				i++
			} else {
				cu = append(cu, y[j])
				j++
			}
		}
	}

	// The result is sorted and disjoint, but adjacent siblings of the two
	// inputs may now coalesce.
	cu.Normalize()
	return cu
}

// lowerBound returns the first index in [begin, len(cu)) whose RangeMin is
// at least id, or len(cu).
func (cu CellUnion) lowerBound(begin int, id CellID) int {
	return begin + sort.Search(len(cu)-begin, func(k int) bool {
		return cu[begin+k].RangeMin() >= id
	})
}

// CellUnionFromDifference returns the area of x not covered by y, in
// canonical form. Both inputs must be normalized.
func CellUnionFromDifference(x, y CellUnion) CellUnion {
	var cu CellUnion
	for _, id := range x {
		cu.appendDifference(id, y)
	}
	// Subtracting from a normalized union cannot create containment or new
	// sibling groups, so the result is already canonical.
	return cu
}

// appendDifference appends the part of id not covered by y, descending into
// children of partially covered cells.
func (cu *CellUnion) appendDifference(id CellID, y CellUnion) {
	if !y.IntersectsCellID(id) {
		*cu = append(*cu, id)
		return
	}
	if y.ContainsCellID(id) {
		return
	}
	for _, child := range id.Children() {
		cu.appendDifference(child, y)
	}
}

// LeafCellsCovered returns the number of leaf cells covered by the union.
func (cu CellUnion) LeafCellsCovered() uint64 {
	var n uint64
	for _, id := range cu {
		n += 1 << uint(2*(MaxLevel-id.Level()))
	}
	return n
}

// AverageArea returns the union's area on the unit sphere, approximated
// from the average leaf-cell area.
func (cu CellUnion) AverageArea() float64 {
	return AvgArea.Value(MaxLevel) * float64(cu.LeafCellsCovered())
}

// RectBound returns the smallest latitude/longitude rectangle containing
// the union, as the fold of the member cells' own bounds.
func (cu CellUnion) RectBound() Rect {
	bound := EmptyRect()
	for _, id := range cu {
		bound = bound.Union(CellFromCellID(id).RectBound())
	}
	return bound
}

// CapBound returns a spherical cap containing the union: a cap around the
// area-weighted centroid of the cells, widened to cover each member cell's
// own cap.
func (cu CellUnion) CapBound() Cap {
	if len(cu) == 0 {
		return EmptyCap()
	}

	// Area-weighted centroid of the cell centers.
	var centroid Point
	for _, id := range cu {
		area := AvgArea.Value(id.Level())
		centroid = centroid.Add(id.Point().Mul(area))
	}
	if (centroid == Point{}) {
		centroid = Point{X: 1}
	} else {
		centroid = centroid.Normalize()
	}

	b := CapFromPoint(centroid)
	for _, id := range cu {
		b = b.AddCap(CellFromCellID(id).CapBound())
	}
	return b
}

// ContainsCell reports whether the union contains the cell. Part of the
// Region interface.
func (cu CellUnion) ContainsCell(c Cell) bool {
	return cu.ContainsCellID(c.ID())
}

// MayIntersect reports whether the union may intersect the cell. For cell
// regions this is exact.
func (cu CellUnion) MayIntersect(c Cell) bool {
	return cu.IntersectsCellID(c.ID())
}

// ContainsPoint reports whether the union contains the unit point p.
func (cu CellUnion) ContainsPoint(p Point) bool {
	return cu.ContainsCellID(cellIDFromPoint(p))
}
