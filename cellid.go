package cellgo

import (
	"bytes"
	"fmt"
	"math/bits"
)

// CellID uniquely identifies a cell of the hierarchical subdivision.
//
// The 64 bits are laid out as 3 face bits followed by up to 2*MaxLevel bits
// of Hilbert-curve position and a trailing marker bit. The marker bit is the
// lowest set bit of the ID and its position encodes the cell's level: the
// marker of a leaf cell is bit 0, and each coarser level shifts it up by two.
//
// This layout has two properties the rest of the package relies on:
//
//   - The uint64 order of IDs equals the traversal order of the curve, so a
//     sorted slice of IDs groups descendants under their ancestors.
//   - All descendants of a cell occupy the contiguous value range
//     [RangeMin, RangeMax], so containment tests are two comparisons.
type CellID uint64

// CellIDFromFace returns the level-0 cell for the given face in [0,5].
func CellIDFromFace(f int) CellID {
	return CellID(uint64(f)<<posBits + lsbForLevel(0))
}

// CellIDFromFacePosLevel returns the cell at the given level containing the
// leaf position pos on face f. The position bits below the level are
// discarded.
func CellIDFromFacePosLevel(f int, pos uint64, level int) CellID {
	return CellID(uint64(f)<<posBits + (pos | 1)).Parent(level)
}

// CellIDFromLatLng returns the leaf cell containing ll.
func CellIDFromLatLng(ll LatLng) CellID {
	return cellIDFromPoint(PointFromLatLng(ll))
}

// cellIDFromPoint returns the leaf cell containing the unit point p.
func cellIDFromPoint(p Point) CellID {
	f, u, v := xyzToFaceUV(p)
	i := stToIJ(uvToST(u))
	j := stToIJ(uvToST(v))
	return cellIDFromFaceIJ(f, i, j)
}

// IsValid reports whether the ID has a legal face number and level marker.
func (ci CellID) IsValid() bool {
	return ci.Face() < NumFaces && ci.lsb()&0x1555555555555555 != 0
}

// Face returns the face number in [0,5].
func (ci CellID) Face() int { return int(uint64(ci) >> posBits) }

// Pos returns the position bits, i.e. the ID with the face bits cleared.
func (ci CellID) Pos() uint64 { return uint64(ci) & (^uint64(0) >> faceBits) }

// Level returns the subdivision depth, from 0 for face cells up to MaxLevel
// for leaves.
func (ci CellID) Level() int {
	return MaxLevel - bits.TrailingZeros64(uint64(ci))>>1
}

// IsFace reports whether this is a level-0 (root face) cell.
func (ci CellID) IsFace() bool { return uint64(ci)&(lsbForLevel(0)-1) == 0 }

// IsLeaf reports whether this cell is at MaxLevel.
func (ci CellID) IsLeaf() bool { return uint64(ci)&1 != 0 }

// lsb returns the numeric value of the lowest set bit, the level marker.
func (ci CellID) lsb() uint64 { return uint64(ci) & -uint64(ci) }

// lsbForLevel returns the level marker value for the given level.
func lsbForLevel(level int) uint64 {
	return 1 << uint(2*(MaxLevel-level))
}

// Parent returns the ancestor at the given level, which must be at most the
// cell's own level.
func (ci CellID) Parent(level int) CellID {
	lsb := lsbForLevel(level)
	return CellID((uint64(ci) & -lsb) | lsb)
}

// immediateParent is Parent(Level()-1) without the level arithmetic. It must
// not be called on a face cell.
func (ci CellID) immediateParent() CellID {
	nlsb := CellID(ci.lsb() << 2)
	return (ci & -nlsb) | nlsb
}

// ChildBegin returns the first child of this cell in traversal order. Along
// with ChildEnd it iterates the four children:
//
//	for id := ci.ChildBegin(); id != ci.ChildEnd(); id = id.Next() { ... }
//
// Must not be called on a leaf cell.
func (ci CellID) ChildBegin() CellID {
	ol := ci.lsb()
	return CellID(uint64(ci) - ol + ol>>2)
}

// ChildBeginAtLevel returns the first descendant of this cell at the given
// level, which must be at least the cell's own level.
func (ci CellID) ChildBeginAtLevel(level int) CellID {
	return CellID(uint64(ci) - ci.lsb() + lsbForLevel(level))
}

// ChildEnd returns the first cell after this cell's children in traversal
// order. The result is a valid sibling position but may name a cell on the
// next face, or be invalid past the last face.
func (ci CellID) ChildEnd() CellID {
	ol := ci.lsb()
	return CellID(uint64(ci) + ol + ol>>2)
}

// ChildEndAtLevel returns the first cell after this cell's descendants at
// the given level.
func (ci CellID) ChildEndAtLevel(level int) CellID {
	return CellID(uint64(ci) + ci.lsb() + lsbForLevel(level))
}

// Children returns the four immediate children in traversal order. Must not
// be called on a leaf cell.
func (ci CellID) Children() [4]CellID {
	var ch [4]CellID
	lsb := CellID(ci.lsb())
	ch[0] = ci - lsb + lsb>>2
	lsb >>= 1
	ch[1] = ch[0] + lsb
	ch[2] = ch[1] + lsb
	ch[3] = ch[2] + lsb
	return ch
}

// Next returns the next cell at the same level in traversal order. The
// result past the last cell of the last face is invalid.
func (ci CellID) Next() CellID {
	return CellID(uint64(ci) + ci.lsb()<<1)
}

// Prev returns the previous cell at the same level in traversal order.
func (ci CellID) Prev() CellID {
	return CellID(uint64(ci) - ci.lsb()<<1)
}

// RangeMin returns the first leaf cell contained by this cell. The value
// range [RangeMin, RangeMax] covers exactly this cell and its descendants at
// every level.
func (ci CellID) RangeMin() CellID {
	return CellID(uint64(ci) - (ci.lsb() - 1))
}

// RangeMax returns the last leaf cell contained by this cell.
func (ci CellID) RangeMax() CellID {
	return CellID(uint64(ci) + (ci.lsb() - 1))
}

// Contains reports whether other is ci or a descendant of ci.
func (ci CellID) Contains(other CellID) bool {
	return ci.RangeMin() <= other && other <= ci.RangeMax()
}

// Intersects reports whether ci and other share any descendant, i.e. one
// contains the other.
func (ci CellID) Intersects(other CellID) bool {
	return other.RangeMin() <= ci.RangeMax() && other.RangeMax() >= ci.RangeMin()
}

// LatLng returns the latitude/longitude of the cell's center.
func (ci CellID) LatLng() LatLng { return LatLngFromPoint(ci.Point()) }

// Point returns the unit point at the cell's center.
func (ci CellID) Point() Point { return ci.rawPoint().Normalize() }

func (ci CellID) rawPoint() Point {
	f, si, ti := ci.faceSiTi()
	u := stToUV(float64(si) / (2 * maxSize))
	v := stToUV(float64(ti) / (2 * maxSize))
	return faceUVToXYZ(f, u, v)
}

// faceSiTi returns the center of the cell in (si,ti) coordinates, which are
// (s,t) scaled by 2*maxSize so cell centers at every level are integers.
func (ci CellID) faceSiTi() (f int, si, ti uint64) {
	f, i, j, _ := ci.faceIJOrientation()
	delta := 0
	if ci.IsLeaf() {
		delta = 1
	} else if (int64(i)^(int64(uint64(ci))>>2))&1 != 0 {
		delta = 2
	}
	return f, uint64(2*i + delta), uint64(2*j + delta)
}

// cellIDFromFaceIJ returns the leaf cell at coordinates (i,j) on face f,
// mapping blocks of lookupBits coordinate bits through the Hilbert lookup
// tables.
func cellIDFromFaceIJ(f, i, j int) CellID {
	// The value is built with the marker bit missing and shifted in at the
	// end.
	n := uint64(f) << (posBits - 1)
	// Alternating faces have opposite curve orientations.
	bs := f & swapMask
	for k := 7; k >= 0; k-- {
		mask := (1 << lookupBits) - 1
		bs += ((i >> uint(k*lookupBits)) & mask) << (lookupBits + 2)
		bs += ((j >> uint(k*lookupBits)) & mask) << 2
		bs = lookupPos[bs]
		n |= uint64(bs>>2) << (uint(k) * 2 * lookupBits)
		bs &= swapMask | invertMask
	}
	return CellID(n*2 + 1)
}

// faceIJOrientation decodes the cell into its face, the (i,j) coordinates of
// its lowest-coordinate leaf, and the Hilbert curve orientation at the
// cell's level.
func (ci CellID) faceIJOrientation() (f, i, j, orientation int) {
	f = ci.Face()
	orientation = f & swapMask
	nbits := MaxLevel - 7*lookupBits // first iteration decodes the leftovers
	for k := 7; k >= 0; k-- {
		orientation += (int(uint64(ci)>>uint(k*2*lookupBits+1)) & ((1 << uint(2*nbits)) - 1)) << 2
		orientation = lookupIJ[orientation]
		i += (orientation >> (lookupBits + 2)) << uint(k*lookupBits)
		j += ((orientation >> 2) & ((1 << lookupBits) - 1)) << uint(k*lookupBits)
		orientation &= swapMask | invertMask
		nbits = lookupBits
	}
	// The lookup decoded the orientation as if the marker bit were position
	// bits. For cells whose level is odd-distance from a leaf that flips the
	// axes once too often.
	if ci.lsb()&0x1111111111111110 != 0 {
		orientation ^= swapMask
	}
	return f, i, j, orientation
}

// String returns the cell as its face number and the child position at each
// level, e.g. "2/03120".
func (ci CellID) String() string {
	if !ci.IsValid() {
		return "Invalid: " + fmt.Sprintf("%#016x", uint64(ci))
	}
	var b bytes.Buffer
	b.WriteByte("012345"[ci.Face()])
	b.WriteByte('/')
	for level := 1; level <= ci.Level(); level++ {
		b.WriteByte("0123"[ci.childPosition(level)])
	}
	return b.String()
}

// childPosition returns this cell's ancestor position in [0,3] under its
// ancestor at level-1, for level in [1, Level()].
func (ci CellID) childPosition(level int) int {
	return int(uint64(ci)>>uint(2*(MaxLevel-level)+1)) & 3
}
