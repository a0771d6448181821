package cellgo

import "math"

// This file implements the projection between points on the unit sphere and
// cell coordinates. A point maps to one of six cube faces, to (u,v)
// coordinates on that face, then through the quadratic (s,t) transform to
// discrete (i,j) leaf coordinates, and finally along a Hilbert curve to the
// position bits of a CellID. The quadratic transform trades a small amount
// of cell-size uniformity for a projection that needs no trigonometry.

// stToUV converts an s- or t-value in [0,1] to the corresponding u- or
// v-value in [-1,1] using the quadratic projection.
func stToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.) * (4*s*s - 1)
	}
	return (1 / 3.) * (1 - 4*(1-s)*(1-s))
}

// uvToST is the inverse of stToUV.
func uvToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// stToIJ converts an s- or t-value to the leaf-cell coordinate on its face.
func stToIJ(s float64) int {
	return clampInt(int(math.Floor(maxSize*s)), 0, maxSize-1)
}

// ijToSTMin returns the s- or t-value of the lower edge of leaf coordinate i.
func ijToSTMin(i int) float64 {
	return float64(i) / float64(maxSize)
}

// sizeIJ returns the edge length of a cell at the given level, measured in
// leaf-cell coordinates.
func sizeIJ(level int) int {
	return 1 << uint(MaxLevel-level)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// face returns the cube face containing p, the face whose axis has the
// largest absolute projection onto p.
func face(p Point) int {
	f := 0
	value := p.X
	if math.Abs(p.Y) > math.Abs(value) {
		f, value = 1, p.Y
	}
	if math.Abs(p.Z) > math.Abs(value) {
		f, value = 2, p.Z
	}
	if value < 0 {
		f += 3
	}
	return f
}

// validFaceXYZToUV projects p onto the given face. p must have a positive
// dot product with the face's axis.
func validFaceXYZToUV(f int, p Point) (u, v float64) {
	switch f {
	case 0:
		return p.Y / p.X, p.Z / p.X
	case 1:
		return -p.X / p.Y, p.Z / p.Y
	case 2:
		return -p.X / p.Z, -p.Y / p.Z
	case 3:
		return p.Z / p.X, p.Y / p.X
	case 4:
		return p.Z / p.Y, -p.X / p.Y
	default:
		return -p.Y / p.Z, -p.X / p.Z
	}
}

// xyzToFaceUV projects p onto the face containing it.
func xyzToFaceUV(p Point) (f int, u, v float64) {
	f = face(p)
	u, v = validFaceXYZToUV(f, p)
	return f, u, v
}

// faceUVToXYZ is the inverse projection, returning the (non-normalized)
// direction of the point at (u,v) on the given face.
func faceUVToXYZ(f int, u, v float64) Point {
	switch f {
	case 0:
		return Point{1, u, v}
	case 1:
		return Point{-u, 1, v}
	case 2:
		return Point{-u, -v, 1}
	case 3:
		return Point{-1, -v, -u}
	case 4:
		return Point{v, -1, -u}
	default:
		return Point{v, u, -1}
	}
}

// uAxis returns the direction in which u increases on the given face.
func uAxis(f int) Point {
	switch f {
	case 0:
		return Point{0, 1, 0}
	case 1, 2:
		return Point{-1, 0, 0}
	case 3, 4:
		return Point{0, 0, -1}
	default:
		return Point{0, 1, 0}
	}
}

// vAxis returns the direction in which v increases on the given face.
func vAxis(f int) Point {
	switch f {
	case 0, 1:
		return Point{0, 0, 1}
	case 2, 3:
		return Point{0, -1, 0}
	default:
		return Point{1, 0, 0}
	}
}

// Hilbert curve traversal. Each level of the curve visits the four children
// of a cell in an order determined by the cell's orientation, which is a
// combination of an axis swap and a direction inversion.
const (
	lookupBits = 4
	swapMask   = 0x01
	invertMask = 0x02
)

var (
	// ijToPos[orientation][ij] is the traversal position of the child with
	// coordinate bits ij under the given orientation.
	ijToPos = [4][4]int{
		{0, 1, 3, 2}, // canonical order
		{0, 3, 1, 2}, // axes swapped
		{2, 3, 1, 0}, // bits inverted
		{2, 1, 3, 0}, // swapped & inverted
	}
	// posToIJ[orientation][pos] is the inverse of ijToPos.
	posToIJ = [4][4]int{
		{0, 1, 3, 2}, // canonical order:    (0,0), (0,1), (1,1), (1,0)
		{0, 2, 3, 1}, // axes swapped:       (0,0), (1,0), (1,1), (0,1)
		{3, 2, 0, 1}, // bits inverted:      (1,1), (1,0), (0,0), (0,1)
		{3, 1, 0, 2}, // swapped & inverted: (1,1), (0,1), (0,0), (1,0)
	}
	// posToOrientation[pos] is the orientation adjustment for the child at
	// the given traversal position.
	posToOrientation = [4]int{swapMask, 0, 0, invertMask | swapMask}

	// The lookup tables below translate between blocks of lookupBits i- and
	// j-bits plus an orientation and the corresponding 2*lookupBits position
	// bits plus the resulting orientation.
	lookupIJ  [1 << (2*lookupBits + 2)]int
	lookupPos [1 << (2*lookupBits + 2)]int
)

func init() {
	initLookupCell(0, 0, 0, 0, 0, 0)
	initLookupCell(0, 0, 0, swapMask, 0, swapMask)
	initLookupCell(0, 0, 0, invertMask, 0, invertMask)
	initLookupCell(0, 0, 0, swapMask|invertMask, 0, swapMask|invertMask)
}

func initLookupCell(level, i, j, origOrientation, pos, orientation int) {
	if level == lookupBits {
		ij := (i << lookupBits) + j
		lookupPos[(ij<<2)+origOrientation] = (pos << 2) + orientation
		lookupIJ[(pos<<2)+origOrientation] = (ij << 2) + orientation
		return
	}
	level++
	i <<= 1
	j <<= 1
	pos <<= 2
	r := posToIJ[orientation]
	for index := 0; index < 4; index++ {
		ij := r[index]
		initLookupCell(level, i+(ij>>1), j+(ij&1), origOrientation,
			pos+index, orientation^posToOrientation[index])
	}
}
