package cellgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellFromCellID(t *testing.T) {
	ll := LatLngFromDegrees(40.71, -74.01)
	id := CellIDFromLatLng(ll).Parent(14)
	c := CellFromCellID(id)

	assert.Equal(t, id, c.ID())
	assert.Equal(t, id.Face(), c.Face())
	assert.Equal(t, 14, c.Level())
	assert.False(t, c.IsLeaf())
	assert.True(t, CellFromCellID(CellIDFromLatLng(ll)).IsLeaf())
}

func TestCellContainsPoint(t *testing.T) {
	rng := newTestRNG(10)
	for i := 0; i < 100; i++ {
		id := rng.cellIDAtLevel(2 + rng.intn(MaxLevel-1))
		c := CellFromCellID(id)

		assert.True(t, c.ContainsPoint(c.Center()), "cell must contain its center")
		for k := 0; k < 4; k++ {
			assert.True(t, c.ContainsPoint(c.Vertex(k)), "cell must contain vertex %d", k)
		}
		// The center of the next cell at the same level is outside.
		if next := id.Next(); next.IsValid() {
			assert.False(t, c.ContainsPoint(next.Point()))
		}
	}
}

func TestCellRectBoundContainsCell(t *testing.T) {
	rng := newTestRNG(11)
	for i := 0; i < 200; i++ {
		id := rng.cellID()
		c := CellFromCellID(id)
		bound := c.RectBound()

		require.False(t, bound.IsEmpty())
		assert.True(t, bound.ContainsPoint(c.Center()), "bound must contain center of %v", id)
		for k := 0; k < 4; k++ {
			assert.True(t, bound.ContainsPoint(c.Vertex(k)),
				"bound must contain vertex %d of %v", k, id)
		}
	}
}

func TestCellRectBoundLevelOneCells(t *testing.T) {
	// The extreme-latitude vertex pair differs per face orientation and
	// quadrant; every level-1 cell's bound must still cover all four
	// vertices.
	for f := 0; f < NumFaces; f++ {
		for _, id := range CellIDFromFace(f).Children() {
			c := CellFromCellID(id)
			bound := c.RectBound()
			assert.True(t, bound.ContainsPoint(c.Center()), "center of %v", id)
			for k := 0; k < 4; k++ {
				assert.True(t, bound.ContainsPoint(c.Vertex(k)),
					"vertex %d of %v at %v", k, id, LatLngFromPoint(c.Vertex(k)))
			}
		}
	}
}

func TestCellContainsOwnLeafPoint(t *testing.T) {
	// The leaf cell looked up for a point must contain that point, even when
	// the point lands on a cell boundary.
	rng := newTestRNG(13)
	for i := 0; i < 100; i++ {
		ll := LatLngFromDegrees(float64(rng.intn(17000))/100-85, float64(rng.intn(36000))/100-180)
		p := PointFromLatLng(ll)
		c := CellFromCellID(cellIDFromPoint(p))
		assert.True(t, c.ContainsPoint(p), "leaf for %v must contain it", ll)
	}
}

func TestCellRectBoundFaces(t *testing.T) {
	// The four equatorial faces span the quarter latitudes; the polar faces
	// cover all longitudes.
	for _, f := range []int{0, 1, 3, 4} {
		b := CellFromCellID(CellIDFromFace(f)).RectBound()
		assert.InDelta(t, -math.Pi/4, b.Lat.Lo, 1e-15)
		assert.InDelta(t, math.Pi/4, b.Lat.Hi, 1e-15)
		assert.False(t, b.Lng.IsFull())
	}
	for _, f := range []int{2, 5} {
		b := CellFromCellID(CellIDFromFace(f)).RectBound()
		assert.True(t, b.Lng.IsFull())
	}

	north := CellFromCellID(CellIDFromFace(2)).RectBound()
	assert.True(t, north.ContainsLatLng(LatLngFromDegrees(90, 45)))
	south := CellFromCellID(CellIDFromFace(5)).RectBound()
	assert.True(t, south.ContainsLatLng(LatLngFromDegrees(-90, -135)))
}

func TestCellRectBoundNearPole(t *testing.T) {
	// A small cell touching a pole must span all longitudes.
	id := CellIDFromLatLng(LatLngFromDegrees(89.999999, 17)).Parent(8)
	b := CellFromCellID(id).RectBound()
	assert.True(t, b.ContainsLatLng(LatLngFromDegrees(89.9999995, -123)))
}

func TestCellCapBoundContainsCell(t *testing.T) {
	rng := newTestRNG(12)
	for i := 0; i < 200; i++ {
		id := rng.cellID()
		c := CellFromCellID(id)
		b := c.CapBound()

		require.False(t, b.IsEmpty())
		assert.True(t, b.ContainsPoint(c.Center()))
		for k := 0; k < 4; k++ {
			assert.True(t, b.ContainsPoint(c.Vertex(k)))
		}
	}
}

func TestCellCapBoundSize(t *testing.T) {
	// The cap of a small cell must stay in the neighborhood of the cell:
	// its radius is at most half the max diagonal plus slack.
	id := CellIDFromLatLng(LatLngFromDegrees(12, 34)).Parent(20)
	b := CellFromCellID(id).CapBound()
	assert.LessOrEqual(t, b.Radius.Radians(), MaxDiag.Value(20))
}

func TestCellContainsCellAndMayIntersect(t *testing.T) {
	id := CellIDFromFacePosLevel(1, 0xBEEF, 10)
	c := CellFromCellID(id)

	child := CellFromCellID(id.Children()[1])
	sibling := CellFromCellID(id.Next())

	assert.True(t, c.ContainsCell(child))
	assert.False(t, child.ContainsCell(c))
	assert.True(t, c.MayIntersect(child))
	assert.True(t, child.MayIntersect(c))
	assert.False(t, c.MayIntersect(sibling))
}

func TestCellVertexOrder(t *testing.T) {
	// Vertices are distinct and counterclockwise: the cross product of the
	// first two edges points away from the sphere center.
	id := CellIDFromLatLng(LatLngFromDegrees(-20, 30)).Parent(5)
	c := CellFromCellID(id)

	v0, v1, v2 := c.Vertex(0), c.Vertex(1), c.Vertex(2)
	e1 := v1.Add(v0.Mul(-1))
	e2 := v2.Add(v1.Mul(-1))
	assert.Greater(t, e1.Cross(e2).Dot(v1), 0.0)
}
