package cellgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellIDFromFace(t *testing.T) {
	for f := 0; f < NumFaces; f++ {
		id := CellIDFromFace(f)
		require.True(t, id.IsValid())
		assert.Equal(t, f, id.Face())
		assert.Equal(t, 0, id.Level())
		assert.True(t, id.IsFace())
		assert.False(t, id.IsLeaf())
	}
}

func TestCellIDLevel(t *testing.T) {
	id := CellIDFromFace(3)
	for level := 0; level <= MaxLevel; level++ {
		child := id.ChildBeginAtLevel(level)
		require.True(t, child.IsValid())
		assert.Equal(t, level, child.Level())
		assert.Equal(t, id, child.Parent(0))
	}
}

func TestCellIDParentChildRelationship(t *testing.T) {
	id := CellIDFromFacePosLevel(3, 0x12345678, MaxLevel-4)
	require.True(t, id.IsValid())

	assert.Equal(t, id, id.ChildBegin().Parent(id.Level()))
	assert.Equal(t, id, id.Children()[3].immediateParent())
	assert.True(t, id.ChildBegin() < id.ChildEnd())
	assert.Equal(t, id.ChildBegin().Level(), id.Level()+1)

	// The four children partition the parent's leaf range. Leaf IDs are odd
	// values spaced 2 apart, so adjacent ranges differ by 2.
	ch := id.Children()
	assert.Equal(t, id.RangeMin(), ch[0].RangeMin())
	assert.Equal(t, id.RangeMax(), ch[3].RangeMax())
	for i := 0; i < 3; i++ {
		assert.Equal(t, ch[i+1], ch[i].Next())
		assert.Equal(t, uint64(ch[i].RangeMax())+2, uint64(ch[i+1].RangeMin()))
	}
}

func TestCellIDSiblingXORInvariant(t *testing.T) {
	// The first three of any four siblings XOR to the fourth. Normalize
	// relies on this as its fast sibling-group test.
	ids := []CellID{
		CellIDFromFace(0).ChildBegin(),
		CellIDFromFacePosLevel(2, 0x7856341200000000, 10),
		CellIDFromFacePosLevel(5, 0x12345678, MaxLevel-1),
	}
	for _, parent := range ids {
		ch := parent.Children()
		assert.Equal(t, ch[3], ch[0]^ch[1]^ch[2])
	}
}

func TestCellIDContainment(t *testing.T) {
	a := CellIDFromFace(1)
	b := a.ChildBeginAtLevel(5)
	c := b.ChildBeginAtLevel(16)

	tests := []struct {
		name       string
		x, y       CellID
		contains   bool
		intersects bool
	}{
		{"face contains itself", a, a, true, true},
		{"face contains level 5", a, b, true, true},
		{"face contains level 16", a, c, true, true},
		{"level 5 contains level 16", b, c, true, true},
		{"level 16 does not contain level 5", c, b, false, true},
		{"siblings are disjoint", b, b.Next(), false, false},
		{"other face is disjoint", CellIDFromFace(2), b, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, tt.x.Contains(tt.y))
			assert.Equal(t, tt.intersects, tt.x.Intersects(tt.y))
			assert.Equal(t, tt.intersects, tt.y.Intersects(tt.x))
		})
	}
}

func TestCellIDNextPrev(t *testing.T) {
	id := CellIDFromFace(2).ChildBeginAtLevel(8)
	next := id.Next()
	assert.Equal(t, id.Level(), next.Level())
	assert.Equal(t, id, next.Prev())
	assert.True(t, next > id)
	assert.Equal(t, uint64(id.RangeMax())+2, uint64(next.RangeMin()))
}

func TestCellIDChildIteration(t *testing.T) {
	id := CellIDFromFacePosLevel(4, 0x1234, 12)
	var count int
	for ci := id.ChildBeginAtLevel(14); ci != id.ChildEndAtLevel(14); ci = ci.Next() {
		require.True(t, id.Contains(ci))
		assert.Equal(t, 14, ci.Level())
		count++
	}
	assert.Equal(t, 16, count)
}

func TestCellIDTraversalOrderMatchesValueOrder(t *testing.T) {
	// Sorting IDs must equal traversal order at every level.
	for f := 0; f < NumFaces-1; f++ {
		assert.True(t, CellIDFromFace(f) < CellIDFromFace(f+1))
	}
	id := CellIDFromFace(0).ChildBeginAtLevel(2)
	prev := id
	for i := 0; i < 20; i++ {
		next := prev.Next()
		require.True(t, next > prev)
		prev = next
	}
}

func TestCellIDIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   CellID
		want bool
	}{
		{"face cell", CellIDFromFace(0), true},
		{"leaf cell", CellIDFromFace(5).ChildBeginAtLevel(MaxLevel), true},
		{"zero", CellID(0), false},
		{"face out of range", CellID(uint64(6)<<posBits + 1), false},
		{"marker on odd bit", CellID(uint64(2) << posBits >> 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.IsValid())
		})
	}
}

func TestCellIDFromLatLng(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"origin", 0, 0},
		{"berlin", 52.52, 13.405},
		{"sydney", -33.87, 151.21},
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"antimeridian", 0, 180},
		{"west", 37.77, -122.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll := LatLngFromDegrees(tt.lat, tt.lng)
			id := CellIDFromLatLng(ll)
			require.True(t, id.IsValid())
			assert.True(t, id.IsLeaf())

			// The center of the leaf cell is within a leaf diagonal of the
			// original point.
			got := id.LatLng()
			assert.LessOrEqual(t, float64(ll.Distance(got)), MaxDiag.Value(MaxLevel))
		})
	}
}

func TestCellIDLatLngRoundTripAtCoarserLevels(t *testing.T) {
	ll := LatLngFromDegrees(10.5, -42.25)
	leaf := CellIDFromLatLng(ll)
	for level := MaxLevel; level >= 0; level-- {
		id := leaf.Parent(level)
		assert.Equal(t, level, id.Level())
		// The cell center must map back into the same cell.
		assert.True(t, id.Contains(CellIDFromLatLng(id.LatLng())),
			"level %d center escaped its cell", level)
	}
}

func TestCellIDString(t *testing.T) {
	assert.Equal(t, "3/", CellIDFromFace(3).String())
	first := CellIDFromFace(0).ChildBeginAtLevel(3)
	assert.Equal(t, "0/000", first.String())
}

func TestCellIDStringChildPositions(t *testing.T) {
	id := CellIDFromFace(2)
	for _, pos := range []int{0, 3, 1, 2} {
		id = id.Children()[pos]
	}
	assert.Equal(t, "2/0312", id.String())
}
