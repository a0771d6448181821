package cellgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cellgo"
	"github.com/hupe1980/cellgo/testutil"
)

func TestNormalizeOrderIndependent(t *testing.T) {
	rng := testutil.NewRNG(7)

	for trial := 0; trial < 50; trial++ {
		ids := rng.CellIDs(20)

		a := cellgo.NewCellUnion(ids...)
		rng.Shuffle(ids)
		b := cellgo.NewCellUnion(ids...)

		assert.True(t, a.Equal(b))
	}
}

func TestNormalizedUnionContainsInputs(t *testing.T) {
	rng := testutil.NewRNG(11)

	for trial := 0; trial < 50; trial++ {
		ids := rng.CellIDs(15)
		cu := cellgo.NewCellUnion(ids...)

		require.NoError(t, cu.Validate())
		for _, id := range ids {
			assert.True(t, cu.ContainsCellID(id))
		}
	}
}

func TestDescendantsAbsorbed(t *testing.T) {
	rng := testutil.NewRNG(23)

	for trial := 0; trial < 50; trial++ {
		parent := rng.CellIDAtLevel(rng.Intn(cellgo.MaxLevel))
		ids := []cellgo.CellID{parent}
		for i := 0; i < 5; i++ {
			ids = append(ids, rng.Descendant(parent))
		}
		rng.Shuffle(ids)

		cu := cellgo.NewCellUnion(ids...)
		assert.Equal(t, cellgo.CellUnion{parent}, cu)
	}
}

func TestDenormalizeRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(31)

	for trial := 0; trial < 25; trial++ {
		cu := cellgo.NewCellUnion(rng.CellIDs(10)...)

		expanded, err := cu.Denormalize(0, 1)
		require.NoError(t, err)

		back := cellgo.NewCellUnion(expanded...)
		assert.True(t, cu.Equal(back))
		assert.Equal(t, cu.LeafCellsCovered(), back.LeafCellsCovered())
	}
}

func TestRandomLocationsCovered(t *testing.T) {
	rng := testutil.NewRNG(43)

	for trial := 0; trial < 50; trial++ {
		ll := rng.LatLng()
		leaf := cellgo.CellIDFromLatLng(ll)
		require.True(t, leaf.IsValid())

		cu := cellgo.NewCellUnion(leaf.Parent(rng.Intn(cellgo.MaxLevel + 1)))
		assert.True(t, cu.ContainsCellID(leaf))
		assert.True(t, cu.ContainsPoint(cellgo.PointFromLatLng(ll)))
	}
}
