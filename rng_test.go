package cellgo

import "math/rand"

// testRNG is a seeded source of random cells for white-box tests. The
// exported equivalent lives in the testutil package, which cannot be used
// here without an import cycle.
type testRNG struct {
	r *rand.Rand
}

func newTestRNG(seed int64) *testRNG {
	return &testRNG{r: rand.New(rand.NewSource(seed))}
}

func (t *testRNG) intn(n int) int { return t.r.Intn(n) }

func (t *testRNG) cellIDAtLevel(level int) CellID {
	face := t.r.Intn(NumFaces)
	pos := t.r.Uint64() & ((1 << posBits) - 1)
	return CellIDFromFacePosLevel(face, pos, level)
}

func (t *testRNG) cellID() CellID {
	return t.cellIDAtLevel(t.r.Intn(MaxLevel + 1))
}

func (t *testRNG) cellIDs(n int) []CellID {
	ids := make([]CellID, n)
	for i := range ids {
		ids[i] = t.cellID()
	}
	return ids
}
