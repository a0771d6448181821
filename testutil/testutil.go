package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/cellgo"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// CellIDAtLevel returns a random valid cell ID at the given level.
func (r *RNG) CellIDAtLevel(level int) cellgo.CellID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cellIDAtLevel(level)
}

func (r *RNG) cellIDAtLevel(level int) cellgo.CellID {
	face := r.rand.Intn(cellgo.NumFaces)
	pos := r.rand.Uint64() & ((1 << (2*cellgo.MaxLevel + 1)) - 1)
	return cellgo.CellIDFromFacePosLevel(face, pos, level)
}

// CellID returns a random valid cell ID at a uniformly random level.
func (r *RNG) CellID() cellgo.CellID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cellIDAtLevel(r.rand.Intn(cellgo.MaxLevel + 1))
}

// CellIDs returns n independent random cell IDs. Locks only once per call.
func (r *RNG) CellIDs(n int) []cellgo.CellID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]cellgo.CellID, n)
	for i := range ids {
		ids[i] = r.cellIDAtLevel(r.rand.Intn(cellgo.MaxLevel + 1))
	}
	return ids
}

// Descendant returns a random strict descendant of id, which must not be a
// leaf cell.
func (r *RNG) Descendant(id cellgo.CellID) cellgo.CellID {
	r.mu.Lock()
	defer r.mu.Unlock()
	level := id.Level() + 1 + r.rand.Intn(cellgo.MaxLevel-id.Level())
	target := id
	for target.Level() < level {
		target = target.Children()[r.rand.Intn(4)]
	}
	return target
}

// LatLng returns a random valid latitude/longitude pair.
func (r *RNG) LatLng() cellgo.LatLng {
	r.mu.Lock()
	defer r.mu.Unlock()
	lat := r.rand.Float64()*180 - 90
	lng := r.rand.Float64()*360 - 180
	return cellgo.LatLngFromDegrees(lat, lng)
}

// Shuffle permutes the given cell IDs in place.
func (r *RNG) Shuffle(ids []cellgo.CellID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
