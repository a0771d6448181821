// Package testutil provides testing utilities for cellgo.
//
// This package is intended for use in tests and benchmarks only. It provides
// seeded random generation of cell IDs, points and cell unions, so
// randomized tests are reproducible from their seed.
//
// # Random Cells
//
//	rng := testutil.NewRNG(seed)
//	id := rng.CellID()                // random valid cell at a random level
//	leaf := rng.CellIDAtLevel(cellgo.MaxLevel)
//	child := rng.Descendant(id)       // strict descendant of id
//
// # Random Unions
//
//	ids := rng.CellIDs(100)           // independent random cells
//	rng.Shuffle(ids)
package testutil
