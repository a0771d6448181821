// Package cellgo provides hierarchical sphere-cell unions for spatial
// indexing in Go.
//
// The surface of the unit sphere is subdivided into six root faces, each
// recursively split into four children down to a fixed maximum depth. Every
// node of this quad-tree is named by a 64-bit CellID whose lowest set bit
// encodes its depth. A region on the sphere is approximated by a CellUnion:
// a sorted, non-overlapping, maximally coalesced set of cell IDs.
//
// # Quick Start
//
//	// Cover a point at a few levels.
//	id := cellgo.CellIDFromLatLng(cellgo.LatLngFromDegrees(52.52, 13.405))
//	union := cellgo.NewCellUnion(id.Parent(10), id.Parent(12), id.Parent(11))
//
//	// The union is canonical: sorted, no cell contains another, and any
//	// four sibling cells have been replaced by their parent.
//	union.ContainsCellID(id.Parent(12)) // true
//
// # Canonical Form
//
// NewCellUnion normalizes its input immediately. Normalize is idempotent:
// re-normalizing an already canonical union reports no change and leaves the
// cells untouched. Denormalize is the structural inverse, expanding a
// canonical union so every cell satisfies a minimum level and level stride:
//
//	expanded, err := union.Denormalize(10, 2) // levels 10, 12, 14, ...
//
// # Set Algebra
//
// Unions compose without any explicit geometry, using only the hierarchical
// order of their IDs:
//
//	both := cellgo.CellUnionFromIntersection(a, b)
//	all := cellgo.CellUnionFromUnion(a, b)
//	rest := cellgo.CellUnionFromDifference(a, b)
//
// # Region Bounds
//
// CellUnion and Cell implement the Region interface, yielding conservative
// latitude/longitude rectangle and spherical cap bounds for fast pre-filters
// in front of exact geometry.
//
// All types in this package are pure values. Operations are synchronous,
// allocate no background resources, and are safe for concurrent use as long
// as a single CellUnion value is not normalized while another goroutine
// reads it.
package cellgo
