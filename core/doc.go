// Package core defines the weighted directed Graph contract and its two
// interchangeable implementations.
//
// The Graph G = (V,E) is generic over any comparable vertex type:
//
//   - At most one edge per ordered pair (source, target); self-loops allowed.
//   - Edge weights are strictly positive ints; SetEdge(s, t, 0) deletes.
//   - A positive SetEdge adds missing endpoints implicitly.
//   - The zero value of V is never a vertex (ErrEmptyVertex).
//
// Implementations:
//
//	EdgesGraph[V]    – vertex set + flat edge list (edge-centric).
//	                   Edge operations scan the list: O(E).
//	VerticesGraph[V] – one record per vertex embedding its in/out weights
//	                   (vertex-centric). Edge operations are O(1).
//
// Both satisfy the same contract and are verified by one shared conformance
// suite, plus a randomized replay that checks they stay observably identical.
// Pick one by name with New(KindEdges) / New(KindVertices).
//
// Core Methods:
//
//	AddVertex(v V) (bool, error)                       // true iff newly added
//	SetEdge(source, target V, weight int) (int, error) // previous weight
//	RemoveVertex(v V) bool                             // cascades to incident edges
//	Vertices() Set[V]                                  // snapshot copy
//	Sources(target V) map[V]int                        // in-edges, fresh map
//	Targets(source V) map[V]int                        // out-edges, fresh map
//
// Errors:
//
//	ErrInvalidArgument – class of every rejected argument
//	ErrEmptyVertex     – zero-value vertex (is ErrInvalidArgument)
//	ErrNegativeWeight  – weight < 0        (is ErrInvalidArgument)
//	ErrUnknownKind     – New with an unknown Kind
//
// Concurrency: graphs carry no locks. Build on one goroutine, then share
// read-only; concurrent readers are safe only while nobody mutates.
//
// Representation invariants are checked after every mutation; a violation
// panics because it can only come from a bug inside this package.
package core
