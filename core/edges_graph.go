// SPDX-License-Identifier: MIT
//
// File: edges_graph.go
// Role: Edge-list-centric Graph implementation.
//
// Representation:
//   - vertices: membership set of every vertex.
//   - edges:    flat list of Edge values, at most one per (From, To).
// Invariants (checkRep):
//   - every edge has Weight > 0;
//   - every edge endpoint is in vertices;
//   - no two edges share (From, To).
// Complexity:
//   - Vertex operations O(1); edge operations O(E) (linear scan of the list).

package core

import "fmt"

// EdgesGraph stores vertices as a set and edges as a flat list.
type EdgesGraph[V comparable] struct {
	vertices map[V]struct{}
	edges    []Edge[V]
}

var _ Graph[string] = (*EdgesGraph[string])(nil)

// NewEdgesGraph returns an empty EdgesGraph.
func NewEdgesGraph[V comparable]() *EdgesGraph[V] {
	g := &EdgesGraph[V]{vertices: make(map[V]struct{})}
	g.checkRep()

	return g
}

// AddVertex inserts v if missing.
//
// Returns:
//   - bool: true iff v was not present before the call.
//
// Errors:
//   - ErrEmptyVertex: v is the zero value.
//
// Complexity: O(1) plus the O(E) representation check.
func (g *EdgesGraph[V]) AddVertex(v V) (bool, error) {
	if isZero(v) {
		return false, ErrEmptyVertex
	}
	if _, ok := g.vertices[v]; ok {
		return false, nil
	}
	g.vertices[v] = struct{}{}
	g.checkRep()

	return true, nil
}

// SetEdge creates, overwrites or removes the edge source→target.
//
// Implementation:
//   - Stage 1: Validate endpoints and weight.
//   - Stage 2: For weight > 0, register both endpoints.
//   - Stage 3: Scan the edge list for (source, target); overwrite or delete in place.
//   - Stage 4: If no edge matched and weight > 0, append a new one.
//
// Returns:
//   - int: the weight before the call (0 if the edge did not exist).
//
// Errors:
//   - ErrEmptyVertex: source or target is the zero value.
//   - ErrNegativeWeight: weight < 0.
//
// Complexity: O(E).
func (g *EdgesGraph[V]) SetEdge(source, target V, weight int) (int, error) {
	if isZero(source) || isZero(target) {
		return 0, ErrEmptyVertex
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}

	if weight > 0 {
		g.vertices[source] = struct{}{}
		g.vertices[target] = struct{}{}
	}

	for i, e := range g.edges {
		if e.From != source || e.To != target {
			continue
		}
		prev := e.Weight
		if weight == 0 {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
		} else {
			g.edges[i] = Edge[V]{From: source, To: target, Weight: weight}
		}
		g.checkRep()

		return prev, nil
	}

	if weight > 0 {
		g.edges = append(g.edges, Edge[V]{From: source, To: target, Weight: weight})
	}
	g.checkRep()

	return 0, nil
}

// RemoveVertex deletes v together with every edge whose From or To is v.
// Complexity: O(E).
func (g *EdgesGraph[V]) RemoveVertex(v V) bool {
	if _, ok := g.vertices[v]; !ok {
		return false
	}
	delete(g.vertices, v)

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From != v && e.To != v {
			kept = append(kept, e)
		}
	}
	// clear the tail so dropped edges do not pin their vertices
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = Edge[V]{}
	}
	g.edges = kept
	g.checkRep()

	return true
}

// Vertices returns a copy of the vertex set.
func (g *EdgesGraph[V]) Vertices() Set[V] {
	out := make(Set[V], len(g.vertices))
	for v := range g.vertices {
		out[v] = struct{}{}
	}

	return out
}

// Sources scans the edge list for edges ending at target. Complexity: O(E).
func (g *EdgesGraph[V]) Sources(target V) map[V]int {
	out := make(map[V]int)
	for _, e := range g.edges {
		if e.To == target {
			out[e.From] = e.Weight
		}
	}

	return out
}

// Targets scans the edge list for edges starting at source. Complexity: O(E).
func (g *EdgesGraph[V]) Targets(source V) map[V]int {
	out := make(map[V]int)
	for _, e := range g.edges {
		if e.From == source {
			out[e.To] = e.Weight
		}
	}

	return out
}

// String renders the diagnostic dump (see Dump).
func (g *EdgesGraph[V]) String() string { return Dump[V](g) }

// checkRep panics when the representation invariant is broken.
// A panic here is always an implementation bug, never a caller error.
func (g *EdgesGraph[V]) checkRep() {
	seen := make(map[[2]V]struct{}, len(g.edges))
	for _, e := range g.edges {
		if e.Weight <= 0 {
			panic(fmt.Sprintf("core: EdgesGraph rep: edge %v has non-positive weight", e))
		}
		if _, ok := g.vertices[e.From]; !ok {
			panic(fmt.Sprintf("core: EdgesGraph rep: edge %v source is not a vertex", e))
		}
		if _, ok := g.vertices[e.To]; !ok {
			panic(fmt.Sprintf("core: EdgesGraph rep: edge %v target is not a vertex", e))
		}
		key := [2]V{e.From, e.To}
		if _, dup := seen[key]; dup {
			panic(fmt.Sprintf("core: EdgesGraph rep: duplicate edge %v", e))
		}
		seen[key] = struct{}{}
	}
}

// isZero reports whether v is the zero value of V, i.e. the absent-marker.
func isZero[V comparable](v V) bool {
	var zero V

	return v == zero
}
