// SPDX-License-Identifier: MIT
//
// File: vertices_graph.go
// Role: Vertex-centric Graph implementation with adjacency embedded in each vertex.
//
// Representation:
//   - index: vertex value → *vertex record.
//   - each record keeps sources (in-edges) and targets (out-edges) with weights.
// Invariants (checkRep):
//   - every record is indexed under its own label;
//   - every weight is > 0 and every neighbour is a vertex;
//   - u.targets[v] == w  ⇔  v.sources[u] == w (the two halves mirror each other).
// Complexity:
//   - SetEdge/AddVertex O(1); RemoveVertex O(deg(v)); Sources/Targets O(deg).

package core

import "fmt"

// vertex is one record of a VerticesGraph.
type vertex[V comparable] struct {
	label   V
	sources map[V]int
	targets map[V]int
}

func newVertex[V comparable](label V) *vertex[V] {
	return &vertex[V]{
		label:   label,
		sources: make(map[V]int),
		targets: make(map[V]int),
	}
}

// setTarget writes or (weight == 0) clears one out-edge and returns the previous weight.
func (x *vertex[V]) setTarget(target V, weight int) int {
	return setWeight(x.targets, target, weight)
}

// setSource is the in-edge mirror of setTarget.
func (x *vertex[V]) setSource(source V, weight int) int {
	return setWeight(x.sources, source, weight)
}

func setWeight[V comparable](m map[V]int, key V, weight int) int {
	prev := m[key]
	if weight == 0 {
		delete(m, key)
	} else {
		m[key] = weight
	}

	return prev
}

// VerticesGraph keeps one record per vertex, each embedding its own adjacency.
type VerticesGraph[V comparable] struct {
	index map[V]*vertex[V]
}

var _ Graph[string] = (*VerticesGraph[string])(nil)

// NewVerticesGraph returns an empty VerticesGraph.
func NewVerticesGraph[V comparable]() *VerticesGraph[V] {
	g := &VerticesGraph[V]{index: make(map[V]*vertex[V])}
	g.checkRep()

	return g
}

// AddVertex inserts v if missing and reports whether it was added.
//
// Errors:
//   - ErrEmptyVertex: v is the zero value.
func (g *VerticesGraph[V]) AddVertex(v V) (bool, error) {
	if isZero(v) {
		return false, ErrEmptyVertex
	}
	if _, ok := g.index[v]; ok {
		return false, nil
	}
	x := newVertex(v)
	g.index[v] = x
	g.checkRecords(x)

	return true, nil
}

// SetEdge creates, overwrites or removes the edge source→target.
//
// Implementation:
//   - Stage 1: Validate endpoints and weight.
//   - Stage 2: Resolve records; for weight > 0 create missing ones (a self-loop
//     shares one record for both ends).
//   - Stage 3: Write the out-edge on source and the mirrored in-edge on target.
//
// Returns the weight before the call (0 if the edge did not exist).
//
// Errors:
//   - ErrEmptyVertex, ErrNegativeWeight.
func (g *VerticesGraph[V]) SetEdge(source, target V, weight int) (int, error) {
	if isZero(source) || isZero(target) {
		return 0, ErrEmptyVertex
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}

	src, srcOK := g.index[source]
	tgt, tgtOK := g.index[target]
	if weight == 0 && (!srcOK || !tgtOK) {
		// nothing to delete
		return 0, nil
	}
	if !srcOK {
		src = newVertex(source)
		g.index[source] = src
	}
	if !tgtOK {
		if target == source {
			tgt = src
		} else {
			tgt = newVertex(target)
			g.index[target] = tgt
		}
	}

	prev := src.setTarget(target, weight)
	tgt.setSource(source, weight)
	g.checkRecords(src, tgt)

	return prev, nil
}

// RemoveVertex deletes v and unlinks it from each neighbour record.
func (g *VerticesGraph[V]) RemoveVertex(v V) bool {
	x, ok := g.index[v]
	if !ok {
		return false
	}
	neighbours := make([]*vertex[V], 0, len(x.sources)+len(x.targets))
	for s := range x.sources {
		if n := g.index[s]; n != x {
			delete(n.targets, v)
			neighbours = append(neighbours, n)
		}
	}
	for t := range x.targets {
		if n := g.index[t]; n != x {
			delete(n.sources, v)
			neighbours = append(neighbours, n)
		}
	}
	delete(g.index, v)
	g.checkRecords(neighbours...)

	return true
}

// Vertices returns a copy of the vertex set.
func (g *VerticesGraph[V]) Vertices() Set[V] {
	out := make(Set[V], len(g.index))
	for v := range g.index {
		out[v] = struct{}{}
	}

	return out
}

// Sources copies target's in-edges.
func (g *VerticesGraph[V]) Sources(target V) map[V]int {
	if x, ok := g.index[target]; ok {
		return copyWeights(x.sources)
	}

	return make(map[V]int)
}

// Targets copies source's out-edges.
func (g *VerticesGraph[V]) Targets(source V) map[V]int {
	if x, ok := g.index[source]; ok {
		return copyWeights(x.targets)
	}

	return make(map[V]int)
}

// String renders the diagnostic dump (see Dump).
func (g *VerticesGraph[V]) String() string { return Dump[V](g) }

func copyWeights[V comparable](m map[V]int) map[V]int {
	out := make(map[V]int, len(m))
	for k, w := range m {
		out[k] = w
	}

	return out
}

// checkRep panics when the representation invariant is broken anywhere in the graph.
func (g *VerticesGraph[V]) checkRep() {
	for _, x := range g.index {
		g.checkRecords(x)
	}
}

// checkRecords verifies the invariant locally around the given records.
// Mutations only touch these records, so this keeps every operation O(deg).
func (g *VerticesGraph[V]) checkRecords(xs ...*vertex[V]) {
	for _, x := range xs {
		label := x.label
		if g.index[label] != x {
			panic(fmt.Sprintf("core: VerticesGraph rep: record for %v is missing or mislabelled", label))
		}
		for t, w := range x.targets {
			n, ok := g.index[t]
			if !ok || w <= 0 {
				panic(fmt.Sprintf("core: VerticesGraph rep: bad out-edge %v -> %v (%d)", label, t, w))
			}
			if n.sources[label] != w {
				panic(fmt.Sprintf("core: VerticesGraph rep: out-edge %v -> %v not mirrored", label, t))
			}
		}
		for s, w := range x.sources {
			n, ok := g.index[s]
			if !ok || w <= 0 {
				panic(fmt.Sprintf("core: VerticesGraph rep: bad in-edge %v -> %v (%d)", s, label, w))
			}
			if n.targets[label] != w {
				panic(fmt.Sprintf("core: VerticesGraph rep: in-edge %v -> %v not mirrored", s, label))
			}
		}
	}
}
