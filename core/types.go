// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph contract, value types (Edge, Set, Kind), sentinel errors and
//       the kind-based constructor.
// Policy:
//   - Both implementations satisfy Graph[V] with identical observable behavior.
//   - Every returned map or set is a fresh copy; callers may mutate it freely.
//   - The zero value of V is the absent-marker and is never a vertex.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the error class for rejected graph arguments.
	// ErrEmptyVertex and ErrNegativeWeight both satisfy errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrEmptyVertex indicates the zero value of V was passed where a vertex is required.
	ErrEmptyVertex = fmt.Errorf("%w: vertex is empty", ErrInvalidArgument)

	// ErrNegativeWeight indicates SetEdge was called with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidArgument)

	// ErrUnknownKind indicates New was asked for an implementation that does not exist.
	ErrUnknownKind = errors.New("core: unknown graph kind")
)

// Graph is a mutable weighted directed graph over comparable vertices.
//
// At most one edge exists per ordered (source, target) pair, self-loops included.
// Edge weights are strictly positive; a weight of zero means "no edge".
//
// Implementations are not safe for concurrent mutation. Concurrent readers are
// fine as long as nobody mutates the graph.
type Graph[V comparable] interface {
	// AddVertex inserts v if absent and reports whether it was added.
	// Returns ErrEmptyVertex if v is the zero value.
	AddVertex(v V) (bool, error)

	// SetEdge sets, overwrites or (weight == 0) removes the edge source→target
	// and returns the previous weight, or 0 if there was no edge.
	// A positive weight adds missing endpoints. The removal path (weight == 0)
	// never creates vertices. Negative weights return ErrNegativeWeight.
	SetEdge(source, target V, weight int) (int, error)

	// RemoveVertex deletes v and every edge touching it.
	// Reports false when v was not a vertex.
	RemoveVertex(v V) bool

	// Vertices returns a snapshot of the vertex set.
	Vertices() Set[V]

	// Sources returns every vertex with an edge into target, mapped to that edge's weight.
	Sources(target V) map[V]int

	// Targets returns every vertex reachable by one edge out of source, mapped to that edge's weight.
	Targets(source V) map[V]int

	// String renders a diagnostic dump of vertices and edges.
	String() string
}

// Edge is an immutable directed edge value.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight int
}

// String renders the edge as "from -> to (weight)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v -> %v (%d)", e.From, e.To, e.Weight)
}

// Set is a snapshot of vertices. It is never shared with a graph.
type Set[V comparable] map[V]struct{}

// NewSet builds a Set holding vs.
func NewSet[V comparable](vs ...V) Set[V] {
	s := make(Set[V], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}

	return s
}

// Contains reports whether v is in the set.
func (s Set[V]) Contains(v V) bool {
	_, ok := s[v]

	return ok
}

// Len returns the number of vertices in the set.
func (s Set[V]) Len() int { return len(s) }

// Kind names a Graph implementation.
type Kind string

const (
	// KindEdges selects EdgesGraph: a vertex set plus a flat edge list.
	KindEdges Kind = "edges"

	// KindVertices selects VerticesGraph: vertex records embedding their own adjacency.
	KindVertices Kind = "vertices"
)

// Kinds lists every known implementation in a stable order.
func Kinds() []Kind { return []Kind{KindEdges, KindVertices} }

// New constructs an empty graph of the requested kind.
//
// Errors:
//   - ErrUnknownKind: kind is not one of Kinds().
func New[V comparable](kind Kind) (Graph[V], error) {
	switch kind {
	case KindEdges:
		return NewEdgesGraph[V](), nil
	case KindVertices:
		return NewVerticesGraph[V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
