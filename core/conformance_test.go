// SPDX-License-Identifier: MIT
// Package core_test verifies the Graph contract against every implementation.
//
// Testing strategy:
//
//	Vertices():  initially empty; after one/many adds; after removal; snapshot isolation.
//	AddVertex(): true for new, false for duplicate, ErrEmptyVertex for zero value.
//	RemoveVertex(): existing, missing, with in/out edges, with self-loop.
//	SetEdge():   new edge, overwrite, delete (weight 0), delete missing, self-loop,
//	             endpoint auto-creation, negative weight, empty endpoints.
//	Sources()/Targets(): none, one, many, absent vertex, result isolation.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphpoet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_VerticesInitiallyEmpty(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		assert.Equal(t, core.NewSet[string](), g.Vertices())
		assert.Equal(t, 0, g.Vertices().Len())
	})
}

func TestGraph_AddVertex(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()

		added, err := g.AddVertex(VertexA)
		require.NoError(t, err)
		assert.True(t, added, "first AddVertex(A) must report added")
		assert.Equal(t, core.NewSet(VertexA), g.Vertices())

		added, err = g.AddVertex(VertexA)
		require.NoError(t, err)
		assert.False(t, added, "duplicate AddVertex(A) must report not added")
		assert.Equal(t, 1, g.Vertices().Len())

		added, err = g.AddVertex(VertexB)
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, core.NewSet(VertexA, VertexB), g.Vertices())
	})
}

func TestGraph_AddVertexEmpty(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()

		added, err := g.AddVertex(VertexEmpty)
		assert.False(t, added)
		assert.ErrorIs(t, err, core.ErrEmptyVertex)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
		assert.Equal(t, 0, g.Vertices().Len())
	})
}

func TestGraph_AddVertexAfterRemove(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.AddVertex(VertexA)
		require.True(t, g.RemoveVertex(VertexA))

		added, err := g.AddVertex(VertexA)
		require.NoError(t, err)
		assert.True(t, added, "a removed vertex counts as new again")
	})
}

func TestGraph_RemoveVertex(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.AddVertex(VertexA)

		assert.True(t, g.RemoveVertex(VertexA))
		assert.Equal(t, core.NewSet[string](), g.Vertices())

		assert.False(t, g.RemoveVertex(VertexA), "second removal is a no-op")
		assert.False(t, g.RemoveVertex(VertexZ), "missing vertex")
		assert.False(t, g.RemoveVertex(VertexEmpty), "empty vertex")
	})
}

func TestGraph_RemoveVertexCascades(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, err := g.SetEdge(VertexA, VertexB, Weight5) // outgoing
		require.NoError(t, err)
		_, err = g.SetEdge(VertexC, VertexA, Weight4) // incoming
		require.NoError(t, err)
		_, err = g.SetEdge(VertexA, VertexA, Weight2) // self-loop
		require.NoError(t, err)
		_, err = g.SetEdge(VertexB, VertexC, Weight3) // unrelated
		require.NoError(t, err)

		require.True(t, g.RemoveVertex(VertexA))

		assert.False(t, g.Vertices().Contains(VertexA))
		assert.Empty(t, g.Sources(VertexA))
		assert.Empty(t, g.Targets(VertexA))
		for v := range g.Vertices() {
			assert.NotContains(t, g.Sources(v), VertexA, "Sources(%s) mentions removed vertex", v)
			assert.NotContains(t, g.Targets(v), VertexA, "Targets(%s) mentions removed vertex", v)
		}
		assert.Equal(t, weights{VertexC: Weight3}, g.Targets(VertexB), "unrelated edge survives")
	})
}

func TestGraph_SetEdgeNew(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()

		prev, err := g.SetEdge(VertexA, VertexB, Weight3)
		require.NoError(t, err)
		assert.Equal(t, 0, prev)
		assert.Equal(t, weights{VertexB: Weight3}, g.Targets(VertexA))
		assert.Equal(t, weights{VertexA: Weight3}, g.Sources(VertexB))
	})
}

func TestGraph_SetEdgeOverwrite(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.SetEdge(VertexA, VertexB, Weight3)

		prev, err := g.SetEdge(VertexA, VertexB, Weight7)
		require.NoError(t, err)
		assert.Equal(t, Weight3, prev)
		assert.Equal(t, weights{VertexB: Weight7}, g.Targets(VertexA))
		assert.Equal(t, weights{VertexA: Weight7}, g.Sources(VertexB))
	})
}

func TestGraph_SetEdgeDelete(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.SetEdge(VertexA, VertexB, Weight3)

		prev, err := g.SetEdge(VertexA, VertexB, Weight0)
		require.NoError(t, err)
		assert.Equal(t, Weight3, prev)
		assert.Empty(t, g.Targets(VertexA))
		assert.Empty(t, g.Sources(VertexB))
		assert.Equal(t, core.NewSet(VertexA, VertexB), g.Vertices(), "deleting an edge keeps its endpoints")

		prev, err = g.SetEdge(VertexA, VertexB, Weight0)
		require.NoError(t, err)
		assert.Equal(t, 0, prev, "deleting a missing edge returns 0")
	})
}

func TestGraph_SetEdgeDeleteUnknownEndpoints(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.AddVertex(VertexA)

		prev, err := g.SetEdge(VertexA, VertexX, Weight0)
		require.NoError(t, err)
		assert.Equal(t, 0, prev)
		assert.Equal(t, core.NewSet(VertexA), g.Vertices(), "the removal path never creates vertices")

		empty := newGraph()
		prev, err = empty.SetEdge(VertexX, VertexY, Weight0)
		require.NoError(t, err)
		assert.Equal(t, 0, prev)
		assert.Equal(t, 0, empty.Vertices().Len(), "neither endpoint is added")
		assert.Empty(t, empty.Targets(VertexX))
		assert.Empty(t, empty.Sources(VertexY))
	})
}

func TestGraph_SetEdgeAutoCreatesVertices(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()

		_, err := g.SetEdge(VertexX, VertexY, Weight10)
		require.NoError(t, err)
		assert.Equal(t, core.NewSet(VertexX, VertexY), g.Vertices())
	})
}

func TestGraph_SetEdgeSelfLoop(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()

		prev, err := g.SetEdge(VertexA, VertexA, Weight5)
		require.NoError(t, err)
		assert.Equal(t, 0, prev)
		assert.Equal(t, core.NewSet(VertexA), g.Vertices())
		assert.Equal(t, weights{VertexA: Weight5}, g.Targets(VertexA))
		assert.Equal(t, weights{VertexA: Weight5}, g.Sources(VertexA))

		prev, err = g.SetEdge(VertexA, VertexA, Weight0)
		require.NoError(t, err)
		assert.Equal(t, Weight5, prev)
		assert.Empty(t, g.Targets(VertexA))
		assert.Empty(t, g.Sources(VertexA))
	})
}

func TestGraph_SetEdgeInvalidArguments(t *testing.T) {
	cases := []struct {
		name           string
		source, target string
		weight         int
		want           error
	}{
		{name: "negative weight", source: VertexA, target: VertexB, weight: -1, want: core.ErrNegativeWeight},
		{name: "empty source", source: VertexEmpty, target: VertexB, weight: Weight2, want: core.ErrEmptyVertex},
		{name: "empty target", source: VertexA, target: VertexEmpty, weight: Weight2, want: core.ErrEmptyVertex},
		{name: "empty source on delete", source: VertexEmpty, target: VertexB, weight: Weight0, want: core.ErrEmptyVertex},
	}

	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				g := newGraph()
				_, _ = g.SetEdge(VertexA, VertexB, Weight3)

				prev, err := g.SetEdge(tc.source, tc.target, tc.weight)
				assert.Equal(t, 0, prev)
				assert.ErrorIs(t, err, tc.want)
				assert.True(t, errors.Is(err, core.ErrInvalidArgument), "every argument error is ErrInvalidArgument")
				assert.Equal(t, weights{VertexB: Weight3}, g.Targets(VertexA), "rejected call must not mutate")
				assert.Equal(t, core.NewSet(VertexA, VertexB), g.Vertices())
			})
		}
	})
}

func TestGraph_SourcesTargets(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.AddVertex(VertexC)
		_, _ = g.SetEdge(VertexX, VertexA, Weight3)
		_, _ = g.SetEdge(VertexY, VertexA, Weight7)
		_, _ = g.SetEdge(VertexA, VertexX, Weight2)
		_, _ = g.SetEdge(VertexA, VertexY, Weight6)

		// none
		assert.Empty(t, g.Sources(VertexC))
		assert.Empty(t, g.Targets(VertexC))
		// one
		assert.Equal(t, weights{VertexA: Weight2}, g.Sources(VertexX))
		assert.Equal(t, weights{VertexA: Weight3}, g.Targets(VertexX))
		// many
		assert.Equal(t, weights{VertexX: Weight3, VertexY: Weight7}, g.Sources(VertexA))
		assert.Equal(t, weights{VertexX: Weight2, VertexY: Weight6}, g.Targets(VertexA))
		// absent vertex
		assert.NotNil(t, g.Sources(VertexZ))
		assert.Empty(t, g.Sources(VertexZ))
		assert.NotNil(t, g.Targets(VertexZ))
		assert.Empty(t, g.Targets(VertexZ))
	})
}

func TestGraph_ResultsAreCopies(t *testing.T) {
	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.SetEdge(VertexA, VertexB, Weight3)

		vs := g.Vertices()
		vs[VertexZ] = struct{}{}
		delete(vs, VertexA)

		ts := g.Targets(VertexA)
		ts[VertexB] = Weight10
		ts[VertexZ] = Weight2

		ss := g.Sources(VertexB)
		delete(ss, VertexA)

		assert.Equal(t, core.NewSet(VertexA, VertexB), g.Vertices())
		assert.Equal(t, weights{VertexB: Weight3}, g.Targets(VertexA))
		assert.Equal(t, weights{VertexA: Weight3}, g.Sources(VertexB))
	})
}

func TestGraph_DumpIsDeterministic(t *testing.T) {
	const want = "Vertices: [A B C]\nEdges:\n  A -> A (5)\n  A -> B (3)\n  C -> A (2)\n"

	forEachImplementation(t, func(t *testing.T, newGraph func() core.Graph[string]) {
		g := newGraph()
		_, _ = g.SetEdge(VertexC, VertexA, Weight2)
		_, _ = g.SetEdge(VertexA, VertexB, Weight3)
		_, _ = g.SetEdge(VertexA, VertexA, Weight5)

		assert.Equal(t, want, g.String())
		assert.Equal(t, []core.Edge[string]{
			{From: VertexA, To: VertexA, Weight: Weight5},
			{From: VertexA, To: VertexB, Weight: Weight3},
			{From: VertexC, To: VertexA, Weight: Weight2},
		}, core.EdgeList(g))
	})
}
