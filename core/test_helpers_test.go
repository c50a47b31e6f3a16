// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core graph tests.
//
// Purpose:
//   - Provide one list of implementations so every contract test runs against both.
//   - Keep vertex labels and weights as named constants (no magic values in test bodies).

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphpoet/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
	VertexY = "Y"
	VertexZ = "Z"
)

// Common weights used across core tests.
const (
	Weight0  = 0
	Weight2  = 2
	Weight3  = 3
	Weight4  = 4
	Weight5  = 5
	Weight6  = 6
	Weight7  = 7
	Weight10 = 10
)

// implementation pairs a display name with a constructor for an empty graph.
type implementation struct {
	name  string
	build func() core.Graph[string]
}

// implementations returns every Graph implementation under test.
// Adding a third implementation here enrolls it in the whole conformance suite.
func implementations() []implementation {
	return []implementation{
		{name: string(core.KindEdges), build: func() core.Graph[string] { return core.NewEdgesGraph[string]() }},
		{name: string(core.KindVertices), build: func() core.Graph[string] { return core.NewVerticesGraph[string]() }},
	}
}

// forEachImplementation runs fn as a subtest once per implementation.
func forEachImplementation(t *testing.T, fn func(t *testing.T, newGraph func() core.Graph[string])) {
	t.Helper()
	for _, impl := range implementations() {
		impl := impl
		t.Run(impl.name, func(t *testing.T) { fn(t, impl.build) })
	}
}

// weights is a literal helper for expected Sources/Targets results.
type weights = map[string]int
