// SPDX-License-Identifier: MIT
//
// File: dump.go
// Role: Implementation-independent enumeration and diagnostic text.
// Determinism:
//   - Vertices and edges are ordered by their fmt.Sprint form, so both
//     implementations render the same graph identically.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// SortedVertices returns g's vertices ordered by their fmt.Sprint form.
// Complexity: O(V log V).
func SortedVertices[V comparable](g Graph[V]) []V {
	vs := make([]V, 0)
	for v := range g.Vertices() {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return fmt.Sprint(vs[i]) < fmt.Sprint(vs[j]) })

	return vs
}

// EdgeList returns every edge of g, ordered by source then target.
// It only uses the Graph contract, so it works on any implementation.
// Complexity: O(V·T + E log E) where T is the cost of one Targets call.
func EdgeList[V comparable](g Graph[V]) []Edge[V] {
	var out []Edge[V]
	for _, from := range SortedVertices(g) {
		targets := g.Targets(from)
		tos := make([]V, 0, len(targets))
		for to := range targets {
			tos = append(tos, to)
		}
		sort.Slice(tos, func(i, j int) bool { return fmt.Sprint(tos[i]) < fmt.Sprint(tos[j]) })
		for _, to := range tos {
			out = append(out, Edge[V]{From: from, To: to, Weight: targets[to]})
		}
	}

	return out
}

// Dump renders g as free-form diagnostic text:
//
//	Vertices: [a b c]
//	Edges:
//	  a -> b (2)
//	  b -> c (1)
func Dump[V comparable](g Graph[V]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vertices: %v\nEdges:\n", SortedVertices(g))
	for _, e := range EdgeList(g) {
		sb.WriteString("  ")
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
