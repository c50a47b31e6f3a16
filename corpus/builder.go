// SPDX-License-Identifier: MIT
// Package: graphpoet/corpus
//
// builder.go: the single linear pass from tokens to Corpus.

package corpus

import (
	"strings"

	"github.com/katalvlaran/graphpoet/core"
)

// Corpus is a built word-adjacency graph plus its case-recovery table.
// It is immutable by contract: nothing in this module mutates it after Build.
type Corpus struct {
	// Graph holds one vertex per canonical word and bigram counts as weights.
	Graph core.Graph[string]

	// Cases recovers the first-seen spelling of each canonical word.
	Cases CaseMap

	// Tokens is the number of tokens consumed.
	Tokens int
}

// Build consumes tokens in order and returns the populated Corpus.
//
// Implementation (per token, in order):
//   - Stage 1: Canonicalize with strings.ToLower.
//   - Stage 2: AddVertex(canonical) (idempotent).
//   - Stage 3: Record the original spelling if canonical is new.
//   - Stage 4: If a previous token exists, read Targets(prev)[canonical],
//     add 1 and write it back with SetEdge.
//   - Stage 5: Advance the previous-token cursor.
//
// Errors:
//   - ErrEmptyToken: some token is "".
//   - any core error from the graph (wrapped); none arise from valid tokens.
//
// On error the partially built graph is dropped and nil is returned.
//
// Complexity: O(N·T) where T is the cost of one Targets+SetEdge pair
// (O(deg) for VerticesGraph, O(E) for EdgesGraph).
func Build(tokens []string, opts ...Option) (*Corpus, error) {
	cfg := newConfig(opts...)
	g := cfg.newGraph()
	spellings := make(map[string]string)

	// canonical forms are never empty, so "" marks "no previous token"
	prev := ""
	for i, tok := range tokens {
		if tok == "" {
			return nil, corpusErrorf(MethodBuild, "token %d: %w", i, ErrEmptyToken)
		}

		canonical := strings.ToLower(tok)
		if _, err := g.AddVertex(canonical); err != nil {
			return nil, corpusErrorf(MethodBuild, "token %d %q: %w", i, tok, err)
		}
		if _, seen := spellings[canonical]; !seen {
			spellings[canonical] = tok
		}

		if prev != "" {
			count := g.Targets(prev)[canonical]
			if _, err := g.SetEdge(prev, canonical, count+1); err != nil {
				return nil, corpusErrorf(MethodBuild, "edge %q->%q: %w", prev, canonical, err)
			}
		}
		prev = canonical
	}

	cfg.logger.Debug("corpus graph built",
		"tokens", len(tokens),
		"vertices", g.Vertices().Len(),
		"spellings", len(spellings))

	return &Corpus{
		Graph:  g,
		Cases:  CaseMap{spellings: spellings},
		Tokens: len(tokens),
	}, nil
}
