// Package corpus turns a text corpus into the word-adjacency graph used by
// the poet package.
//
// The package offers the following key components:
//
//   - Reading:
//     – ReadTokens:  whitespace tokenization of an io.Reader, in reading order.
//     – Load/LoadFile: read + Build in one all-or-nothing step.
//   - Building:
//     – Build:       one linear pass over the tokens producing a Corpus.
//     – Corpus:      the built graph, its CaseMap and the token count.
//     – CaseMap:     canonical lowercase word → first-seen original spelling.
//   - Configuration primitives:
//     – Option:      functional options (WithGraph, WithKind, WithLogger).
//
// Graph model:
//
// Every distinct lowercase token is a vertex. For each adjacent token pair
// (w1, w2) in the corpus the edge lower(w1)→lower(w2) carries the number of
// times w1 was immediately followed by w2. A word repeated back to back
// yields a self-loop.
//
// Guarantees:
//
//   - All-or-nothing: on any error no Corpus is returned.
//   - First spelling wins: later occurrences never overwrite a CaseMap entry.
//   - The built Corpus is never mutated again; share it read-only.
//   - Fast-fail on nil option arguments via panics in option constructors.
package corpus
