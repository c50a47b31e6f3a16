// Package graphpoet builds a weighted word-adjacency graph from a corpus and
// uses it to weave "bridge words" into new sentences.
//
// What is graphpoet?
//
//	A small, dependency-light toolkit that brings together:
//		• core/   – a generic weighted directed Graph contract with two
//		            interchangeable implementations (edge list, vertex records)
//		• corpus/ – tokens → graph of bigram counts + first-seen spellings
//		• poet/   – bridge-word insertion over the built graph
//		• cmd/graphpoet – a CLI (poem, dump) configured by YAML, .env and flags
//
// Quick example:
//
//	corpus: "This is a test of the Mugar Omni Theater sound system."
//
//	    test ──1──▶ of ──1──▶ the
//
//	input:  "Test the system."
//	output: "Test of the system."
//
// The graph is built once and then only read; share it freely between
// goroutines as long as nobody mutates it.
//
//	go install github.com/katalvlaran/graphpoet/cmd/graphpoet@latest
package graphpoet
