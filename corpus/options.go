// SPDX-License-Identifier: MIT
// Package: graphpoet/corpus
//
// options.go: functional options for Build/Load/LoadFile.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil
//     factories, nil loggers, unknown kinds); Build itself never panics.
//   • Later options override earlier ones.
//
// Deterministic defaults:
//   • graph  = core.NewVerticesGraph[string] (O(1) edge updates)
//   • logger = discard

package corpus

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/graphpoet/core"
)

// Option customizes how a Corpus is built.
type Option func(*config)

// config aggregates all knobs used by Build.
type config struct {
	newGraph func() core.Graph[string]
	logger   *log.Logger
}

// newConfig applies opts over the defaults in order.
func newConfig(opts ...Option) config {
	cfg := config{
		newGraph: func() core.Graph[string] { return core.NewVerticesGraph[string]() },
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGraph supplies the constructor for the empty graph Build fills.
// Panics on nil.
func WithGraph(newGraph func() core.Graph[string]) Option {
	if newGraph == nil {
		panic("corpus: WithGraph(nil)")
	}
	return func(c *config) { c.newGraph = newGraph }
}

// WithKind selects the graph implementation by name.
// Panics if kind is not one of core.Kinds().
func WithKind(kind core.Kind) Option {
	if _, err := core.New[string](kind); err != nil {
		panic("corpus: WithKind(" + string(kind) + "): " + err.Error())
	}
	return func(c *config) {
		c.newGraph = func() core.Graph[string] {
			g, _ := core.New[string](kind)
			return g
		}
	}
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("corpus: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
