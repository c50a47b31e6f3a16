// SPDX-License-Identifier: MIT
// Package: graphpoet/poet
//
// options.go: functional options for New/FromCorpus.
//
// Contract:
//   • Option constructors panic on meaningless inputs; Poem never panics.
//   • Defaults: no cache, discard logger.

package poet

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Option customizes a Generator.
type Option func(*Generator)

// WithCache memoizes up to size bridge lookups keyed by (Key(w1), Key(w2)).
// The cache is internally synchronized and invisible in the output.
// Panics if size <= 0.
func WithCache(size int) Option {
	if size <= 0 {
		panic(fmt.Sprintf("poet: WithCache(%d)", size))
	}
	return func(p *Generator) {
		// lru.New only fails for size <= 0, rejected above
		p.cache, _ = lru.New[pair, bridge](size)
	}
}

// WithLogger traces inserted bridges at debug level. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("poet: WithLogger(nil)")
	}
	return func(p *Generator) { p.logger = l }
}

func defaultLogger() *log.Logger { return log.New(io.Discard) }
