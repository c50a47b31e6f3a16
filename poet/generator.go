// SPDX-License-Identifier: MIT
// Package: graphpoet/poet
//
// generator.go: bridge selection and poem assembly.

package poet

import (
	"strings"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/katalvlaran/graphpoet/core"
	"github.com/katalvlaran/graphpoet/corpus"
)

// pair is a (from, to) lookup key.
type pair struct{ from, to string }

// bridge is the memoized outcome of one lookup.
type bridge struct {
	word   string
	weight int
	ok     bool
}

// Generator inserts bridge words using a read-only corpus graph.
type Generator struct {
	graph  core.Graph[string]
	cases  corpus.CaseMap
	cache  *lru.Cache[pair, bridge]
	logger *log.Logger
}

// New returns a Generator over g and cases.
//
// Errors:
//   - ErrNilGraph: g is nil.
func New(g core.Graph[string], cases corpus.CaseMap, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Generator{graph: g, cases: cases, logger: defaultLogger()}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// FromCorpus is New(c.Graph, c.Cases, opts...).
func FromCorpus(c *corpus.Corpus, opts ...Option) (*Generator, error) {
	if c == nil {
		return nil, ErrNilGraph
	}

	return New(c.Graph, c.Cases, opts...)
}

// Bridge finds the heaviest two-edge path from→b→to and returns the canonical
// b with its path weight w(from→b)+w(b→to). from and to are graph keys (see Key).
//
// Implementation:
//   - Stage 1: Targets(from) gives every first hop, Sources(to) every last hop.
//   - Stage 2: Walk the smaller map, keep candidates present in both.
//   - Stage 3: Keep the highest sum; on ties keep the smaller word.
//
// Complexity: O(deg(from) + deg(to)) plus the cost of the two graph queries.
func (p *Generator) Bridge(from, to string) (string, int, bool) {
	key := pair{from: from, to: to}
	if p.cache != nil {
		if b, ok := p.cache.Get(key); ok {
			return b.word, b.weight, b.ok
		}
	}

	b := p.findBridge(from, to)
	if p.cache != nil {
		p.cache.Add(key, b)
	}

	return b.word, b.weight, b.ok
}

func (p *Generator) findBridge(from, to string) bridge {
	out := p.graph.Targets(from)
	in := p.graph.Sources(to)

	walk, other := out, in
	if len(in) < len(out) {
		walk, other = in, out
	}

	var best bridge
	for candidate, w1 := range walk {
		w2, ok := other[candidate]
		if !ok {
			continue
		}
		sum := w1 + w2
		if !best.ok || sum > best.weight || (sum == best.weight && candidate < best.word) {
			best = bridge{word: candidate, weight: sum, ok: true}
		}
	}

	return best
}

// Poem returns input with a bridge word inserted between each consecutive
// word pair that has one.
//
// Behavior highlights:
//   - Blank input (only whitespace) returns "".
//   - Input words are split with strings.Fields and emitted verbatim.
//   - Bridges are emitted in their first-seen corpus spelling.
//   - Output words are joined with single spaces.
func (p *Generator) Poem(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])
	for i := 1; i < len(words); i++ {
		from, to := Key(words[i-1]), Key(words[i])
		if word, weight, ok := p.Bridge(from, to); ok {
			spelling := p.cases.Spelling(word)
			p.logger.Debug("bridge inserted", "from", from, "to", to, "bridge", spelling, "weight", weight)
			out = append(out, spelling)
		}
		out = append(out, words[i])
	}

	return strings.Join(out, " ")
}
