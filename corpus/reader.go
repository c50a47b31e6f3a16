// SPDX-License-Identifier: MIT
// Package: graphpoet/corpus
//
// reader.go: corpus source → tokens, and the read-and-build convenience wrappers.

package corpus

import (
	"bufio"
	"io"
	"os"
)

// MaxTokenBytes bounds a single whitespace-free run in the corpus.
// Longer runs fail with ErrCorpusRead instead of being split silently.
const MaxTokenBytes = 1 << 20

// ReadTokens splits r on whitespace (unicode.IsSpace) and returns the
// non-empty tokens in line-then-left-to-right order.
//
// Errors:
//   - ErrCorpusRead: the reader failed or a token exceeded MaxTokenBytes.
func ReadTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxTokenBytes)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, corpusErrorf(MethodReadTokens, "%w: %w", ErrCorpusRead, err)
	}

	return tokens, nil
}

// Load reads every token from r and builds a Corpus from them.
// Reading completes before building starts, so a read failure never yields
// a partial graph.
func Load(r io.Reader, opts ...Option) (*Corpus, error) {
	tokens, err := ReadTokens(r)
	if err != nil {
		return nil, err
	}

	return Build(tokens, opts...)
}

// LoadFile opens path and delegates to Load.
//
// Errors:
//   - ErrCorpusRead: path cannot be opened or read.
func LoadFile(path string, opts ...Option) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, corpusErrorf(MethodLoadFile, "%w: %w", ErrCorpusRead, err)
	}
	defer f.Close()

	c, err := Load(f, opts...)
	if err != nil {
		return nil, corpusErrorf(MethodLoadFile, "%s: %w", path, err)
	}

	return c, nil
}
