// SPDX-License-Identifier: MIT
// Package: graphpoet/corpus
//
// errors.go: sentinel errors for the corpus package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach method context with corpusErrorf and %w.

package corpus

import (
	"errors"
	"fmt"
)

// ErrCorpusRead indicates the corpus source could not be opened or read.
// Usage: if errors.Is(err, ErrCorpusRead) { /* report unreadable corpus */ }.
var ErrCorpusRead = errors.New("corpus: read failure")

// ErrEmptyToken indicates Build received an empty token. Readers drop empty
// tokens, so this only surfaces for hand-built token slices.
var ErrEmptyToken = errors.New("corpus: empty token")

// Method tokens used as error context prefixes.
const (
	MethodReadTokens = "ReadTokens"
	MethodBuild      = "Build"
	MethodLoadFile   = "LoadFile"
)

// corpusErrorf returns an error of the form "<method>: <formatted message>".
// Use %w inside format to keep the sentinel visible to errors.Is.
func corpusErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
