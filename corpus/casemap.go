// SPDX-License-Identifier: MIT
// Package: graphpoet/corpus
//
// casemap.go: canonical word → first-seen spelling.

package corpus

// CaseMap maps a canonical lowercase word to the spelling of its first
// occurrence in the corpus. The zero value is an empty map.
//
// A CaseMap has no mutators; it is filled once by Build.
type CaseMap struct {
	spellings map[string]string
}

// Lookup returns the recorded spelling of canonical, if any.
func (m CaseMap) Lookup(canonical string) (string, bool) {
	s, ok := m.spellings[canonical]

	return s, ok
}

// Spelling returns the recorded spelling of canonical, or canonical itself
// when the word never occurred in the corpus.
func (m CaseMap) Spelling(canonical string) string {
	if s, ok := m.spellings[canonical]; ok {
		return s
	}

	return canonical
}

// Len returns the number of recorded words.
func (m CaseMap) Len() int { return len(m.spellings) }
