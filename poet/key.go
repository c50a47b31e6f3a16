// SPDX-License-Identifier: MIT
// Package: graphpoet/poet
//
// key.go: derivation of canonical lookup keys from input words.

package poet

import "strings"

// asciiPunct is the ASCII punctuation class: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Key derives the graph lookup key of an input token: trailing ASCII
// punctuation is stripped, then the rest is lowercased.
//
//	Key("System.")  == "system"
//	Key("'Tis")     == "'tis"
//	Key("well,and") == "well,and"
//	Key("?!")       == ""
func Key(token string) string {
	return strings.ToLower(strings.TrimRight(token, asciiPunct))
}
