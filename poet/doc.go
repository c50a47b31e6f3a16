// Package poet augments a sentence with bridge words drawn from a corpus graph.
//
// For every consecutive pair of input words (w1, w2) the Generator looks for
// a vertex b with edges Key(w1)→b and b→Key(w2), and picks the b whose two
// edge weights sum highest. When such a b exists its first-seen corpus
// spelling is inserted between w1 and w2:
//
//	corpus: "This is a test of the Mugar Omni Theater sound system."
//	input:  "Test the system."
//	output: "Test of the system."
//
// Input words are always emitted verbatim. Keys strip trailing ASCII
// punctuation and lowercase; leading and embedded punctuation stays, so
// "well,and" is looked up as "well,and".
//
// Ties between equally heavy bridges go to the lexicographically smallest
// canonical word, so output is deterministic.
//
// A Generator never mutates its graph. Concurrent Poem calls are safe as long
// as nobody else mutates the graph either.
package poet
