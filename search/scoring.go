package search

// AsciiScorer scores a line against a needle on the ASCII fast path:
// both line and needle are known to be all-ASCII bytes. It returns
// ok=false to mean "no match" — score and positions are meaningless
// in that case.
//
// positions is an ordered list of byte indices into line, one per
// needle character, identifying where each needle character landed.
type AsciiScorer func(line, needle []byte) (score int64, positions []int, ok bool)

// Utf8Scorer is the UTF-8 counterpart of AsciiScorer: it runs on the
// longest valid UTF-8 prefix a file's bytes produced (see Classify),
// and on the needle whenever the needle itself is not all-ASCII.
// positions are still byte offsets into line, not rune indices.
type Utf8Scorer func(line, needle string) (score int64, positions []int, ok bool)

// Match is one emitted record: a formatted display line, the score
// the scorer assigned it, and the needle-character positions within
// the matched line.
type Match struct {
	Display   string
	Score     int64
	Positions []int
}
