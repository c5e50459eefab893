package search

// Newline bytes recognized by ByteLines. A terminator is either byte
// alone, or the atomic two-byte pair in either order ("\r\n", "\n\r").
const (
	nlByte byte = '\n'
	crByte byte = '\r'
)

// ByteLines splits text into lines without copying or allocating: each
// call to Next or Prev returns a sub-slice of the original backing
// array. It recognizes "\n", "\r", "\r\n", and "\n\r" as terminators,
// consuming the whole terminator but never including it in the
// returned line.
//
// ByteLines is bidirectional: Next consumes from the front, Prev from
// the back, and both operate on the same remaining slice, so the two
// can be interleaved. It is fused: once either call reports no more
// lines, every subsequent call reports no more lines too, even though
// in principle one more empty line could be constructed from the
// leftover empty slice.
type ByteLines struct {
	text []byte
	done bool
}

// NewByteLines returns an iterator over the lines of text. text is
// held, not copied; the caller must not mutate it while iterating.
func NewByteLines(text []byte) *ByteLines {
	return &ByteLines{text: text}
}

// Next returns the next line front-to-back, or ok=false once exhausted.
func (b *ByteLines) Next() (line []byte, ok bool) {
	if b.done {
		return nil, false
	}
	if len(b.text) == 0 {
		b.done = true
		return nil, false
	}
	idx := indexNewline(b.text)
	if idx < 0 {
		line, b.text = b.text, nil
		return line, true
	}
	line = b.text[:idx]
	b.text = skipNewline(b.text[idx:])
	return line, true
}

// Prev returns the next line back-to-front, or ok=false once exhausted.
func (b *ByteLines) Prev() (line []byte, ok bool) {
	if b.done {
		return nil, false
	}
	if len(b.text) == 0 {
		b.done = true
		return nil, false
	}
	text := b.text
	if last := text[len(text)-1]; last == nlByte || last == crByte {
		// A trailing terminator ends the last line rather than
		// starting an empty one, as in Next.
		text = skipNewlineBack(text)
	}
	idx := lastIndexNewline(text)
	if idx < 0 {
		line, b.text = text, nil
		return line, true
	}
	line = text[idx+1:]
	b.text = text[:idx+1]
	return line, true
}

// Bounds reports a (lower, upper) bound on the number of lines
// remaining: at least 0, at most len(remaining) (every line needs at
// least one terminator byte, except the last, which is non-empty).
func (b *ByteLines) Bounds() (lower, upper int) {
	if b.done || len(b.text) == 0 {
		return 0, 0
	}
	return 0, len(b.text)
}

func indexNewline(b []byte) int {
	for i, c := range b {
		if c == nlByte || c == crByte {
			return i
		}
	}
	return -1
}

func lastIndexNewline(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == nlByte || b[i] == crByte {
			return i
		}
	}
	return -1
}

// skipNewline drops the terminator at the front of text, which must
// start with a newline byte: one byte, or two if it's an atomic pair.
func skipNewline(text []byte) []byte {
	if len(text) >= 2 && isPair(text[0], text[1]) {
		return text[2:]
	}
	return text[1:]
}

// skipNewlineBack drops the terminator at the back of text, which
// must end with a newline byte.
func skipNewlineBack(text []byte) []byte {
	n := len(text)
	if n >= 2 && isPair(text[n-2], text[n-1]) {
		return text[:n-2]
	}
	return text[:n-1]
}

func isPair(a, b byte) bool {
	return (a == crByte && b == nlByte) || (a == nlByte && b == crByte)
}
