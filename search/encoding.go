package search

import "unicode/utf8"

// Classify buckets raw file bytes into the ASCII fast path or the
// longest valid UTF-8 prefix fallback. Exactly one of the two return
// forms is meaningful: if isASCII is true, ascii is buf itself (no
// copy); otherwise utf8Prefix is the longest leading slice of buf
// that is valid UTF-8 (which may be the whole buffer, or empty).
func Classify(buf []byte) (ascii []byte, isASCII bool, utf8Prefix []byte) {
	if isASCIIBytes(buf) {
		return buf, true, nil
	}
	return nil, false, validUTF8Prefix(buf)
}

func isASCIIBytes(b []byte) bool {
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}
	return true
}

// validUTF8Prefix returns the longest leading slice of b that is
// valid UTF-8, mirroring Rust's str::from_utf8(b).unwrap_err().valid_up_to().
func validUTF8Prefix(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		i += size
	}
	return b[:i]
}
