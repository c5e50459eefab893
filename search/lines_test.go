package search

import (
	"bytes"
	"testing"
	"testing/quick"
)

func collectNext(text []byte) [][]byte {
	var lines [][]byte
	it := NewByteLines(text)
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func collectPrev(text []byte) [][]byte {
	var lines [][]byte
	it := NewByteLines(text)
	for {
		line, ok := it.Prev()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func TestByteLinesNext(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "hello", []string{"hello"}},
		{"single lf", "a\nb", []string{"a", "b"}},
		{"single cr", "a\rb", []string{"a", "b"}},
		{"crlf pair", "a\r\nb", []string{"a", "b"}},
		{"lfcr pair", "a\n\rb", []string{"a", "b"}},
		{"trailing lf consumes with nothing after", "a\nb\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb", []string{"a", "", "b"}},
		{"mixed", "abc\r\ndef\ndef\rghi", []string{"abc", "def", "def", "ghi"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := collectNext([]byte(c.text))
			if len(got) != len(c.want) {
				t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(c.want), c.want)
			}
			for i := range got {
				if string(got[i]) != c.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestByteLinesFused(t *testing.T) {
	it := NewByteLines([]byte(""))
	if _, ok := it.Next(); ok {
		t.Fatalf("expected no lines from empty input")
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected fused iterator to keep returning false")
	}
}

func TestByteLinesPrevMatchesReversedNext(t *testing.T) {
	f := func(text []byte) bool {
		forward := collectNext(text)
		backward := collectPrev(text)
		if len(forward) != len(backward) {
			return false
		}
		for i := range forward {
			if !bytes.Equal(forward[i], backward[len(backward)-1-i]) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestByteLinesZeroCopy(t *testing.T) {
	text := []byte("hello\nworld")
	it := NewByteLines(text)
	line, _ := it.Next()
	if &line[0] != &text[0] {
		t.Fatalf("expected Next to return a sub-slice of the original backing array")
	}
}
