package search

import (
	"context"
	"os"

	"github.com/opentracing/opentracing-go"
)

// Entry is one directory entry the walker collaborator produces.
type Entry interface {
	Path() string
	IsRegularFile() bool
}

// WalkResult is one item from a Walker's stream: either an Entry, or
// a per-entry error the walker could not recover from on its own.
type WalkResult struct {
	Entry Entry
	Err   error
}

// Walker is the external directory-walk collaborator: it produces a
// stream of entries (or per-entry errors) for the dispatcher to shard
// across workers. The sibling walk package ships an ignore-aware
// default implementation; search never imports it.
type Walker interface {
	Walk(ctx context.Context) <-chan WalkResult
}

// worker is satisfied by the two scoring-collaborator variants this
// package wires: asciiWorker (ASCII-preferred, UTF-8 fallback per
// file) and utf8Worker (UTF-8 only). This mirrors the original
// crate's AsciiAlgo/Utf8Algo split: which variant runs is decided
// once, by needle encoding, not per file.
type worker interface {
	run(ctx context.Context, out chan<- []Match)
}

// scoreLines iterates text with ByteLines and appends a Match for
// every line score reports a hit for, flushing batch to out whenever
// it fills.
func scoreLines(relPath string, text []byte, batch *[]Match, batchCap int, out chan<- []Match, score func(line []byte) (int64, []int, bool)) {
	lines := NewByteLines(text)
	idx := 0
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		if s, positions, hit := score(line); hit {
			*batch = append(*batch, Match{
				Display:   FormatDisplay(relPath, idx, string(line)),
				Score:     s,
				Positions: positions,
			})
			if len(*batch) == batchCap {
				out <- *batch
				*batch = make([]Match, 0, batchCap)
			}
		}
		idx++
	}
}

// asciiWorker scores files on the ASCII fast path, falling back to
// the UTF-8 scorer per file when a file fails ASCII triage.
type asciiWorker struct {
	shard    []string
	root     string
	needle   string
	ascii    AsciiScorer
	fallback Utf8Scorer
	capacity int
}

func (w *asciiWorker) run(ctx context.Context, out chan<- []Match) {
	span, _ := opentracing.StartSpanFromContext(ctx, "search.asciiWorker")
	defer span.Finish()
	span.SetTag("shard.size", len(w.shard))

	needleBytes := []byte(w.needle)
	batch := make([]Match, 0, w.capacity)
	for _, path := range w.shard {
		buf, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		relPath := RelativeDisplayPath(path, w.root)
		if isASCIIBytes(buf) {
			scoreLines(relPath, buf, &batch, w.capacity, out, func(line []byte) (int64, []int, bool) {
				return w.ascii(line, needleBytes)
			})
			continue
		}
		if w.fallback == nil {
			continue
		}
		prefix := validUTF8Prefix(buf)
		scoreLines(relPath, prefix, &batch, w.capacity, out, func(line []byte) (int64, []int, bool) {
			return w.fallback(string(line), w.needle)
		})
	}
	if len(batch) > 0 {
		out <- batch
	}
}

// utf8Worker scores every file through the UTF-8 fallback, regardless
// of whether the file itself is ASCII: this is the wiring chosen when
// the needle is not ASCII, matching the original crate's Utf8Algo.
type utf8Worker struct {
	shard    []string
	root     string
	needle   string
	score    Utf8Scorer
	capacity int
}

func (w *utf8Worker) run(ctx context.Context, out chan<- []Match) {
	span, _ := opentracing.StartSpanFromContext(ctx, "search.utf8Worker")
	defer span.Finish()
	span.SetTag("shard.size", len(w.shard))

	if w.score == nil {
		return
	}

	batch := make([]Match, 0, w.capacity)
	for _, path := range w.shard {
		buf, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		relPath := RelativeDisplayPath(path, w.root)
		prefix := validUTF8Prefix(buf)
		scoreLines(relPath, prefix, &batch, w.capacity, out, func(line []byte) (int64, []int, bool) {
			return w.score(string(line), w.needle)
		})
	}
	if len(batch) > 0 {
		out <- batch
	}
}
