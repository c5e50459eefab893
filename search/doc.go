// Package search implements the parallel fuzzy line-search pipeline:
// a directory walk is sharded across a worker pool, each worker reads
// and scores the files in its shard line by line, and an aggregator
// merges the resulting batches into a bounded, user-ordered top-K
// buffer.
//
// The package owns the walk -> shard -> worker -> aggregate topology,
// the ASCII/UTF-8 encoding triage, and the zero-copy line iterator.
// It does not own the directory walk itself or the fuzzy-match
// scoring algorithm: both are collaborators the caller supplies (see
// Walker, AsciiScorer, Utf8Scorer). The sibling walk and fzyalgo
// packages ship default implementations of each.
package search
