package search

import (
	"context"
	"fmt"
	"testing"
)

type fakeEntry struct {
	path string
}

func (e fakeEntry) Path() string        { return e.path }
func (e fakeEntry) IsRegularFile() bool { return true }

type fakeWalker struct {
	paths    []string
	errCount int
}

func (w fakeWalker) Walk(ctx context.Context) <-chan WalkResult {
	out := make(chan WalkResult, len(w.paths)+w.errCount)
	for i := 0; i < w.errCount; i++ {
		out <- WalkResult{Err: fmt.Errorf("fake walk error %d", i)}
	}
	for _, p := range w.paths {
		out <- WalkResult{Entry: fakeEntry{path: p}}
	}
	close(out)
	return out
}

type countingWorker struct {
	shard []string
}

func (w *countingWorker) run(ctx context.Context, out chan<- []Match) {
	if len(w.shard) == 0 {
		return
	}
	batch := make([]Match, 0, len(w.shard))
	for _, p := range w.shard {
		batch = append(batch, Match{Display: p})
	}
	out <- batch
}

func TestDispatchShardsRoundRobin(t *testing.T) {
	w := fakeWalker{paths: []string{"a", "b", "c", "d", "e"}}
	rules := Rules{ResultsCap: 10, BonusThreads: 1, MaxWalkErrors: DefaultMaxWalkErrors}

	var shardSizes []int
	out, waitErr := dispatch(context.Background(), w, func(shard []string) worker {
		shardSizes = append(shardSizes, len(shard))
		return &countingWorker{shard: shard}
	}, rules)

	total := 0
	for batch := range out {
		total += len(batch)
	}
	if err := waitErr(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if total != 5 {
		t.Errorf("total matches = %d, want 5", total)
	}
	if len(shardSizes) != 2 {
		t.Fatalf("expected 2 shards (BonusThreads+1), got %d", len(shardSizes))
	}
}

func TestDispatchAbortsPastMaxWalkErrors(t *testing.T) {
	w := fakeWalker{errCount: 5}
	rules := Rules{ResultsCap: 10, BonusThreads: 0, MaxWalkErrors: 2}

	out, waitErr := dispatch(context.Background(), w, func(shard []string) worker {
		t.Fatalf("no worker should be spawned when the walk aborts")
		return nil
	}, rules)

	for range out {
		t.Fatalf("expected no batches once the walk aborts")
	}
	if err := waitErr(); err == nil {
		t.Fatalf("expected an error once MaxWalkErrors is exceeded")
	}
}
