package search

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrTooManyWalkErrors is returned when the walker collaborator
// reports more entry errors than Rules.MaxWalkErrors tolerates. This
// is fatal: past that ceiling the tree is assumed pathologically
// broken, not just noisy.
var ErrTooManyWalkErrors = errors.New("fulf: too many walker errors, aborting search")

// dispatch drains w's entries, shards regular files round-robin
// across rules.BonusThreads+1 shards, and starts one worker goroutine
// per non-empty shard. It returns the channel workers send batches
// to, and a function that reports the first worker error (or the
// MaxWalkErrors abort) once the channel has been fully drained by the
// caller.
func dispatch(ctx context.Context, w Walker, newWorker func(shard []string) worker, rules Rules) (<-chan []Match, func() error) {
	shardCount := int(rules.BonusThreads) + 1
	shards := make([][]string, shardCount)

	// walkCtx is scoped to the walk itself: canceling it unblocks a
	// walker goroutine mid-send if we stop draining its channel early
	// (the MaxWalkErrors abort path below), and is canceled
	// unconditionally once the walk is read to completion.
	walkCtx, cancelWalk := context.WithCancel(ctx)
	defer cancelWalk()

	index := 0
	errCount := 0
	aborted := false
	for res := range w.Walk(walkCtx) {
		if res.Err != nil {
			errCount++
			if errCount > rules.MaxWalkErrors {
				aborted = true
				break
			}
			continue
		}
		if res.Entry == nil || !res.Entry.IsRegularFile() {
			continue
		}
		shards[index] = append(shards[index], res.Entry.Path())
		index++
		if index == shardCount {
			index = 0
		}
	}

	out := make(chan []Match, 100)

	if aborted {
		close(out)
		err := errors.Wrapf(ErrTooManyWalkErrors, "after %d errors", errCount)
		return out, func() error { return err }
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		shard := shard
		wk := newWorker(shard)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("fulf: worker panic: %v", r)
				}
			}()
			wk.run(gctx, out)
			return nil
		})
	}

	var waitErr error
	go func() {
		waitErr = g.Wait()
		close(out)
	}()

	// waitErr is only safe to read after out has been drained and
	// observed closed by the caller: close(out) happens-after the
	// assignment above, and a receiver observing a closed channel
	// has a happens-before edge back to that close.
	return out, func() error { return waitErr }
}
