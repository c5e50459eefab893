package search

import (
	"context"
	"sort"
	"testing"
)

func TestAggregateTruncatesToResultsCap(t *testing.T) {
	in := make(chan []Match, 4)
	in <- []Match{{Display: "a", Score: 1}, {Display: "b", Score: 5}}
	in <- []Match{{Display: "c", Score: 3}, {Display: "d", Score: 9}}
	close(in)

	rules := Rules{ResultsCap: 2, MaxWalkErrors: DefaultMaxWalkErrors}
	sortDesc := func(buffer []Match, total int) {
		sort.Slice(buffer, func(i, j int) bool { return buffer[i].Score > buffer[j].Score })
	}

	buffer, total := aggregate(context.Background(), in, rules, sortDesc, nil)

	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(buffer) != 2 {
		t.Fatalf("len(buffer) = %d, want 2", len(buffer))
	}
	if buffer[0].Display != "d" || buffer[1].Display != "b" {
		t.Errorf("buffer = %+v, want top two matches by score", buffer)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	in := make(chan []Match)
	close(in)

	buffer, total := aggregate(context.Background(), in, NewRules(), nil, nil)
	if len(buffer) != 0 {
		t.Errorf("buffer = %+v, want empty", buffer)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}
