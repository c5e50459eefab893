package search

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
)

// SortAndPrint is the caller's ordering hook, invoked after every
// batch merge with the current buffer and running total. It sorts
// buffer in place (typically descending by Score) and may use total
// for progress reporting; it must not grow buffer's length.
type SortAndPrint func(buffer []Match, total int)

// Metrics are optional Prometheus instruments the aggregator updates.
// A nil field is skipped, so embedding this library never forces a
// caller to run a registry.
type Metrics struct {
	TotalMatches prometheus.Counter
	BufferLen    prometheus.Gauge
}

// aggregate drains batches from in, merging each into a buffer capped
// at rules.ResultsCap, calling sortAndPrint after every merge and
// truncating back to the cap afterward. It returns once in is closed.
// total counts every match ever seen, including ones later truncated
// away; it is informational and may wrap on overflow like any bounded
// Go integer.
func aggregate(ctx context.Context, in <-chan []Match, rules Rules, sortAndPrint SortAndPrint, metrics *Metrics) ([]Match, int) {
	span, _ := opentracing.StartSpanFromContext(ctx, "search.aggregate")
	defer span.Finish()

	resultsCap := rules.ResultsCap
	if resultsCap <= 0 {
		resultsCap = DefaultResultsCap
	}
	buffer := make([]Match, 0, resultsCap*2)
	total := 0

	for batch := range in {
		if len(batch) == 0 {
			continue
		}
		total += len(batch)
		if metrics != nil && metrics.TotalMatches != nil {
			metrics.TotalMatches.Add(float64(len(batch)))
		}

		buffer = append(buffer, batch...)
		if sortAndPrint != nil {
			sortAndPrint(buffer, total)
		}
		if len(buffer) > resultsCap {
			buffer = buffer[:resultsCap]
		}
		if metrics != nil && metrics.BufferLen != nil {
			metrics.BufferLen.Set(float64(len(buffer)))
		}
	}

	span.SetTag("total", total)
	span.SetTag("results", len(buffer))
	return buffer, total
}
