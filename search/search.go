package search

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	log "gopkg.in/inconshreveable/log15.v2"
)

// DefaultMaxLineLen is the line length past which the default wiring
// never bothers scoring a line, matching the original crate's
// hardcoded showcase constant.
const DefaultMaxLineLen = 1024

// FindOptions configures a FindWithOptions call.
type FindOptions struct {
	Rules        Rules
	MaxLineLen   int
	SortAndPrint SortAndPrint
	Metrics      *Metrics
	Logger       log.Logger
}

// Find runs the default wiring for root and needle: NewRules() with
// BonusThreads set to 2 on 64-bit platforms (0 otherwise), and
// DefaultMaxLineLen. It is a convenience wrapper over
// FindWithOptions.
func Find(ctx context.Context, root, needle string, walker Walker, ascii AsciiScorer, utf8Score Utf8Scorer, sortAndPrint SortAndPrint) ([]Match, int) {
	return FindWithOptions(ctx, root, needle, walker, ascii, utf8Score, FindOptions{
		Rules:        defaultRules(),
		MaxLineLen:   DefaultMaxLineLen,
		SortAndPrint: sortAndPrint,
	})
}

func defaultRules() Rules {
	r := NewRules()
	if strconv.IntSize == 64 {
		r.BonusThreads = 2
	}
	return r
}

// FindWithOptions runs a full search: it validates the needle and
// root, picks the ASCII-preferred or UTF-8-only worker wiring based
// on the needle's encoding, dispatches the walk across a worker pool,
// and aggregates the results into a top-K buffer.
//
// It returns (nil, 0) without touching the walker or spawning any
// worker when needle is empty, longer than MaxLineLen, or root is not
// valid UTF-8.
func FindWithOptions(ctx context.Context, root, needle string, walker Walker, asciiScore AsciiScorer, utf8Score Utf8Scorer, opts FindOptions) ([]Match, int) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New()
	}
	reqID := uuid.New().String()
	logger = logger.New("request", reqID)

	maxLine := opts.MaxLineLen
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLen
	}

	if needle == "" || len(needle) > maxLine || !utf8.ValidString(root) {
		logger.Debug("rejecting search", "needle_len", len(needle), "root_valid_utf8", utf8.ValidString(root))
		return nil, 0
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "search.Find")
	defer span.Finish()
	span.SetTag("request", reqID)
	needleIsASCII := isASCIIString(needle)
	span.SetTag("needle.ascii", needleIsASCII)

	rules := opts.Rules
	if rules.ResultsCap <= 0 {
		rules = defaultRules()
	}

	var newWorker func(shard []string) worker
	if needleIsASCII && asciiScore != nil {
		newWorker = func(shard []string) worker {
			return &asciiWorker{
				shard:    shard,
				root:     root,
				needle:   needle,
				ascii:    boundAsciiScorer(asciiScore, maxLine),
				fallback: boundUtf8Scorer(utf8Score, maxLine),
				capacity: rules.ResultsCap,
			}
		}
	} else {
		newWorker = func(shard []string) worker {
			return &utf8Worker{
				shard:    shard,
				root:     root,
				needle:   needle,
				score:    boundUtf8Scorer(utf8Score, maxLine),
				capacity: rules.ResultsCap,
			}
		}
	}

	out, waitErr := dispatch(ctx, walker, newWorker, rules)
	buffer, total := aggregate(ctx, out, rules, opts.SortAndPrint, opts.Metrics)

	if err := waitErr(); err != nil {
		logger.Error("search aborted", "error", err)
		span.SetTag("error", true)
	}

	return buffer, total
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

func boundAsciiScorer(score AsciiScorer, maxLen int) AsciiScorer {
	if score == nil {
		return nil
	}
	return func(line, needle []byte) (int64, []int, bool) {
		if len(line) > maxLen {
			return 0, nil, false
		}
		return score(line, needle)
	}
}

func boundUtf8Scorer(score Utf8Scorer, maxLen int) Utf8Scorer {
	if score == nil {
		return nil
	}
	return func(line, needle string) (int64, []int, bool) {
		if len(line) > maxLen {
			return 0, nil, false
		}
		return score(line, needle)
	}
}
