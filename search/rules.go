package search

// Defaults matching the original fulf crate's Rules::new().
const (
	DefaultResultsCap    = 512
	DefaultMaxWalkErrors = 16000
)

// Rules configures one search run.
type Rules struct {
	// ResultsCap bounds how many matches are retained; the aggregator
	// truncates its buffer to this size after every batch merge.
	ResultsCap int
	// BonusThreads is the number of worker goroutines beyond the
	// first; the dispatcher always runs BonusThreads+1 shards.
	BonusThreads uint8
	// MaxWalkErrors is how many walker entry errors are tolerated
	// before the dispatcher aborts the search as fatal.
	MaxWalkErrors int
}

// NewRules returns the default Rules: ResultsCap 512, BonusThreads 0,
// MaxWalkErrors 16000.
func NewRules() Rules {
	return Rules{
		ResultsCap:    DefaultResultsCap,
		BonusThreads:  0,
		MaxWalkErrors: DefaultMaxWalkErrors,
	}
}

// Equal reports whether r and other share the same ResultsCap. Per
// the original crate, Rules equality considers ResultsCap only;
// BonusThreads and MaxWalkErrors affect parallelism and fault
// tolerance, not what a search run is allowed to return.
func (r Rules) Equal(other Rules) bool {
	return r.ResultsCap == other.ResultsCap
}
