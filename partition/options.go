package partition

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/redistrict/rng"
)

// Sentinel errors.
var (
	// ErrEmptySet is returned when the set to split has no precincts.
	ErrEmptySet = errors.New("partition: empty precinct set")

	// ErrSetTooSmall is returned when the set cannot hold both sides.
	ErrSetTooSmall = errors.New("partition: precinct set too small to split")

	// ErrDisconnectedSet is returned when the set does not induce a connected subgraph.
	ErrDisconnectedSet = errors.New("partition: precinct set is not connected")

	// ErrSameLabel is returned when both sides are given the same label.
	ErrSameLabel = errors.New("partition: labels must differ")

	// ErrSplitExhausted is returned when no connected split satisfying the size bounds was found.
	ErrSplitExhausted = errors.New("partition: no connected split found")

	// ErrInvalidDistrictCount is returned when k < 1.
	ErrInvalidDistrictCount = errors.New("partition: district count must be at least 1")

	// ErrTooManyDistricts is returned when k exceeds the number of precincts.
	ErrTooManyDistricts = errors.New("partition: more districts than precincts")
)

const (
	// DefaultMaxAttempts bounds the random attempts of a single Split.
	DefaultMaxAttempts = 1000

	// StopTolerance is the half-width of the stopping window around the target draw.
	StopTolerance = 0.01

	methodSplit     = "Split"
	methodTreeSplit = "TreeSplit"
	methodInitial   = "Initial"
)

// Option customizes Split, TreeSplit and Initial.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAttempts int
	fallback    bool
	share       float64 // 0 ⇒ no cap on side A
	minA, minB  int
}

func newConfig(opts []Option) config {
	c := config{
		maxAttempts: DefaultMaxAttempts,
		fallback:    true,
		minA:        1,
		minB:        1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.rng = rng.OrDefault(c.rng)
	return c
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partition: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh random source (seed 0 ⇒ rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rng.New(seed) }
}

// WithMaxAttempts bounds the random attempts per Split. Panics when n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("partition: WithMaxAttempts(n < 1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithoutFallback disables the TreeSplit fallback; Split then returns
// ErrSplitExhausted once its attempts run out.
func WithoutFallback() Option {
	return func(c *config) { c.fallback = false }
}

// WithShare caps side A at ceil(share·|set|) precincts and makes share the
// balance target for TreeSplit. Panics unless 0 < share < 1.
func WithShare(share float64) Option {
	if share <= 0 || share >= 1 {
		panic("partition: WithShare outside (0,1)")
	}
	return func(c *config) { c.share = share }
}

// WithMinSizes requires at least minA precincts on side A and minB on side B.
// Panics when either bound is below 1.
func WithMinSizes(minA, minB int) Option {
	if minA < 1 || minB < 1 {
		panic("partition: WithMinSizes bounds must be >= 1")
	}
	return func(c *config) {
		c.minA = minA
		c.minB = minB
	}
}
