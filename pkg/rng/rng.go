package rng

import "math/rand"

// RNG is the deterministic random source a generation call draws against.
// All methods are deterministic given the same initial seed, making
// generated worlds reproducible across runs with identical inputs.
type RNG struct {
	source *rand.Rand
}

// New creates an RNG directly from a seed. This is the common path for a
// single generation call: one RNG is shared across its whole traversal.
func New(seed uint64) *RNG {
	return &RNG{source: rand.New(rand.NewSource(int64(seed)))}
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// intRange returns a pseudo-random integer in [min, max], inclusive on both
// ends. It panics if min > max.
func (r *RNG) intRange(min, max int) int {
	if min > max {
		panic("rng: intRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Percentage returns a pseudo-random integer in [1, 100], inclusive on both
// ends. This is the generator's "random_percentage" primitive: the weighted
// chooser draws one of these per selection and walks a cumulative-percent
// list against it.
func (r *RNG) Percentage() int {
	return r.intRange(1, 100)
}

// Between returns a pseudo-random integer in [min, max], inclusive on both
// ends. This is the generator's "random_between" primitive, used by the
// spacing calculator to resolve a {min, max} range to a concrete distance.
func (r *RNG) Between(min, max int) int {
	return r.intRange(min, max)
}

// FromFunc wraps an arbitrary callable returning a float64 in [0.0, 1.0)
// into an RNG. This is the injection seam called for in the generator's
// external interface (§6 of the specification: "random is a function
// returning a number in [0, 1)"): callers that already own a seeded source
// - or want to replay a recorded sequence in a test - pass it here instead
// of a plain seed.
//
// f must actually vary across calls. Intn's rejection sampling retries on
// out-of-range draws; a constant f can make that retry loop forever.
func FromFunc(seed uint64, f func() float64) *RNG {
	return &RNG{source: rand.New(funcSource(f))}
}

// funcSource adapts a func() float64 to math/rand.Source so it can back a
// *rand.Rand. Int63 is reconstructed from the wrapped float by scaling into
// [0, 2^63); this loses float64's mantissa bits of precision versus a native
// 63-bit source, which is an acceptable tradeoff for an injected [0,1) seam.
type funcSource func() float64

func (f funcSource) Int63() int64 {
	return int64(f() * (1 << 63))
}

func (f funcSource) Seed(int64) {}
