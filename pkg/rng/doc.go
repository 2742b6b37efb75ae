// Package rng provides the deterministic random source consulted by the
// world generator.
//
// # Overview
//
// The generator touches exactly two derived primitives during a traversal:
// a percentage draw in [1, 100] (the weighted chooser) and a ranged integer
// draw (the spacing calculator). RNG centralizes both on top of a
// deterministic core so that a full generation run is reproducible given an
// identical seed.
//
// # Construction
//
// New creates an RNG directly from a seed - the common case, since one
// generation call normally shares a single RNG across its whole traversal:
//
//	r := rng.New(12345)
//	choice := r.Percentage()
//
// FromFunc wraps an externally supplied [0, 1) source - the injection seam
// named in the generator's external interface - for hosts that already own
// a seeded RNG or want to replay a recorded sequence in a test.
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. The generator is single-threaded
// cooperative by design (see the driver package), so one RNG per generation
// call is sufficient.
package rng
