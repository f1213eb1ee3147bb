// Package jrand implements the 48-bit linear congruential generator used by
// java.util.Random. Sequences are bit-for-bit identical to that generator for
// the same seed, which makes generated test data reproducible across
// implementations in other languages.
package jrand

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (1 << 48) - 1
)

// Random is a deterministic pseudo-random source. It is not safe for
// concurrent use.
type Random struct {
	seed int64
}

// New returns a generator initialised with seed.
func New(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator state as if it had just been created with seed.
func (r *Random) SetSeed(seed int64) {
	r.seed = (seed ^ multiplier) & mask
}

// Next advances the generator and returns the top bits of the new state as a
// signed 32-bit value. bits must be in [1, 32].
func (r *Random) Next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(uint64(r.seed) >> (48 - bits))
}

// Int31 returns a pseudo-random value over the full int32 range.
func (r *Random) Int31() int32 {
	return r.Next(32)
}

// Int31n returns a uniformly distributed value in [0, bound).
// It panics if bound <= 0.
func (r *Random) Int31n(bound int32) int32 {
	if bound <= 0 {
		panic("jrand: invalid argument to Int31n")
	}

	if bound&-bound == bound {
		return int32((int64(bound) * int64(r.Next(31))) >> 31)
	}

	m := bound - 1
	u := r.Next(31)
	v := u % bound
	// int32 overflow here marks a value from the biased tail; draw again.
	for u-v+m < 0 {
		u = r.Next(31)
		v = u % bound
	}
	return v
}
