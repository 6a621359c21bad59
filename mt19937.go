// Package mt19937 implements the MT19937 Mersenne Twister pseudo-random
// number generator.
//
// The generator is bit-for-bit compatible with the 2002 reference
// implementation (mt19937ar.c) by Matsumoto and Nishimura, and therefore
// with CPython's random module and numpy.random.RandomState, including the
// 53-bit double produced by genrand_res53.
//
// Basic usage:
//
//	g := mt19937.NewFromKeys([]uint32{12345})
//	x := g.Float64() // same as random.seed(12345); random.random() in CPython
//
// A generator is not safe for concurrent use. It is not suitable for
// cryptographic purposes: its full state can be recovered from 624
// consecutive outputs.
package mt19937

import (
	"io"
	"math/rand/v2"
)

const (
	// N is the number of 32-bit words in the generator state.
	N = 624

	// DefaultSeed is used when a generator is drawn from before being seeded.
	DefaultSeed uint32 = 5489

	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// arraySeed primes the state before key material is mixed in.
	arraySeed = 19650218

	// unseeded is the index value of a generator that was never seeded.
	unseeded = N + 1
)

var (
	_ rand.Source = (*MT19937)(nil)
	_ io.Reader   = (*MT19937)(nil)
)

// MT19937 is a Mersenne Twister generator. The zero value holds an all-zero
// state; construct one with New, NewWithSeed, NewFromKeys or FromSeed.
type MT19937 struct {
	mt  [N]uint32
	mti int
}

// New returns an unseeded generator. The first draw seeds it with
// DefaultSeed, matching the reference implementation.
func New() *MT19937 {
	return &MT19937{mti: unseeded}
}

// NewWithSeed returns a generator initialised from a single 32-bit seed.
// This matches init_genrand and numpy.random.RandomState(seed).
func NewWithSeed(seed uint32) *MT19937 {
	g := New()
	g.Seed(seed)
	return g
}

// NewFromKeys returns a generator initialised from a key of any length.
// This matches init_by_array.
func NewFromKeys(key []uint32) *MT19937 {
	g := New()
	g.SeedFromKeys(key)
	return g
}

// Seed reinitialises the generator from a single 32-bit seed.
func (g *MT19937) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < N; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = N
}

// SeedFromKeys reinitialises the generator from a key of any length. The
// resulting state depends on every word of key and on its length. An empty
// key is valid: the first mixing pass then runs with key[j] and j taken as 0.
func (g *MT19937) SeedFromKeys(key []uint32) {
	g.Seed(arraySeed)

	i, j := 1, 0
	k := max(N, len(key))
	for ; k > 0; k-- {
		var word uint32
		if len(key) > 0 {
			word = key[j]
		}
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1664525)) + word + uint32(j)
		i++
		j++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
	}

	// MSB is 1; the initial state is never all zero.
	g.mt[0] = upperMask
}

// Uint32 returns the next 32-bit word of the sequence.
func (g *MT19937) Uint32() uint32 {
	if g.mti >= N {
		if g.mti == unseeded {
			g.Seed(DefaultSeed)
		}
		g.twist()
	}

	y := g.mt[g.mti]
	g.mti++

	return temper(y)
}

// twist regenerates all N words. The loop is split in three so that no
// index needs a modulo; the result equals the single formula
// mt[k] = mt[(k+M)%N] ^ mix(mt[k], mt[(k+1)%N]).
func (g *MT19937) twist() {
	var kk int
	for ; kk < N-mtM; kk++ {
		g.mt[kk] = g.mt[kk+mtM] ^ mix(g.mt[kk], g.mt[kk+1])
	}
	for ; kk < N-1; kk++ {
		g.mt[kk] = g.mt[kk+mtM-N] ^ mix(g.mt[kk], g.mt[kk+1])
	}
	g.mt[N-1] = g.mt[mtM-1] ^ mix(g.mt[N-1], g.mt[0])

	g.mti = 0
}

// mix joins the upper bit of hi with the lower 31 bits of lo and applies
// the twist matrix.
func mix(hi, lo uint32) uint32 {
	y := (hi & upperMask) | (lo & lowerMask)
	if y&1 == 0 {
		return y >> 1
	}
	return (y >> 1) ^ matrixA
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

// String keeps the 624-word state out of formatted output.
func (g *MT19937) String() string {
	return "MT19937"
}
