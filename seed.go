package mt19937

import (
	"encoding/binary"
	"math/big"
)

// SeedSize is the number of bytes in a Seed: one full state of words.
const SeedSize = N * 4

// Seed is raw seed material for FromSeed. It is read as N little-endian
// 32-bit words.
type Seed [SeedSize]byte

// Keys decodes the seed into N little-endian words.
func (s *Seed) Keys() []uint32 {
	key := make([]uint32, N)
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(s[i*4:])
	}
	return key
}

// FromSeed returns a generator array-seeded with the words of seed.
func FromSeed(seed Seed) *MT19937 {
	return NewFromKeys(seed.Keys())
}

// KeyFromInt splits |n| into 32-bit words, least significant first. Zero
// yields the single-word key [0]. This is how CPython's random.seed turns
// an integer into key material.
func KeyFromInt(n *big.Int) []uint32 {
	var abs big.Int
	abs.Abs(n)

	buf := abs.Bytes() // big-endian
	if len(buf) == 0 {
		return []uint32{0}
	}

	key := make([]uint32, (len(buf)+3)/4)
	for i := range key {
		end := len(buf) - i*4
		start := max(end-4, 0)
		var w uint32
		for _, c := range buf[start:end] {
			w = w<<8 | uint32(c)
		}
		key[i] = w
	}
	return key
}

// SeedFromInt reseeds the generator the way CPython's random.seed(n) does
// for an int argument.
func (g *MT19937) SeedFromInt(n *big.Int) {
	g.SeedFromKeys(KeyFromInt(n))
}
