package mt19937

import "encoding/binary"

// Uint32Source is anything that yields uniform 32-bit words.
type Uint32Source interface {
	Uint32() uint32
}

// Uint64 returns a 64-bit value built from two consecutive words. The first
// word becomes the low half.
func (g *MT19937) Uint64() uint64 {
	lo := uint64(g.Uint32())
	hi := uint64(g.Uint32())
	return hi<<32 | lo
}

// FillBytes fills buf with generator output. Each word is written in
// little-endian order and the final word is truncated to fit.
func (g *MT19937) FillBytes(buf []byte) {
	for len(buf) >= 4 {
		binary.LittleEndian.PutUint32(buf, g.Uint32())
		buf = buf[4:]
	}
	if len(buf) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], g.Uint32())
		copy(buf, tail[:])
	}
}

// Read implements io.Reader. It always fills p and never returns an error.
func (g *MT19937) Read(p []byte) (int, error) {
	g.FillBytes(p)
	return len(p), nil
}

// Float64 returns a double in [0, 1) with 53 bits of resolution. It matches
// genrand_res53 and CPython's random.random().
func (g *MT19937) Float64() float64 {
	return Res53(g)
}

// Res53 combines two consecutive words from src into a double in [0, 1)
// with 53 bits of resolution. The first word supplies the upper 27 bits.
func Res53(src Uint32Source) float64 {
	a := src.Uint32() >> 5
	b := src.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
