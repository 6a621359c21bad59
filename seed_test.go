package mt19937_test

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nozzle/mt19937"
)

func TestFromSeed(t *testing.T) {
	var seed mt19937.Seed
	key := make([]uint32, mt19937.N)
	for i := range key {
		key[i] = uint32(i)*0x01000193 + 7
		binary.LittleEndian.PutUint32(seed[i*4:], key[i])
	}

	assert.Equal(t, key, seed.Keys())

	g := mt19937.FromSeed(seed)
	ref := mt19937.NewFromKeys(key)
	assert.Equal(t, ref.State(), g.State())
	assert.Equal(t, ref.Uint32(), g.Uint32())
}

func TestFromZeroSeed(t *testing.T) {
	g := mt19937.FromSeed(mt19937.Seed{})
	ref := mt19937.NewFromKeys(make([]uint32, mt19937.N))
	assert.Equal(t, ref.State(), g.State())
}

func TestKeyFromInt(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789abcdef0123456789", 16)
	if !ok {
		t.Fatal("bad literal")
	}

	tests := []struct {
		name string
		n    *big.Int
		want []uint32
	}{
		{"zero", big.NewInt(0), []uint32{0}},
		{"small", big.NewInt(12345), []uint32{12345}},
		{"negative uses magnitude", big.NewInt(-12345), []uint32{12345}},
		{"max word", big.NewInt(0xffffffff), []uint32{0xffffffff}},
		{"two words", big.NewInt(1<<32 + 5), []uint32{5, 1}},
		{"partial top word", huge, []uint32{0x23456789, 0xabcdef01, 0x23456789, 0x1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mt19937.KeyFromInt(tt.n))
		})
	}
}

func TestSeedFromIntMatchesCPython(t *testing.T) {
	g := mt19937.New()
	g.SeedFromInt(big.NewInt(12345))
	assert.Equal(t, 0.416619872545341163316834354191087186336517333984375, g.Float64())

	g.SeedFromInt(big.NewInt(0))
	assert.Equal(t, 0.8444218515250481, g.Float64())
}
