package mt19937

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StateSize is the length of the MarshalBinary encoding: N state words
// followed by the index, each a little-endian uint32.
const StateSize = (N + 1) * 4

var (
	// ErrInvalidIndex is returned when an index outside [0, N] is supplied.
	ErrInvalidIndex = errors.New("mt19937: index out of range")

	// ErrInvalidState is returned when a binary snapshot cannot be decoded.
	ErrInvalidState = errors.New("mt19937: invalid state encoding")
)

// State returns a copy of the N-word state vector.
func (g *MT19937) State() [N]uint32 {
	return g.mt
}

// SetState replaces the state vector. Any content is accepted, including
// all zeros. The index is left unchanged.
func (g *MT19937) SetState(words [N]uint32) {
	g.mt = words
}

// Index returns how many words of the current state have been consumed.
// It is N when the next draw twists, and N+1 for a generator that was
// never seeded.
func (g *MT19937) Index() int {
	return g.mti
}

// SetIndex moves the cursor. idx must be in [0, N]; N forces a twist on
// the next draw. On error the generator is left untouched.
func (g *MT19937) SetIndex(idx int) error {
	if idx < 0 || idx > N {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidIndex, idx, N)
	}
	g.mti = idx
	return nil
}

// MarshalBinary encodes the state vector and index.
func (g *MT19937) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(make([]byte, 0, StateSize))
}

// AppendBinary appends the MarshalBinary encoding to b.
func (g *MT19937) AppendBinary(b []byte) ([]byte, error) {
	for _, w := range g.mt {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return binary.LittleEndian.AppendUint32(b, uint32(g.mti)), nil
}

// UnmarshalBinary restores a snapshot produced by MarshalBinary. The
// unseeded sentinel index is accepted so that a fresh generator round-trips.
func (g *MT19937) UnmarshalBinary(data []byte) error {
	if len(data) != StateSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidState, len(data), StateSize)
	}
	idx := binary.LittleEndian.Uint32(data[N*4:])
	if idx > unseeded {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, idx)
	}

	var mt [N]uint32
	for i := range mt {
		mt[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	g.mt = mt
	g.mti = int(idx)
	return nil
}
