package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/mt19937"
)

func TestMapPreservesOrder(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := Map(context.Background(), 50, workers, func(_ context.Context, i int) (int, error) {
			return i * i, nil
		})
		require.NoError(t, err)
		require.Len(t, got, 50)
		for i, v := range got {
			assert.Equal(t, i*i, v, "workers=%d index=%d", workers, i)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	got, err := Map(context.Background(), 0, 4, func(context.Context, int) (int, error) {
		t.Fatal("fn called")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapLimitsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	_, err := Map(context.Background(), 40, 2, func(context.Context, int) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		// Enough work to overlap with other goroutines.
		g := mt19937.NewWithSeed(1)
		for range 5000 {
			g.Uint32()
		}
		running.Add(-1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMapReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Map(context.Background(), 10, 1, func(_ context.Context, i int) (int, error) {
		if i == 3 {
			return 0, boom
		}
		return i, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestMapIndependentGenerators(t *testing.T) {
	got, err := Map(context.Background(), 8, NumWorkers(), func(_ context.Context, i int) (uint32, error) {
		g := mt19937.NewWithSeed(uint32(i))
		var last uint32
		for range 1000 {
			last = g.Uint32()
		}
		return last, nil
	})
	require.NoError(t, err)

	for i, v := range got {
		g := mt19937.NewWithSeed(uint32(i))
		var want uint32
		for range 1000 {
			want = g.Uint32()
		}
		assert.Equal(t, want, v, "stream %d", i)
	}
}
