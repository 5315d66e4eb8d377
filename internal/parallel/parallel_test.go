package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	seen := make([]int32, 37)
	For(len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, cfg)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_SmallChunk(t *testing.T) {
	// Work smaller than the minimum chunk runs sequentially.
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Empty(t *testing.T) {
	called := false
	For(0, func(_ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestMap(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}

	squares := Map(10, func(i int) int { return i * i }, cfg)

	assert.Len(t, squares, 10)
	for i, v := range squares {
		assert.Equal(t, i*i, v)
	}
}

func TestWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, Workers(), 1)
	cfg := DefaultConfig()
	assert.Equal(t, cfg.NumWorkers > 1, cfg.Enabled)
}

func BenchmarkMap(b *testing.B) {
	cfg := DefaultConfig()
	n := 256

	work := func(i int) float64 {
		var s float64
		for k := 0; k < 2000; k++ {
			s += float64(i * k)
		}
		return s
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Map(n, work, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			_ = Map(n, work, cfgSeq)
		}
	})
}
