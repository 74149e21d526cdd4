package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryIndexOnce(t *testing.T) {
	for _, items := range []int{1, 2, 7, 64, 1001} {
		hits := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("items=%d: index %d visited %d times", items, i, h)
			}
		}
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(10, 10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)

	calls = 0
	ParallelizeWithThreshold(0, 10, func(start, end int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestParallelizePropagatesPanic(t *testing.T) {
	assert.PanicsWithValue(t, "worker failed", func() {
		Parallelize(Workers(1000)*2, func(start, end int) {
			if start == 0 {
				panic("worker failed")
			}
		})
	})
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 0, Workers(0))
	assert.Equal(t, 1, Workers(1))
	assert.LessOrEqual(t, Workers(1<<20), 1<<20)
}
