package model

import (
	"gotest.tools/assert"
	"sort"
	"testing"
)

func Test_PredictionBatches(t *testing.T) {
	in := NewInput("x", []float64{1, 2, 3}, []float64{4, 5, 6}, 0, false, 1, 0)
	b := in.Batches()
	x, y, ok := b.Next()
	assert.Assert(t, ok)
	assert.DeepEqual(t, x, []float64{1, 2, 3})
	assert.DeepEqual(t, y, []float64{4, 5, 6})
	_, _, ok = b.Next()
	assert.Assert(t, !ok)
}

func Test_RepeatedShuffledBatches(t *testing.T) {
	in := NewInput("x", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 2, true, 0, 42)
	b := in.Batches()
	seen := []float64{}
	sizes := []int{}
	for i := 0; i < 6; i++ {
		x, y, ok := b.Next()
		assert.Assert(t, ok)
		assert.DeepEqual(t, x, y)
		sizes = append(sizes, len(x))
		if i < 3 {
			seen = append(seen, x...)
		}
	}
	assert.DeepEqual(t, sizes, []int{2, 2, 1, 2, 2, 1})
	sort.Float64s(seen)
	assert.DeepEqual(t, seen, []float64{1, 2, 3, 4, 5})
}

func Test_EpochsLimit(t *testing.T) {
	in := NewInput("x", []float64{1, 2, 3}, []float64{1, 2, 3}, 2, false, 2, 0)
	b := in.Batches()
	n := 0
	for _, _, ok := b.Next(); ok; _, _, ok = b.Next() {
		n++
	}
	assert.Equal(t, n, 4)

	empty := NewInput("x", nil, nil, 2, true, 0, 0)
	_, _, ok := empty.Batches().Next()
	assert.Assert(t, !ok)
}
