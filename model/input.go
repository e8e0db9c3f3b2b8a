package model

import (
	"math/rand"
)

/*
Input is a single-feature view of examples with batching options
*/
type Input struct {
	Feature   string
	X, Y      []float64
	BatchSize int  // examples per batch, all examples if zero
	Shuffle   bool // shuffle examples every epoch
	Epochs    int  // count of passes, repeats indefinitely if zero
	rand      *rand.Rand
}

func NewInput(feature string, x, y []float64, batchSize int, shuffle bool, epochs int, seed int64) *Input {
	return &Input{
		Feature:   feature,
		X:         x,
		Y:         y,
		BatchSize: batchSize,
		Shuffle:   shuffle,
		Epochs:    epochs,
		rand:      rand.New(rand.NewSource(seed)),
	}
}

func (in *Input) Len() int {
	return len(in.X)
}

/*
Batches starts a new pass over the input
*/
func (in *Input) Batches() *Batches {
	return &Batches{in: in}
}

/*
Batches iterates over input batches
*/
type Batches struct {
	in    *Input
	order []int
	pos   int
	epoch int
}

/*
Next returns the next batch of examples, ok is false when all epochs are passed
*/
func (b *Batches) Next() (x, y []float64, ok bool) {
	n := b.in.Len()
	if n == 0 {
		return nil, nil, false
	}
	if b.order == nil || b.pos >= n {
		if b.order != nil {
			b.epoch++
		}
		if b.in.Epochs > 0 && b.epoch >= b.in.Epochs {
			return nil, nil, false
		}
		b.pos = 0
		if b.in.Shuffle {
			b.order = b.in.rand.Perm(n)
		} else {
			b.order = make([]int, n)
			for i := range b.order {
				b.order[i] = i
			}
		}
	}
	size := b.in.BatchSize
	if size <= 0 || b.pos+size > n {
		size = n - b.pos
	}
	x = make([]float64, size)
	y = make([]float64, size)
	for i, j := range b.order[b.pos : b.pos+size] {
		x[i], y[i] = b.in.X[j], b.in.Y[j]
	}
	b.pos += size
	return x, y, true
}
