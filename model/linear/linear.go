/*
Package linear implements a single-feature linear regression trained by mini-batch gradient descent
*/
package linear

import (
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat"
	"math"
)

// DefaultClipNorm is the gradients global norm limit used when Regressor.ClipNorm is zero
const DefaultClipNorm = 5.0

/*
Regressor is a hungry linear regression model
*/
type Regressor struct {
	ClipNorm float64 // gradients global norm limit, DefaultClipNorm if zero, no clipping if negative
}

/*
Feed creates a new zero initialized model using training learning rate
*/
func (r Regressor) Feed(t model.Training) (model.Model, error) {
	if t.LearningRate <= 0 {
		return nil, zorros.Errorf("learning rate must be > 0, got %v", t.LearningRate)
	}
	clip := r.ClipNorm
	if clip == 0 {
		clip = DefaultClipNorm
	}
	return &Model{Feature: t.Feature, LearningRate: t.LearningRate, ClipNorm: clip}, nil
}

/*
Model is a fitted linear function weight*x + bias
*/
type Model struct {
	Feature      string
	LearningRate float64
	ClipNorm     float64
	weight, bias float64
	steps        int
}

func (m *Model) Weight() float64 { return m.weight }
func (m *Model) Bias() float64   { return m.bias }

// Steps returns the count of applied training steps
func (m *Model) Steps() int { return m.steps }

func (m *Model) estimate(x float64) float64 {
	return m.weight*x + m.bias
}

/*
Fit performs steps of gradient descent over input batches.
The loss is the sum of squared errors over a batch
*/
func (m *Model) Fit(in *model.Input, steps int) error {
	if steps < 0 {
		return zorros.Errorf("steps must be >= 0, got %d", steps)
	}
	b := in.Batches()
	for i := 0; i < steps; i++ {
		x, y, ok := b.Next()
		if !ok {
			return zorros.Errorf("input is exhausted after %d of %d steps", i, steps)
		}
		dw, db := m.gradients(x, y)
		dw, db = clip(dw, db, m.ClipNorm)
		m.weight -= m.LearningRate * dw
		m.bias -= m.LearningRate * db
		m.steps++
	}
	return nil
}

func (m *Model) gradients(x, y []float64) (dw, db float64) {
	for i := range x {
		d := 2 * (m.estimate(x[i]) - y[i])
		dw += d * x[i]
		db += d
	}
	return
}

func clip(dw, db, norm float64) (float64, float64) {
	if norm <= 0 {
		return dw, db
	}
	g := math.Hypot(dw, db)
	if g > norm {
		k := norm / g
		return dw * k, db * k
	}
	return dw, db
}

/*
Predict returns weight*x + bias for every input example
*/
func (m *Model) Predict(in *model.Input) ([]float64, error) {
	r := make([]float64, 0, in.Len())
	b := in.Batches()
	for x, _, ok := b.Next(); ok; x, _, ok = b.Next() {
		for _, v := range x {
			r = append(r, m.estimate(v))
		}
		if in.Epochs == 0 && len(r) >= in.Len() {
			break
		}
	}
	return r, nil
}

/*
Parameter returns weight or bias by the variable name
*/
func (m *Model) Parameter(name string) (float64, error) {
	switch name {
	case model.WeightName(m.Feature):
		return m.weight, nil
	case model.BiasName:
		return m.bias, nil
	}
	return 0, xerrors.Errorf("`%v`: %w", name, model.ErrUnknownParameter)
}

/*
LeastSquares is the closed form single-feature linear regression
*/
func LeastSquares(x, y []float64) (weight, bias float64) {
	bias, weight = stat.LinearRegression(x, y, nil, false)
	return
}
