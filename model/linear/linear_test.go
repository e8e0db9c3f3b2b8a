package linear

import (
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/periodic/tables"
	"golang.org/x/xerrors"
	"gotest.tools/assert"
	"math"
	"testing"
)

func line(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
		y[i] = 3*x[i] + 2
	}
	return
}

func Test_Convergence(t *testing.T) {
	x, y := line(20)
	m, err := Regressor{}.Feed(model.Training{LearningRate: 0.05, Feature: "x"})
	assert.NilError(t, err)
	in := model.NewInput("x", x, y, 5, true, 0, 1)
	assert.NilError(t, m.Fit(in, 2000))
	lm := m.(*Model)
	assert.Equal(t, lm.Steps(), 2000)
	assert.Assert(t, math.Abs(lm.Weight()-3) < 1e-3, "weight %v", lm.Weight())
	assert.Assert(t, math.Abs(lm.Bias()-2) < 1e-3, "bias %v", lm.Bias())

	w, b := LeastSquares(x, y)
	assert.Assert(t, math.Abs(w-lm.Weight()) < 1e-3)
	assert.Assert(t, math.Abs(b-lm.Bias()) < 1e-3)
}

func Test_PeriodicTraining(t *testing.T) {
	x, y := line(20)
	q, err := tables.New([]string{"x", "y"}, tables.Col(x), tables.Col(y))
	assert.NilError(t, err)
	tr := model.Training{LearningRate: 0.05, Steps: 1000, BatchSize: 5, Feature: "x", Seed: 3, Parameters: true}
	r, err := tr.Train(Regressor{}, model.Dataset{Source: q, Label: "y"})
	assert.NilError(t, err)
	assert.Equal(t, len(r.History), model.DefaultPeriods)
	assert.Equal(t, len(r.Calibration), 20)
	assert.Assert(t, r.History[9].RMSE < r.History[0].RMSE)
	assert.Assert(t, r.RMSE < 1e-3)
	assert.Assert(t, math.Abs(r.History[9].Weight-3) < 1e-2)

	again := tr.LuckyTrain(Regressor{}, model.Dataset{Source: q, Label: "y"})
	assert.DeepEqual(t, again.History, r.History)
}

func Test_Predict(t *testing.T) {
	m := &Model{Feature: "x", weight: 2, bias: 1}
	p, err := m.Predict(model.NewInput("x", []float64{0, 1, 2}, []float64{0, 0, 0}, 0, false, 1, 0))
	assert.NilError(t, err)
	assert.DeepEqual(t, p, []float64{1, 3, 5})

	p, err = m.Predict(model.NewInput("x", []float64{0, 1, 2}, []float64{0, 0, 0}, 2, false, 0, 0))
	assert.NilError(t, err)
	assert.DeepEqual(t, p, []float64{1, 3, 5})
}

func Test_Parameter(t *testing.T) {
	m := &Model{Feature: "rooms_per_person", weight: 2, bias: 1}
	w, err := m.Parameter("linear/linear_model/rooms_per_person/weights")
	assert.NilError(t, err)
	assert.Equal(t, w, 2.0)
	b, err := m.Parameter(model.BiasName)
	assert.NilError(t, err)
	assert.Equal(t, b, 1.0)
	_, err = m.Parameter("linear/linear_model/total_rooms/weights")
	assert.Assert(t, xerrors.Is(err, model.ErrUnknownParameter))
}

func Test_Clip(t *testing.T) {
	dw, db := clip(30, 40, 5)
	assert.Assert(t, math.Abs(dw-3) < 1e-12)
	assert.Assert(t, math.Abs(db-4) < 1e-12)
	dw, db = clip(1, 1, 5)
	assert.Equal(t, dw, 1.0)
	assert.Equal(t, db, 1.0)
	dw, _ = clip(30, 40, -1)
	assert.Equal(t, dw, 30.0)
}

func Test_FitErrors(t *testing.T) {
	m := &Model{LearningRate: 0.1, ClipNorm: DefaultClipNorm}
	in := model.NewInput("x", []float64{1, 2, 3}, []float64{1, 2, 3}, 2, false, 1, 0)
	assert.ErrorContains(t, m.Fit(in, 3), "exhausted")
	assert.ErrorContains(t, m.Fit(in, -1), "steps")

	_, err := Regressor{}.Feed(model.Training{})
	assert.ErrorContains(t, err, "learning rate")
}
