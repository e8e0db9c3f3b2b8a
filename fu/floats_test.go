package fu

import (
	"gotest.tools/assert"
	"math"
	"testing"
)

func Test_Rmse(t *testing.T) {
	assert.Equal(t, Rmse([]float64{1, 2, 3}, []float64{1, 2, 3}), 0.0)
	assert.Equal(t, Rmse([]float64{5, 5}, []float64{0, 10}), 5.0)
	assert.Equal(t, Rmse(nil, nil), 0.0)
	assert.Assert(t, math.Abs(Mse([]float64{1, 3}, []float64{0, 0})-5) < 1e-12)
}

func Test_Helpers(t *testing.T) {
	assert.Equal(t, Fnzi(0, 0, 3, 4), 3)
	assert.Equal(t, Fnzi(0), 0)
	assert.Equal(t, Mini(2, 7), 2)
	assert.Equal(t, Maxi(2, 7), 7)
	assert.Equal(t, Indmind([]float64{3, 1, 2}), 1)
	assert.Equal(t, Indmind(nil), -1)
	assert.Equal(t, Clamp(7, 0, 5), 5.0)
	assert.Equal(t, Clamp(-1, 0, 5), 0.0)
	assert.Equal(t, Mean([]float64{1, 2, 3}), 2.0)
}
