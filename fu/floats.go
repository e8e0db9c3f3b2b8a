package fu

import (
	"gonum.org/v1/gonum/floats"
	"math"
)

func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Sum(a) / float64(len(a))
}

/*
Mse is the mean of squared differences between a and b, they must have the same length
*/
func Mse(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	d := make([]float64, len(a))
	floats.SubTo(d, a, b)
	return floats.Dot(d, d) / float64(len(a))
}

/*
Rmse is the root of Mse
*/
func Rmse(a, b []float64) float64 {
	return math.Sqrt(Mse(a, b))
}

// Fnzi returns the first non-zero integer
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

func Mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func Maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Indmind returns the index of the minimal value
func Indmind(a []float64) int {
	if len(a) == 0 {
		return -1
	}
	return floats.MinIdx(a)
}

func Clamp(x, lo, hi float64) float64 {
	return math.Max(math.Min(x, hi), lo)
}
