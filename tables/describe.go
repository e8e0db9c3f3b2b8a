package tables

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"math"
	"sort"
)

/*
DescribeStats are names of rows produced by Describe
*/
var DescribeStats = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

/*
Describe summarizes numeric columns: count, mean, std, min, quartiles and max.
If no names are given all float columns are described.
The result has a string column `stat` and one float column per described column
*/
func (t *Table) Describe(names ...string) (*Table, error) {
	if len(names) == 0 {
		for i, c := range t.columns {
			if c.kind == Float {
				names = append(names, t.names[i])
			}
		}
	}
	r := NewEmpty().With(Col(DescribeStats), "stat")
	for _, n := range names {
		c, err := t.Lookup(n)
		if err != nil {
			return nil, err
		}
		r = r.With(Col(describe(c.Floats())), n)
	}
	return r, nil
}

func describe(a []float64) []float64 {
	x := make([]float64, 0, len(a))
	for _, v := range a {
		if !math.IsNaN(v) {
			x = append(x, v)
		}
	}
	if len(x) == 0 {
		nan := math.NaN()
		return []float64{0, nan, nan, nan, nan, nan, nan, nan}
	}
	sort.Float64s(x)
	std := math.NaN()
	if len(x) > 1 {
		std = stat.StdDev(x, nil)
	}
	return []float64{
		float64(len(x)),
		stat.Mean(x, nil),
		std,
		floats.Min(x),
		stat.Quantile(0.25, stat.Empirical, x, nil),
		stat.Quantile(0.5, stat.Empirical, x, nil),
		stat.Quantile(0.75, stat.Empirical, x, nil),
		floats.Max(x),
	}
}
