/*
Package datasets contains the tutorial datasets: a small cities table and California housing
*/
package datasets

import (
	"go-ml.dev/pkg/periodic/tables"
	"strings"
)

const (
	CityName        = "City name"
	Population      = "Population"
	Area            = "Area square miles"
	Density         = "Population density"
	WideAndSaint    = "Is wide and has saint name"
	wideAreaMinimum = 50
)

/*
Cities returns the three cities table with derived density and the wide saint mask column
*/
func Cities() *tables.Table {
	t := tables.NewEmpty().
		With(tables.Col([]string{"San Francisco", "San Jose", "Sacramento"}), CityName).
		With(tables.Col([]int{852469, 1015785, 485199}), Population).
		With(tables.Col([]float64{46.87, 176.53, 97.92}), Area)
	t = t.With(t.Col(Population).Div(t.Col(Area)), Density)
	return t.With(
		t.Col(Area).Greater(wideAreaMinimum).
			And(t.Col(CityName).Matches(func(s string) bool { return strings.HasPrefix(s, "San") })),
		WideAndSaint)
}
