/*
Package render prints training reports and tables to a terminal
*/
package render

import (
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/periodic/tables"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"io"
)

type Point struct {
	X, Y float64
}

/*
Line is a segment of the learned regression line
*/
type Line [2]Point

/*
LearnedLine returns the part of the period's regression line visible over the sample:
labels from zero up to the maximal label, features limited by the sample's feature range
*/
func LearnedLine(r model.PeriodResult, sample *tables.Table, feature, label string) (Line, error) {
	if !r.HasParameters {
		return Line{}, xerrors.Errorf("period %d: %w", r.Period, model.ErrNoParameters)
	}
	xc, err := sample.Lookup(feature)
	if err != nil {
		return Line{}, err
	}
	yc, err := sample.Lookup(label)
	if err != nil {
		return Line{}, err
	}
	if sample.Len() == 0 {
		return Line{}, xerrors.New("empty sample")
	}
	xs, ys := xc.Floats(), yc.Floats()
	lo, hi := floats.Min(xs), floats.Max(xs)
	var l Line
	for i, y := range []float64{0, floats.Max(ys)} {
		x := lo + float64(i)*(hi-lo)
		if r.Weight != 0 {
			x = fu.Clamp((y-r.Bias)/r.Weight, lo, hi)
		}
		l[i] = Point{x, r.Weight*x + r.Bias}
	}
	return l, nil
}

func newWriter(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

/*
Periods prints RMSE of every period, weight, bias and the learned line if sample is not nil
*/
func Periods(w io.Writer, r *model.Report, sample *tables.Table) error {
	t := newWriter(w, "Root Mean Squared Error vs. Periods")
	t.AppendHeader(table.Row{"Period", "RMSE", "Weight", "Bias", "Line"})
	for _, p := range r.History {
		row := table.Row{fmt.Sprintf("%02d", p.Period), fmt.Sprintf("%0.2f", p.RMSE), "", "", ""}
		if p.HasParameters {
			row[2], row[3] = fmt.Sprintf("%.4g", p.Weight), fmt.Sprintf("%.4g", p.Bias)
			if sample != nil {
				l, err := LearnedLine(p, sample, r.Feature, r.Label)
				if err != nil {
					return err
				}
				row[4] = fmt.Sprintf("(%.2f, %.2f) - (%.2f, %.2f)", l[0].X, l[0].Y, l[1].X, l[1].Y)
			}
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"Final", fmt.Sprintf("%0.2f", r.RMSE)})
	t.Render()
	return nil
}

/*
Calibration prints summary statistics of final predictions and targets
*/
func Calibration(w io.Writer, r *model.Report) error {
	d, err := r.CalibrationTable().Describe()
	if err != nil {
		return err
	}
	Table(w, d, 0, "%.1f")
	return nil
}

/*
Table prints at most limit rows of the table, all rows if limit is zero.
Float values are formatted with format
*/
func Table(w io.Writer, q *tables.Table, limit int, format string) {
	t := newWriter(w, "")
	names := q.Names()
	header := make(table.Row, len(names))
	for i, n := range names {
		header[i] = n
	}
	t.AppendHeader(header)
	n := q.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		row := make(table.Row, len(names))
		for j, name := range names {
			c := q.Col(name)
			if c.Kind() == tables.Float {
				row[j] = fmt.Sprintf(format, c.Float(i))
			} else {
				row[j] = c.String(i)
			}
		}
		t.AppendRow(row)
	}
	t.Render()
	if n < q.Len() {
		_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", n, q.Len())
	}
}
