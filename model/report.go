package model

import (
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/periodic/tables"
	"go-ml.dev/pkg/zorros/zorros"
)

/*
PeriodResult is the model quality measured after a training period
*/
type PeriodResult struct {
	Period        int
	RMSE          float64
	Weight, Bias  float64
	HasParameters bool // Weight and Bias are valid
}

/*
CalibrationRecord pairs the final prediction with its true target
*/
type CalibrationRecord struct {
	Prediction, Target float64
}

/*
Report is a periodic training report
*/
type Report struct {
	Feature, Label string
	History        []PeriodResult      // one result per period in order
	Calibration    []CalibrationRecord // one record per example
	RMSE           float64             // the last period RMSE
}

/*
Errors returns RMSE of every period
*/
func (r *Report) Errors() []float64 {
	e := make([]float64, len(r.History))
	for i, p := range r.History {
		e[i] = p.RMSE
	}
	return e
}

/*
TheBest returns the index of the period with the lowest RMSE
*/
func (r *Report) TheBest() int {
	return fu.Indmind(r.Errors())
}

func (r *Report) Predictions() []float64 {
	p := make([]float64, len(r.Calibration))
	for i, c := range r.Calibration {
		p[i] = c.Prediction
	}
	return p
}

func (r *Report) Targets() []float64 {
	p := make([]float64, len(r.Calibration))
	for i, c := range r.Calibration {
		p[i] = c.Target
	}
	return p
}

/*
CalibrationTable returns calibration data as a table with `predictions` and `targets` columns
*/
func (r *Report) CalibrationTable() *tables.Table {
	return tables.NewEmpty().
		With(tables.Col(r.Predictions()), "predictions").
		With(tables.Col(r.Targets()), "targets")
}

/*
WriteCalibration stores calibration data as CSV
*/
func (r *Report) WriteCalibration(output iokit.Output) error {
	wh, err := output.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	if err = r.CalibrationTable().WriteCSV(wh); err != nil {
		return zorros.Wrapf(err, "failed to write calibration data: %v", err.Error())
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
