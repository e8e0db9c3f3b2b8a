package model

import (
	"go-ml.dev/pkg/periodic/tables"
	"golang.org/x/xerrors"
)

/*
Dataset is a source of examples to feed models.
Every row of the Source is an example, Label names the numeric target column
*/
type Dataset struct {
	Source *tables.Table
	Label  string
}

func (ds Dataset) Len() int {
	return ds.Source.Len()
}

func (ds Dataset) numeric(name string) ([]float64, error) {
	c, err := ds.Source.Lookup(name)
	if err != nil {
		return nil, err
	}
	if c.Kind() != tables.Float {
		return nil, xerrors.Errorf("column `%v` has %v values: %w", name, c.Kind(), ErrNotNumeric)
	}
	return c.Floats(), nil
}

/*
Targets returns the label values
*/
func (ds Dataset) Targets() ([]float64, error) {
	return ds.numeric(ds.Label)
}

/*
Input projects examples on the feature and builds a model input
*/
func (ds Dataset) Input(feature string, batchSize int, shuffle bool, epochs int, seed int64) (*Input, error) {
	x, err := ds.numeric(feature)
	if err != nil {
		return nil, err
	}
	y, err := ds.Targets()
	if err != nil {
		return nil, err
	}
	return NewInput(feature, x, y, batchSize, shuffle, epochs, seed), nil
}

/*
TrainingInput repeats shuffled examples indefinitely in batches of batchSize
*/
func (ds Dataset) TrainingInput(feature string, batchSize int, seed int64) (*Input, error) {
	return ds.Input(feature, batchSize, true, 0, seed)
}

/*
PredictionInput passes every example exactly once in the original order
*/
func (ds Dataset) PredictionInput(feature string) (*Input, error) {
	return ds.Input(feature, 0, false, 1, 0)
}
