package model

import (
	"golang.org/x/xerrors"
)

/*
Model is a trainable single-feature predictor.
Fit advances the model's parameters starting from the prior state, it never resets them.
Predict does not change the model state and returns one prediction per input example
*/
type Model interface {
	Fit(in *Input, steps int) error
	Predict(in *Input) ([]float64, error)
}

/*
ParametricModel is a model exposing its learned variables by name
*/
type ParametricModel interface {
	Model
	Parameter(name string) (float64, error)
}

/*
HungryModel is an ML algorithm which can be fattened by a training run.
Feed creates a new untrained model configured for the training
*/
type HungryModel interface {
	Feed(Training) (Model, error)
}

// BiasName is the name of the bias variable of linear models
const BiasName = "linear/linear_model/bias_weights"

/*
WeightName is the name of the weight variable for the feature
*/
func WeightName(feature string) string {
	return "linear/linear_model/" + feature + "/weights"
}

var (
	ErrInvalidTraining  = xerrors.New("invalid training configuration")
	ErrIndivisibleSteps = xerrors.New("steps are not divisible by periods")
	ErrNotNumeric       = xerrors.New("column is not numeric")
	ErrPredictionCount  = xerrors.New("prediction count does not match examples count")
	ErrNoParameters     = xerrors.New("model does not expose parameters")
	ErrUnknownParameter = xerrors.New("unknown model parameter")
)
