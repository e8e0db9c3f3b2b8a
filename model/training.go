package model

import (
	"fmt"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
)

/*
Training is a periodic training run of a single-feature model.
Steps are split into Periods equal chunks, the model is evaluated on the whole dataset after every chunk
*/
type Training struct {
	LearningRate float64      // optimizer learning rate
	Steps        int          // total count of training steps
	BatchSize    int          // examples per training step
	Periods      int          // count of evaluation periods, DefaultPeriods if zero
	Feature      string       // input feature column
	Seed         int64        // training input shuffling seed
	Parameters   bool         // fail if the model does not expose weight and bias
	ReportFile   iokit.Output // file to store calibration data
	Verbose      func(string) // print function
}

const DefaultPeriods = 10

func (t Training) PeriodCount() int {
	return fu.Fnzi(t.Periods, DefaultPeriods)
}

func (t Training) StepsPerPeriod() int {
	return t.Steps / t.PeriodCount()
}

/*
Validate checks the configuration, steps must be divisible by periods
*/
func (t Training) Validate() error {
	switch {
	case t.LearningRate <= 0:
		return xerrors.Errorf("learning rate must be > 0, got %v: %w", t.LearningRate, ErrInvalidTraining)
	case t.Steps <= 0:
		return xerrors.Errorf("steps must be > 0, got %d: %w", t.Steps, ErrInvalidTraining)
	case t.BatchSize <= 0:
		return xerrors.Errorf("batch size must be > 0, got %d: %w", t.BatchSize, ErrInvalidTraining)
	case t.Periods < 0:
		return xerrors.Errorf("periods must be >= 0, got %d: %w", t.Periods, ErrInvalidTraining)
	case t.Feature == "":
		return xerrors.Errorf("feature is required: %w", ErrInvalidTraining)
	case t.Steps%t.PeriodCount() != 0:
		return xerrors.Errorf("%d steps by %d periods: %w", t.Steps, t.PeriodCount(), ErrIndivisibleSteps)
	}
	return nil
}

func (t Training) verbose(format string, a ...interface{}) {
	if t.Verbose != nil {
		t.Verbose(fmt.Sprintf(format, a...))
	}
}

/*
Train feeds the hungry model and runs the training
*/
func (t Training) Train(h HungryModel, ds Dataset) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	m, err := h.Feed(t)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to create model: %v", err.Error())
	}
	return t.Run(m, ds)
}

/*
LuckyTrain trains the model and throws any occurred errors as a panic
*/
func (t Training) LuckyTrain(h HungryModel, ds Dataset) *Report {
	r, err := t.Train(h, ds)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

/*
Run trains the model period by period and collects RMSE after every period.
The model is not reset between periods
*/
func (t Training) Run(m Model, ds Dataset) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	pm, parametric := m.(ParametricModel)
	if t.Parameters && !parametric {
		return nil, xerrors.Errorf("%T: %w", m, ErrNoParameters)
	}
	training, err := ds.TrainingInput(t.Feature, t.BatchSize, t.Seed)
	if err != nil {
		return nil, err
	}
	prediction, err := ds.PredictionInput(t.Feature)
	if err != nil {
		return nil, err
	}

	w := &workout{training: t, feature: t.Feature, label: ds.Label, targets: prediction.Y}
	steps := t.StepsPerPeriod()
	t.verbose("Training model...")
	t.verbose("RMSE (on training data):")
	for period := 0; period < t.PeriodCount(); period++ {
		if err = m.Fit(training, steps); err != nil {
			return nil, zorros.Wrapf(err, "period %d: fit failed: %v", period, err.Error())
		}
		predictions, err := m.Predict(prediction)
		if err != nil {
			return nil, zorros.Wrapf(err, "period %d: predict failed: %v", period, err.Error())
		}
		if len(predictions) != prediction.Len() {
			return nil, xerrors.Errorf("period %d: got %d predictions for %d examples: %w",
				period, len(predictions), prediction.Len(), ErrPredictionCount)
		}
		r := PeriodResult{Period: period, RMSE: fu.Rmse(predictions, prediction.Y)}
		if parametric {
			if r.Weight, err = pm.Parameter(WeightName(t.Feature)); err != nil {
				return nil, zorros.Wrapf(err, "period %d: failed to get weight: %v", period, err.Error())
			}
			if r.Bias, err = pm.Parameter(BiasName); err != nil {
				return nil, zorros.Wrapf(err, "period %d: failed to get bias: %v", period, err.Error())
			}
			r.HasParameters = true
		}
		w.complete(r, predictions)
	}
	t.verbose("Model training finished.")
	return w.report()
}

/*
LuckyRun runs the training and throws any occurred errors as a panic
*/
func (t Training) LuckyRun(m Model, ds Dataset) *Report {
	r, err := t.Run(m, ds)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

type workout struct {
	training    Training
	feature     string
	label       string
	targets     []float64
	history     []PeriodResult
	predictions []float64
}

func (w *workout) complete(r PeriodResult, predictions []float64) {
	w.history = append(w.history, r)
	w.predictions = predictions
	w.training.verbose("  period %02d : %0.2f", r.Period, r.RMSE)
}

func (w *workout) report() (report *Report, err error) {
	report = &Report{
		Feature: w.feature,
		Label:   w.label,
		History: w.history,
	}
	report.Calibration = make([]CalibrationRecord, len(w.targets))
	for i, y := range w.targets {
		report.Calibration[i] = CalibrationRecord{Prediction: w.predictions[i], Target: y}
	}
	if n := len(w.history); n > 0 {
		report.RMSE = w.history[n-1].RMSE
	}
	if w.training.ReportFile != nil {
		if err = report.WriteCalibration(w.training.ReportFile); err != nil {
			return nil, err
		}
	}
	w.training.verbose("Final RMSE (on training data): %0.2f", report.RMSE)
	return
}
