/*
Package hyperopt implements grid search of training hyper-parameters for periodic training
*/
package hyperopt

import (
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/periodic/tables"
	"go-ml.dev/pkg/zorros/zorros"
	"gonum.org/v1/gonum/floats"
	"math"
	"sort"
)

// Well-known parameter names applied to model.Training
const (
	LearningRate = "learning_rate"
	Steps        = "steps"
	BatchSize    = "batch_size"
)

// DefaultPoints is the count of values sampled from continuous ranges
const DefaultPoints = 5

/*
Range is a close float range specified by min and max values [min,max]
*/
type Range [2]float64

/*
LogRange is a close float logarithmic range specified by min and max values [min,max]
*/
type LogRange [2]float64

/*
IntRange is a close integer range specified by min and max values [min,max]
*/
type IntRange [2]int

/*
List is a list of possible parameter values
*/
type List []float64

/*
Value is a single value parameter
*/
type Value float64

// type limitation interface
type distribution interface {
	values(points int) []float64
}

func (r Range) values(points int) []float64 {
	if points < 2 || r[0] == r[1] {
		return []float64{r[0]}
	}
	return floats.Span(make([]float64, points), r[0], r[1])
}

func (r LogRange) values(points int) []float64 {
	if points < 2 || r[0] == r[1] {
		return []float64{r[0]}
	}
	return floats.LogSpan(make([]float64, points), r[0], r[1])
}

func (r IntRange) values(int) []float64 {
	v := []float64{}
	for i := r[0]; i <= r[1]; i++ {
		v = append(v, float64(i))
	}
	return v
}

func (l List) values(int) []float64 {
	return append([]float64(nil), l...)
}

func (v Value) values(int) []float64 {
	return []float64{float64(v)}
}

/*
Variance is a space of hyper-parameters used by Search
*/
type Variance map[string]distribution

/*
Params is a set of hyper-parameters
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Apply sets learning rate, steps and batch size of the training if they are specified
*/
func (p Params) Apply(t model.Training) model.Training {
	t.LearningRate = p.Get(LearningRate, t.LearningRate)
	t.Steps = int(math.Round(p.Get(Steps, float64(t.Steps))))
	t.BatchSize = int(math.Round(p.Get(BatchSize, float64(t.BatchSize))))
	return t
}

/*
Trial is a training result for one point of the space
*/
type Trial struct {
	Params
	Report *model.Report
	Score  float64 // final RMSE, lower is better
}

/*
Report is a result of Hyper-parameters Optimization
*/
type Report struct {
	Params
	Score  float64
	Trials []Trial
}

/*
Space is a definition of hyper-parameters optimization space
*/
type Space struct {
	Source   *tables.Table  // dataset source
	Label    string         // dataset label
	Training model.Training // base training configuration
	Points   int            // values sampled from continuous ranges, DefaultPoints if zero

	// the model generation function
	ModelFunc func(Params) model.HungryModel

	// hyper-parameters variance
	Variance Variance

	// print function
	Verbose func(string)
}

/*
Grid enumerates all combinations of the space parameters, ordered by parameter name
*/
func (s Space) Grid() []Params {
	names := make([]string, 0, len(s.Variance))
	for k := range s.Variance {
		names = append(names, k)
	}
	sort.Strings(names)
	points := fu.Fnzi(s.Points, DefaultPoints)
	grid := []Params{{}}
	for _, n := range names {
		next := []Params{}
		for _, p := range grid {
			for _, v := range s.Variance[n].values(points) {
				q := Params{n: v}
				for k, x := range p {
					q[k] = x
				}
				next = append(next, q)
			}
		}
		grid = next
	}
	return grid
}

/*
Search trains a model for every point of the grid and returns the best parameters.
Points with invalid training configuration are skipped
*/
func Search(s Space) (*Report, error) {
	if s.ModelFunc == nil {
		return nil, zorros.Errorf("space has no model function")
	}
	ds := model.Dataset{Source: s.Source, Label: s.Label}
	report := &Report{Score: math.Inf(1)}
	for _, p := range s.Grid() {
		t := p.Apply(s.Training)
		if err := t.Validate(); err != nil {
			if s.Verbose != nil {
				s.Verbose(err.Error())
			}
			continue
		}
		r, err := t.Train(s.ModelFunc(p), ds)
		if err != nil {
			return nil, err
		}
		report.Trials = append(report.Trials, Trial{Params: p, Report: r, Score: r.RMSE})
		if r.RMSE < report.Score {
			report.Params, report.Score = p, r.RMSE
		}
	}
	if len(report.Trials) == 0 {
		return nil, zorros.Errorf("no valid training configuration in the space")
	}
	return report, nil
}
