package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/periodic/datasets"
	"go-ml.dev/pkg/periodic/journal"
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/periodic/model/hyperopt"
	"go-ml.dev/pkg/periodic/model/linear"
	"go-ml.dev/pkg/periodic/render"
	"go-ml.dev/pkg/periodic/tables"
	"go-ml.dev/pkg/zorros/zlog"
	"io"
)

type configKey struct{}

func config(cmd *cobra.Command) *Config {
	return cmd.Context().Value(configKey{}).(*Config)
}

/*
NewRootCmd creates the root command with all subcommands
*/
func NewRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "linreg",
		Short: "Periodic linear regression trainer",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Verbose {
				zlog.Infof("config: %+v", *cfg)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := root.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+")")
	f.String("dataset", "", "housing CSV file, downloads the public dataset if empty")
	f.String("feature", "", "input feature column")
	f.String("label", "", "label column")
	f.Float64("learning-rate", 0, "gradient descent learning rate")
	f.Int("steps", 0, "total training steps, must be divisible by periods")
	f.Int("batch-size", 0, "examples per training step")
	f.Int("periods", 0, "count of evaluation periods")
	f.Float64("clip-norm", 0, "gradients global norm limit")
	f.Float64("clip-feature", 0, "rooms per person maximum, no clipping if zero")
	f.Int64("seed", 0, "random seed")
	f.Int("sample-size", 0, "examples used to draw learned lines")
	f.String("calibration", "", "CSV file to store calibration data")
	f.String("journal", "", "SQLite journal of training runs")
	f.BoolP("verbose", "v", false, "verbose output")

	root.AddCommand(newTrainCmd(), newSweepCmd(), newCitiesCmd(), newHistoryCmd())
	return root
}

func loadDataset(cfg *Config) (*tables.Table, error) {
	var source tables.Source = datasets.HousingSource()
	if cfg.Dataset != "" {
		source = iokit.File(cfg.Dataset)
	}
	t, err := datasets.LoadHousing(source, cfg.Seed)
	if err != nil {
		return nil, err
	}
	if cfg.Feature == datasets.RoomsPerPerson {
		return datasets.WithRoomsPerPerson(t, cfg.ClipFeature)
	}
	return t, nil
}

func newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the model and print RMSE by periods and calibration data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config(cmd)
			t, err := loadDataset(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cfg.Verbose {
				if err = printFeature(w, t, cfg.Feature); err != nil {
					return err
				}
			}
			tr := cfg.Training()
			tr.Parameters = true
			tr.Verbose = func(s string) { _, _ = fmt.Fprintln(w, s) }
			if cfg.Calibration != "" {
				tr.ReportFile = iokit.File(cfg.Calibration)
			}
			r, err := tr.Train(linear.Regressor{ClipNorm: cfg.ClipNorm}, model.Dataset{Source: t, Label: cfg.Label})
			if err != nil {
				return err
			}
			if err = printReport(w, r, t.Sample(cfg.SampleSize, cfg.Seed)); err != nil {
				return err
			}
			return record(cfg, tr, r)
		},
	}
}

/*
printFeature prints the feature distribution, it shows outliers worth clipping
*/
func printFeature(w io.Writer, t *tables.Table, feature string) error {
	d, err := t.Describe(feature)
	if err != nil {
		return err
	}
	render.Table(w, d, 0, "%.2f")
	return nil
}

func printReport(w io.Writer, r *model.Report, sample *tables.Table) error {
	if err := render.Periods(w, r, sample); err != nil {
		return err
	}
	return render.Calibration(w, r)
}

func record(cfg *Config, tr model.Training, r *model.Report) error {
	if cfg.Journal == "" {
		return nil
	}
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return err
	}
	defer j.Close()
	id, err := j.Record(tr, r)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		zlog.Infof("run %d is recorded to %v", id, cfg.Journal)
	}
	return nil
}

func newSweepCmd() *cobra.Command {
	var rates []float64
	var steps []int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train the model for every combination of learning rates and steps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config(cmd)
			t, err := loadDataset(cfg)
			if err != nil {
				return err
			}
			variance := hyperopt.Variance{}
			if len(rates) > 0 {
				variance[hyperopt.LearningRate] = hyperopt.List(rates)
			}
			if len(steps) > 0 {
				l := make(hyperopt.List, len(steps))
				for i, s := range steps {
					l[i] = float64(s)
				}
				variance[hyperopt.Steps] = l
			}
			r, err := hyperopt.Search(hyperopt.Space{
				Source:   t,
				Label:    cfg.Label,
				Training: cfg.Training(),
				Variance: variance,
				ModelFunc: func(hyperopt.Params) model.HungryModel {
					return linear.Regressor{ClipNorm: cfg.ClipNorm}
				},
				Verbose: func(s string) { zlog.Warningf("skipped: %v", s) },
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, trial := range r.Trials {
				_, _ = fmt.Fprintf(w, "learning rate %g, steps %g: RMSE %0.2f\n",
					trial.Get(hyperopt.LearningRate, cfg.LearningRate),
					trial.Get(hyperopt.Steps, float64(cfg.Steps)),
					trial.Score)
				if err = record(cfg, trial.Apply(cfg.Training()), trial.Report); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(w, "best: learning rate %g, steps %g, RMSE %0.2f\n",
				r.Get(hyperopt.LearningRate, cfg.LearningRate), r.Get(hyperopt.Steps, float64(cfg.Steps)), r.Score)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&rates, "rates", nil, "learning rates to try")
	cmd.Flags().IntSliceVar(&steps, "step-counts", nil, "step counts to try")
	return cmd
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "Print the cities table with derived columns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config(cmd)
			w := cmd.OutOrStdout()
			c := datasets.Cities()
			render.Table(w, c, 0, "%.1f")
			_, _ = fmt.Fprintln(w, "wide cities with saint name:")
			render.Table(w, c.Filter(c.Col(datasets.WideAndSaint)), 0, "%.1f")
			_, _ = fmt.Fprintln(w, "shuffled:")
			render.Table(w, c.Shuffle(cfg.Seed), 0, "%.1f")
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List journaled training runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config(cmd)
			j, err := journal.Open(cfg.Journal)
			if err != nil {
				return err
			}
			defer j.Close()
			runs, err := j.Runs()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range runs {
				_, _ = fmt.Fprintf(w, "%4d %v %s lr=%g steps=%d batch=%d periods=%d RMSE=%0.2f\n",
					r.ID, r.Started.Format("2006-01-02 15:04:05"), r.Feature,
					r.LearningRate, r.Steps, r.BatchSize, r.Periods, r.RMSE)
			}
			return nil
		},
	}
}
