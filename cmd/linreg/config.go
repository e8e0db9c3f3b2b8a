package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go-ml.dev/pkg/periodic/datasets"
	"go-ml.dev/pkg/periodic/fu"
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/zorros/zorros"
	"os"
	"strings"
)

const (
	defaultConfigFile = "linreg.yaml"
	envPrefix         = "LINREG_"
)

/*
Config holds CLI options, precedence is flags > env > config file > defaults
*/
type Config struct {
	Dataset      string  `koanf:"dataset"` // local CSV path, remote housing dataset if empty
	Feature      string  `koanf:"feature"`
	Label        string  `koanf:"label"`
	LearningRate float64 `koanf:"learning_rate"`
	Steps        int     `koanf:"steps"`
	BatchSize    int     `koanf:"batch_size"`
	Periods      int     `koanf:"periods"`
	ClipNorm     float64 `koanf:"clip_norm"`
	ClipFeature  float64 `koanf:"clip_feature"` // rooms per person maximum, no clipping if zero
	Seed         int64   `koanf:"seed"`
	SampleSize   int     `koanf:"sample_size"`
	Calibration  string  `koanf:"calibration"` // CSV file to store calibration data
	Journal      string  `koanf:"journal"`     // SQLite journal path, no journaling if empty
	Verbose      bool    `koanf:"verbose"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"feature":       datasets.RoomsPerPerson,
		"label":         datasets.MedianHouseValue,
		"learning_rate": 0.05,
		"steps":         500,
		"batch_size":    5,
		"periods":       model.DefaultPeriods,
		"clip_norm":     5.0,
		"clip_feature":  5.0,
		"seed":          1,
		"sample_size":   300,
		"journal":       fu.CachePath("Journal", "runs.db"),
		"verbose":       false,
	}
}

/*
LoadConfig loads configuration from defaults, file, LINREG_ environment variables and explicitly set flags
*/
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, zorros.Wrapf(err, "failed to load defaults: %v", err.Error())
	}
	if cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			cfgFile = defaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, zorros.Wrapf(err, "error reading config file %v: %v", cfgFile, err.Error())
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, zorros.Wrapf(err, "failed to load env vars: %v", err.Error())
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, zorros.Wrapf(err, "failed to load flags: %v", err.Error())
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, zorros.Wrapf(err, "unable to decode config: %v", err.Error())
	}
	return &cfg, nil
}

/*
Training builds the training configuration
*/
func (c *Config) Training() model.Training {
	return model.Training{
		LearningRate: c.LearningRate,
		Steps:        c.Steps,
		BatchSize:    c.BatchSize,
		Periods:      c.Periods,
		Feature:      c.Feature,
		Seed:         c.Seed,
	}
}
