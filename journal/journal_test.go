package journal

import (
	"go-ml.dev/pkg/periodic/model"
	"gotest.tools/assert"
	"path/filepath"
	"testing"
)

func report() *model.Report {
	return &model.Report{
		Feature: "rooms_per_person",
		Label:   "median_house_value",
		History: []model.PeriodResult{
			{Period: 0, RMSE: 212.5, Weight: 0.5, Bias: 0.1, HasParameters: true},
			{Period: 1, RMSE: 130.25, Weight: 4, Bias: 0.8, HasParameters: true},
		},
		RMSE: 130.25,
	}
}

func Test_RecordAndRead(t *testing.T) {
	j, err := Open(":memory:")
	assert.NilError(t, err)
	defer j.Close()

	tr := model.Training{LearningRate: 0.05, Steps: 500, BatchSize: 5, Periods: 2}
	id, err := j.Record(tr, report())
	assert.NilError(t, err)
	id2, err := j.Record(tr, &model.Report{Feature: "x", Label: "y", History: []model.PeriodResult{{RMSE: 1}}, RMSE: 1})
	assert.NilError(t, err)
	assert.Assert(t, id2 > id)

	runs, err := j.Runs()
	assert.NilError(t, err)
	assert.Equal(t, len(runs), 2)
	assert.Equal(t, runs[0].Feature, "rooms_per_person")
	assert.Equal(t, runs[0].Steps, 500)
	assert.Equal(t, runs[0].Periods, 2)
	assert.Equal(t, runs[0].RMSE, 130.25)

	h, err := j.History(id)
	assert.NilError(t, err)
	assert.DeepEqual(t, h, report().History)

	h, err = j.History(id2)
	assert.NilError(t, err)
	assert.Equal(t, len(h), 1)
	assert.Assert(t, !h[0].HasParameters)
}

func Test_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	j, err := Open(path)
	assert.NilError(t, err)
	_, err = j.Record(model.Training{LearningRate: 1, Steps: 10, BatchSize: 1}, report())
	assert.NilError(t, err)
	assert.NilError(t, j.Close())

	j, err = Open(path)
	assert.NilError(t, err)
	defer j.Close()
	runs, err := j.Runs()
	assert.NilError(t, err)
	assert.Equal(t, len(runs), 1)
	assert.Equal(t, runs[0].Periods, model.DefaultPeriods)
}
