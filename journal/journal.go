/*
Package journal stores training runs and their period results in SQLite
*/
package journal

import (
	"database/sql"
	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/periodic/model"
	"go-ml.dev/pkg/zorros/zorros"
	"os"
	"path/filepath"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started TIMESTAMP NOT NULL,
	feature TEXT NOT NULL,
	label TEXT NOT NULL,
	learning_rate REAL NOT NULL,
	steps INTEGER NOT NULL,
	batch_size INTEGER NOT NULL,
	periods INTEGER NOT NULL,
	rmse REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS periods (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	period INTEGER NOT NULL,
	rmse REAL NOT NULL,
	weight REAL,
	bias REAL,
	PRIMARY KEY (run_id, period)
);`

/*
Run is a journaled training run
*/
type Run struct {
	ID           int64
	Started      time.Time
	Feature      string
	Label        string
	LearningRate float64
	Steps        int
	BatchSize    int
	Periods      int
	RMSE         float64
}

type Journal struct {
	db *sql.DB
}

/*
Open opens or creates the journal database, ":memory:" keeps it in memory
*/
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, zorros.Wrapf(err, "failed to create journal directory: %v", err.Error())
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open journal %v: %v", path, err.Error())
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, zorros.Wrapf(err, "failed to create journal schema: %v", err.Error())
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

/*
Record stores the training configuration and its report, returns the run id
*/
func (j *Journal) Record(t model.Training, r *model.Report) (id int64, err error) {
	tx, err := j.db.Begin()
	if err != nil {
		return 0, zorros.Trace(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	res, err := tx.Exec(
		`INSERT INTO runs (started, feature, label, learning_rate, steps, batch_size, periods, rmse)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), r.Feature, r.Label, t.LearningRate, t.Steps, t.BatchSize, t.PeriodCount(), r.RMSE)
	if err != nil {
		return 0, zorros.Wrapf(err, "failed to record run: %v", err.Error())
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, zorros.Trace(err)
	}
	for _, p := range r.History {
		var w, b sql.NullFloat64
		if p.HasParameters {
			w = sql.NullFloat64{Float64: p.Weight, Valid: true}
			b = sql.NullFloat64{Float64: p.Bias, Valid: true}
		}
		if _, err = tx.Exec(
			`INSERT INTO periods (run_id, period, rmse, weight, bias) VALUES (?, ?, ?, ?, ?)`,
			id, p.Period, p.RMSE, w, b); err != nil {
			return 0, zorros.Wrapf(err, "failed to record period %d: %v", p.Period, err.Error())
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, zorros.Trace(err)
	}
	return id, nil
}

/*
Runs returns all journaled runs in the order of recording
*/
func (j *Journal) Runs() ([]Run, error) {
	rows, err := j.db.Query(
		`SELECT id, started, feature, label, learning_rate, steps, batch_size, periods, rmse FROM runs ORDER BY id`)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var r Run
		if err = rows.Scan(&r.ID, &r.Started, &r.Feature, &r.Label,
			&r.LearningRate, &r.Steps, &r.BatchSize, &r.Periods, &r.RMSE); err != nil {
			return nil, zorros.Trace(err)
		}
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return runs, nil
}

/*
History returns period results of the run ordered by period
*/
func (j *Journal) History(id int64) ([]model.PeriodResult, error) {
	rows, err := j.db.Query(`SELECT period, rmse, weight, bias FROM periods WHERE run_id = ? ORDER BY period`, id)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rows.Close()
	var h []model.PeriodResult
	for rows.Next() {
		var p model.PeriodResult
		var w, b sql.NullFloat64
		if err = rows.Scan(&p.Period, &p.RMSE, &w, &b); err != nil {
			return nil, zorros.Trace(err)
		}
		p.Weight, p.Bias, p.HasParameters = w.Float64, b.Float64, w.Valid && b.Valid
		h = append(h, p)
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return h, nil
}
