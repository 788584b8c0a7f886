// Package storage archives simulation runs in a single SQLite database.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/avekker/pendlab/internal/ode"
	"github.com/avekker/pendlab/internal/pendulum"
)

// ErrNotFound is returned when a run id is not in the archive.
var ErrNotFound = errors.New("storage: run not found")

// State columns are padded out to the widest variant; a planar run leaves
// s2..s5 NULL. SQLite also stores NaN as NULL, so energy stays nullable for
// unstable tails.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL, -- unix nanoseconds
	kind       TEXT NOT NULL,
	params     TEXT NOT NULL,    -- JSON
	samples    INTEGER NOT NULL,
	fallback   INTEGER NOT NULL,
	unstable   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL,
	idx    INTEGER NOT NULL,
	t      REAL NOT NULL,
	s0     REAL,
	s1     REAL,
	s2     REAL,
	s3     REAL,
	s4     REAL,
	s5     REAL,
	energy REAL,
	PRIMARY KEY (run_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs (created_at);
`

const insertRun = `INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?);`
const insertSample = `INSERT INTO samples VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

const selectMeta = `SELECT id, created_at, kind, params, samples, fallback, unstable FROM runs`

// Store is a run archive backed by one SQLite file. SQLite allows a single
// writer at a time; concurrent SaveRun calls serialize on the driver.
type Store struct {
	db *sql.DB
}

// Open opens the archive at path, creating the file and schema as needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RunMeta describes one archived run.
type RunMeta struct {
	ID        string
	CreatedAt time.Time
	Kind      pendulum.Kind
	Params    pendulum.Params
	Samples   int
	Fallback  bool
	Unstable  bool
}

// SaveRun archives a trajectory under a fresh id and returns the id. The run
// row and every sample go in one transaction.
func (s *Store) SaveRun(p pendulum.Params, tr *pendulum.Trajectory, unstable bool) (string, error) {
	paramsJSON, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}

	if _, err := tx.Exec(insertRun, id, time.Now().UnixNano(), tr.Kind.String(),
		string(paramsJSON), tr.Len(), tr.Fallback, unstable); err != nil {
		tx.Rollback()
		return "", err
	}

	stmt, err := tx.Prepare(insertSample)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	defer stmt.Close()

	for i := 0; i < tr.Len(); i++ {
		cols := stateColumns(tr.States[i])
		if _, err := stmt.Exec(id, i, tr.Times[i],
			cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
			tr.Energy[i]); err != nil {
			tx.Rollback()
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// stateColumns pads a state out to the six sample columns. Unused columns
// stay nil and store as NULL.
func stateColumns(st ode.State) [6]interface{} {
	var cols [6]interface{}
	for i, v := range st {
		cols[i] = v
	}
	return cols
}

// GetRun returns the metadata of one run.
func (s *Store) GetRun(id string) (RunMeta, error) {
	return scanMeta(s.db.QueryRow(selectMeta+` WHERE id = ?;`, id))
}

// ListRuns returns the metadata of every archived run, newest first.
func (s *Store) ListRuns() ([]RunMeta, error) {
	rows, err := s.db.Query(selectMeta + ` ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		meta, err := scanMeta(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, meta)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMeta(row rowScanner) (RunMeta, error) {
	var (
		meta       RunMeta
		createdAt  int64
		kindName   string
		paramsJSON string
	)
	err := row.Scan(&meta.ID, &createdAt, &kindName, &paramsJSON,
		&meta.Samples, &meta.Fallback, &meta.Unstable)
	if errors.Is(err, sql.ErrNoRows) {
		return RunMeta{}, ErrNotFound
	}
	if err != nil {
		return RunMeta{}, err
	}

	kind, err := pendulum.ParseKind(kindName)
	if err != nil {
		return RunMeta{}, err
	}
	meta.Kind = kind
	meta.CreatedAt = time.Unix(0, createdAt)
	if err := json.Unmarshal([]byte(paramsJSON), &meta.Params); err != nil {
		return RunMeta{}, err
	}
	return meta, nil
}

// LoadRun reconstructs an archived trajectory. NULL state or energy columns
// inside the run's state width load back as NaN, so unstable tails survive a
// round trip.
func (s *Store) LoadRun(id string) (RunMeta, *pendulum.Trajectory, error) {
	meta, err := s.GetRun(id)
	if err != nil {
		return RunMeta{}, nil, err
	}

	rows, err := s.db.Query(
		`SELECT t, s0, s1, s2, s3, s4, s5, energy FROM samples WHERE run_id = ? ORDER BY idx ASC;`, id)
	if err != nil {
		return RunMeta{}, nil, err
	}
	defer rows.Close()

	tr := &pendulum.Trajectory{
		Kind:     meta.Kind,
		Times:    make([]float64, 0, meta.Samples),
		States:   make([]ode.State, 0, meta.Samples),
		Energy:   make([]float64, 0, meta.Samples),
		Fallback: meta.Fallback,
	}
	width := len(tr.Labels())

	for rows.Next() {
		var (
			t      float64
			cols   [6]sql.NullFloat64
			energy sql.NullFloat64
		)
		if err := rows.Scan(&t, &cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &energy); err != nil {
			return RunMeta{}, nil, err
		}

		st := make(ode.State, width)
		for i := 0; i < width; i++ {
			st[i] = nullToNaN(cols[i])
		}
		tr.Times = append(tr.Times, t)
		tr.States = append(tr.States, st)
		tr.Energy = append(tr.Energy, nullToNaN(energy))
	}
	if err := rows.Err(); err != nil {
		return RunMeta{}, nil, err
	}
	return meta, tr, nil
}

func nullToNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// DeleteRun removes a run and its samples.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM samples WHERE run_id = ?;`, id); err != nil {
		tx.Rollback()
		return err
	}
	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?;`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if n == 0 {
		tx.Rollback()
		return ErrNotFound
	}
	return tx.Commit()
}
