// Package statsdb is an append-only sqlite ledger of solve runs: which
// rule triple was solved, how many states that produced, how long it
// took, and whether the answer came from a cache file or a fresh
// solve. It exists purely for operational visibility when precomputing
// many rule variants; no query path in gobblet/solver ever reads from
// it, and its own failures never propagate as solver errors.
package statsdb

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // statsdb assumes sqlite
)

// Run records the outcome of one solver.Open call.
type Run struct {
	Day        string    `db:"day"`
	Time       time.Time `db:"time"`
	NumSizes   int       `db:"num_sizes"`
	NumPerSize int       `db:"num_per_size"`
	AllowMove  bool      `db:"allow_move"`
	States     int       `db:"states"`
	Solved     int       `db:"solved"`
	DurationMs int64     `db:"duration_ms"`
	CacheHit   bool      `db:"cache_hit"`
}

// Ledger is a handle to the run database, analogous in shape to the
// reference repo's game-log repository but recording solve runs
// instead of played games.
type Ledger struct {
	db     *sqlx.DB
	insert *sqlx.NamedStmt
}

// Open creates or attaches to the sqlite database at path and ensures
// the runs table exists.
func Open(path string) (*Ledger, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	l := &Ledger{db: db}
	l.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return l, nil
}

// Record appends one run to the ledger.
func (l *Ledger) Record(r Run) error {
	_, err := l.insert.Exec(r)
	return err
}

// Recent returns the n most recently recorded runs, newest first.
func (l *Ledger) Recent(n int) ([]Run, error) {
	var runs []Run
	if err := l.db.Select(&runs, selectRecentStmt, n); err != nil {
		return nil, err
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}
