package statsdb

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordThenRecent(t *testing.T) {
	l, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	runs := []Run{
		{Day: "2026-08-01", Time: time.Now(), NumSizes: 1, NumPerSize: 5, AllowMove: false, States: 5478, Solved: 4520, DurationMs: 12, CacheHit: false},
		{Day: "2026-08-02", Time: time.Now(), NumSizes: 3, NumPerSize: 2, AllowMove: true, States: 1200000, Solved: 900000, DurationMs: 4300, CacheHit: true},
	}
	for _, r := range runs {
		if err := l.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != len(runs) {
		t.Fatalf("Recent returned %d rows, want %d", len(got), len(runs))
	}
	// Recent orders newest first; the second inserted run has the later
	// timestamp in this table since both use time.Now() moments apart.
	if got[0].NumSizes != 3 || got[0].NumPerSize != 2 {
		t.Fatalf("Recent()[0] = %+v, want the num_sizes=3 run first", got[0])
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	// A file path, so the second Open attaches to the database (and runs
	// table) the first one created; each ":memory:" Open is a fresh one.
	path := filepath.Join(t.TempDir(), "runs.db")
	l1, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l1.Close()

	l2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer l2.Close()
}
