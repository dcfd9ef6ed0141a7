package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/subcommands"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/solver"
	"github.com/possibly-wrong/gobblet/statsdb"
	"github.com/possibly-wrong/gobblet/table"
)

type solveCommand struct {
	rules    ruleFlags
	cacheDir string
	statsDB  string
}

func (*solveCommand) Name() string     { return "solve" }
func (*solveCommand) Synopsis() string { return "Solve (or load) a rule triple and report its size" }
func (*solveCommand) Usage() string {
	return `solve [-sizes N] [-per-size N] [-allow-move] [-cache-dir DIR] [-stats-db PATH]
`
}

func (c *solveCommand) SetFlags(flags *flag.FlagSet) {
	c.rules.register(flags)
	flags.StringVar(&c.cacheDir, "cache-dir", "", "directory holding/receiving the solved cache file")
	flags.StringVar(&c.statsDB, "stats-db", "", "sqlite database to append a run record to (default: none)")
}

func (c *solveCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.rules.config()
	if err != nil {
		log.Printf("solve: %v", err)
		return subcommands.ExitFailure
	}

	start := time.Now()
	s, hit, err := solver.Open(cfg, solver.DefaultTableExp, c.cacheDir)
	if err != nil {
		log.Printf("solve: %v", err)
		return subcommands.ExitFailure
	}
	elapsed := time.Since(start)

	stats := s.Stats()
	solved := countSolved(s.Table())
	fmt.Printf("sizes=%d per-size=%d allow-move=%v: %d states (%d solved win/loss), %v, cache %s\n",
		cfg.NumSizes, cfg.NumPerSize, cfg.AllowMove, stats.Used, solved, elapsed, hitLabel(hit))

	if c.statsDB != "" {
		recordRun(c.statsDB, cfg, stats.Used, solved, elapsed, hit)
	}
	return subcommands.ExitSuccess
}

// countSolved scans t for slots whose stored word has a decided
// win/loss value, as opposed to a still-zero draw/unresolved value or
// the key-only placeholder a state gets on first discovery.
func countSolved(t *table.Table) int {
	n := 0
	for _, w := range t.Slots() {
		if w == table.Empty {
			continue
		}
		if v := gobblet.UnpackValue(gobblet.State(w)); v == 1 || v == -1 {
			n++
		}
	}
	return n
}

func hitLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// recordRun appends one row to the statsdb run ledger at dbPath. A
// failure here is logged and otherwise swallowed: the solve itself
// already succeeded, and the ledger is pure operational visibility.
func recordRun(dbPath string, cfg gobblet.Config, states, solved int, elapsed time.Duration, hit bool) {
	l, err := statsdb.Open(dbPath)
	if err != nil {
		log.Printf("solve: open stats db %s: %v", dbPath, err)
		return
	}
	defer l.Close()

	run := statsdb.Run{
		Day:        time.Now().Format("2006-01-02"),
		Time:       time.Now(),
		NumSizes:   cfg.NumSizes,
		NumPerSize: cfg.NumPerSize,
		AllowMove:  cfg.AllowMove,
		States:     states,
		Solved:     solved,
		DurationMs: elapsed.Milliseconds(),
		CacheHit:   hit,
	}
	if err := l.Record(run); err != nil {
		log.Printf("solve: record run: %v", err)
	}
}
