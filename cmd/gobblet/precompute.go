package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/solver"
)

type precomputeCommand struct {
	triples  string
	cacheDir string
	statsDB  string
	threads  int
}

func (*precomputeCommand) Name() string { return "precompute" }
func (*precomputeCommand) Synopsis() string {
	return "Solve a batch of rule triples concurrently and cache each result"
}
func (*precomputeCommand) Usage() string {
	return `precompute -triples "sizes,per-size,allow-move;..." [-threads N] [-cache-dir DIR]
`
}

func (c *precomputeCommand) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.triples, "triples", "", `semicolon-separated "sizes,per-size,allow-move" rule triples`)
	flags.StringVar(&c.cacheDir, "cache-dir", "", "directory holding/receiving solved cache files")
	flags.StringVar(&c.statsDB, "stats-db", "", "sqlite database to append run records to (default: none)")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of rule triples to solve concurrently")
}

// parseTriples turns "3,2,true;1,5,false" into the Configs it names.
func parseTriples(spec string) ([]gobblet.Config, error) {
	var cfgs []gobblet.Config
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("precompute: %q: want sizes,per-size,allow-move", part)
		}
		sizes, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("precompute: %q: %w", part, err)
		}
		perSize, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("precompute: %q: %w", part, err)
		}
		allowMove, err := strconv.ParseBool(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("precompute: %q: %w", part, err)
		}
		cfg, err := gobblet.NewConfig(sizes, perSize, allowMove)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("precompute: -triples named no rule triples")
	}
	return cfgs, nil
}

// Execute fans one independent solver.Open call per rule triple out
// across goroutines, bounded by -threads. Each call owns its own
// Config and table.Table; errgroup only schedules the outer loop, the
// same shape as the reference repo's corpus generator fanning
// independent self-play games across workers, never anything inside a
// single solve.
func (c *precomputeCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfgs, err := parseTriples(c.triples)
	if err != nil {
		log.Print(err)
		return subcommands.ExitUsageError
	}

	work := make(chan gobblet.Config)
	grp, _ := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(work)
		for _, cfg := range cfgs {
			work <- cfg
		}
		return nil
	})
	threads := c.threads
	if threads > len(cfgs) {
		threads = len(cfgs)
	}
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for cfg := range work {
				if err := c.solveOne(cfg); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// solveOne solves (or loads) a single rule triple and logs and
// optionally records the outcome. Called from each precompute worker
// in its own goroutine; every Solver it creates is private to that
// call.
func (c *precomputeCommand) solveOne(cfg gobblet.Config) error {
	start := time.Now()
	s, hit, err := solver.Open(cfg, solver.DefaultTableExp, c.cacheDir)
	if err != nil {
		return fmt.Errorf("sizes=%d per-size=%d allow-move=%v: %w",
			cfg.NumSizes, cfg.NumPerSize, cfg.AllowMove, err)
	}
	elapsed := time.Since(start)

	stats := s.Stats()
	solved := countSolved(s.Table())
	log.Printf("sizes=%d per-size=%d allow-move=%v: %d states (%d solved), %v, cache %s",
		cfg.NumSizes, cfg.NumPerSize, cfg.AllowMove, stats.Used, solved, elapsed, hitLabel(hit))

	if c.statsDB != "" {
		recordRun(c.statsDB, cfg, stats.Used, solved, elapsed, hit)
	}
	return nil
}
