package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/google/subcommands"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/solver"
	"github.com/possibly-wrong/gobblet/symmetry"
)

type queryCommand struct {
	rules    ruleFlags
	cacheDir string
	state    string
}

func (*queryCommand) Name() string     { return "query" }
func (*queryCommand) Synopsis() string { return "Look up the value, depth, and best move for one position" }
func (*queryCommand) Usage() string {
	return `query [-sizes N] [-per-size N] [-allow-move] -state HEX
`
}

func (c *queryCommand) SetFlags(flags *flag.FlagSet) {
	c.rules.register(flags)
	flags.StringVar(&c.cacheDir, "cache-dir", "", "directory holding/receiving the solved cache file")
	flags.StringVar(&c.state, "state", "", "hex-encoded board word, in the mover's own frame")
}

func (c *queryCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.rules.config()
	if err != nil {
		log.Printf("query: %v", err)
		return subcommands.ExitFailure
	}
	if c.state == "" {
		log.Print("query: -state is required")
		return subcommands.ExitUsageError
	}
	word, err := strconv.ParseUint(c.state, 16, 64)
	if err != nil {
		log.Printf("query: -state %q: %v", c.state, err)
		return subcommands.ExitUsageError
	}

	s, _, err := solver.Open(cfg, solver.DefaultTableExp, c.cacheDir)
	if err != nil {
		log.Printf("query: %v", err)
		return subcommands.ExitFailure
	}

	// -state is taken in the mover's own frame, same as any state a front
	// end would hold; canonicalize it the way cli.CLI does before
	// querying, since the table only ever stores canonical keys.
	raw := gobblet.State(word & uint64(gobblet.BoardMask))
	canon := gobblet.State(symmetry.Canonical(uint64(raw)))
	value, depth := s.ValueAndDepth(canon)
	fmt.Printf("value=%+d depth=%d", value, depth)
	if best, ok := s.BestMove(raw); ok {
		fmt.Printf(" best=%s", best)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
