package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/possibly-wrong/gobblet/cli"
	"github.com/possibly-wrong/gobblet/solver"
)

type playCommand struct {
	rules    ruleFlags
	cacheDir string
}

func (*playCommand) Name() string     { return "play" }
func (*playCommand) Synopsis() string { return "Play an interactive game against the solved oracle" }
func (*playCommand) Usage() string {
	return `play [-sizes N] [-per-size N] [-allow-move]
`
}

func (c *playCommand) SetFlags(flags *flag.FlagSet) {
	c.rules.register(flags)
	flags.StringVar(&c.cacheDir, "cache-dir", "", "directory holding/receiving the solved cache file")
}

func (c *playCommand) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.rules.config()
	if err != nil {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}

	s, _, err := solver.Open(cfg, solver.DefaultTableExp, c.cacheDir)
	if err != nil {
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Solved %d sizes, %d per size, allow-move=%v (%d states in table).\n",
		cfg.NumSizes, cfg.NumPerSize, cfg.AllowMove, s.Stats().Used)

	game := &cli.CLI{
		Solver: s,
		Glyphs: &cli.DefaultGlyphs,
		Out:    os.Stdout,
		Players: [2]cli.Player{
			cli.NewHuman("Player 1", os.Stdout, os.Stdin),
			cli.NewHuman("Player 2", os.Stdout, os.Stdin),
		},
	}
	game.Play()
	return subcommands.ExitSuccess
}
