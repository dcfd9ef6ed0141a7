// Command gobblet is the command-line front end for the retrograde
// solver: play an interactive game against a solved oracle, solve (or
// load) a rule triple and report its size, look up one position
// directly, or solve a batch of rule triples in parallel.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	cmdr := subcommands.NewCommander(flag.CommandLine, "gobblet")
	cmdr.Register(cmdr.HelpCommand(), "")
	cmdr.Register(cmdr.FlagsCommand(), "")
	cmdr.Register(cmdr.CommandsCommand(), "")
	cmdr.Register(&playCommand{}, "")
	cmdr.Register(&solveCommand{}, "")
	cmdr.Register(&queryCommand{}, "")
	cmdr.Register(&precomputeCommand{}, "")
	flag.Parse()
	os.Exit(int(cmdr.Execute(context.Background())))
}
