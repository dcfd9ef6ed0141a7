package main

import (
	"flag"

	"github.com/possibly-wrong/gobblet"
)

// ruleFlags is the -sizes/-per-size/-allow-move triple every subcommand
// takes to pick a rule variant, factored out since each cmd/internal
// command in the reference repo declares its own flag set but several
// share the same size/depth shape.
type ruleFlags struct {
	sizes     int
	perSize   int
	allowMove bool
}

func (r *ruleFlags) register(flags *flag.FlagSet) {
	flags.IntVar(&r.sizes, "sizes", 3, "number of distinct piece sizes (1..3)")
	flags.IntVar(&r.perSize, "per-size", 2, "pieces of each size, per player")
	flags.BoolVar(&r.allowMove, "allow-move", true, "allow relocating a placed piece, not just placing new ones")
}

func (r *ruleFlags) config() (gobblet.Config, error) {
	return gobblet.NewConfig(r.sizes, r.perSize, r.allowMove)
}
