// Package solver runs retrograde analysis over a gobblet.Config's game
// graph and answers value, depth, and best-move queries against the
// result. It owns a table.Table as the sole record of every canonical
// reachable state; once solved, the table is never again written.
package solver

import (
	"log"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/cache"
	"github.com/possibly-wrong/gobblet/table"
)

// DefaultTableExp is the hash table size exponent used when a caller
// doesn't have a tighter estimate of the reachable state count for
// their rule triple. 2^29 slots holds the full three-size, two-per-size
// game with room to spare at a safe load factor.
const DefaultTableExp = 29

// Solver answers queries against a fully solved game graph for one
// rule triple.
type Solver struct {
	cfg gobblet.Config
	t   *table.Table
}

// New allocates a table with 2^exp slots and solves cfg's game graph
// from the initial position. Callers that already have a table loaded
// from a cache file should use Attach instead and skip re-solving.
func New(cfg gobblet.Config, exp uint) *Solver {
	s := &Solver{cfg: cfg, t: table.New(exp)}
	s.solve()
	return s
}

// Attach wraps an already-solved table (typically loaded from a cache
// file by the cache package) without running the solve again.
func Attach(cfg gobblet.Config, t *table.Table) *Solver {
	return &Solver{cfg: cfg, t: t}
}

// Open loads cfg's solution from the cache file under cacheDir if one
// exists, otherwise solves it from scratch and writes the cache file
// for next time. This is the cache-aware entry point front ends use; a
// save failure after a fresh solve is logged but not returned, since
// the solve itself still succeeded. The returned bool reports whether
// the solution was loaded from cache (true) or freshly solved (false);
// cache.Load already pays the full 2^exp-word read once to answer this,
// so callers that want a hit/miss label should read it from here rather
// than probing the cache file a second time themselves.
func Open(cfg gobblet.Config, exp uint, cacheDir string) (*Solver, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	path := cache.Path(cacheDir, cfg)
	if t, ok := cache.Load(path, exp); ok {
		return Attach(cfg, t), true, nil
	}

	s := New(cfg, exp)
	if err := cache.Save(path, s.t); err != nil {
		log.Printf("solver: save cache %s: %v", path, err)
	}
	return s, false, nil
}

// Config returns the rule triple this solver was built for.
func (s *Solver) Config() gobblet.Config {
	return s.cfg
}

// Table exposes the underlying table for serialization by the cache
// package. Callers must not mutate it.
func (s *Solver) Table() *table.Table {
	return s.t
}

// solve runs Phase 1 (forward reachability) followed by Phase 2
// (backward value propagation) to completion.
func (s *Solver) solve() {
	solved := s.phase1()
	s.phase2(solved)
}

// ValueAndDepth reports the solved outcome for canonical state s: value
// is +1 (win for the side to move), -1 (loss), or 0 (draw, including
// "not found in the table"); depth is the number of moves to the
// forced result for a win or loss. For a draw, depth is the residual
// count of successors never resolved as opponent wins, which stays
// above zero on a solved table unless the state has no legal moves.
func (s *Solver) ValueAndDepth(st gobblet.State) (value, depth int) {
	word, ok := s.t.Lookup(uint64(st))
	if !ok {
		return 0, 0
	}
	return gobblet.UnpackValue(gobblet.State(word)), gobblet.UnpackMoves(gobblet.State(word))
}

// BestMove returns the move from s whose canonical, swapped successor
// has the maximum stored word, which by the value/depth encoding is
// the fastest forced win if one exists, else a draw, else the slowest
// forced loss. The returned bool is false only if s has no legal
// moves at all.
func (s *Solver) BestMove(st gobblet.State) (gobblet.Move, bool) {
	var best gobblet.Move
	var maxWord uint64
	found := false
	for _, m := range s.cfg.LegalMoves(st) {
		next := s.cfg.Successor(st, m)
		word, ok := s.t.Lookup(uint64(next))
		if !ok {
			word = table.Empty
		}
		if !found || word > maxWord {
			maxWord = word
			best = m
			found = true
		}
	}
	return best, found
}

// Apply is a pure pass-through to the rules package, exposed here so
// front ends can depend on a single Solver facade.
func (s *Solver) Apply(st gobblet.State, m gobblet.Move) gobblet.State {
	return s.cfg.Apply(st, m)
}

// TerminalValue is a pure pass-through to the rules package.
func (s *Solver) TerminalValue(st gobblet.State) int {
	return s.cfg.TerminalValue(st)
}

// LegalMoves is a pure pass-through to the rules package.
func (s *Solver) LegalMoves(st gobblet.State) []gobblet.Move {
	return s.cfg.LegalMoves(st)
}

// Stats reports how full the underlying table ended up after solving.
func (s *Solver) Stats() table.Stats {
	return s.t.Stats()
}
