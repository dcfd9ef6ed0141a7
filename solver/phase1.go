package solver

import "github.com/possibly-wrong/gobblet"

// phase1 runs the forward reachability BFS from the initial position,
// storing every canonical state it discovers as either a terminal
// (solved immediately) or a key-only tentative draw carrying its
// out-degree. It returns the terminal states it found, in discovery
// order, ready to seed Phase 2.
func (s *Solver) phase1() []gobblet.State {
	var solved []gobblet.State
	queue := []gobblet.State{gobblet.EmptyBoard}
	s.t.Insert(uint64(gobblet.EmptyBoard), uint64(gobblet.EmptyBoard))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if value := s.cfg.TerminalValue(current); value != 0 {
			word := current | gobblet.PackResult(value, 0)
			s.t.Put(uint64(current), uint64(word))
			solved = append(solved, word)
			continue
		}

		moves := s.cfg.LegalMoves(current)
		word := current | gobblet.PackResult(0, len(moves))
		s.t.Put(uint64(current), uint64(word))

		for _, m := range moves {
			next := s.cfg.Successor(current, m)
			if s.t.Insert(uint64(next), uint64(next)) {
				queue = append(queue, next)
			}
		}
	}
	return solved
}
