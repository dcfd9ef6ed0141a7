package solver

import "github.com/possibly-wrong/gobblet"

// phase2 runs the backward value-propagation BFS seeded by solved, the
// terminal states Phase 1 found. Each popped state already carries a
// resolved value; every still-unresolved predecessor either inherits a
// forced win (if this state is a loss for its own side to move) or has
// its remaining-move counter decremented (if this state is a win),
// collapsing to a forced loss once that counter reaches zero.
func (s *Solver) phase2(solved []gobblet.State) {
	queue := solved
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, prev := range s.cfg.Unmoves(current) {
			prevWord, ok := s.t.Lookup(uint64(prev))
			if !ok || gobblet.UnpackValue(gobblet.State(prevWord)) != 0 {
				continue
			}

			if gobblet.UnpackValue(current) == 1 {
				// A win for current's side to move is a losing move
				// from prev's perspective: one fewer unresolved
				// winning try for prev.
				remaining := gobblet.UnpackMoves(gobblet.State(prevWord)) - 1
				if remaining != 0 {
					s.t.Put(uint64(prev), uint64(prev|gobblet.PackResult(0, remaining)))
					continue
				}
				word := prev | gobblet.PackResult(-1, gobblet.UnpackMoves(current)+1)
				s.t.Put(uint64(prev), uint64(word))
				queue = append(queue, word)
			} else {
				// current is a loss for its own side to move, so the
				// move that reached it is a forced win for prev.
				word := prev | gobblet.PackResult(1, gobblet.UnpackMoves(current)+1)
				s.t.Put(uint64(prev), uint64(word))
				queue = append(queue, word)
			}
		}
	}
}
