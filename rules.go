package gobblet

import "github.com/possibly-wrong/gobblet/symmetry"

// lines lists the 8 ways to win on a 3x3 board: 3 rows, 3 columns, 2
// diagonals, each as the 3 square indices that must share a top-piece
// owner.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// TerminalValue reports the value of s for the side to move: +1 if they
// already have a top-piece 3-in-a-row, -1 if only the opponent does, 0
// otherwise. The side to move is checked first, so uncovering your own
// line wins immediately even if the same move also completes the
// opponent's line elsewhere on the board.
func (cfg Config) TerminalValue(s State) int {
	value := 0
	for _, line := range lines {
		winner := 0
		complete := true
		for _, sq := range line {
			owner, _ := s.TopPiece(sq)
			if owner == 0 {
				complete = false
				break
			}
			if winner == 0 {
				winner = owner
			} else if winner != owner {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		if winner == 1 {
			return 1
		}
		value = -1
	}
	return value
}

// Successor applies m to s, swaps to the opponent's perspective, and
// canonicalizes: the form every stored state and every move-dedup check
// uses. Exported so the solver can recompute the same successor it
// looks up in the table without duplicating the swap/canonicalize
// sequence.
func (cfg Config) Successor(s State, m Move) State {
	return State(symmetry.Canonical(symmetry.Swap(uint64(cfg.Apply(s, m)))))
}

// LegalMoves enumerates every move available to the side to move in s,
// deduplicated so that moves whose canonical (post-swap) successors
// coincide are collapsed to a single representative. Relocations (when
// allowed) are listed before placements; within each group, squares and
// sizes are visited in increasing order, so the result is deterministic
// for a given s and Config.
func (cfg Config) LegalMoves(s State) []Move {
	var moves []Move
	seen := make(map[State]bool)

	var played [4]int // played[size], size in 1..3, counts every field the
	// side to move owns at that size, not just uncovered top pieces
	var movable []int // squares whose top piece belongs to the side to move
	for sq := 0; sq < 9; sq++ {
		stack := stackAt(s, sq)
		for size := 1; size <= 3; size++ {
			field := (stack >> uint(2*(size-1))) & 0x3
			if field == 1 {
				played[size]++
			}
		}
		if owner, _ := topPiece(stack); owner == 1 && cfg.AllowMove {
			movable = append(movable, sq)
		}
	}

	for _, start := range movable {
		_, size := s.TopPiece(start)
		for end := 0; end < 9; end++ {
			_, destSize := s.TopPiece(end)
			if destSize >= size {
				continue
			}
			m := Move{Start: start, End: end}
			if next := cfg.Successor(s, m); !seen[next] {
				seen[next] = true
				moves = append(moves, m)
			}
		}
	}

	for size := 1; size <= cfg.NumSizes; size++ {
		if played[size] >= cfg.NumPerSize {
			continue
		}
		for end := 0; end < 9; end++ {
			_, destSize := s.TopPiece(end)
			if destSize >= size {
				continue
			}
			m := Move{Start: -size, End: end}
			if next := cfg.Successor(s, m); !seen[next] {
				seen[next] = true
				moves = append(moves, m)
			}
		}
	}

	return moves
}

// Unmoves enumerates every canonical position that could have preceded
// s one move ago, played by the side that is not currently to move.
// Candidates that are themselves terminal are excluded, since a
// terminal position never has a successor to be arrived at from.
func (cfg Config) Unmoves(s State) []State {
	s = State(symmetry.Swap(uint64(s)))

	var out []State
	seen := make(map[State]bool)
	add := func(prev State) {
		if cfg.TerminalValue(prev) != 0 {
			return
		}
		c := State(symmetry.Canonical(uint64(prev)))
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for end := 0; end < 9; end++ {
		owner, size := s.TopPiece(end)
		if owner != 1 {
			continue
		}
		if cfg.AllowMove {
			for start := 0; start < 9; start++ {
				_, destSize := s.TopPiece(start)
				if destSize < size {
					add(cfg.Apply(s, Move{Start: end, End: start}))
				}
			}
		}
		add(cfg.Apply(s, Move{Start: -size, End: end}))
	}
	return out
}
