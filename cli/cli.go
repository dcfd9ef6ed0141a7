// Package cli is the interactive text-mode front end for a solved
// game: board rendering, move prompting, the (0,0) best-move oracle,
// and the (-1,-1) undo. None of it is consulted by gobblet/solver; it
// only calls into the Query API (Solver.ValueAndDepth, Solver.BestMove,
// Solver.Apply) the way any other front end could.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/solver"
	"github.com/possibly-wrong/gobblet/symmetry"
)

// Player supplies a move for the side to move in s. The player NewHuman
// returns is the only implementation the front end ships, but the interface is small
// enough that a scripted or engine-backed player could satisfy it too.
type Player interface {
	GetMove(s gobblet.State) gobblet.Move
}

// Glyphs controls how an owner marker renders; sizes always render as
// the digit 1, 2, or 3. Mine/Theirs are from the perspective of
// whichever player the board is currently being rendered for.
type Glyphs struct {
	Empty, Mine, Theirs string
}

// DefaultGlyphs matches the reference program's bare "X"/"O" markers.
var DefaultGlyphs = Glyphs{Empty: " ", Mine: "X", Theirs: "O"}

// UnicodeGlyphs is a friendlier pair for terminals that render it well.
var UnicodeGlyphs = Glyphs{Empty: "·", Mine: "●", Theirs: "○"}

// CLI drives one interactive session against an already-solved Solver.
type CLI struct {
	Solver *solver.Solver
	Glyphs *Glyphs
	Out    io.Writer

	// Players holds the two seats in turn order; Players[0] moves
	// first. Index is (turn-1) to match the reference program's
	// 1-indexed "Player 1"/"Player 2" labels.
	Players [2]Player
}

// Play runs a full game to a decided result or a draw, printing the
// board before every move and honoring the (0,0) best-move oracle and
// the (-1,-1) undo at each prompt.
func (c *CLI) Play() {
	states := []gobblet.State{gobblet.EmptyBoard}
	turn := 1
	for {
		s := states[len(states)-1]
		display := s
		if turn != 1 {
			// s is always in the side-to-move's own frame; turn 2's
			// own pieces read as owner=1 there, so re-swap to show a
			// fixed Player-1-is-always-mine perspective across turns.
			display = gobblet.State(symmetry.Swap(uint64(s)))
		}
		RenderBoard(c.Glyphs, c.Out, display)

		canon := gobblet.State(symmetry.Canonical(uint64(s)))
		value, moves := c.Solver.ValueAndDepth(canon)
		if moves == 0 {
			if value == 0 {
				fmt.Fprintln(c.Out, "Game ends in a draw.")
			} else {
				winner := turn
				if value != 1 {
					winner = 3 - turn
				}
				fmt.Fprintf(c.Out, "Player %d wins.\n", winner)
			}
			return
		}

		player := c.Players[turn-1]
		for {
			m := player.GetMove(s)
			if m == (gobblet.Move{Start: 0, End: 0}) {
				c.printOracle(s, value, moves)
				continue
			}
			if m == (gobblet.Move{Start: -1, End: -1}) {
				if len(states) > 1 {
					states = states[:len(states)-1]
					turn = 3 - turn
				}
				break
			}
			next := gobblet.State(symmetry.Swap(uint64(c.Solver.Apply(s, m))))
			states = append(states, next)
			turn = 3 - turn
			break
		}
	}
}

func (c *CLI) printOracle(s gobblet.State, value, moves int) {
	if value == 0 {
		fmt.Fprint(c.Out, "Draw with")
	} else {
		verb := "Win"
		if value != 1 {
			verb = "Lose"
		}
		fmt.Fprintf(c.Out, "%s in %d moves with", verb, moves)
	}
	best, _ := c.Solver.BestMove(s)
	fmt.Fprintf(c.Out, " %s.\n", best)
}

// RenderBoard prints s as a 3x3 grid of owner/size markers, each square
// showing only its visible top piece.
func RenderBoard(g *Glyphs, out io.Writer, s gobblet.State) {
	if g == nil {
		g = &DefaultGlyphs
	}
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sq := 3*row + col
			owner, size := s.TopPiece(sq)
			marker := g.Empty
			if owner == 1 {
				marker = g.Mine
			} else if owner == 2 {
				marker = g.Theirs
			}
			digit := " "
			if size != 0 {
				digit = fmt.Sprintf("%d", size)
			}
			sep := " |"
			if col == 2 {
				sep = ""
			}
			fmt.Fprintf(w, " %s %s%s\t", marker, digit, sep)
		}
		fmt.Fprintln(w)
		for col := 0; col < 3; col++ {
			sq := 3*row + col
			sep := "|"
			if col == 2 {
				sep = ""
			}
			fmt.Fprintf(w, "  %d  %s\t", sq, sep)
		}
		fmt.Fprintln(w)
		if row < 2 {
			fmt.Fprintln(w, "------+------+------")
		}
	}
	w.Flush()
}
