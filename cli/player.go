package cli

import (
	"fmt"
	"io"

	"github.com/possibly-wrong/gobblet"
)

// NewHuman returns a Player that prompts label on out and parses a
// (start, end) pair from in, the same whitespace-separated integer
// format the reference program's std::cin >> reads.
func NewHuman(label string, out io.Writer, in io.Reader) Player {
	return &human{label: label, out: out, in: in}
}

type human struct {
	label string
	out   io.Writer
	in    io.Reader
}

func (h *human) GetMove(s gobblet.State) gobblet.Move {
	fmt.Fprintf(h.out, "%s, enter move (-size, end) or (start, end), "+
		"or (0, 0) for best move, or (-1, -1) to undo move: ", h.label)
	var m gobblet.Move
	if _, err := fmt.Fscan(h.in, &m.Start, &m.End); err != nil {
		panic(err)
	}
	return m
}
