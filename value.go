package gobblet

// The high 10 bits of a State, once solved, encode a value and a count:
//
//	01kkkkkkkk  win for the side to move in k moves
//	10mmmmmmmm  tentative draw, m = -(remaining unresolved moves + 1), two's complement
//	11kkkkkkkk  loss for the side to move in k moves, k = -(moves + 1), two's complement
//
// This lets move selection be a plain unsigned comparison of successor
// words. A successor word is in the opponent's frame, so the largest
// is the opponent's fastest loss (the mover's fastest win), then slower
// opponent losses, then draws, then opponent wins, with a slower
// opponent win (the mover's slower loss) sorting above a faster one.

// PackResult encodes value (-1, 0, or +1) and a move count into the high
// 10 bits of a State. For value == +1, moves is the depth to win. For
// value == -1, moves is the depth to loss. For value == 0, moves is the
// number of still-unresolved outgoing moves (Phase 1) or zero for a
// settled draw (Phase 2 drained with nothing left to resolve).
func PackResult(value, moves int) State {
	var sign State
	if value != -1 {
		sign = 1 << 62
	}
	var count State
	if value == 1 {
		count = State(moves)
	} else {
		count = State(0) - State(moves+1)
	}
	return sign ^ (count << 54)
}

// UnpackValue decodes the high 2 bits of a solved word: +1 win, 0 draw
// (or tentative/unsolved), -1 loss. Applied to the empty-slot sentinel
// (see table.Empty) it deliberately decodes to neither 0 nor an outcome
// actually reachable by PackResult, so callers can tell "not in the
// table at all" apart from "in the table, unresolved".
func UnpackValue(s State) int {
	return 2 - int(uint64(s)>>62)
}

// UnpackMoves decodes the move/depth/remaining-count field from bits
// 54..61 of s: an unsigned count for wins, and for draws and losses
// (bit 63 set) the undoing of the 8-bit two's complement -(moves+1)
// that PackResult stores.
func UnpackMoves(s State) int {
	field := int(uint64(s)>>54) & 0xff
	if uint64(s)>>63 != 0 {
		return 255 - field
	}
	return field
}
