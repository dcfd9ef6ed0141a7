package gobblet

import "testing"

func TestApplyPlaceThenRemove(t *testing.T) {
	s := EmptyBoard
	m := Move{Start: -2, End: 4}
	s1 := Config{}.Apply(s, m)
	if owner, size := s1.TopPiece(4); owner != 1 || size != 2 {
		t.Fatalf("after place: TopPiece(4) = (%d, %d), want (1, 2)", owner, size)
	}
	// Applying the same placement move again (as Unmoves does to
	// "unplay" a piece) must remove it, since Apply only ever XORs a
	// single bit.
	s2 := Config{}.Apply(s1, m)
	if s2 != s {
		t.Fatalf("re-applying placement did not restore empty board: got %#x", s2)
	}
}

func TestApplyRelocate(t *testing.T) {
	cfg := Config{NumSizes: 3, NumPerSize: 2, AllowMove: true}
	s := cfg.Apply(EmptyBoard, Move{Start: -3, End: 0})
	s = cfg.Apply(s, Move{Start: 0, End: 8})
	if owner, size := s.TopPiece(0); owner != 0 || size != 0 {
		t.Fatalf("square 0 should be empty after relocation, got owner=%d size=%d", owner, size)
	}
	if owner, size := s.TopPiece(8); owner != 1 || size != 3 {
		t.Fatalf("square 8 should hold the relocated piece, got owner=%d size=%d", owner, size)
	}
}

func TestApplyCoverHidesSmaller(t *testing.T) {
	cfg := Config{NumSizes: 3, NumPerSize: 2, AllowMove: true}
	s := cfg.Apply(EmptyBoard, Move{Start: -1, End: 0})
	s = cfg.Apply(s, Move{Start: -3, End: 0})
	owner, size := s.TopPiece(0)
	if owner != 1 || size != 3 {
		t.Fatalf("top of square 0 should be the covering large piece, got owner=%d size=%d", owner, size)
	}
	// The small piece underneath is still physically present.
	if stack := stackAt(s, 0); stack&0x3 == 0 {
		t.Fatalf("covered small piece should still be present in the stack, got %#x", stack)
	}
}
