package table

import "testing"

func TestNewAllSlotsEmpty(t *testing.T) {
	tb := New(8)
	for i, w := range tb.Slots() {
		if w != Empty {
			t.Fatalf("slot %d = %#x, want Empty", i, w)
		}
	}
}

func TestInsertThenLookup(t *testing.T) {
	tb := New(8)
	if !tb.Insert(0, 0) {
		t.Fatal("Insert of the all-zero key should succeed on a fresh table")
	}
	word, ok := tb.Lookup(0)
	if !ok || word != 0 {
		t.Fatalf("Lookup(0) = (%#x, %v), want (0, true)", word, ok)
	}
}

func TestInsertDuplicateFails(t *testing.T) {
	tb := New(8)
	tb.Insert(42, 42)
	if tb.Insert(42, 99) {
		t.Fatal("Insert of an already-present key must return false")
	}
	word, _ := tb.Lookup(42)
	if word != 42 {
		t.Fatalf("duplicate Insert must not overwrite the existing word, got %#x", word)
	}
}

func TestLookupMissing(t *testing.T) {
	tb := New(8)
	tb.Insert(1, 1)
	if _, ok := tb.Lookup(2); ok {
		t.Fatal("Lookup of a never-inserted key must report not-found")
	}
}

func TestPutOverwritesSolvedBits(t *testing.T) {
	tb := New(8)
	tb.Insert(7, 7)
	tb.Put(7, 7|(1<<62))
	word, ok := tb.Lookup(7)
	if !ok || word != 7|(1<<62) {
		t.Fatalf("Put did not take effect: got (%#x, %v)", word, ok)
	}
}

func TestProbeSequenceVisitsDistinctSlots(t *testing.T) {
	// Fill every slot but one and confirm every key is still reachable,
	// which only holds if the double-hash step is coprime with the
	// table's power-of-two capacity. Words are offset above bit 54 so
	// none of them can alias the Empty sentinel.
	const tag = uint64(1) << 60
	tb := New(6) // 64 slots
	inserted := 0
	for key := uint64(0); inserted < 63; key++ {
		if tb.Insert(key, key|tag) {
			inserted++
		}
	}
	for key := uint64(0); key < 200 && inserted > 0; key++ {
		word, ok := tb.Lookup(key)
		if key < 63 && !ok {
			t.Fatalf("Lookup(%d) not found, want %#x", key, key|tag)
		}
		if ok && word != key|tag {
			t.Fatalf("Lookup(%d) = %#x, want %d", key, word, key|tag)
		}
	}
}

func TestStatsCountsUsedSlots(t *testing.T) {
	tb := New(8)
	tb.Insert(1, 1)
	tb.Insert(2, 2)
	tb.Insert(4, 4)
	st := tb.Stats()
	if st.Capacity != 256 {
		t.Fatalf("Capacity = %d, want 256", st.Capacity)
	}
	if st.Used != 3 {
		t.Fatalf("Used = %d, want 3", st.Used)
	}
}
