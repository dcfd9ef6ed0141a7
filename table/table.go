// Package table implements the fixed-capacity, open-addressed hash table
// that the solver uses to store one entry per canonical reachable state.
// Each slot is a single 64-bit word: the low 54 bits are the board key,
// the high 10 bits carry the solved value once known. There is no
// resize and no deletion; capacity is chosen once, at construction, to
// comfortably exceed the reachable state count for the hardest rule
// triple the caller intends to admit.
package table

// Empty is the sentinel stored in every slot that has never held a key.
// 0x3 can never be a legal board: it would require both players to own
// a small piece on the same square. The all-zero initial position is
// therefore distinguishable from an empty slot.
const Empty = 0x3

// boardMask isolates the 54 key bits of a slot; Lookup and Put compare
// and store only against this mask so that a caller's already-packed
// solved word is written back verbatim.
const boardMask = (1 << 54) - 1

// Table is a fixed-size open-addressed map from a 54-bit canonical
// board key to its (possibly still unsolved) 64-bit slot word.
type Table struct {
	slots []uint64
	exp   uint
	mask  uint64
}

// New allocates a table with 2^exp slots, every one initialized to
// Empty. exp must be small enough that 2^exp words fit in memory; the
// caller is responsible for sizing it to the rule triple being solved.
func New(exp uint) *Table {
	t := &Table{
		slots: make([]uint64, 1<<exp),
		exp:   exp,
		mask:  (1 << exp) - 1,
	}
	for i := range t.slots {
		t.slots[i] = Empty
	}
	return t
}

// hash is SplitMix64's output-mixing step, used here purely as a
// bijection to scatter keys across the table; it carries no
// cryptographic weight.
func hash(key uint64) uint64 {
	h := key
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// probe returns the slot index holding key, or the first empty slot on
// its probe sequence if key is not present. The step is derived from
// the high bits of the hash and forced odd, which keeps it coprime with
// the power-of-two capacity so the sequence visits every slot before
// repeating. It panics if a full pass finds neither, meaning the table
// is full and key is not in it.
func (t *Table) probe(key uint64) int {
	h := hash(key)
	step := (h >> (64 - t.exp)) | 1
	i := h
	for n := uint64(0); n <= t.mask; n++ {
		i = (i + step) & t.mask
		slot := t.slots[i]
		if slot == Empty || slot&boardMask == key {
			return int(i)
		}
	}
	panic("table: capacity exceeded")
}

// Lookup returns the slot word stored for key and true, or Empty and
// false if key has never been inserted.
func (t *Table) Lookup(key uint64) (uint64, bool) {
	i := t.probe(key)
	if t.slots[i] == Empty {
		return Empty, false
	}
	return t.slots[i], true
}

// Insert stores key with the given slot word, unless key is already
// present, in which case Insert does nothing and returns false.
// Callers use this to detect newly discovered states during forward
// reachability: a false return means the successor was already queued.
func (t *Table) Insert(key, word uint64) bool {
	i := t.probe(key)
	if t.slots[i] != Empty {
		return false
	}
	t.slots[i] = word
	return true
}

// Put overwrites the slot for key with word, which must already be
// present (as either a key-only or a solved entry). Used by Phase 2 to
// mutate a state's high bits in place without disturbing its key.
func (t *Table) Put(key, word uint64) {
	i := t.probe(key)
	t.slots[i] = word
}

// Cap returns the table's fixed slot count, 2^exp.
func (t *Table) Cap() int {
	return len(t.slots)
}

// Slots exposes the raw backing array in slot order, for bulk
// serialization by the cache package. Callers must not retain it past
// the Table's lifetime or mutate it concurrently with Insert/Put.
func (t *Table) Slots() []uint64 {
	return t.slots
}

// Stats reports how full the table is, for diagnostics after a solve.
type Stats struct {
	Capacity int
	Used     int
}

// Stats scans the table and counts non-empty slots. It is intended for
// post-solve reporting, not for use on a hot path.
func (t *Table) Stats() Stats {
	used := 0
	for _, w := range t.slots {
		if w != Empty {
			used++
		}
	}
	return Stats{Capacity: len(t.slots), Used: used}
}
