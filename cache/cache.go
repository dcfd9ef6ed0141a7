// Package cache persists a solved table.Table to and from the flat
// on-disk format the solver's cache files use: a raw little-endian
// dump of every slot, named after the rule triple it solves. There is
// no header, checksum, or version tag; a reader trusts the filename.
package cache

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/table"
)

// Path returns the cache filename for cfg under dir, following the
// convention gobblet_<num_sizes>_<num_per_size>_<allow_move:0|1>.dat.
// An empty dir resolves the file in the current directory, matching
// the reference program's own behavior.
func Path(dir string, cfg gobblet.Config) string {
	move := 0
	if cfg.AllowMove {
		move = 1
	}
	name := fmt.Sprintf("gobblet_%d_%d_%d.dat", cfg.NumSizes, cfg.NumPerSize, move)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Load reads a cache file for cfg into a freshly allocated table with
// 2^exp slots. A missing file is not an error: it is reported via ok
// so the caller falls through to a full solve, matching the "cache
// file missing or unreadable" policy. Any other read failure, such as
// a truncated file, is also folded into ok=false rather than returned
// as an error, since the filename convention is the only guard and a
// short read cannot be distinguished from a wrong-triple file.
func Load(path string, exp uint) (t *table.Table, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	t = table.New(exp)
	slots := t.Slots()
	r := bufio.NewReader(f)
	for i := range slots {
		word, err := readWord(r)
		if err != nil {
			return nil, false
		}
		slots[i] = word
	}
	return t, true
}

// Save writes t's slots to path as a raw little-endian dump. Write
// failure is returned to the caller, who is expected to log it without
// treating it as fatal: a failed save only costs the next run a
// re-solve, per the error handling policy.
func Save(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cache: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var buf [8]byte
	for _, word := range t.Slots() {
		binary.LittleEndian.PutUint64(buf[:], word)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("cache: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

func readWord(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
