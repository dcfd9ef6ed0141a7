package cache

import (
	"path/filepath"
	"testing"

	"github.com/possibly-wrong/gobblet"
	"github.com/possibly-wrong/gobblet/table"
)

func TestPathNamingConvention(t *testing.T) {
	cases := []struct {
		cfg  gobblet.Config
		want string
	}{
		{gobblet.Config{NumSizes: 3, NumPerSize: 2, AllowMove: true}, "gobblet_3_2_1.dat"},
		{gobblet.Config{NumSizes: 1, NumPerSize: 5, AllowMove: false}, "gobblet_1_5_0.dat"},
	}
	for _, tc := range cases {
		if got := Path("", tc.cfg); got != tc.want {
			t.Errorf("Path(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestPathJoinsDir(t *testing.T) {
	cfg := gobblet.Config{NumSizes: 3, NumPerSize: 2, AllowMove: true}
	got := Path("/var/cache", cfg)
	want := filepath.Join("/var/cache", "gobblet_3_2_1.dat")
	if got != want {
		t.Errorf("Path(/var/cache, %+v) = %q, want %q", cfg, got, want)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	tb := table.New(8)
	tb.Insert(0, 0)
	tb.Insert(5, 5|(1<<62))
	tb.Insert(17, 17|(3<<62))

	path := filepath.Join(t.TempDir(), "gobblet_3_2_1.dat")
	if err := Save(path, tb); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok := Load(path, 8)
	if !ok {
		t.Fatal("Load reported not-ok for a file it just wrote")
	}
	want, got := tb.Slots(), loaded.Slots()
	if len(want) != len(got) {
		t.Fatalf("slot count mismatch: %d vs %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("slot %d: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.dat")
	_, ok := Load(path, 8)
	if ok {
		t.Fatal("Load of a nonexistent file must report ok=false, not succeed")
	}
}

func TestLoadTruncatedFileIsNotOk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gobblet_3_2_1.dat")
	tb := table.New(8)
	if err := Save(path, tb); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Loading with a larger exponent than the file was written with
	// demands more words than are on disk, simulating a truncated or
	// wrong-triple cache file.
	_, ok := Load(path, 9)
	if ok {
		t.Fatal("Load of a short file must report ok=false")
	}
}
