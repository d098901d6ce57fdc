package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"src.tagmend.sh/pkg/must"
	. "src.tagmend.sh/pkg/store"
	"src.tagmend.sh/pkg/testutil"
)

func TestStore(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "db")
	s := must.OK1(Open(path))

	records := []Record{
		{Name: "a.html", Time: time.Unix(100, 0).UTC(), Tags: 4, Inserted: 1},
		{Name: "<stdin>", Time: time.Unix(200, 0).UTC(), Tags: 2, Discarded: 2},
	}
	for i, r := range records {
		if seq := must.OK1(s.AddRecord(r)); seq != i+1 {
			t.Errorf("AddRecord returns %d, want %d", seq, i+1)
		}
	}
	must.OK(s.Close())

	// Records survive reopening.
	s = must.OK1(Open(path))
	defer s.Close()
	if diff := cmp.Diff(records, must.OK1(s.Records())); diff != "" {
		t.Errorf("Records (-want +got):\n%s", diff)
	}
}

func TestOpen_BadPath(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "no", "such", "dir", "db")
	if _, err := Open(path); err == nil {
		t.Errorf("Open(%q) returns nil error", path)
	}
}
