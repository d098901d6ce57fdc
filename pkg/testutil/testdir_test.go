package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.tagmend.sh/pkg/must"
)

func TestTempDir(t *testing.T) {
	c := &cleanups{}
	dir := TempDir(c)

	if stat, err := os.Stat(dir); err != nil || !stat.IsDir() {
		t.Fatalf("TempDir returns %q, which is not a usable directory", dir)
	}
	if resolved := must.OK1(filepath.EvalSymlinks(dir)); resolved != dir {
		t.Errorf("TempDir returns %q, which resolves to %q", dir, resolved)
	}

	must.WriteFile(filepath.Join(dir, "index.html"), "<p>")
	c.run()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("%q still exists after cleanup", dir)
	}
}

func TestChdir(t *testing.T) {
	dir := TempDir(t)
	before := wd()

	c := &cleanups{}
	if got := Chdir(c, dir); got != dir {
		t.Errorf("Chdir returns %q, want %q", got, dir)
	}
	if got := wd(); got != dir {
		t.Errorf("working directory is %q, want %q", got, dir)
	}
	c.run()
	if got := wd(); got != before {
		t.Errorf("working directory restored to %q, want %q", got, before)
	}
}

func TestApplyDir(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"a.html": "<div>",
		"site": Dir{
			"b.html": "</p>",
			"nested": Dir{"c.html": "<br/>"},
		},
	})
	// Existing directories are reused.
	ApplyDir(Dir{"site": Dir{"d.html": "<i></i>"}})

	want := map[string]string{
		"a.html":             "<div>",
		"site/b.html":        "</p>",
		"site/d.html":        "<i></i>",
		"site/nested/c.html": "<br/>",
	}
	if diff := cmp.Diff(want, readTree(".")); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	name := "<stdin>"
	c := &cleanups{}
	Set(c, &name, "index.html")
	if name != "index.html" {
		t.Errorf("after Set, name = %q", name)
	}
	c.run()
	if name != "<stdin>" {
		t.Errorf("after cleanup, name = %q", name)
	}
}

type cleanups struct{ fns []func() }

func (c *cleanups) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanups) run() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
	c.fns = nil
}

func wd() string {
	return must.OK1(filepath.EvalSymlinks(must.OK1(os.Getwd())))
}

// Returns the content of all regular files under root, keyed by slash-separated
// relative path.
func readTree(root string) map[string]string {
	tree := map[string]string{}
	must.OK(filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel := must.OK1(filepath.Rel(root, path))
		tree[filepath.ToSlash(rel)] = must.ReadFileString(path)
		return nil
	}))
	return tree
}
