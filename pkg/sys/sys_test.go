package sys

import (
	"os"
	"path/filepath"
	"testing"

	"src.tagmend.sh/pkg/must"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f := must.OK1(os.Create(filepath.Join(t.TempDir(), "f")))
	defer f.Close()
	if IsTerminal(f) {
		t.Errorf("IsTerminal(regular file) = true, want false")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Errorf("IsTerminal(nil) = true, want false")
	}
}
