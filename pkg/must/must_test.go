package must

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOK1(t *testing.T) {
	if v := OK1(5, nil); v != 5 {
		t.Errorf("OK1(5, nil) = %v, want 5", v)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("OK1 with error did not panic")
		}
	}()
	OK1(0, errors.New("bad"))
}

func TestWriteFileAndReadFileString(t *testing.T) {
	name := filepath.Join(t.TempDir(), "d", "f.html")
	WriteFile(name, "<p></p>")
	if got := ReadFileString(name); got != "<p></p>" {
		t.Errorf("ReadFileString = %q, want %q", got, "<p></p>")
	}
}
