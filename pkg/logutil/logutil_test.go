package logutil_test

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	. "src.tagmend.sh/pkg/logutil"
	"src.tagmend.sh/pkg/must"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("foo ")

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("out 1")
	output := sb.String()
	if !strings.Contains(output, "foo ") || !strings.Contains(output, "out 1") {
		t.Errorf("want output to contain 'foo ' and 'out 1', got %q", output)
	}

	fname := filepath.Join(t.TempDir(), "log")
	must.OK(SetOutputFile(fname))
	logger.Println("out 2")
	content := must.ReadFileString(fname)
	if !strings.Contains(content, "out 2") {
		t.Errorf("want log file to contain 'out 2', got %q", content)
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	must.OK(SetOutputFile(""))
	logger.Println("out 3")
	if buf.Len() > 0 {
		t.Errorf("want no output after SetOutputFile(\"\"), got %q", buf.String())
	}
	SetOutput(io.Discard)
}
