// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.tagmend.sh/pkg/must"
	"src.tagmend.sh/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out, err   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

// That returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "tagmend -tags" writes the tag stream
// can be written as:
//
//	That("-tags").WithStdin("<p>").WritesStdout("<p></p>\n")
func That(args ...string) *Case {
	return &Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	That("-version").DoesNothing()
func (c *Case) DoesNothing() *Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c *Case) ExitsWith(code int) *Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.want.out = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.want.out = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c *Case) WritesStderr(s string) *Case {
	c.want.err = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.want.err = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(t, p, c.stdin, c.args...)
			if exit != c.want.exitStatus {
				t.Errorf("got exit %v, want %v", exit, c.want.exitStatus)
			}
			if !matchOutput(stdout, c.want.out) {
				t.Errorf("got stdout %q, want %s", stdout, c.want.out)
			}
			if !matchOutput(stderr, c.want.err) {
				t.Errorf("got stderr %q, want %s", stderr, c.want.err)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments, and returns its exit
// status and what it has written to stdout and stderr. The name of the program
// is prepended to args.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	dir := t.TempDir()
	in := tempFile(dir, "stdin", stdin)
	out := tempFile(dir, "stdout", "")
	errFile := tempFile(dir, "stderr", "")
	defer in.Close()
	defer out.Close()
	defer errFile.Close()

	exit = prog.Run([3]*os.File{in, out, errFile}, append([]string{"tagmend"}, args...), p)
	return exit, readAll(out), readAll(errFile)
}

func tempFile(dir, name, content string) *os.File {
	f := must.OK1(os.Create(filepath.Join(dir, name)))
	must.OK1(f.WriteString(content))
	must.OK1(f.Seek(0, io.SeekStart))
	return f
}

func readAll(f *os.File) string {
	must.OK1(f.Seek(0, io.SeekStart))
	return string(must.OK1(io.ReadAll(f)))
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
