// Tagmend corrects the nesting of tags in markup files. Closing tags that do
// not close anything are removed, and missing closing tags are inserted.
//
// With -lsp, it runs a language server that reports badly nested tags as
// diagnostics and fixes them on formatting.
package main

import (
	"os"

	"src.tagmend.sh/pkg/buildinfo"
	"src.tagmend.sh/pkg/lsp"
	"src.tagmend.sh/pkg/mend"
	"src.tagmend.sh/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &mend.Program{})))
}
