package main

import (
	"testing"

	"src.tagmend.sh/pkg/buildinfo"
	"src.tagmend.sh/pkg/lsp"
	"src.tagmend.sh/pkg/mend"
	"src.tagmend.sh/pkg/prog"
	. "src.tagmend.sh/pkg/prog/progtest"
)

func TestComposite(t *testing.T) {
	p := prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &mend.Program{})
	Test(t, p,
		That("-version").WritesStdout(buildinfo.Value.Version+"\n"),
		That("-tags").WithStdin("<div><span></div>").
			WritesStdout("<div><span></span></div>\n"),
		That("-help").WritesStdoutContaining("-lsp"),
	)
}
