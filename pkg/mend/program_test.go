package mend

import (
	"testing"
	"time"

	"src.tagmend.sh/pkg/must"
	. "src.tagmend.sh/pkg/prog/progtest"
	"src.tagmend.sh/pkg/testutil"
)

func TestProgram_Stdin(t *testing.T) {
	Test(t, &Program{},
		That().WithStdin("<div><span>text</div>\n").
			WritesStdout("<div><span>text</span></div>\n"),
		That("-tags").WithStdin("<div><span></div>").
			WritesStdout("<div><span></span></div>\n"),
		That("-tags").WithStdin("</p>").WritesStdout("\n"),
		That("-tags").WithStdin("<br>, <p>, <br/>").
			WritesStdout("<br/><p><br/></p>\n"),
		That().WithStdin("").DoesNothing(),
	)
}

func TestProgram_Report(t *testing.T) {
	Test(t, &Program{},
		That("-report", "text").WithStdin("<p>a</b>").
			WritesStdout("<p>a</p>").
			WritesStderr(
				"<stdin>:1:5: inserted </p> to close <p> at 1:1\n"+
					"<stdin>:1:5: discarded </b>, which does not match <p> at 1:1\n"),
		That("-json").WithStdin("</p>").
			WritesStderr(`[{"file":"<stdin>","line":1,"column":1,"edit":"discarded","tag":"</p>"}]` + "\n"),
		That("-report", "json").WithStdin("<p></p>").
			WritesStdout("<p></p>").WritesStderr("[]\n"),
		That("-report", "yaml").WithStdin("</p>").
			WritesStderrContaining("edit: discarded"),
		That("-report", "xml").WithStdin("").
			ExitsWith(2).WritesStderrContaining(`unknown report format "xml"`),
	)
}

func TestProgram_Check(t *testing.T) {
	Test(t, &Program{},
		That("-check").WithStdin("<p></p>").DoesNothing(),
		That("-check").WithStdin("<p>").
			ExitsWith(1).
			WritesStderr("<stdin>:1:4: inserted </p> to close <p> at 1:1\n"),
		That("-check", "-json").WithStdin("</p>").
			ExitsWith(1).
			WritesStderrContaining(`"edit":"discarded"`),
	)
}

func TestProgram_Files(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"a.html": "<ul><li>x</ul>",
		"b.html": "<p>ok</p>",
	})

	Test(t, &Program{},
		That("a.html", "b.html").WritesStdout("<ul><li>x</li></ul><p>ok</p>"),
		That("a.html", "missing.html").
			ExitsWith(2).
			WritesStdout("<ul><li>x</li></ul>").
			WritesStderr("open missing.html: no such file or directory\n"),
		That("-w").ExitsWith(2).WritesStderrContaining("-w requires file arguments"),
		That("-w", "-tags", "a.html").
			ExitsWith(2).WritesStderrContaining("-w cannot be used with -tags or -check"),
		That("-w", "a.html", "b.html").DoesNothing(),
	)

	if got := must.ReadFileString("a.html"); got != "<ul><li>x</li></ul>" {
		t.Errorf("a.html after -w is %q", got)
	}
	if got := must.ReadFileString("b.html"); got != "<p>ok</p>" {
		t.Errorf("b.html after -w is %q", got)
	}
}

func TestProgram_Config(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"tagmend.toml": `void = ["x-icon"]`,
		"bad.toml":     `report = "xml"`,
	})

	Test(t, &Program{},
		That("-config", "tagmend.toml", "-tags").WithStdin("<x-icon><br>").
			WritesStdout("<x-icon/><br></br>\n"),
		That("-config", "bad.toml").WithStdin("").
			ExitsWith(2).WritesStderrContaining(`config bad.toml: unknown report format "xml"`),
	)
}

func TestProgram_History(t *testing.T) {
	testutil.InTempDir(t)
	testutil.Set(t, &now, func() time.Time { return time.Unix(0, 0).UTC() })

	Test(t, &Program{},
		That("-history").ExitsWith(2).WritesStderrContaining("-history requires -db"),
		That("-db", "db", "-history", "a.html").
			ExitsWith(2).WritesStderrContaining("-history cannot be used with file arguments"),
		That("-db", "db", "-history").DoesNothing(),
		That("-db", "db", "-tags").WithStdin("<p>").WritesStdout("<p></p>\n"),
		That("-db", "db", "-tags").WithStdin("</b><b>").WritesStdout("<b></b>\n"),
		That("-db", "db", "-history").WritesStdout(
			"1 1970-01-01T00:00:00Z <stdin> tags=1 inserted=1 discarded=0\n"+
				"2 1970-01-01T00:00:00Z <stdin> tags=2 inserted=1 discarded=1\n"),
		That("-db", "db", "-history", "-json").WritesStdoutContaining(
			`{"name":"<stdin>","time":"1970-01-01T00:00:00Z","tags":1,"inserted":1,"discarded":0}`),
	)
}
