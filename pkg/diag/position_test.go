package diag

import (
	"testing"

	"src.tagmend.sh/pkg/tt"
)

func TestPosition(t *testing.T) {
	tt.Test(t, tt.Fn("Position", Position),
		tt.Args("", 0).Rets(1, 1),
		tt.Args("<p>", 0).Rets(1, 1),
		tt.Args("<p>", 3).Rets(1, 4),
		tt.Args("a\n<p>", 2).Rets(2, 1),
		tt.Args("a\nbc\n<p>", 6).Rets(3, 2),
		tt.Args("héllo <p>", 7).Rets(1, 7),
		tt.Args("ab", 10).Rets(1, 3),
	)
}

