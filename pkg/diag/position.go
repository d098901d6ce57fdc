package diag

import (
	"strings"
	"unicode/utf8"
)

// Position returns the 1-based line and column of the byte index idx in src.
// Columns are counted in runes. An idx beyond the end of src is clamped to
// len(src).
func Position(src string, idx int) (line, col int) {
	if idx > len(src) {
		idx = len(src)
	}
	before := src[:idx]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}

