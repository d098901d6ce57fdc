package fix

import (
	"fmt"
	"strings"

	"src.tagmend.sh/pkg/tag"
)

// EditKind is the kind of an Edit.
type EditKind uint8

// Possible values of EditKind.
const (
	// The tag was synthesized to close an opening tag.
	Inserted EditKind = iota
	// The closing tag was dropped from the input.
	Discarded
)

func (k EditKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Discarded:
		return "discarded"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler, so that reports spell out
// the kind.
func (k EditKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Edit is one change made by Fix. Positions are indices into the tag sequence
// as it was before Fix.
type Edit struct {
	Kind EditKind
	// The inserted or discarded tag.
	Tag tag.Tag
	// For Discarded, the index of the discarded tag. For Inserted, the index
	// of the tag before which the closing tag was emitted; this is the length
	// of the sequence for opening tags closed at the end.
	Pos int
	// The index of the opening tag involved: for Inserted, the one that got
	// closed; for Discarded, the one the closing tag failed to match, or -1 if
	// there was none.
	Opener int
}

func (e Edit) String() string {
	return fmt.Sprintf("%v %v at %d", e.Kind, e.Tag, e.Pos)
}

// Rewrite applies edits made by fixing the tags of tokens to src, the text
// tokens were lexed from, and end is where lexing stopped. Discarded tags are
// cut out of the text and inserted tags are written before the tag at their
// position. Tags closed at the end are written at end, before any whitespace
// that precedes it. All other text is kept as is.
func Rewrite(src string, tokens []tag.Token, end int, edits []Edit) string {
	var sb strings.Builder
	last := 0
	for i, token := range tokens {
		sb.WriteString(src[last:token.From])
		discard := false
		for len(edits) > 0 && edits[0].Pos == i {
			if edits[0].Kind == Inserted {
				sb.WriteString(edits[0].Tag.String())
			} else {
				discard = true
			}
			edits = edits[1:]
		}
		if !discard {
			sb.WriteString(token.Text(src))
		}
		last = token.To
	}
	text := strings.TrimRight(src[last:end], " \t\r\n")
	sb.WriteString(text)
	for _, e := range edits {
		if e.Kind == Inserted {
			sb.WriteString(e.Tag.String())
		}
	}
	sb.WriteString(src[last+len(text):])
	return sb.String()
}
