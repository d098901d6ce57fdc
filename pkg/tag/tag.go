// Package tag defines the lexical markup tags that the corrector works on,
// together with a small lexer that extracts them from markup text.
package tag

// Kind classifies a tag. The three kinds are mutually exclusive and
// exhaustive.
type Kind uint8

// Possible values of Kind.
const (
	Opening Kind = iota
	Closing
	SelfClosing
)

var kindNames = [...]string{
	Opening:     "opening",
	Closing:     "closing",
	SelfClosing: "self-closing",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Tag is one classified markup tag. It is an immutable value and can be
// copied freely.
type Tag struct {
	kind Kind
	name string
}

// New returns a Tag with the given kind and element name.
func New(kind Kind, name string) Tag { return Tag{kind, name} }

// Open returns an opening tag, like <div>.
func Open(name string) Tag { return Tag{Opening, name} }

// Close returns a closing tag, like </div>.
func Close(name string) Tag { return Tag{Closing, name} }

// SelfClose returns a self-closing tag, like <br/>.
func SelfClose(name string) Tag { return Tag{SelfClosing, name} }

// Kind returns the kind of the tag.
func (t Tag) Kind() Kind { return t.kind }

// Name returns the element name of the tag.
func (t Tag) Name() string { return t.name }

func (t Tag) IsOpening() bool     { return t.kind == Opening }
func (t Tag) IsClosing() bool     { return t.kind == Closing }
func (t Tag) IsSelfClosing() bool { return t.kind == SelfClosing }

// Equal reports whether t and other have the same kind and name.
func (t Tag) Equal(other Tag) bool { return t == other }

// Matches reports whether candidate closes t, i.e. t is an opening tag and
// candidate is a closing tag with the same name.
func (t Tag) Matches(candidate Tag) bool {
	return t.kind == Opening && candidate.kind == Closing && t.name == candidate.name
}

// ClosingCounterpart returns the closing tag for t. It panics if t is not an
// opening tag.
func (t Tag) ClosingCounterpart() Tag {
	if t.kind != Opening {
		panic("tag: ClosingCounterpart called on " + t.kind.String() + " tag " + t.String())
	}
	return Tag{Closing, t.name}
}

// String returns the textual form of the tag.
func (t Tag) String() string {
	switch t.kind {
	case Closing:
		return "</" + t.name + ">"
	case SelfClosing:
		return "<" + t.name + "/>"
	default:
		return "<" + t.name + ">"
	}
}
