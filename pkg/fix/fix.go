// Package fix repairs the nesting of a tag sequence.
//
// A Corrector owns a sequence of classified tags. Its Fix method rewrites the
// sequence in a single pass so that every opening tag is closed by a matching
// closing tag in properly nested order:
//
//   - Self-closing tags are copied through and never interact with nesting.
//
//   - A closing tag with no unclosed opening tag is discarded.
//
//   - A closing tag that does not match the innermost unclosed opening tag
//     causes the innermost opening tag to be closed, and is itself discarded.
//     It is not tested against the opening tags further out.
//
//   - Opening tags still unclosed at the end are closed, innermost first.
//
// The result is always well-nested, but not necessarily the smallest such
// correction.
//
// A Corrector is not safe for concurrent use.
package fix

import (
	"errors"
	"strings"

	"src.tagmend.sh/pkg/tag"
)

// ErrInvalidInput is returned by New when the tag sequence is nil.
var ErrInvalidInput = errors.New("invalid input: nil tag sequence")

// Corrector owns a tag sequence and corrects its nesting.
type Corrector struct {
	tags  []tag.Tag
	edits []Edit
}

// New returns a Corrector that owns a copy of tags. It returns ErrInvalidInput
// if tags is nil; an empty non-nil slice is fine.
func New(tags []tag.Tag) (*Corrector, error) {
	if tags == nil {
		return nil, ErrInvalidInput
	}
	own := make([]tag.Tag, len(tags))
	copy(own, tags)
	return &Corrector{tags: own}, nil
}

// Tags returns the current tag sequence. The caller must not modify it.
func (c *Corrector) Tags() []tag.Tag { return c.tags }

// Edits returns the changes made by the most recent call to Fix, in the order
// they appear in the output. The caller must not modify it.
func (c *Corrector) Edits() []Edit { return c.edits }

// String concatenates the textual form of all tags, with leading and trailing
// whitespace trimmed.
func (c *Corrector) String() string {
	var sb strings.Builder
	for _, t := range c.tags {
		sb.WriteString(t.String())
	}
	return strings.TrimSpace(sb.String())
}

// An opening tag waiting for its closing tag, and its index in the input.
type pending struct {
	tag tag.Tag
	pos int
}

// Fix rewrites the tag sequence so that it is well-nested. An already
// well-nested sequence is left unchanged.
func (c *Corrector) Fix() {
	var (
		stack     []pending
		corrected = make([]tag.Tag, 0, len(c.tags))
		edits     []Edit
	)

	for i, t := range c.tags {
		switch t.Kind() {
		case tag.SelfClosing:
			corrected = append(corrected, t)
		case tag.Opening:
			corrected = append(corrected, t)
			stack = append(stack, pending{t, i})
		case tag.Closing:
			if len(stack) == 0 {
				edits = append(edits, Edit{Kind: Discarded, Tag: t, Pos: i, Opener: -1})
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.tag.Matches(t) {
				corrected = append(corrected, t)
			} else {
				closer := top.tag.ClosingCounterpart()
				corrected = append(corrected, closer)
				edits = append(edits,
					Edit{Kind: Inserted, Tag: closer, Pos: i, Opener: top.pos},
					Edit{Kind: Discarded, Tag: t, Pos: i, Opener: top.pos})
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closer := top.tag.ClosingCounterpart()
		corrected = append(corrected, closer)
		edits = append(edits, Edit{Kind: Inserted, Tag: closer, Pos: len(c.tags), Opener: top.pos})
	}

	c.tags = corrected
	c.edits = edits
}
