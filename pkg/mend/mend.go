// Package mend implements the default subprogram of tagmend, which corrects
// the tag nesting of markup files.
package mend

import (
	"src.tagmend.sh/pkg/diag"
	"src.tagmend.sh/pkg/fix"
	"src.tagmend.sh/pkg/logutil"
	"src.tagmend.sh/pkg/must"
	"src.tagmend.sh/pkg/tag"
)

var logger = logutil.GetLogger("[mend] ")

// Result is the result of correcting one markup source.
type Result struct {
	Name   string
	Source string
	// Tokens lexed from Source.
	Tokens []tag.Token
	// Where lexing stopped; text from here on is an unterminated construct.
	End int
	// Edits made to the tags of Tokens.
	Edits []fix.Edit
	// The corrected tag sequence, rendered.
	Tags string
	// Source with the edits applied.
	Output string
}

// Mend lexes src, corrects its tags and applies the corrections to src. The
// void function is passed to tag.Lex.
func Mend(name, src string, void func(string) bool) *Result {
	tokens, end := tag.Lex(src, void)
	// tag.Tags never returns nil, so New never fails.
	c := must.OK1(fix.New(tag.Tags(tokens)))
	c.Fix()
	edits := c.Edits()
	logger.Printf("%s: %d tags, %d edits", name, len(tokens), len(edits))
	return &Result{
		Name:   name,
		Source: src,
		Tokens: tokens,
		End:    end,
		Edits:  edits,
		Tags:   c.String(),
		Output: fix.Rewrite(src, tokens, end, edits),
	}
}

// Counts returns the number of inserted and discarded tags.
func (r *Result) Counts() (inserted, discarded int) {
	for _, e := range r.Edits {
		switch e.Kind {
		case fix.Inserted:
			inserted++
		case fix.Discarded:
			discarded++
		}
	}
	return inserted, discarded
}

// EditRange returns the range of source text an edit is about: the discarded
// tag, the tag before which a closing tag was inserted, or the point where
// tags closed at the end were inserted.
func (r *Result) EditRange(e fix.Edit) diag.Ranging {
	if e.Pos < len(r.Tokens) {
		return r.Tokens[e.Pos].Ranging
	}
	return diag.PointRanging(r.End)
}

// OpenerRange returns the range of the opening tag involved in an edit, and
// false if there is none.
func (r *Result) OpenerRange(e fix.Edit) (diag.Ranging, bool) {
	if e.Opener < 0 || e.Opener >= len(r.Tokens) {
		return diag.Ranging{}, false
	}
	return r.Tokens[e.Opener].Ranging, true
}
