package mend

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"src.tagmend.sh/pkg/diag"
	"src.tagmend.sh/pkg/fix"
)

// Entry is one line of an edit report.
type Entry struct {
	File   string `json:"file" yaml:"file"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Edit   string `json:"edit" yaml:"edit"`
	Tag    string `json:"tag" yaml:"tag"`
	// The opening tag involved and its position, if any.
	Opener       string `json:"opener,omitempty" yaml:"opener,omitempty"`
	OpenerLine   int    `json:"opener_line,omitempty" yaml:"opener_line,omitempty"`
	OpenerColumn int    `json:"opener_column,omitempty" yaml:"opener_column,omitempty"`
}

// Entries converts the edits of r to report entries.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, len(r.Edits))
	for i, e := range r.Edits {
		entry := Entry{File: r.Name, Edit: e.Kind.String(), Tag: e.Tag.String()}
		entry.Line, entry.Column = diag.Position(r.Source, r.EditRange(e).From)
		if opener, ok := r.OpenerRange(e); ok {
			entry.Opener = r.Tokens[e.Opener].String()
			entry.OpenerLine, entry.OpenerColumn = diag.Position(r.Source, opener.From)
		}
		entries[i] = entry
	}
	return entries
}

// Message describes the entry in a sentence, without the location.
func (e Entry) Message() string {
	switch {
	case e.Edit == fix.Inserted.String():
		return fmt.Sprintf("inserted %s to close %s at %d:%d",
			e.Tag, e.Opener, e.OpenerLine, e.OpenerColumn)
	case e.Opener == "":
		return fmt.Sprintf("discarded stray %s", e.Tag)
	default:
		return fmt.Sprintf("discarded %s, which does not match %s at %d:%d",
			e.Tag, e.Opener, e.OpenerLine, e.OpenerColumn)
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message())
}

// WriteReport writes entries to w in the given format, which must be one of
// config.ReportFormats.
func WriteReport(w io.Writer, format string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	return writeAs(w, format, entries, func() error {
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// Writes v as JSON or YAML, or calls text for the text format.
func writeAs(w io.Writer, format string, v any, text func() error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		// Tags are full of "<" and ">".
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text()
	}
}
