package tag

import (
	"strings"

	"src.tagmend.sh/pkg/diag"
)

// Token is a Tag together with the range of source text it was lexed from.
type Token struct {
	Tag
	diag.Ranging
}

// Lex extracts the tags of src in order. Text between tags, comments,
// declarations like <!DOCTYPE html> and processing instructions are skipped.
//
// An opening tag is classified as self-closing if it ends with "/", or if void
// is non-nil and returns true for its name. Closing tags of void elements, like
// </br>, are treated as text. Names are lower-cased.
//
// Lex does not report errors: a "<" that does not start a well-formed tag is
// treated as text. An unterminated comment, declaration or tag stops the scan;
// the returned end is its start, and is len(src) if src was scanned entirely.
func Lex(src string, void func(name string) bool) (tokens []Token, end int) {
	i := 0
	for {
		j := strings.IndexByte(src[i:], '<')
		if j == -1 {
			return tokens, len(src)
		}
		start := i + j
		rest := src[start:]

		if strings.HasPrefix(rest, "<!--") {
			k := strings.Index(rest[4:], "-->")
			if k == -1 {
				return tokens, start
			}
			i = start + 4 + k + 3
			continue
		} else if strings.HasPrefix(rest, "<!") || strings.HasPrefix(rest, "<?") {
			k := strings.IndexByte(rest, '>')
			if k == -1 {
				return tokens, start
			}
			i = start + k + 1
			continue
		}

		k := tagEnd(rest)
		if k == -1 {
			if nameLen(strings.TrimPrefix(rest[1:], "/")) == 0 {
				// Not a tag, like "a < b".
				i = start + 1
				continue
			}
			return tokens, start
		}
		if t, ok := parseTag(rest[1:k], void); ok {
			tokens = append(tokens, Token{t, diag.Ranging{From: start, To: start + k + 1}})
			i = start + k + 1
		} else {
			i = start + 1
		}
	}
}

// Tags returns the tags of tokens, discarding the source ranges.
func Tags(tokens []Token) []Tag {
	tags := make([]Tag, len(tokens))
	for i, token := range tokens {
		tags[i] = token.Tag
	}
	return tags
}

// Returns the index of the ">" that terminates the tag at the start of s, or
// -1 if there is none. Quoted attribute values may contain ">".
func tagEnd(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '>':
			return i
		case '=':
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '"' || s[j] == '\'') {
				k := strings.IndexByte(s[j+1:], s[j])
				if k == -1 {
					return -1
				}
				i = j + 1 + k
			}
		}
	}
	return -1
}

// Parses the text between "<" and ">".
func parseTag(inner string, void func(string) bool) (Tag, bool) {
	closing := false
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = inner[1:]
	}
	n := nameLen(inner)
	if n == 0 {
		return Tag{}, false
	}
	name := strings.ToLower(inner[:n])
	after := inner[n:]
	if after != "" && !isSpace(after[0]) && after[0] != '/' {
		return Tag{}, false
	}

	switch {
	case closing && void != nil && void(name):
		return Tag{}, false
	case closing:
		return Close(name), true
	case strings.HasSuffix(strings.TrimRight(after, " \t\r\n"), "/"):
		return SelfClose(name), true
	case void != nil && void(name):
		return SelfClose(name), true
	default:
		return Open(name), true
	}
}

func nameLen(s string) int {
	if s == "" || !isLetter(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return i
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isLetter(b) || ('0' <= b && b <= '9') ||
		b == '-' || b == '_' || b == ':' || b == '.'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
