package injector

import "strings"

// Tag is one confirmed markup opening-tag site in a source file.
type Tag struct {
	Name    string // tag name as written in source
	Offset  int    // byte offset of the opening '<'
	Line    int    // 1-based
	Column  int    // 1-based
	nameEnd int    // byte offset just past the tag name, where attributes splice in
}

// keywords that can legally precede an embedded markup expression. Anything
// else word-shaped before a '<' is an identifier or call result being
// compared.
var markupKeywords = map[string]bool{
	"return":  true,
	"yield":   true,
	"case":    true,
	"default": true,
	"else":    true,
}

// Detect scans source text for markup opening tags. It is a lexical
// classifier, not a parser: a candidate is a '<' not immediately preceded by
// a word character, followed by an identifier-like tag name and then
// whitespace, '>', or '/>'. Each candidate is confirmed or rejected by
// classifying the nearest non-whitespace character before the '<'.
func Detect(source string) []Tag {
	var tags []Tag
	var ix *lineIndex
	for i := 0; i < len(source); i++ {
		if source[i] != '<' {
			continue
		}
		if i > 0 && isWord(source[i-1]) {
			// Type-generic angle bracket: Accessor<boolean>.
			continue
		}
		j := i + 1
		for j < len(source) && isSpace(source[j]) {
			j++
		}
		if j >= len(source) || !isNameStart(source[j]) {
			continue
		}
		start := j
		j++
		for j < len(source) && isNameByte(source[j]) {
			j++
		}
		if j >= len(source) {
			continue
		}
		switch {
		case isSpace(source[j]):
		case source[j] == '>':
		case source[j] == '/' && j+1 < len(source) && source[j+1] == '>':
		default:
			continue
		}
		if !opensMarkup(source, i) {
			continue
		}
		if ix == nil {
			ix = newLineIndex(source)
		}
		line, column := ix.position(i)
		tags = append(tags, Tag{
			Name:    source[start:j],
			Offset:  i,
			Line:    line,
			Column:  column,
			nameEnd: j,
		})
	}
	return tags
}

// opensMarkup classifies a candidate '<' at offset lt as markup-open versus
// comparison operator by walking backward over whitespace to the nearest
// non-whitespace character.
func opensMarkup(source string, lt int) bool {
	k := lt - 1
	for k >= 0 && isSpace(source[k]) {
		k--
	}
	if k < 0 {
		// Start of file: nothing can be compared against.
		return true
	}
	switch c := source[k]; c {
	case ')', ']', '"', '\'', '`':
		// Tail of an expression: this '<' compares.
		return false
	case '(', '{', '[', ',', ';', ':', '?', '=', '!', '>', '&', '|',
		'+', '-', '*', '/', '%', '^', '~':
		// An expression is about to begin.
		return true
	}
	if isWord(source[k]) {
		end := k + 1
		for k >= 0 && isWord(source[k]) {
			k--
		}
		return markupKeywords[source[k+1:end]]
	}
	return false
}

// IsComponentName reports whether a tag name denotes a user-defined
// component rather than an intrinsic element: leading uppercase, or a dot
// signaling a namespaced member-access reference.
func IsComponentName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		return true
	}
	return strings.IndexByte(name, '.') >= 0
}

func isWord(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameByte(c byte) bool {
	return isWord(c) || c == '.' || c == ':' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
