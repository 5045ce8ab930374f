// Package grab defines the metadata wire format shared by the compile-time
// injector and the run-time resolver. The only schema connecting the two is
// a pair of element attributes carrying a source position and a component
// name.
package grab

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SourceAttr carries "<file>:<line>:<column>" on instrumented elements.
	SourceAttr = "data-solid-source"
	// ComponentAttr carries the component name as written in source.
	ComponentAttr = "data-solid-component"
)

// Location identifies one lexical position in one source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location in the attribute wire format.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ParseLocation parses the attribute wire format. Line and column are the
// last two colon-delimited fields; everything before them is the file, so
// paths that themselves contain colons (Windows drive letters, URLs)
// round-trip intact. Returns nil for anything that does not carry two
// positive trailing integers after at least one file field.
func ParseLocation(raw string) *Location {
	if raw == "" {
		return nil
	}
	i := strings.LastIndexByte(raw, ':')
	if i < 0 {
		return nil
	}
	column, err := strconv.Atoi(raw[i+1:])
	if err != nil {
		return nil
	}
	rest := raw[:i]
	j := strings.LastIndexByte(rest, ':')
	if j < 0 {
		return nil
	}
	line, err := strconv.Atoi(rest[j+1:])
	if err != nil {
		return nil
	}
	if line < 1 || column < 1 {
		return nil
	}
	return &Location{File: rest[:j], Line: line, Column: column}
}

// Equal reports whether two locations name the same file position.
func (l *Location) Equal(o *Location) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.File == o.File && l.Line == o.Line && l.Column == o.Column
}
