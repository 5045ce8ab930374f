// Package injector implements the compile-time half of solid-grab: a
// lexical classifier that finds markup opening tags in JSX/TSX source text
// and splices source-location and component-name attributes into them. It
// deliberately trades a small amount of precision for speed: no AST is
// built, and malformed input degrades to under- or over-matching rather
// than an error.
package injector

import (
	"strings"

	"github.com/omniaura/solid-grab/grab"
)

// Options controls which attributes Transform writes. Zero value injects
// nothing; use DefaultOptions for the usual both-on configuration.
type Options struct {
	InjectLocation  bool
	InjectComponent bool
}

// DefaultOptions enables both location and component injection.
func DefaultOptions() Options {
	return Options{InjectLocation: true, InjectComponent: true}
}

// Transform scans one source file and injects metadata attributes into every
// confirmed markup opening tag. The file identifier is used verbatim as the
// file field of injected locations; callers strip project roots beforehand.
// The boolean result is false when the output is byte-identical to the
// input, so callers can skip downstream work. Transform is a pure function
// of its inputs and never fails.
func Transform(source, file string, opts Options) (string, bool) {
	if !opts.InjectLocation && !opts.InjectComponent {
		return source, false
	}
	tags := Detect(source)
	if len(tags) == 0 {
		return source, false
	}

	var b strings.Builder
	b.Grow(len(source) + len(tags)*48)
	last := 0
	changed := false
	for _, tag := range tags {
		attrs := attributesFor(tag, file, opts)
		if attrs == "" {
			continue
		}
		b.WriteString(source[last:tag.nameEnd])
		b.WriteString(attrs)
		last = tag.nameEnd
		changed = true
	}
	if !changed {
		return source, false
	}
	b.WriteString(source[last:])
	return b.String(), true
}

// attributesFor builds the attribute string spliced in after a tag name.
func attributesFor(tag Tag, file string, opts Options) string {
	var sb strings.Builder
	if opts.InjectLocation {
		loc := grab.Location{File: file, Line: tag.Line, Column: tag.Column}
		sb.WriteString(` `)
		sb.WriteString(grab.SourceAttr)
		sb.WriteString(`="`)
		sb.WriteString(loc.String())
		sb.WriteString(`"`)
	}
	if opts.InjectComponent && IsComponentName(tag.Name) {
		sb.WriteString(` `)
		sb.WriteString(grab.ComponentAttr)
		sb.WriteString(`="`)
		sb.WriteString(tag.Name)
		sb.WriteString(`"`)
	}
	return sb.String()
}
