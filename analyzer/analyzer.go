// Package analyzer cross-checks the lexical tag classifier against a full
// tree-sitter parse of the same source. The classifier trades precision for
// speed; this package measures exactly where the two disagree so edge cases
// are covered by evidence instead of assumption.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/omniaura/solid-grab/injector"
)

// Finding is one disagreement between the classifier and the parser.
type Finding struct {
	Tag    string
	Line   int // 1-based
	Column int // 1-based
}

// Report summarises a verification run over one file.
type Report struct {
	File    string
	Matched int       // positions both sides agree on
	Missed  []Finding // parser saw a markup element the classifier did not
	Extra   []Finding // classifier fired where the parser saw no element
}

// Clean reports whether the classifier agreed with the parser everywhere.
func (r *Report) Clean() bool {
	return len(r.Missed) == 0 && len(r.Extra) == 0
}

// Verify parses src as JSX and diffs the element opening-tag positions
// against the lexical classifier's detections.
func Verify(ctx context.Context, src []byte, file string) (*Report, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("analyzer: parse %s: %w", file, err)
	}

	parsed := map[position]string{}
	collectElements(tree.RootNode(), src, parsed)

	detected := map[position]string{}
	for _, tag := range injector.Detect(string(src)) {
		detected[position{tag.Line, tag.Column}] = tag.Name
	}

	report := &Report{File: file}
	for pos, name := range parsed {
		if _, ok := detected[pos]; ok {
			report.Matched++
		} else {
			report.Missed = append(report.Missed, Finding{Tag: name, Line: pos.line, Column: pos.column})
		}
	}
	for pos, name := range detected {
		if _, ok := parsed[pos]; !ok {
			report.Extra = append(report.Extra, Finding{Tag: name, Line: pos.line, Column: pos.column})
		}
	}
	sortFindings(report.Missed)
	sortFindings(report.Extra)
	return report, nil
}

// VerifyFile reads and verifies one source file.
func VerifyFile(ctx context.Context, path string) (*Report, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analyzer: read %s: %w", path, err)
	}
	return Verify(ctx, src, path)
}

type position struct {
	line   int
	column int
}

// collectElements gathers the start positions and names of every JSX
// opening or self-closing element in the parse tree.
func collectElements(node *sitter.Node, src []byte, out map[position]string) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
		start := node.StartPoint()
		pos := position{line: int(start.Row) + 1, column: int(start.Column) + 1}
		name := ""
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = nameNode.Content(src)
		}
		out[pos] = name
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectElements(node.NamedChild(i), src, out)
	}
}

func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Column < findings[j].Column
	})
}
