package resolver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/omniaura/solid-grab/grab"
	"github.com/omniaura/solid-grab/resolver"
)

func TestFormat_Bare(t *testing.T) {
	// No source, no components: banners and the Element line remain, the
	// Source line and the component tree block disappear entirely.
	node := &html.Node{Type: html.ElementNode, Data: "div"}
	ctx := &resolver.GrabbedContext{Element: node, TagName: "div"}

	got := resolver.Format(ctx)
	want := strings.Join([]string{
		"--- solid-grab context ---",
		"",
		"Element: <div>",
		"",
		"HTML:",
		"<div></div>",
		"",
		"--- end solid-grab context ---",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_Full(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><body><button id="save" class="btn primary" data-testid="save-btn">go</button></body></html>`))
	require.NoError(t, err)
	target := findByID(doc, "save")
	require.NotNil(t, target)

	ctx := &resolver.GrabbedContext{
		Element: target,
		TagName: "button",
		Source:  &grab.Location{File: "src/App.tsx", Line: 9, Column: 7},
		Components: []resolver.ComponentInfo{
			{Name: "Toolbar", Location: &grab.Location{File: "src/Toolbar.tsx", Line: 4, Column: 5}},
			{Name: "App", Location: nil},
		},
	}

	got := resolver.Format(ctx)
	want := strings.Join([]string{
		"--- solid-grab context ---",
		"",
		`Element: <button id="save" class="btn primary" data-testid="save-btn">`,
		"Source:  src/App.tsx:9:7",
		"",
		"Component tree (innermost → outermost):",
		"  <Toolbar /> → src/Toolbar.tsx:4:5",
		"  <App />",
		"",
		"HTML:",
		`<button id="save" class="btn primary" data-testid="save-btn">go</button>`,
		"",
		"--- end solid-grab context ---",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_Truncation(t *testing.T) {
	longClass := strings.Repeat("c", 200)
	doc, err := html.Parse(strings.NewReader(
		`<html><body><div id="t" class="` + longClass + `">` + strings.Repeat("x", 1000) + `</div></body></html>`))
	require.NoError(t, err)
	target := findByID(doc, "t")
	require.NotNil(t, target)

	ctx, err := resolver.Inspect(target)
	require.NoError(t, err)

	lines := strings.Split(ctx.Formatted, "\n")
	var elementLine, htmlLine string
	for i, line := range lines {
		if strings.HasPrefix(line, "Element: ") {
			elementLine = line
		}
		if line == "HTML:" && i+1 < len(lines) {
			htmlLine = lines[i+1]
		}
	}
	assert.Contains(t, elementLine, strings.Repeat("c", 80)+"…")
	assert.NotContains(t, elementLine, strings.Repeat("c", 81))
	assert.True(t, strings.HasSuffix(htmlLine, "…"), "HTML snippet should end with ellipsis")
	assert.LessOrEqual(t, len(htmlLine), 500+len("…"))
}

func TestFormat_TestIDPresentButEmpty(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><body><div id="t" data-testid="">x</div></body></html>`))
	require.NoError(t, err)
	target := findByID(doc, "t")
	require.NotNil(t, target)

	ctx, err := resolver.Inspect(target)
	require.NoError(t, err)
	// data-testid is included whenever present, even empty.
	assert.Contains(t, ctx.Formatted, `data-testid=""`)
}
