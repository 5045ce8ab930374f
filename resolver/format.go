package resolver

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const (
	openBanner  = "--- solid-grab context ---"
	closeBanner = "--- end solid-grab context ---"

	classAttrLimit   = 80
	htmlSnippetLimit = 500
	ellipsis         = "…"
)

// Format renders the fixed multi-line report for a grabbed context. The
// Source line is omitted when no source was resolved; the component-tree
// block, including its blank-line separator, is omitted when the chain is
// empty.
func Format(ctx *GrabbedContext) string {
	var b strings.Builder

	b.WriteString(openBanner)
	b.WriteString("\n\n")

	b.WriteString("Element: ")
	b.WriteString(elementSummary(ctx))
	b.WriteString("\n")
	if ctx.Source != nil {
		b.WriteString("Source:  ")
		b.WriteString(ctx.Source.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(ctx.Components) > 0 {
		b.WriteString("Component tree (innermost → outermost):\n")
		for _, c := range ctx.Components {
			b.WriteString("  <")
			b.WriteString(c.Name)
			b.WriteString(" />")
			if c.Location != nil {
				b.WriteString(" → ")
				b.WriteString(c.Location.String())
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("HTML:\n")
	b.WriteString(outerHTML(ctx.Element))
	b.WriteString("\n\n")

	b.WriteString(closeBanner)
	return b.String()
}

// elementSummary builds the one-line element description: tag name always,
// id and class only when non-empty, data-testid when present.
func elementSummary(ctx *GrabbedContext) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(ctx.TagName)
	if id, ok := attrValue(ctx.Element, "id"); ok && id != "" {
		fmt.Fprintf(&b, " id=%q", id)
	}
	if class, ok := attrValue(ctx.Element, "class"); ok && class != "" {
		fmt.Fprintf(&b, " class=%q", truncate(class, classAttrLimit))
	}
	if testID, ok := attrValue(ctx.Element, "data-testid"); ok {
		fmt.Fprintf(&b, " data-testid=%q", testID)
	}
	b.WriteString(">")
	return b.String()
}

// outerHTML serialises the element subtree, truncated to a fixed length.
func outerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return truncate(buf.String(), htmlSnippetLimit)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + ellipsis
}
