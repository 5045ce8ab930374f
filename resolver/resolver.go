// Package resolver implements the run-time half of solid-grab: given a DOM
// element it walks the ancestor chain to recover the nearest source
// location and the ordered component ancestry written by the injector, and
// renders them into a fixed-format text report.
//
// The DOM is a golang.org/x/net/html node tree. All operations are pure
// reads; the tree is never mutated.
package resolver

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/omniaura/solid-grab/grab"
)

// ComponentInfo is one entry in an ancestry chain. Location is nil when the
// producing element carried a component attribute but no source attribute.
type ComponentInfo struct {
	Name     string         `json:"name"`
	Location *grab.Location `json:"location,omitempty"`
}

// GrabbedContext is the transient report produced for one inspected
// element. It is created fresh per inspection and never mutated afterwards.
type GrabbedContext struct {
	Element    *html.Node
	TagName    string
	Source     *grab.Location
	Components []ComponentInfo
	Formatted  string
	Timestamp  int64 // Unix milliseconds
}

// ErrNotElement is returned by Inspect for a nil or non-element handle.
var ErrNotElement = errors.New("resolver: node is not an element")

// attrValue returns the value of an attribute on an element node.
func attrValue(n *html.Node, key string) (string, bool) {
	if n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// FindNearestSource walks from n up through its parent chain, inclusive of
// n itself, and returns the first parseable source-location attribute. Nil
// when the chain is exhausted without a match.
func FindNearestSource(n *html.Node) *grab.Location {
	for ; n != nil; n = n.Parent {
		if raw, ok := attrValue(n, grab.SourceAttr); ok {
			if loc := grab.ParseLocation(raw); loc != nil {
				return loc
			}
		}
	}
	return nil
}

// FindNearestComponent walks the same chain for the component-name
// attribute and returns the raw name.
func FindNearestComponent(n *html.Node) (string, bool) {
	for ; n != nil; n = n.Parent {
		if name, ok := attrValue(n, grab.ComponentAttr); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// ComponentChain walks the full ancestor chain collecting every element
// that carries a component-name attribute, innermost first. Each entry is
// paired with that element's own source attribute, not one inherited from
// further up. Consecutive entries with the same name and the same file/line
// collapse to one; a non-consecutive recurrence further up is preserved.
func ComponentChain(n *html.Node) []ComponentInfo {
	var chain []ComponentInfo
	for ; n != nil; n = n.Parent {
		name, ok := attrValue(n, grab.ComponentAttr)
		if !ok || name == "" {
			continue
		}
		var loc *grab.Location
		if raw, has := attrValue(n, grab.SourceAttr); has {
			loc = grab.ParseLocation(raw)
		}
		entry := ComponentInfo{Name: name, Location: loc}
		if len(chain) > 0 && sameBoundary(chain[len(chain)-1], entry) {
			continue
		}
		chain = append(chain, entry)
	}
	return chain
}

// sameBoundary compares two chain entries by name plus location file/line.
// A wrapper re-emitting its parent's attributes is the same component
// boundary even when the elements differ.
func sameBoundary(a, b ComponentInfo) bool {
	if a.Name != b.Name {
		return false
	}
	if a.Location == nil || b.Location == nil {
		return a.Location == b.Location
	}
	return a.Location.File == b.Location.File && a.Location.Line == b.Location.Line
}

// Inspect resolves the nearest source, the full component chain, and the
// formatted report for one element. The only failure mode is a contract
// violation: a nil or non-element node.
func Inspect(n *html.Node) (*GrabbedContext, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, ErrNotElement
	}
	ctx := &GrabbedContext{
		Element:    n,
		TagName:    strings.ToLower(n.Data),
		Source:     FindNearestSource(n),
		Components: ComponentChain(n),
		Timestamp:  time.Now().UnixMilli(),
	}
	ctx.Formatted = Format(ctx)
	return ctx, nil
}
