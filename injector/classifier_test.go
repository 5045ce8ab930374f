package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Disambiguation(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string // expected tag names in order
	}{
		{
			name:   "return keyword opens markup",
			source: `return <div>hello</div>;`,
			want:   []string{"div"},
		},
		{
			name:   "start of file",
			source: `<App />`,
			want:   []string{"App"},
		},
		{
			name:   "ternary branches",
			source: `cond ? <div>a</div> : <span>b</span>;`,
			want:   []string{"div", "span"},
		},
		{
			name:   "logical and",
			source: `show() && <div>x</div>`,
			want:   []string{"div"},
		},
		{
			name:   "bare function argument",
			source: `render(<App/>, root)`,
			want:   []string{"App"},
		},
		{
			name:   "arrow function body",
			source: `const View = () => <section>x</section>;`,
			want:   []string{"section"},
		},
		{
			name:   "comparison of identifiers",
			source: `x < y ? a : b`,
			want:   nil,
		},
		{
			name:   "comparison of call result",
			source: `count() < total ? a : b`,
			want:   nil,
		},
		{
			name:   "comparison after index expression",
			source: `arr[i] < max ? a : b`,
			want:   nil,
		},
		{
			name:   "comparison after string literal",
			source: `x = "a" < div ? 1 : 2`,
			want:   nil,
		},
		{
			name:   "comparison against identifier-shaped operand",
			source: `x = count() < totalItems`,
			want:   nil,
		},
		{
			name:   "multi line boolean chain",
			source: "const ok = a()\n  < b\n  && c() >= d;",
			want:   nil,
		},
		{
			name:   "type generic is not a candidate",
			source: `const x: Accessor<boolean> = () => true;`,
			want:   nil,
		},
		{
			name:   "closing tag is not a candidate",
			source: `</div>`,
			want:   nil,
		},
		{
			name:   "fragment has no name",
			source: `return <>text</>;`,
			want:   nil,
		},
		{
			name:   "namespaced member component",
			source: `return <Ctx.Provider value={v}>x</Ctx.Provider>;`,
			want:   []string{"Ctx.Provider"},
		},
		{
			name:   "yield keyword",
			source: `yield <li>item</li>;`,
			want:   []string{"li"},
		},
		{
			name:   "assignment precedes markup inside case",
			source: "case 1:\n  x = <b>one</b>; break;",
			want:   []string{"b"},
		},
		{
			name:   "case keyword directly precedes markup",
			source: `case <b>one</b>:`,
			want:   []string{"b"},
		},
		{
			name:   "else keyword",
			source: "if (a) {} else <Fallback/>;",
			want:   []string{"Fallback"},
		},
		{
			name:   "identifier before lt is a comparison",
			source: `while (i < items.length) {}`,
			want:   nil,
		},
		{
			name:   "template literal tail is a comparison",
			source: "x = `a` < div ? 1 : 2",
			want:   nil,
		},
		{
			name:   "nested children",
			source: "return (\n  <div>\n    <Child name=\"x\"/>\n  </div>\n);",
			want:   []string{"div", "Child"},
		},
		{
			name:   "open brace precedes embedded markup",
			source: `{<Row/>}`,
			want:   []string{"Row"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tags := Detect(tc.source)
			var names []string
			for _, tag := range tags {
				names = append(names, tag.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestDetect_Positions(t *testing.T) {
	source := "function App() {\n  return <div>\n    <Greeting name=\"x\" />\n  </div>;\n}\n"
	tags := Detect(source)
	require.Len(t, tags, 2)

	assert.Equal(t, "div", tags[0].Name)
	assert.Equal(t, 2, tags[0].Line)
	assert.Equal(t, 10, tags[0].Column)

	assert.Equal(t, "Greeting", tags[1].Name)
	assert.Equal(t, 3, tags[1].Line)
	assert.Equal(t, 5, tags[1].Column)
}

func TestIsComponentName(t *testing.T) {
	assert.True(t, IsComponentName("MyComponent"))
	assert.True(t, IsComponentName("Ctx.Provider"))
	assert.True(t, IsComponentName("ns.widget"))
	assert.False(t, IsComponentName("div"))
	assert.False(t, IsComponentName("custom-element"))
	assert.False(t, IsComponentName(""))
}

func TestLineIndex(t *testing.T) {
	ix := newLineIndex("ab\ncd\n\nef")
	cases := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, c := range cases {
		line, column := ix.position(c.offset)
		assert.Equal(t, c.line, line, "offset %d", c.offset)
		assert.Equal(t, c.column, column, "offset %d", c.offset)
	}
}
