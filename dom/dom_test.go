// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ian-GL/gleam/dom"
)

// args mimics how formatters render a parenthesized argument list.
func args(items ...string) dom.Doc {
	docs := make([]dom.Doc, len(items))
	for i, item := range items {
		docs[i] = dom.Text(item)
	}
	return dom.Group(dom.Concat(
		dom.Nest(2, dom.Concat(
			dom.Break("(", "("),
			dom.Join(dom.Break(", ", ","), docs),
		)),
		dom.Break("", ","),
		dom.Text(")"),
	))
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		doc   dom.Doc
		want  string
	}{
		{
			name: "nil",
			doc:  dom.Nil(),
			want: "",
		},
		{
			name: "text",
			doc:  dom.Concat(dom.Text("hello"), dom.Text(", "), dom.Textf("%d", 42)),
			want: "hello, 42",
		},
		{
			name: "top level lines break",
			doc:  dom.Concat(dom.Text("a"), dom.Line(), dom.Text("b")),
			want: "a\nb",
		},
		{
			name:  "group flat",
			width: 80,
			doc:   dom.Group(dom.Concat(dom.Text("a"), dom.Line(), dom.Text("b"))),
			want:  "a b",
		},
		{
			name:  "args flat",
			width: 80,
			doc:   dom.Concat(dom.Text("f"), args("a", "b")),
			want:  "f(a, b)",
		},
		{
			name:  "args exactly at limit",
			width: 7,
			doc:   dom.Concat(dom.Text("f"), args("a", "b")),
			want:  "f(a, b)",
		},
		{
			name:  "args broken with trailing comma",
			width: 6,
			doc:   dom.Concat(dom.Text("f"), args("a", "b")),
			want:  "f(\n  a,\n  b,\n)",
		},
		{
			name:  "unlimited width",
			width: 0,
			doc:   dom.Concat(dom.Text("f"), args(strings.Repeat("x", 200))),
			want:  "f(" + strings.Repeat("x", 200) + ")",
		},
		{
			name:  "look ahead past the group",
			width: 10,
			doc:   dom.Concat(dom.Text("f"), args("a"), dom.Text(" -> Int {")),
			want:  "f(\n  a,\n) -> Int {",
		},
		{
			name:  "look ahead stops at a broken line",
			width: 10,
			doc: dom.Concat(
				dom.Text("f"), args("a"),
				dom.HardLine(),
				dom.Text("a long line that does not matter"),
			),
			want: "f(a)\na long line that does not matter",
		},
		{
			name:  "forced break",
			width: 80,
			doc:   dom.Group(dom.Concat(dom.Text("a"), dom.HardLine(), dom.Text("|> b"))),
			want:  "a\n|> b",
		},
		{
			name:  "forced break propagates outward",
			width: 80,
			doc: dom.Group(dom.Concat(
				dom.Text("x"), dom.Line(),
				dom.Group(dom.ForceBreak(dom.Text("y"))),
			)),
			want: "x\ny",
		},
		{
			name:  "nested groups decide independently",
			width: 80,
			doc: dom.Group(dom.Concat(
				dom.Text("x"), dom.HardLine(),
				dom.Group(dom.Concat(dom.Text("y"), dom.Line(), dom.Text("z"))),
			)),
			want: "x\ny z",
		},
		{
			name:  "nesting",
			width: 80,
			doc: dom.Concat(
				dom.Text("{"),
				dom.Nest(2, dom.Concat(dom.HardLine(), dom.Text("a"), dom.Nest(2, dom.Concat(dom.HardLine(), dom.Text("b"))))),
				dom.HardLine(),
				dom.Text("}"),
			),
			want: "{\n  a\n    b\n}",
		},
		{
			name: "no trailing whitespace",
			doc: dom.Nest(4, dom.Concat(
				dom.Text("a "), dom.Lines(2), dom.Text("b"), dom.Text("  "),
			)),
			want: "a\n\n    b",
		},
		{
			name:  "width counts characters, not bytes",
			width: 7,
			doc:   dom.Group(dom.Concat(dom.Text("café"), dom.Line(), dom.Text("ok"))),
			want:  "café ok",
		},
		{
			name: "surround",
			doc:  dom.Surround("[", dom.Text("a"), "]"),
			want: "[a]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dom.Render(tt.doc, dom.Options{MaxWidth: tt.width})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDeep(t *testing.T) {
	t.Parallel()

	// Rendering must not recurse on document depth.
	doc := dom.Nil()
	for range 100_000 {
		doc = dom.Concat(doc, dom.Text("x"), dom.Line())
	}
	got := dom.Render(dom.Group(doc), dom.Options{})
	assert.Equal(t, strings.Repeat("x ", 100_000), got+" ")

	doc = dom.Text("y")
	for range 10_000 {
		doc = dom.Group(dom.Concat(dom.Text("("), doc, dom.Text(")")))
	}
	got = dom.Render(doc, dom.Options{MaxWidth: dom.DefaultWidth})
	assert.Equal(t, strings.Repeat("(", 10_000)+"y"+strings.Repeat(")", 10_000), got)
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	doc := dom.Concat(dom.Text("call"), args("alpha", "beta", "gamma", "delta"))
	first := dom.Render(doc, dom.Options{MaxWidth: 20})
	for range 10 {
		assert.Equal(t, first, dom.Render(doc, dom.Options{MaxWidth: 20}))
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	doc := dom.Group(dom.Concat(
		dom.Text("a"),
		dom.Line(),
		dom.Nest(2, dom.Concat(dom.Break(",", ""), dom.HardLine())),
	))
	want := `<group forced>
    "a"
    <line>
    <nest by=2>
        <break flat="," broken="">
        <force>
        <line>
    </nest>
</group>
`
	assert.Equal(t, want, dom.Dump(doc))
}

type word string

func (w word) Document() dom.Doc { return dom.Text(string(w)) }

func TestJoin(t *testing.T) {
	t.Parallel()

	words := []word{"a", "b", "c"}
	assert.Equal(t, "a, b, c", dom.Render(dom.Join(dom.Text(", "), words), dom.Options{}))
	assert.Len(t, dom.All(words), 3)
	assert.Empty(t, dom.Render(dom.Join(dom.Text(", "), []word(nil)), dom.Options{}))
}
