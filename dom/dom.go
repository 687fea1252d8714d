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

package dom

import "fmt"

// Doc is an immutable document.
//
// Documents form a finite binary tree: [Concat] is O(1) and never copies its
// operands, so building a document by repeated appending is linear.
//
// The zero value is not a valid Doc; use [Nil] for the empty document.
//
//sumtype:decl
type Doc interface {
	Documentable

	// forced returns whether this subtree contains a forced break. It is
	// computed once, at construction time.
	forced() bool
}

// Documentable is implemented by values that can be converted into a [Doc].
//
// Every [Doc] is trivially Documentable.
type Documentable interface {
	Document() Doc
}

type (
	nilDoc     struct{}
	text       string
	line       struct{}
	forceBreak struct{}

	breakDoc struct {
		flat, broken string
	}

	nest struct {
		delta int
		inner Doc
		force bool
	}

	group struct {
		inner Doc
		force bool
	}

	concat struct {
		left, right Doc
		force       bool
	}
)

func (d nilDoc) Document() Doc     { return d }
func (d text) Document() Doc       { return d }
func (d line) Document() Doc       { return d }
func (d forceBreak) Document() Doc { return d }
func (d breakDoc) Document() Doc   { return d }
func (d nest) Document() Doc       { return d }
func (d group) Document() Doc      { return d }
func (d concat) Document() Doc     { return d }

func (nilDoc) forced() bool     { return false }
func (text) forced() bool       { return false }
func (line) forced() bool       { return false }
func (forceBreak) forced() bool { return true }
func (breakDoc) forced() bool   { return false }
func (d nest) forced() bool     { return d.force }
func (d group) forced() bool    { return d.force }
func (d concat) forced() bool   { return d.force }

// Nil returns the empty document.
func Nil() Doc {
	return nilDoc{}
}

// Text returns a document that renders s verbatim.
//
// s must not contain newlines; use [Line] and friends for those.
func Text(s string) Doc {
	if s == "" {
		return nilDoc{}
	}
	return text(s)
}

// Textf is like [Text], but formats its arguments with [fmt.Sprintf].
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// Line returns a line break: a newline followed by the current indentation
// when the enclosing group is broken, or a single space when it is flat.
func Line() Doc {
	return line{}
}

// Break is like [Line], but renders flat when the enclosing group is flat,
// and broken followed by a newline when it is broken.
//
// For example, Break(", ", ",") separates list elements.
func Break(flat, broken string) Doc {
	return breakDoc{flat: flat, broken: broken}
}

// ForceBreak returns d together with a forced break marker. The marker is
// zero-width, but no group containing it is ever laid out flat.
func ForceBreak(d Doc) Doc {
	return Concat(forceBreak{}, d)
}

// HardLine returns a line break that is always rendered as a newline.
func HardLine() Doc {
	return ForceBreak(line{})
}

// Lines returns n hard line breaks; Lines(2) separates by one blank line.
func Lines(n int) Doc {
	d := Nil()
	for range n {
		d = Concat(d, HardLine())
	}
	return d
}

// Nest increases the indentation of line breaks inside d by delta columns.
func Nest(delta int, d Doc) Doc {
	if _, ok := d.(nilDoc); ok || delta == 0 {
		return d
	}
	return nest{delta: delta, inner: d, force: d.forced()}
}

// Group makes d a unit of breaking decision: every [Line] and [Break]
// directly inside it is either flat or broken, depending on whether d fits on
// the current line. Groups nested within d decide independently.
func Group(d Doc) Doc {
	switch d.(type) {
	case nilDoc, text:
		// Nothing to decide.
		return d
	}
	return group{inner: d, force: d.forced()}
}

// Concat concatenates documents in order.
func Concat(docs ...Doc) Doc {
	var out Doc = nilDoc{}
	for _, d := range docs {
		out = appendDoc(out, d)
	}
	return out
}

func appendDoc(left, right Doc) Doc {
	if _, ok := left.(nilDoc); ok {
		return right
	}
	if _, ok := right.(nilDoc); ok {
		return left
	}
	return concat{left: left, right: right, force: left.forced() || right.forced()}
}

// Surround wraps d in open and close text.
func Surround(open string, d Doc, close string) Doc {
	return Concat(Text(open), d, Text(close))
}

// Join converts items into documents and intersperses sep between them.
func Join[T Documentable](sep Doc, items []T) Doc {
	out := Nil()
	for i, item := range items {
		if i > 0 {
			out = appendDoc(out, sep)
		}
		out = appendDoc(out, item.Document())
	}
	return out
}

// All converts each of items into a document.
func All[T Documentable](items []T) []Doc {
	docs := make([]Doc, len(items))
	for i, item := range items {
		docs[i] = item.Document()
	}
	return docs
}
