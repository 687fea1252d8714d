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

import (
	"fmt"
	"strings"
)

// writer accumulates rendered output.
//
// Indentation and trailing spaces are buffered and only written once text
// follows them on the same line, so that no line has trailing whitespace.
type writer struct {
	out strings.Builder

	indent int  // Indentation owed to the current line.
	spaces int  // Buffered spaces, written before the next text.
	fresh  bool // Whether nothing has been written to the current line yet.
}

// text appends s to the output. s must not contain newlines.
func (w *writer) text(s string) {
	body := strings.TrimRight(s, " ")
	if body == "" {
		w.spaces += len(s)
		return
	}

	if w.fresh {
		w.pad(w.indent)
		w.fresh = false
	}
	w.pad(w.spaces)
	w.out.WriteString(body)
	w.spaces = len(s) - len(body)
}

// newline ends the current line and starts a new one at the given indentation.
func (w *writer) newline(indent int) {
	w.out.WriteByte('\n')
	w.indent = indent
	w.spaces = 0
	w.fresh = true
}

func (w *writer) pad(n int) {
	for range n {
		w.out.WriteByte(' ')
	}
}

func (w *writer) String() string {
	return w.out.String()
}

// Dump renders the structure of doc as pseudo-HTML. Intended for debugging.
func Dump(doc Doc) string {
	var d dumper
	d.dump(doc)
	return d.out.String()
}

type dumper struct {
	out   strings.Builder
	depth int
}

func (d *dumper) dump(doc Doc) {
	switch doc := doc.(type) {
	case nilDoc:
		d.line("<nil>")
	case text:
		d.line(fmt.Sprintf("%q", string(doc)))
	case line:
		d.line("<line>")
	case forceBreak:
		d.line("<force>")
	case breakDoc:
		d.line(fmt.Sprintf("<break flat=%q broken=%q>", doc.flat, doc.broken))
	case concat:
		// Concatenation is associative; print it as a flat run of children.
		d.dump(doc.left)
		d.dump(doc.right)
	case nest:
		d.line(fmt.Sprintf("<nest by=%d>", doc.delta))
		d.children(doc.inner)
		d.line("</nest>")
	case group:
		if doc.force {
			d.line("<group forced>")
		} else {
			d.line("<group>")
		}
		d.children(doc.inner)
		d.line("</group>")
	default:
		panic(fmt.Sprintf("dom: unexpected document type %T", doc))
	}
}

func (d *dumper) children(doc Doc) {
	d.depth++
	d.dump(doc)
	d.depth--
}

func (d *dumper) line(s string) {
	for range d.depth {
		d.out.WriteString("    ")
	}
	d.out.WriteString(s)
	d.out.WriteByte('\n')
}
