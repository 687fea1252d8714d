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
	"math"

	"github.com/rivo/uniseg"

	"github.com/Ian-GL/gleam/internal/ext/slicesx"
)

// DefaultWidth is the line width formatters conventionally render at.
const DefaultWidth = 80

// Options specifies configuration for [Render].
type Options struct {
	// The maximum number of columns to render before triggering a break.
	// A value of zero implies an infinite width.
	MaxWidth int
}

// WithDefaults replaces any unset (read: zero value) fields of an Options which
// specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = math.MaxInt
	}
	return o
}

// mode is the layout mode of a group.
type mode byte

const (
	modeBreak mode = iota
	modeFlat
)

// item is an entry in the layout work queue.
type item struct {
	indent int
	mode   mode
	doc    Doc
}

// layout is the state of a single call to [Render].
type layout struct {
	Options

	// Pending work, front first. Concatenations push their operands onto the
	// front, so the queue is processed in document order.
	queue  *slicesx.Queue[item]
	column int
	out    writer
}

// Render lays out doc and returns the resulting text.
//
// Layout is total: every document renders, and rendering has no side effects,
// so Render may be called concurrently.
func Render(doc Doc, options Options) string {
	l := &layout{
		Options: options.WithDefaults(),
		queue:   slicesx.NewQueue[item](64),
	}
	// The outermost level is treated as always broken.
	l.queue.PushFront(item{indent: 0, mode: modeBreak, doc: doc})
	l.run()
	return l.out.String()
}

func (l *layout) run() {
	for {
		it, ok := l.queue.PopFront()
		if !ok {
			return
		}

		switch d := it.doc.(type) {
		case nilDoc, forceBreak:
			// Forced breaks have no output of their own; their effect was
			// recorded on every enclosing node at construction time.

		case text:
			l.write(string(d))

		case line:
			if it.mode == modeFlat {
				l.write(" ")
			} else {
				l.newline(it.indent)
			}

		case breakDoc:
			if it.mode == modeFlat {
				l.write(d.flat)
			} else {
				l.write(d.broken)
				l.newline(it.indent)
			}

		case concat:
			l.queue.PushFront(
				item{indent: it.indent, mode: it.mode, doc: d.left},
				item{indent: it.indent, mode: it.mode, doc: d.right},
			)

		case nest:
			l.queue.PushFront(item{indent: it.indent + d.delta, mode: it.mode, doc: d.inner})

		case group:
			inner := item{indent: it.indent, mode: it.mode, doc: d.inner}
			if it.mode == modeBreak {
				inner.mode = modeFlat
				if d.force || !l.fits(inner) {
					inner.mode = modeBreak
				}
			}
			l.queue.PushFront(inner)

		default:
			panic(fmt.Sprintf("dom: unexpected document type %T", d))
		}
	}
}

func (l *layout) write(s string) {
	l.out.text(s)
	l.column += stringWidth(s)
}

func (l *layout) newline(indent int) {
	l.out.newline(indent)
	l.column = indent
}

// fits reports whether candidate, laid out flat, fits on the current line
// together with whatever follows it up to the next newline.
//
// Looking past the end of the candidate matters: a group that fits on its own
// may still need to break because of the text that immediately follows it,
// such as the closing delimiter of an enclosing construct.
func (l *layout) fits(candidate item) bool {
	f := fitter{
		remaining: l.MaxWidth - l.column,
		stack:     []item{candidate},
	}
	if done, ok := f.drain(); done {
		return ok
	}
	for it := range l.queue.Values() {
		f.stack = append(f.stack, it)
		if done, ok := f.drain(); done {
			return ok
		}
	}
	// Reached the end of the document.
	return true
}

// fitter simulates rendering for [layout.fits].
type fitter struct {
	remaining int
	stack     []item
}

// drain simulates everything on the stack. Returns done = true if a decision
// was reached, in which case fits holds the decision.
func (f *fitter) drain() (done, fits bool) {
	for len(f.stack) > 0 {
		if f.remaining < 0 {
			return true, false
		}

		it := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		switch d := it.doc.(type) {
		case nilDoc:

		case forceBreak:
			if it.mode == modeFlat {
				return true, false
			}

		case text:
			f.remaining -= stringWidth(string(d))

		case line:
			if it.mode == modeBreak {
				return true, true
			}
			f.remaining--

		case breakDoc:
			if it.mode == modeBreak {
				f.remaining -= stringWidth(d.broken)
				return true, f.remaining >= 0
			}
			f.remaining -= stringWidth(d.flat)

		case concat:
			f.stack = append(f.stack,
				item{indent: it.indent, mode: it.mode, doc: d.right},
				item{indent: it.indent, mode: it.mode, doc: d.left},
			)

		case nest:
			f.stack = append(f.stack, item{indent: it.indent + d.delta, mode: it.mode, doc: d.inner})

		case group:
			// Groups that follow the candidate have not been decided yet.
			// Optimistically assume they will be flat, unless they are forced
			// to break.
			m := modeFlat
			if it.mode == modeBreak && d.force {
				m = modeBreak
			}
			f.stack = append(f.stack, item{indent: it.indent, mode: m, doc: d.inner})

		default:
			panic(fmt.Sprintf("dom: unexpected document type %T", d))
		}
	}
	return f.remaining < 0, false
}

// stringWidth returns the number of user-perceived characters in text.
func stringWidth(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
