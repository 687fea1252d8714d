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

package printer

import (
	"strconv"
	"strings"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/dom"
)

// wrapArgs renders a parenthesized, comma-separated list.
//
// Flat, the list is "(a, b)". Broken, every item goes on its own indented
// line and the last one gets a trailing comma:
//
//	(
//	  a,
//	  b,
//	)
//
// An empty list is always "()".
func (p *printer) wrapArgs(items []dom.Doc) dom.Doc {
	if len(items) == 0 {
		return dom.Text("()")
	}
	return dom.Group(dom.Concat(
		p.indent(dom.Concat(
			dom.Break("(", "("),
			dom.Join(dom.Break(", ", ","), items),
		)),
		dom.Break("", ","),
		dom.Text(")"),
	))
}

// wrapOptionalArgs is like wrapArgs, but renders nothing for an empty list.
// Type parameters and constructor arguments are written this way.
func (p *printer) wrapOptionalArgs(items []dom.Doc) dom.Doc {
	if len(items) == 0 {
		return dom.Nil()
	}
	return p.wrapArgs(items)
}

func (p *printer) printArgs(args []ast.Arg) []dom.Doc {
	docs := make([]dom.Doc, len(args))
	for i, arg := range args {
		docs[i] = p.printArg(arg)
	}
	return docs
}

// printArg renders a function parameter, "label name: Type".
func (p *printer) printArg(arg ast.Arg) dom.Doc {
	name := dom.Text(arg.Name)
	if arg.Label != "" {
		name = dom.Concat(dom.Text(arg.Label), dom.Text(" "), name)
	}
	return dom.Concat(name, p.printAnnotation(arg.Annotation))
}

// printAnnotation renders ": Type", or nothing if typ is nil.
func (p *printer) printAnnotation(typ ast.Type) dom.Doc {
	if typ == nil {
		return dom.Nil()
	}
	return dom.Concat(dom.Text(": "), p.printType(typ))
}

// printReturn renders " -> Type", or nothing if typ is nil.
func (p *printer) printReturn(typ ast.Type) dom.Doc {
	if typ == nil {
		return dom.Nil()
	}
	return dom.Concat(dom.Text(" -> "), p.printType(typ))
}

// printLabelled renders a possibly labelled argument, "label: value".
func printLabelled(label string, value dom.Doc) dom.Doc {
	if label == "" {
		return value
	}
	return dom.Concat(dom.Text(label), dom.Text(": "), value)
}

func printNames(names []string) []dom.Doc {
	docs := make([]dom.Doc, len(names))
	for i, name := range names {
		docs[i] = dom.Text(name)
	}
	return docs
}

// printQualified renders "module.name", or "name" if module is empty.
func printQualified(module, name string) dom.Doc {
	if module == "" {
		return dom.Text(name)
	}
	return dom.Text(module + "." + name)
}

func printPublic(public bool) dom.Doc {
	if public {
		return dom.Text("pub ")
	}
	return dom.Nil()
}

// operator renders a binary operator together with its surrounding spaces.
type operator ast.BinOp

func (op operator) Document() dom.Doc {
	return dom.Text(" " + ast.BinOp(op).String() + " ")
}

// printBinOp renders "left op right".
//
// Operands are never parenthesized. The parser only builds trees that
// respect operator precedence, and those print back unchanged.
func printBinOp(op ast.BinOp, left, right dom.Doc) dom.Doc {
	return dom.Concat(left, operator(op).Document(), right)
}

func printInt(v int64) dom.Doc {
	return dom.Text(strconv.FormatInt(v, 10))
}

// printFloat renders v in decimal notation, always with a decimal point so
// that it reads back as a float.
func printFloat(v float64) dom.Doc {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return dom.Text(s)
}

// printString renders a string literal. Values are kept exactly as written
// in the source, escapes included.
func printString(v string) dom.Doc {
	return dom.Surround(`"`, dom.Text(v), `"`)
}
