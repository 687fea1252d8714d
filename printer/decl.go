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
	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/dom"
)

// printFn renders a function definition. The body always goes on its own
// lines, even when it would fit after the signature.
func (p *printer) printFn(decl *ast.DeclFn) dom.Doc {
	return dom.Concat(
		printPublic(decl.Public),
		dom.Text("fn "),
		dom.Text(decl.Name),
		p.wrapArgs(p.printArgs(decl.Args)),
		p.printReturn(decl.Return),
		dom.Text(" {"),
		p.printBlock(decl.Body),
	)
}

// printBlock renders an indented block body followed by a closing brace on
// a line of its own.
func (p *printer) printBlock(body ast.Expr) dom.Doc {
	return dom.Concat(
		dom.Group(p.indent(dom.Concat(dom.HardLine(), p.printExpr(body)))),
		dom.HardLine(),
		dom.Text("}"),
	)
}

func (p *printer) printTypeAlias(decl *ast.DeclTypeAlias) dom.Doc {
	return dom.Concat(
		printPublic(decl.Public),
		dom.Text("type "),
		dom.Text(decl.Alias),
		p.wrapOptionalArgs(printNames(decl.Args)),
		dom.Text(" ="),
		p.indent(dom.Group(dom.Concat(dom.Line(), p.printType(decl.Resolved)))),
	)
}

func (p *printer) printCustomType(decl *ast.DeclCustomType) dom.Doc {
	ctors := make([]dom.Doc, len(decl.Constructors))
	for i, ctor := range decl.Constructors {
		ctors[i] = dom.Group(p.indent(dom.Concat(dom.HardLine(), p.printConstructor(ctor))))
	}
	return dom.Concat(
		printPublic(decl.Public),
		dom.Text("type "),
		dom.Text(decl.Name),
		p.wrapOptionalArgs(printNames(decl.Args)),
		dom.Text(" {"),
		dom.Concat(ctors...),
		dom.HardLine(),
		dom.Text("}"),
	)
}

func (p *printer) printConstructor(ctor ast.RecordConstructor) dom.Doc {
	args := make([]dom.Doc, len(ctor.Args))
	for i, arg := range ctor.Args {
		args[i] = printLabelled(arg.Label, p.printType(arg.Type))
	}
	return dom.Concat(dom.Text(ctor.Name), p.wrapOptionalArgs(args))
}

// printExternalFn renders an external function. The target module and
// function names go on the next line, indented.
func (p *printer) printExternalFn(decl *ast.DeclExternalFn) dom.Doc {
	args := make([]dom.Doc, len(decl.Args))
	for i, arg := range decl.Args {
		args[i] = printLabelled(arg.Label, p.printType(arg.Type))
	}
	return dom.Concat(
		printPublic(decl.Public),
		dom.Text("external fn "),
		dom.Text(decl.Name),
		p.wrapArgs(args),
		p.printReturn(decl.Return),
		dom.Text(" ="),
		p.indent(dom.Concat(
			dom.HardLine(),
			printString(decl.Module),
			dom.Text(" "),
			printString(decl.Function),
		)),
	)
}

func (p *printer) printExternalType(decl *ast.DeclExternalType) dom.Doc {
	return dom.Concat(
		printPublic(decl.Public),
		dom.Text("external type "),
		dom.Text(decl.Name),
		p.wrapOptionalArgs(printNames(decl.Args)),
	)
}

// printImport renders "import a/b.{x, y as z} as c".
func (p *printer) printImport(decl *ast.DeclImport) dom.Doc {
	path := dom.Text("import ")
	for i, segment := range decl.Module {
		if i > 0 {
			path = dom.Concat(path, dom.Text("/"))
		}
		path = dom.Concat(path, dom.Text(segment))
	}

	unqualified := dom.Nil()
	if len(decl.Unqualified) > 0 {
		names := make([]dom.Doc, len(decl.Unqualified))
		for i, imp := range decl.Unqualified {
			names[i] = dom.Text(imp.Name)
			if imp.As != "" {
				names[i] = dom.Concat(names[i], dom.Text(" as "+imp.As))
			}
		}
		unqualified = dom.Surround(".{", dom.Join(dom.Text(", "), names), "}")
	}

	alias := dom.Nil()
	if decl.As != "" {
		alias = dom.Text(" as " + decl.As)
	}
	return dom.Concat(path, unqualified, alias)
}
