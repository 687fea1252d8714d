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
	"fmt"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/dom"
)

// PrintModule renders a whole module as formatted source text.
//
// The result always ends in exactly one newline. Imports come first, one per
// line, followed by every other declaration separated by a blank line.
func PrintModule(options Options, module *ast.Module) string {
	p := newPrinter(options)
	return dom.Render(p.printModule(module), p.options.domOptions())
}

// PrintDecl renders a single declaration, without a trailing newline.
func PrintDecl(options Options, decl ast.Decl) string {
	p := newPrinter(options)
	return dom.Render(p.printDecl(decl), p.options.domOptions())
}

// PrintExpr renders a single expression as if it started at the beginning of
// a line, without a trailing newline.
func PrintExpr(options Options, expr ast.Expr) string {
	p := newPrinter(options)
	return dom.Render(p.printExpr(expr), p.options.domOptions())
}

// Document returns the document that [PrintModule] would render, for
// debugging with [dom.Dump].
func Document(options Options, module *ast.Module) dom.Doc {
	return newPrinter(options).printModule(module)
}

// printer converts syntax trees into documents. It holds no mutable state.
type printer struct {
	options Options
}

func newPrinter(options Options) *printer {
	return &printer{options: options.withDefaults()}
}

func (p *printer) printModule(module *ast.Module) dom.Doc {
	var imports, decls []dom.Doc
	for _, decl := range module.Decls {
		if imp, ok := decl.(*ast.DeclImport); ok {
			imports = append(imports, p.printImport(imp))
			continue
		}
		decls = append(decls, p.printDecl(decl))
	}

	sep := dom.Nil()
	if len(imports) > 0 && len(decls) > 0 {
		sep = dom.Lines(2)
	}
	return dom.Concat(
		dom.Join(dom.HardLine(), imports),
		sep,
		dom.Join(dom.Lines(2), decls),
		dom.HardLine(),
	)
}

func (p *printer) printDecl(decl ast.Decl) dom.Doc {
	switch decl := decl.(type) {
	case *ast.DeclFn:
		return p.printFn(decl)
	case *ast.DeclTypeAlias:
		return p.printTypeAlias(decl)
	case *ast.DeclCustomType:
		return p.printCustomType(decl)
	case *ast.DeclExternalFn:
		return p.printExternalFn(decl)
	case *ast.DeclExternalType:
		return p.printExternalType(decl)
	case *ast.DeclImport:
		return p.printImport(decl)
	default:
		panic(fmt.Sprintf("printer: unexpected declaration type %T", decl))
	}
}

// indent nests d by one level.
func (p *printer) indent(d dom.Doc) dom.Doc {
	return dom.Nest(p.options.Indent, d)
}
