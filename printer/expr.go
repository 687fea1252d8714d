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
	"strconv"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/dom"
)

func (p *printer) printExpr(expr ast.Expr) dom.Doc {
	switch expr := expr.(type) {
	case *ast.ExprInt:
		return printInt(expr.Value)
	case *ast.ExprFloat:
		return printFloat(expr.Value)
	case *ast.ExprString:
		return printString(expr.Value)
	case *ast.ExprVar:
		return dom.Text(expr.Name)
	case *ast.ExprNil:
		return dom.Text("[]")
	case *ast.ExprTodo:
		return dom.Text("todo")

	case *ast.ExprFn:
		return p.printFnLiteral(expr)

	case *ast.ExprCall:
		args := make([]dom.Doc, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = printLabelled(arg.Label, p.printExpr(arg.Value))
		}
		return dom.Concat(p.printExpr(expr.Fun), p.wrapArgs(args))

	case *ast.ExprBinOp:
		return printBinOp(expr.Op, p.printExpr(expr.Left), p.printExpr(expr.Right))

	case *ast.ExprCons:
		return dom.Concat(
			dom.Text("["),
			p.printExpr(expr.Head),
			dom.Text("|"),
			p.printExpr(expr.Tail),
			dom.Text("]"),
		)

	case *ast.ExprTuple:
		return dom.Concat(dom.Text("tuple"), p.wrapArgs(p.printExprs(expr.Elems)))

	case *ast.ExprTupleIndex:
		return dom.Concat(p.printExpr(expr.Tuple), dom.Text("."+strconv.Itoa(expr.Index)))

	case *ast.ExprFieldAccess:
		return dom.Concat(p.printExpr(expr.Container), dom.Text("."+expr.Label))

	case *ast.ExprLet:
		return dom.Concat(
			dom.Text("let "),
			p.printPattern(expr.Pattern),
			dom.Text(" = "),
			p.printExpr(expr.Value),
			dom.HardLine(),
			p.printExpr(expr.Then),
		)

	case *ast.ExprCase:
		return p.printCase(expr)

	case *ast.ExprPipe:
		// Pipelines are never laid out on a single line.
		return dom.Concat(
			p.printExpr(expr.Left),
			dom.HardLine(),
			dom.Text("|> "),
			p.printExpr(expr.Right),
		)

	case *ast.ExprSeq:
		return dom.Concat(p.printExpr(expr.First), dom.HardLine(), p.printExpr(expr.Then))

	default:
		panic(fmt.Sprintf("printer: unexpected expression type %T", expr))
	}
}

func (p *printer) printExprs(exprs []ast.Expr) []dom.Doc {
	docs := make([]dom.Doc, len(exprs))
	for i, expr := range exprs {
		docs[i] = p.printExpr(expr)
	}
	return docs
}

// printFnLiteral renders an anonymous function. Unlike a function
// definition, a short body stays on the same line as the signature:
//
//	fn(x) { x + 1 }
func (p *printer) printFnLiteral(expr *ast.ExprFn) dom.Doc {
	return dom.Group(dom.Concat(
		dom.Text("fn"),
		p.wrapArgs(p.printArgs(expr.Args)),
		p.printReturn(expr.Return),
		dom.Text(" {"),
		p.indent(dom.Concat(dom.Line(), p.printExpr(expr.Body))),
		dom.Line(),
		dom.Text("}"),
	))
}

func (p *printer) printCase(expr *ast.ExprCase) dom.Doc {
	clauses := make([]dom.Doc, len(expr.Clauses))
	for i, clause := range expr.Clauses {
		clauses[i] = dom.Group(p.indent(dom.Concat(dom.HardLine(), p.printClause(clause))))
	}
	return dom.Concat(
		dom.Text("case "),
		dom.Join(dom.Text(", "), p.printExprs(expr.Subjects)),
		dom.Text(" {"),
		dom.Concat(clauses...),
		dom.HardLine(),
		dom.Text("}"),
	)
}

// printClause renders "p1, p2 | q1, q2 if guard -> body".
func (p *printer) printClause(clause ast.Clause) dom.Doc {
	doc := dom.Join(dom.Text(", "), p.printPatterns(clause.Patterns))
	for _, alt := range clause.Alternatives {
		doc = dom.Concat(doc, dom.Text(" | "), dom.Join(dom.Text(", "), p.printPatterns(alt)))
	}
	if clause.Guard != nil {
		doc = dom.Concat(doc, dom.Text(" if "), p.printGuard(clause.Guard))
	}
	return dom.Concat(doc, dom.Text(" -> "), p.printExpr(clause.Then))
}

func (p *printer) printGuard(guard ast.Guard) dom.Doc {
	switch guard := guard.(type) {
	case *ast.GuardVar:
		return dom.Text(guard.Name)
	case *ast.GuardInt:
		return printInt(guard.Value)
	case *ast.GuardFloat:
		return printFloat(guard.Value)
	case *ast.GuardString:
		return printString(guard.Value)
	case *ast.GuardBinOp:
		return printBinOp(guard.Op, p.printGuard(guard.Left), p.printGuard(guard.Right))
	default:
		panic(fmt.Sprintf("printer: unexpected guard type %T", guard))
	}
}
