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

package ast

// Expr is an expression.
//
//sumtype:decl
type Expr interface {
	Loc() Location
	isExpr()
}

// ExprInt is an integer literal.
type ExprInt struct {
	Location
	Value int64
}

// ExprFloat is a floating point literal.
type ExprFloat struct {
	Location
	Value float64
}

// ExprString is a string literal. Value is the text between the quotes,
// escapes included, exactly as written.
type ExprString struct {
	Location
	Value string
}

// ExprVar is a reference to a variable or constructor.
type ExprVar struct {
	Location
	Name string
}

// ExprFn is a function literal.
//
//	fn(args) -> Return { body }
type ExprFn struct {
	Location
	Args []Arg
	// Nil if the return type is not annotated.
	Return Type
	Body   Expr
}

// ExprCall is a function call.
type ExprCall struct {
	Location
	Fun  Expr
	Args []CallArg[Expr]
}

// ExprBinOp is a binary operation.
type ExprBinOp struct {
	Location
	Op          BinOp
	Left, Right Expr
}

// ExprNil is the empty list.
type ExprNil struct {
	Location
}

// ExprCons prepends Head to the list Tail.
type ExprCons struct {
	Location
	Head, Tail Expr
}

// ExprTuple is a tuple literal.
//
//	tuple(elems)
type ExprTuple struct {
	Location
	Elems []Expr
}

// ExprTupleIndex accesses an element of a tuple by position.
type ExprTupleIndex struct {
	Location
	Tuple Expr
	Index int
}

// ExprFieldAccess accesses a labelled field, or a member of a module.
type ExprFieldAccess struct {
	Location
	Container Expr
	Label     string
}

// ExprLet binds Value to Pattern for the rest of the block, Then.
type ExprLet struct {
	Location
	Pattern Pattern
	Value   Expr
	Then    Expr
}

// ExprCase matches Subjects against each of Clauses in turn.
type ExprCase struct {
	Location
	Subjects []Expr
	Clauses  []Clause
}

// Clause is one arm of an [ExprCase].
type Clause struct {
	Location
	// One pattern per subject.
	Patterns []Pattern
	// Alternative pattern lists, any of which may match instead of Patterns.
	Alternatives [][]Pattern
	// Nil if the clause is unguarded.
	Guard Guard
	Then  Expr
}

// ExprPipe passes Left as the first argument to Right.
type ExprPipe struct {
	Location
	Left, Right Expr
}

// ExprSeq evaluates First and then Then.
type ExprSeq struct {
	Location
	First, Then Expr
}

// ExprTodo is a placeholder for unfinished code.
type ExprTodo struct {
	Location
}

func (*ExprInt) isExpr()         {}
func (*ExprFloat) isExpr()       {}
func (*ExprString) isExpr()      {}
func (*ExprVar) isExpr()         {}
func (*ExprFn) isExpr()          {}
func (*ExprCall) isExpr()        {}
func (*ExprBinOp) isExpr()       {}
func (*ExprNil) isExpr()         {}
func (*ExprCons) isExpr()        {}
func (*ExprTuple) isExpr()       {}
func (*ExprTupleIndex) isExpr()  {}
func (*ExprFieldAccess) isExpr() {}
func (*ExprLet) isExpr()         {}
func (*ExprCase) isExpr()        {}
func (*ExprPipe) isExpr()        {}
func (*ExprSeq) isExpr()         {}
func (*ExprTodo) isExpr()        {}
