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

import "fmt"

// BinOp is a binary operator.
type BinOp int8

const (
	And BinOp = iota
	Or
	LtInt
	LtEqInt
	LtFloat
	LtEqFloat
	Eq
	NotEq
	GtEqInt
	GtInt
	GtEqFloat
	GtFloat
	AddInt
	AddFloat
	SubInt
	SubFloat
	MultInt
	MultFloat
	DivInt
	DivFloat
	ModuloInt

	// The number of distinct operators.
	BinOpCount int = iota
)

var binOpTokens = [...]string{
	And:       "&&",
	Or:        "||",
	LtInt:     "<",
	LtEqInt:   "<=",
	LtFloat:   "<.",
	LtEqFloat: "<=.",
	Eq:        "==",
	NotEq:     "!=",
	GtEqInt:   ">=",
	GtInt:     ">",
	GtEqFloat: ">=.",
	GtFloat:   ">.",
	AddInt:    "+",
	AddFloat:  "+.",
	SubInt:    "-",
	SubFloat:  "-.",
	MultInt:   "*",
	MultFloat: "*.",
	DivInt:    "/",
	DivFloat:  "/.",
	ModuloInt: "%",
}

var binOpsByToken = func() map[string]BinOp {
	m := make(map[string]BinOp, BinOpCount)
	for op, tok := range binOpTokens {
		m[tok] = BinOp(op)
	}
	return m
}()

// LookupBinOp returns the operator spelled tok, if there is one.
func LookupBinOp(tok string) (BinOp, bool) {
	op, ok := binOpsByToken[tok]
	return op, ok
}

// String implements [fmt.Stringer]. It returns the operator's token.
func (op BinOp) String() string {
	if op < 0 || int(op) >= len(binOpTokens) {
		return fmt.Sprintf("BinOp(%d)", int(op))
	}
	return binOpTokens[op]
}

// Precedence returns how tightly the operator binds; higher binds tighter.
// All binary operators are left associative.
//
// The pipe operator, which is not a BinOp, has precedence [PipePrecedence].
func (op BinOp) Precedence() int {
	switch op {
	case Or:
		return 1
	case And:
		return 2
	case Eq, NotEq:
		return 3
	case LtInt, LtEqInt, LtFloat, LtEqFloat, GtEqInt, GtInt, GtEqFloat, GtFloat:
		return 4
	case AddInt, AddFloat, SubInt, SubFloat:
		return 6
	case MultInt, MultFloat, DivInt, DivFloat, ModuloInt:
		return 7
	default:
		return 0
	}
}

// PipePrecedence is the precedence of the |> operator.
const PipePrecedence = 5

// IsGuard returns whether op may appear in a clause guard.
func (op BinOp) IsGuard() bool {
	return op.Precedence() >= 1 && op.Precedence() <= 4
}
