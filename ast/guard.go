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

// Guard is the condition of a guarded case clause.
//
// Guards are a restricted expression language: variables, constants, and
// comparison or boolean operators.
//
//sumtype:decl
type Guard interface {
	Loc() Location
	isGuard()
}

// GuardVar is a variable bound by the clause's patterns, or in scope.
type GuardVar struct {
	Location
	Name string
}

// GuardInt is an integer constant.
type GuardInt struct {
	Location
	Value int64
}

// GuardFloat is a floating point constant.
type GuardFloat struct {
	Location
	Value float64
}

// GuardString is a string constant, exactly as written between the quotes.
type GuardString struct {
	Location
	Value string
}

// GuardBinOp is a comparison or boolean combination of two guards.
//
// Op is always a comparison, [And] or [Or]; see [BinOp.IsGuard].
type GuardBinOp struct {
	Location
	Op          BinOp
	Left, Right Guard
}

func (*GuardVar) isGuard()    {}
func (*GuardInt) isGuard()    {}
func (*GuardFloat) isGuard()  {}
func (*GuardString) isGuard() {}
func (*GuardBinOp) isGuard()  {}
