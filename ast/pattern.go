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

// Pattern is a pattern in a let binding or case clause.
//
//sumtype:decl
type Pattern interface {
	Loc() Location
	isPattern()
}

// PatternInt matches an integer.
type PatternInt struct {
	Location
	Value int64
}

// PatternFloat matches a floating point number.
type PatternFloat struct {
	Location
	Value float64
}

// PatternString matches a string. Value is the text between the quotes,
// exactly as written.
type PatternString struct {
	Location
	Value string
}

// PatternVar binds the matched value to Name.
type PatternVar struct {
	Location
	Name string
}

// PatternLet matches Pattern and also binds the whole value to Name.
//
//	pattern as name
type PatternLet struct {
	Location
	Name    string
	Pattern Pattern
}

// PatternDiscard matches anything and binds nothing. Name starts with an
// underscore.
type PatternDiscard struct {
	Location
	Name string
}

// PatternNil matches the empty list.
type PatternNil struct {
	Location
}

// PatternCons matches a non-empty list.
type PatternCons struct {
	Location
	Head, Tail Pattern
}

// PatternConstructor matches a record constructor.
type PatternConstructor struct {
	Location
	// Empty if the constructor is unqualified.
	Module string
	Name   string
	Args   []CallArg[Pattern]
}

// PatternTuple matches a tuple.
type PatternTuple struct {
	Location
	Elems []Pattern
}

func (*PatternInt) isPattern()         {}
func (*PatternFloat) isPattern()       {}
func (*PatternString) isPattern()      {}
func (*PatternVar) isPattern()         {}
func (*PatternLet) isPattern()         {}
func (*PatternDiscard) isPattern()     {}
func (*PatternNil) isPattern()         {}
func (*PatternCons) isPattern()        {}
func (*PatternConstructor) isPattern() {}
func (*PatternTuple) isPattern()       {}
