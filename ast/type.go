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

// Type is a type annotation.
//
//sumtype:decl
type Type interface {
	Loc() Location
	isType()
}

// TypeConstructor is a named, possibly generic, type.
//
//	module.Name(args)
type TypeConstructor struct {
	Location
	// Empty if the type is unqualified.
	Module string
	Name   string
	Args   []Type
}

// TypeFn is a function type.
//
//	fn(args) -> Return
type TypeFn struct {
	Location
	Args   []Type
	Return Type
}

// TypeVar is a type variable.
type TypeVar struct {
	Location
	Name string
}

// TypeTuple is a tuple type.
//
//	tuple(elems)
type TypeTuple struct {
	Location
	Elems []Type
}

func (*TypeConstructor) isType() {}
func (*TypeFn) isType()          {}
func (*TypeVar) isType()         {}
func (*TypeTuple) isType()       {}
