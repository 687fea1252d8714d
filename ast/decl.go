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

// Module is a parsed source file: an ordered sequence of declarations.
type Module struct {
	// The name of the module, if known. Not rendered.
	Name string

	Decls []Decl
}

// Decl is a top-level declaration.
//
//sumtype:decl
type Decl interface {
	Loc() Location
	isDecl()
}

// DeclFn is a function definition.
//
//	pub fn name(args) -> Return { body }
type DeclFn struct {
	Location
	Public bool
	Name   string
	Args   []Arg
	// Nil if the return type is not annotated.
	Return Type
	Body   Expr
}

// DeclTypeAlias is a type alias.
//
//	pub type Alias(a) = Resolved
type DeclTypeAlias struct {
	Location
	Public   bool
	Alias    string
	Args     []string
	Resolved Type
}

// DeclCustomType is a custom (sum) type with named constructors.
//
//	pub type Name(a) { Constructors }
type DeclCustomType struct {
	Location
	Public       bool
	Name         string
	Args         []string
	Constructors []RecordConstructor
}

// RecordConstructor is one constructor of a [DeclCustomType].
type RecordConstructor struct {
	Location
	Name string
	Args []RecordConstructorArg
}

// RecordConstructorArg is a possibly labelled field of a [RecordConstructor].
type RecordConstructorArg struct {
	Location
	Label string
	Type  Type
}

// DeclExternalFn declares a function implemented in the host platform.
//
//	pub external fn name(args) -> Return = "module" "function"
type DeclExternalFn struct {
	Location
	Public   bool
	Name     string
	Args     []ExternalFnArg
	Return   Type
	Module   string
	Function string
}

// ExternalFnArg is a possibly labelled parameter of a [DeclExternalFn].
type ExternalFnArg struct {
	Location
	Label string
	Type  Type
}

// DeclExternalType declares a type implemented in the host platform.
//
//	pub external type Name(a)
type DeclExternalType struct {
	Location
	Public bool
	Name   string
	Args   []string
}

// DeclImport imports another module.
//
//	import path/to/module.{unqualified} as alias
type DeclImport struct {
	Location
	// The segments of the module path.
	Module      []string
	Unqualified []UnqualifiedImport
	// Empty if the import is not aliased.
	As string
}

// UnqualifiedImport is a name imported into scope by a [DeclImport].
type UnqualifiedImport struct {
	Location
	Name string
	// Empty if the name is not aliased.
	As string
}

// Arg is a parameter of a function definition or function literal.
type Arg struct {
	Location
	// Empty if the parameter is unlabelled.
	Label string
	// The name of the parameter. Discarded parameters have names starting
	// with an underscore, such as "_" or "_unused".
	Name string
	// Nil if the parameter is not annotated.
	Annotation Type
}

// IsDiscard returns whether this parameter's value is discarded.
func (a Arg) IsDiscard() bool {
	return len(a.Name) > 0 && a.Name[0] == '_'
}

// CallArg is a possibly labelled argument in a call or constructor pattern.
type CallArg[T any] struct {
	Location
	// Empty if the argument is unlabelled.
	Label string
	Value T
}

func (*DeclFn) isDecl()           {}
func (*DeclTypeAlias) isDecl()    {}
func (*DeclCustomType) isDecl()   {}
func (*DeclExternalFn) isDecl()   {}
func (*DeclExternalType) isDecl() {}
func (*DeclImport) isDecl()       {}
