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

// Package ast defines the syntax tree of a gleam module.
//
// The tree is immutable once built: the formatter consumes it read-only, and
// every node is owned by the [Module] it was parsed into. There are no cycles.
//
// Each family of nodes ([Decl], [Expr], [Pattern], [Type], [Guard]) is a
// closed set of variants, modelled as a sealed interface. Consumers dispatch
// with a type switch; the interfaces are annotated for go-check-sumtype so
// that a switch missing a variant is reported when the set grows. User code
// should not attempt to implement any of them.
//
// Every node embeds a [Location], the byte range it was parsed from. Nodes
// built by hand may leave it zero; nothing in the formatter depends on it.
package ast
