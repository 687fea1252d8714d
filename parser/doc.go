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

// Package parser turns gleam source code into an AST (abstract syntax tree).
//
// The parser covers the subset of the language that the formatter knows how
// to print. Comments are recognized but not kept in the tree: each one is
// reported to the reporter.Handler as a warning, since formatting the file
// will drop it.
//
// Syntax errors are reported through the handler as well. If the handler's
// reporter returns nil, the parser skips ahead to the next top-level
// declaration and keeps going, so that a single pass finds as many errors
// as possible.
package parser
