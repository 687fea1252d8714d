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

// Package gleam formats gleam source code.
//
// Formatting a file has three steps:
//  1. Parsing the source into a syntax tree.
//     Also see: parser.Parse
//  2. Rendering the syntax tree into a document describing where lines may
//     break and how deeply they indent.
//     Also see: printer.PrintModule
//  3. Laying out the document at a maximum line width.
//     Also see: dom.Render
//
// For a single file already in memory, [Format] does all of this. A
// [Formatter] does the same for many files, locating them with a [Resolver]
// and formatting them in parallel.
//
// # Resolvers
//
// A Resolver is how the formatter locates the files to format. It may answer
// a query with source code, which is parsed and formatted, or with an already
// parsed syntax tree, which is only formatted.
//
// # Formatter
//
// A minimal Formatter, which loads files from the file system relative to the
// current working directory, can be had with the following snippet:
//
//	formatter := gleam.Formatter{
//	    Resolver: &gleam.SourceResolver{},
//	}
//
// This Formatter uses default parallelism, equal to the number of CPU cores
// detected, formats at a width of 80 columns with two-space indentation, and
// fails each file at its first syntax error.
package gleam
