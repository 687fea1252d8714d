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

// Package printer renders a gleam syntax tree as canonically formatted
// source text.
//
// The printer never decides where lines break. It describes its intent as a
// [dom.Doc] (what may wrap, what must break, how far to indent) and leaves
// the decisions to [dom.Render]. Formatting is deterministic and idempotent:
// printing the re-parsed output of [PrintModule] reproduces it exactly.
package printer
