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

// Package dom is a document algebra and layout engine for source formatting.
//
// A [Doc] describes text that may or may not need to wrap: literal text,
// optional line breaks, indentation changes and groups. Documents are built
// bottom-up by composition and never mutated. [Render] is the only place
// where a document becomes concrete text: it decides, for a given maximum
// width, which groups are laid out flat and which are broken.
//
// The algebra follows Wadler's "A prettier printer", with two additions that
// source formatters need: [Break], a line break with distinct text for each
// mode (used for trailing commas), and forced breaks, which make every
// enclosing group break regardless of width.
package dom
