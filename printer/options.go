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

package printer

import "github.com/Ian-GL/gleam/dom"

// Options controls the formatting behavior of the printer.
type Options struct {
	// Indent is the number of columns per level of indentation.
	// Defaults to 2 if zero.
	Indent int

	// MaxWidth is the maximum line width before the printer attempts
	// to break lines. Defaults to 80 if zero; a negative value means no limit.
	MaxWidth int
}

// withDefaults returns a copy of opts with default values applied.
func (opts Options) withDefaults() Options {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}
	if opts.MaxWidth == 0 {
		opts.MaxWidth = dom.DefaultWidth
	}
	return opts
}

// domOptions converts printer options to dom.Options.
func (opts Options) domOptions() dom.Options {
	return dom.Options{
		MaxWidth: max(0, opts.MaxWidth),
	}
}
