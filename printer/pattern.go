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

import (
	"fmt"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/dom"
)

func (p *printer) printPattern(pattern ast.Pattern) dom.Doc {
	switch pattern := pattern.(type) {
	case *ast.PatternInt:
		return printInt(pattern.Value)
	case *ast.PatternFloat:
		return printFloat(pattern.Value)
	case *ast.PatternString:
		return printString(pattern.Value)
	case *ast.PatternVar:
		return dom.Text(pattern.Name)
	case *ast.PatternDiscard:
		if pattern.Name == "" {
			return dom.Text("_")
		}
		return dom.Text(pattern.Name)
	case *ast.PatternNil:
		return dom.Text("[]")

	case *ast.PatternLet:
		return dom.Concat(p.printPattern(pattern.Pattern), dom.Text(" as "+pattern.Name))

	case *ast.PatternCons:
		return dom.Concat(
			dom.Text("["),
			p.printPattern(pattern.Head),
			dom.Text("|"),
			p.printPattern(pattern.Tail),
			dom.Text("]"),
		)

	case *ast.PatternConstructor:
		args := make([]dom.Doc, len(pattern.Args))
		for i, arg := range pattern.Args {
			args[i] = printLabelled(arg.Label, p.printPattern(arg.Value))
		}
		return dom.Concat(printQualified(pattern.Module, pattern.Name), p.wrapOptionalArgs(args))

	case *ast.PatternTuple:
		return dom.Concat(dom.Text("tuple"), p.wrapArgs(p.printPatterns(pattern.Elems)))

	default:
		panic(fmt.Sprintf("printer: unexpected pattern type %T", pattern))
	}
}

func (p *printer) printPatterns(patterns []ast.Pattern) []dom.Doc {
	docs := make([]dom.Doc, len(patterns))
	for i, pattern := range patterns {
		docs[i] = p.printPattern(pattern)
	}
	return docs
}
