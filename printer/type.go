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

func (p *printer) printType(typ ast.Type) dom.Doc {
	switch typ := typ.(type) {
	case *ast.TypeVar:
		return dom.Text(typ.Name)

	case *ast.TypeConstructor:
		args := make([]dom.Doc, len(typ.Args))
		for i, arg := range typ.Args {
			args[i] = p.printType(arg)
		}
		return dom.Concat(printQualified(typ.Module, typ.Name), p.wrapOptionalArgs(args))

	case *ast.TypeTuple:
		elems := make([]dom.Doc, len(typ.Elems))
		for i, elem := range typ.Elems {
			elems[i] = p.printType(elem)
		}
		return dom.Concat(dom.Text("tuple"), p.wrapArgs(elems))

	case *ast.TypeFn:
		args := make([]dom.Doc, len(typ.Args))
		for i, arg := range typ.Args {
			args[i] = p.printType(arg)
		}
		// If the signature is too long, the return type moves to the
		// next line.
		return dom.Group(dom.Concat(
			dom.Text("fn"),
			p.wrapArgs(args),
			p.indent(dom.Concat(dom.Break(" -> ", " ->"), p.printType(typ.Return))),
		))

	default:
		panic(fmt.Sprintf("printer: unexpected type %T", typ))
	}
}
