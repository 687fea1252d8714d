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

package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/internal/corpora"
	"github.com/Ian-GL/gleam/parser"
	"github.com/Ian-GL/gleam/printer"
	"github.com/Ian-GL/gleam/reporter"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "GLEAM_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "txt"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var testCase struct {
				Source string `yaml:"source"`
				Width  int    `yaml:"width"`
				Indent int    `yaml:"indent"`
			}
			if err := yaml.Unmarshal([]byte(text), &testCase); err != nil {
				t.Fatalf("failed to parse test case %q: %v", path, err)
			}
			if testCase.Source == "" {
				t.Fatalf("test case %q missing 'source' field", path)
			}

			options := printer.Options{MaxWidth: testCase.Width, Indent: testCase.Indent}
			output := printer.PrintModule(options, parse(t, path, testCase.Source))

			for i, line := range strings.Split(output, "\n") {
				assert.Equal(t, strings.TrimRight(line, " \t"), line, "line %d has trailing whitespace", i+1)
			}

			// Formatting formatted code must change nothing.
			again := printer.PrintModule(options, parse(t, path, output))
			if again != output {
				t.Errorf("formatting is not idempotent:\n%s", corpora.Diff(output, again))
			}
			return []string{output}
		},
	}
	corpus.Run(t)
}

func parse(t *testing.T, path, source string) *ast.Module {
	t.Helper()
	module, err := parser.Parse(path, strings.NewReader(source), reporter.NewHandler(nil))
	require.NoError(t, err)
	return module
}

func TestPrintModule(t *testing.T) {
	t.Parallel()

	var (
		x = &ast.ExprVar{Name: "x"}
		y = &ast.ExprVar{Name: "y"}

		importIO = &ast.DeclImport{Module: []string{"gleam", "io"}}
		add      = &ast.DeclFn{
			Public: true,
			Name:   "add",
			Args:   []ast.Arg{{Name: "x"}, {Name: "y"}},
			Body:   &ast.ExprBinOp{Op: ast.AddInt, Left: x, Right: y},
		}
		ref = &ast.DeclExternalType{Name: "Ref"}
	)

	tests := []struct {
		name  string
		decls []ast.Decl
		want  string
	}{
		{
			name: "empty",
			want: "\n",
		},
		{
			name:  "import only",
			decls: []ast.Decl{importIO},
			want:  "import gleam/io\n",
		},
		{
			name:  "function",
			decls: []ast.Decl{add},
			want:  "pub fn add(x, y) {\n  x + y\n}\n",
		},
		{
			name:  "declarations are separated by a blank line",
			decls: []ast.Decl{add, ref},
			want:  "pub fn add(x, y) {\n  x + y\n}\n\nexternal type Ref\n",
		},
		{
			name: "imports are grouped before declarations",
			decls: []ast.Decl{
				importIO,
				ref,
				&ast.DeclImport{Module: []string{"gleam", "list"}, As: "l"},
			},
			want: "import gleam/io\nimport gleam/list as l\n\nexternal type Ref\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := printer.PrintModule(printer.Options{}, &ast.Module{Decls: test.decls})
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPrintExpr(t *testing.T) {
	t.Parallel()

	var (
		a = &ast.ExprVar{Name: "a"}
		b = &ast.ExprVar{Name: "b"}
		c = &ast.ExprVar{Name: "c"}
	)
	long := func(ch string) ast.CallArg[ast.Expr] {
		return ast.CallArg[ast.Expr]{Value: &ast.ExprVar{Name: strings.Repeat(ch, 30)}}
	}

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			name: "pipes always break",
			expr: &ast.ExprPipe{Left: &ast.ExprPipe{Left: a, Right: b}, Right: c},
			want: "a\n|> b\n|> c",
		},
		{
			name: "sequences always break",
			expr: &ast.ExprSeq{First: a, Then: b},
			want: "a\nb",
		},
		{
			name: "long call breaks with trailing comma",
			expr: &ast.ExprCall{Fun: &ast.ExprVar{Name: "f"}, Args: []ast.CallArg[ast.Expr]{long("a"), long("b"), long("c")}},
			want: "f(\n" +
				"  " + strings.Repeat("a", 30) + ",\n" +
				"  " + strings.Repeat("b", 30) + ",\n" +
				"  " + strings.Repeat("c", 30) + ",\n" +
				")",
		},
		{
			name: "short call has no trailing comma",
			expr: &ast.ExprCall{Fun: &ast.ExprVar{Name: "f"}, Args: []ast.CallArg[ast.Expr]{{Value: a}, {Label: "to", Value: b}}},
			want: "f(a, to: b)",
		},
		{
			name: "empty call",
			expr: &ast.ExprCall{Fun: &ast.ExprVar{Name: "f"}},
			want: "f()",
		},
		{
			name: "empty tuple",
			expr: &ast.ExprTuple{},
			want: "tuple()",
		},
		{
			// Operands are printed as they are, without parentheses.
			name: "no parenthesization",
			expr: &ast.ExprBinOp{
				Op:    ast.MultInt,
				Left:  &ast.ExprBinOp{Op: ast.AddInt, Left: a, Right: b},
				Right: c,
			},
			want: "a + b * c",
		},
		{
			name: "float operators",
			expr: &ast.ExprBinOp{Op: ast.LtEqFloat, Left: a, Right: &ast.ExprFloat{Value: 2}},
			want: "a <=. 2.0",
		},
		{
			name: "cons",
			expr: &ast.ExprCons{Head: a, Tail: &ast.ExprCons{Head: b, Tail: &ast.ExprNil{}}},
			want: "[a|[b|[]]]",
		},
		{
			name: "field access and tuple index",
			expr: &ast.ExprTupleIndex{Tuple: &ast.ExprFieldAccess{Container: a, Label: "pair"}, Index: 1},
			want: "a.pair.1",
		},
		{
			name: "fn literal",
			expr: &ast.ExprFn{
				Args:   []ast.Arg{{Name: "n", Annotation: &ast.TypeConstructor{Name: "Int"}}},
				Return: &ast.TypeConstructor{Name: "Int"},
				Body:   &ast.ExprBinOp{Op: ast.ModuloInt, Left: &ast.ExprVar{Name: "n"}, Right: &ast.ExprInt{Value: 2}},
			},
			want: "fn(n: Int) -> Int { n % 2 }",
		},
		{
			name: "string",
			expr: &ast.ExprString{Value: `say \"hi\"`},
			want: `"say \"hi\""`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, printer.PrintExpr(printer.Options{}, test.expr))
		})
	}
}

func TestPrintFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{2.5, "2.5"},
		{0.125, "0.125"},
		{1e21, "1000000000000000000000.0"},
		{1e-7, "0.0000001"},
	}
	for _, test := range tests {
		got := printer.PrintExpr(printer.Options{}, &ast.ExprFloat{Value: test.value})
		assert.Equal(t, test.want, got, "%v", test.value)
	}
}

func TestPrintDecl(t *testing.T) {
	t.Parallel()

	decl := &ast.DeclExternalFn{
		Public:   true,
		Name:     "now",
		Return:   &ast.TypeConstructor{Module: "time", Name: "Instant"},
		Module:   "os",
		Function: "system_time",
	}
	assert.Equal(t,
		"pub external fn now() -> time.Instant =\n  \"os\" \"system_time\"",
		printer.PrintDecl(printer.Options{}, decl),
	)
	assert.Equal(t,
		"pub external fn now() -> time.Instant =\n    \"os\" \"system_time\"",
		printer.PrintDecl(printer.Options{Indent: 4}, decl),
	)
}

func TestUnlimitedWidth(t *testing.T) {
	t.Parallel()

	args := make([]ast.CallArg[ast.Expr], 20)
	for i := range args {
		args[i] = ast.CallArg[ast.Expr]{Value: &ast.ExprVar{Name: "argument"}}
	}
	call := &ast.ExprCall{Fun: &ast.ExprVar{Name: "f"}, Args: args}

	assert.NotContains(t, printer.PrintExpr(printer.Options{MaxWidth: -1}, call), "\n")
	assert.Contains(t, printer.PrintExpr(printer.Options{}, call), "\n")
}

func TestPrintConcurrently(t *testing.T) {
	t.Parallel()

	module := parse(t, "concurrent.gleam", `
		import gleam/io
		pub fn main() { io.println("hi") |> ignore }
	`)
	want := printer.PrintModule(printer.Options{}, module)

	var group errgroup.Group
	results := make([]string, 16)
	for i := range results {
		group.Go(func() error {
			results[i] = printer.PrintModule(printer.Options{}, module)
			return nil
		})
	}
	require.NoError(t, group.Wait())
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
