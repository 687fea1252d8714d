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

package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ian-GL/gleam/reporter"
)

func TestLexer(t *testing.T) {
	t.Parallel()

	var warnings []reporter.ErrorWithPos
	handler := reporter.NewHandler(reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		warnings = append(warnings, err)
	}))
	l := newTestLexer(t, strings.NewReader(
		"// comment\n"+
			"import gleam/io\n"+
			`pub fn f(x) { x.0.1 +. 1.5e3 |> g("a\"b") }`+"\n",
	), handler)
	require.NoError(t, l.lex())

	expected := []struct {
		kind      tokenKind
		text      string
		line, col int
	}{
		{kind: tokKeyword, text: "import", line: 2, col: 1},
		{kind: tokName, text: "gleam", line: 2, col: 8},
		{kind: tokPunct, text: "/", line: 2, col: 13},
		{kind: tokName, text: "io", line: 2, col: 14},
		{kind: tokKeyword, text: "pub", line: 3, col: 1},
		{kind: tokKeyword, text: "fn", line: 3, col: 5},
		{kind: tokName, text: "f", line: 3, col: 8},
		{kind: tokPunct, text: "(", line: 3, col: 9},
		{kind: tokName, text: "x", line: 3, col: 10},
		{kind: tokPunct, text: ")", line: 3, col: 11},
		{kind: tokPunct, text: "{", line: 3, col: 13},
		{kind: tokName, text: "x", line: 3, col: 15},
		{kind: tokPunct, text: ".", line: 3, col: 16},
		{kind: tokInt, text: "0", line: 3, col: 17},
		{kind: tokPunct, text: ".", line: 3, col: 18},
		{kind: tokInt, text: "1", line: 3, col: 19},
		{kind: tokPunct, text: "+.", line: 3, col: 21},
		{kind: tokFloat, text: "1.5e3", line: 3, col: 24},
		{kind: tokPunct, text: "|>", line: 3, col: 30},
		{kind: tokName, text: "g", line: 3, col: 33},
		{kind: tokPunct, text: "(", line: 3, col: 34},
		{kind: tokString, text: `a\"b`, line: 3, col: 35},
		{kind: tokPunct, text: ")", line: 3, col: 41},
		{kind: tokPunct, text: "}", line: 3, col: 43},
		{kind: tokEOF, text: "", line: 4, col: 1},
	}
	require.Len(t, l.tokens, len(expected))
	for i, exp := range expected {
		tok := l.tokens[i]
		pos := l.info.SourcePos(tok.start)
		assert.Equal(t, exp.kind, tok.kind, "token %d", i)
		assert.Equal(t, exp.text, tok.text, "token %d", i)
		assert.Equal(t, exp.line, pos.Line, "token %d line", i)
		assert.Equal(t, exp.col, pos.Col, "token %d column", i)
	}

	require.Len(t, warnings, 1)
	assert.Equal(t, "test.gleam:1:1: comment is not preserved by formatting", warnings[0].Error())
}

func TestLexerIdentifiers(t *testing.T) {
	t.Parallel()

	l := newTestLexer(t, strings.NewReader("_ _unused name Name2 case casex"), reporter.NewHandler(nil))
	require.NoError(t, l.lex())

	kinds := make([]tokenKind, 0, len(l.tokens))
	for _, tok := range l.tokens {
		kinds = append(kinds, tok.kind)
	}
	assert.Equal(t, []tokenKind{
		tokDiscardName, tokDiscardName, tokName, tokUpName, tokKeyword, tokName, tokEOF,
	}, kinds)
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		str    string
		errMsg string
	}{
		{str: `"foobar`, errMsg: "test.gleam:1:1: unterminated string literal"},
		{str: `x "foo\qbar"`, errMsg: `test.gleam:1:7: invalid escape sequence \q`},
		{str: `a # b`, errMsg: `test.gleam:1:3: unexpected character '#'`},
		{str: "a \xff", errMsg: "invalid UTF8 at offset 2: ff"},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			t.Parallel()
			l := newTestLexer(t, strings.NewReader(tc.str), reporter.NewHandler(nil))
			err := l.lex()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLexerContinuesAfterErrors(t *testing.T) {
	t.Parallel()

	var errs []reporter.ErrorWithPos
	handler := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		errs = append(errs, err)
		return nil
	}, nil))
	l := newTestLexer(t, strings.NewReader("a # b @ c"), handler)
	require.NoError(t, l.lex())

	assert.Len(t, errs, 2)
	var names []string
	for _, tok := range l.tokens {
		if tok.kind == tokName {
			names = append(names, tok.text)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.ErrorIs(t, handler.Error(), reporter.ErrInvalidSource)
}

func newTestLexer(t *testing.T, in io.Reader, h *reporter.Handler) *lexer {
	l, err := newLexer(in, "test.gleam", h)
	require.NoError(t, err)
	return l
}
