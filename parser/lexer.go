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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/reporter"
)

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokName
	tokUpName
	tokDiscardName
	tokInt
	tokFloat
	tokString
	tokKeyword
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokName:
		return "name"
	case tokUpName:
		return "upper case name"
	case tokDiscardName:
		return "discard name"
	case tokInt:
		return "int"
	case tokFloat:
		return "float"
	case tokString:
		return "string"
	case tokKeyword:
		return "keyword"
	case tokPunct:
		return "punctuation"
	default:
		return fmt.Sprintf("tokenKind(%d)", k)
	}
}

// token is a single lexical element. For strings, text holds the raw
// contents between the quotes.
type token struct {
	kind       tokenKind
	text       string
	start, end int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return t.kind.String()
	case tokString:
		return fmt.Sprintf("%q", `"`+t.text+`"`)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

var keywords = map[string]struct{}{
	"as":       {},
	"case":     {},
	"external": {},
	"fn":       {},
	"if":       {},
	"import":   {},
	"let":      {},
	"pub":      {},
	"todo":     {},
	"tuple":    {},
	"type":     {},
}

// puncts is ordered so that longer tokens are matched before their prefixes.
var puncts = []string{
	"<=.", ">=.",
	"|>", "||", "&&", "==", "!=", "<=", ">=", "<.", ">.",
	"+.", "-.", "*.", "/.", "->",
	"<", ">", "+", "-", "*", "/", "%", "=", "|",
	"(", ")", "{", "}", "[", "]", ",", ".", ":",
}

type runeReader struct {
	data []byte
	pos  int
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.pos == len(rr.data) {
		return 0, 0, io.EOF
	}
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError && sz == 1 {
		return 0, 0, fmt.Errorf("invalid UTF8 at offset %d: %x", rr.pos, rr.data[rr.pos])
	}
	rr.pos += sz
	return r, sz, nil
}

func (rr *runeReader) peekRune() rune {
	if rr.pos == len(rr.data) {
		return 0
	}
	r, _ := utf8.DecodeRune(rr.data[rr.pos:])
	return r
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

type lexer struct {
	input   *runeReader
	info    *ast.FileInfo
	handler *reporter.Handler
	tokens  []token
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

func newLexer(in io.Reader, filename string, handler *reporter.Handler) (*lexer, error) {
	br := bufio.NewReader(in)

	// If the file has a UTF8 byte order marker preface, consume it.
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}

	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return &lexer{
		input:   &runeReader{data: contents},
		info:    ast.NewFileInfo(filename, contents),
		handler: handler,
	}, nil
}

// lex tokenizes the whole input. The final token is always tokEOF.
//
// Lexical errors go to the handler. If it asks to continue, the offending
// character is skipped.
func (l *lexer) lex() error {
	for {
		tok, err := l.next()
		if err != nil {
			var ewp reporter.ErrorWithPos
			if !errors.As(err, &ewp) {
				ewp = reporter.Error(l.info.SourcePos(l.input.mark), err)
			}
			if err := l.handler.HandleError(ewp); err != nil {
				return err
			}
			continue
		}
		l.tokens = append(l.tokens, tok)
		if tok.kind == tokEOF {
			return nil
		}
	}
}

func (l *lexer) next() (token, error) {
	for {
		l.input.setMark()
		c, sz, err := l.input.readRune()
		if err == io.EOF {
			return l.token(tokEOF, ""), nil
		} else if err != nil {
			// Skip the bad byte so that lexing can resume.
			l.input.pos++
			return token{}, err
		}

		switch {
		case strings.ContainsRune("\n\r\t\f\v ", c):
			continue

		case c == '/' && l.input.peekRune() == '/':
			l.skipToEndOfLine()
			l.handler.HandleWarning(
				l.info.SourcePos(l.input.mark),
				errors.New("comment is not preserved by formatting"),
			)
			continue

		case c == '_' || (c >= 'a' && c <= 'z'):
			l.readIdentifier()
			text := l.input.getMark()
			if _, ok := keywords[text]; ok {
				return l.token(tokKeyword, text), nil
			}
			if c == '_' {
				return l.token(tokDiscardName, text), nil
			}
			return l.token(tokName, text), nil

		case c >= 'A' && c <= 'Z':
			l.readIdentifier()
			return l.token(tokUpName, l.input.getMark()), nil

		case c >= '0' && c <= '9':
			return l.readNumber(), nil

		case c == '"':
			return l.readString()
		}

		l.input.unreadRune(sz)
		rest := l.input.data[l.input.pos:]
		for _, p := range puncts {
			if bytes.HasPrefix(rest, []byte(p)) {
				l.input.pos += len(p)
				return l.token(tokPunct, p), nil
			}
		}
		l.input.pos += sz
		return token{}, fmt.Errorf("unexpected character %q", c)
	}
}

func (l *lexer) token(kind tokenKind, text string) token {
	return token{kind: kind, text: text, start: l.input.mark, end: l.input.pos}
}

func (l *lexer) readIdentifier() {
	for {
		c, sz, err := l.input.readRune()
		if err != nil {
			return
		}
		if c != '_' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			l.input.unreadRune(sz)
			return
		}
	}
}

// readNumber reads an int or a float. The first digit has already been read.
//
// Directly after a ".", only digits are read, so that "pair.0.1" is two
// tuple indexes rather than an index by a float.
func (l *lexer) readNumber() token {
	l.readDigits()
	if n := len(l.tokens); n > 0 && l.tokens[n-1].is(tokPunct, ".") {
		return l.token(tokInt, l.input.getMark())
	}
	if l.input.peekRune() != '.' {
		return l.token(tokInt, l.input.getMark())
	}
	l.input.pos++
	l.readDigits()
	if c := l.input.peekRune(); c == 'e' || c == 'E' {
		save := l.input.pos
		l.input.pos++
		if c := l.input.peekRune(); c == '-' || c == '+' {
			l.input.pos++
		}
		if c := l.input.peekRune(); c < '0' || c > '9' {
			// Not an exponent after all.
			l.input.pos = save
		} else {
			l.readDigits()
		}
	}
	return l.token(tokFloat, l.input.getMark())
}

func (l *lexer) readDigits() {
	for {
		c := l.input.peekRune()
		if (c < '0' || c > '9') && c != '_' {
			return
		}
		l.input.pos++
	}
}

// readString reads a string literal whose opening quote has already been
// read. Escapes are validated but kept in their source form.
func (l *lexer) readString() (token, error) {
	var escapeErr error
	for {
		c, _, err := l.input.readRune()
		if err == io.EOF {
			return token{}, reporter.Error(l.info.SourcePos(l.input.mark), errors.New("unterminated string literal"))
		} else if err != nil {
			l.input.pos++
			if escapeErr == nil {
				escapeErr = err
			}
			continue
		}
		switch c {
		case '"':
			if escapeErr != nil {
				return token{}, escapeErr
			}
			tok := l.token(tokString, "")
			tok.text = string(l.input.data[l.input.mark+1 : l.input.pos-1])
			return tok, nil
		case '\\':
			escapeStart := l.input.pos - 1
			e, _, err := l.input.readRune()
			if err != nil {
				continue
			}
			if !strings.ContainsRune(`"\\nrtfbe0u`, e) && escapeErr == nil {
				escapeErr = reporter.Errorf(l.info.SourcePos(escapeStart), "invalid escape sequence \\%c", e)
			}
		}
	}
}

func (l *lexer) skipToEndOfLine() {
	for {
		c, _, err := l.input.readRune()
		if err != nil || c == '\n' {
			return
		}
	}
}
