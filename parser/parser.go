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
	"errors"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/reporter"
)

// Parse parses gleam source from r into a module. The given filename is used
// to construct error messages and to name the module.
//
// Errors are sent to handler. If its reporter lets parsing continue, the
// parser skips to the next top-level declaration and keeps going, so the
// returned error is [reporter.ErrInvalidSource] and the returned module is
// missing the declarations that failed to parse.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.Module, error) {
	lx, err := newLexer(r, filename, handler)
	if err != nil {
		return nil, err
	}
	if err := lx.lex(); err != nil {
		return nil, err
	}

	p := &parser{tokens: lx.tokens, info: lx.info, handler: handler}
	module, err := p.parseModule()
	if err != nil {
		return nil, err
	}
	return module, handler.Error()
}

// ModuleName returns the name of the module defined in the given file: its
// base name without the .gleam extension.
func ModuleName(filename string) string {
	return strings.TrimSuffix(path.Base(filepath.ToSlash(filename)), ".gleam")
}

type parser struct {
	tokens  []token
	pos     int
	info    *ast.FileInfo
	handler *reporter.Handler
}

// bailout unwinds the parser to the enclosing declaration after an error.
// If err is not nil, the handler asked to abort and parsing stops entirely.
type bailout struct {
	err error
}

func (p *parser) errorf(tok token, format string, args ...any) {
	err := p.handler.HandleErrorf(p.info.SourcePos(tok.start), format, args...)
	panic(bailout{err: err})
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekN(n int) token {
	return p.tokens[min(p.pos+n, len(p.tokens)-1)]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) atPunct(text string) bool {
	return p.peek().is(tokPunct, text)
}

func (p *parser) acceptPunct(text string) bool {
	if p.atPunct(text) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) acceptKeyword(text string) bool {
	if p.peek().is(tokKeyword, text) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind, and text if it is not empty.
func (p *parser) expect(kind tokenKind, text string) token {
	tok := p.peek()
	if tok.kind != kind || (text != "" && tok.text != text) {
		want := kind.String()
		if text != "" {
			want = strconv.Quote(text)
		}
		p.errorf(tok, "expected %s, found %v", want, tok)
	}
	return p.advance()
}

// loc returns the location spanning from start to the last consumed token.
func (p *parser) loc(start token) ast.Location {
	end := start.end
	if p.pos > 0 {
		end = max(end, p.tokens[p.pos-1].end)
	}
	return ast.Location{Start: start.start, End: end}
}

// parseSeq parses comma-separated items up to and including the closing
// punctuation. A trailing comma is allowed.
func parseSeq[T any](p *parser, close string, item func() T) []T {
	var items []T
	for !p.acceptPunct(close) {
		items = append(items, item())
		if !p.acceptPunct(",") {
			p.expect(tokPunct, close)
			break
		}
	}
	return items
}

func (p *parser) parseModule() (*ast.Module, error) {
	module := &ast.Module{Name: ModuleName(p.info.Name())}
	for p.peek().kind != tokEOF {
		decl, err := p.parseDeclOrRecover()
		if err != nil {
			return nil, err
		}
		if decl != nil {
			module.Decls = append(module.Decls, decl)
		}
	}
	return module, nil
}

func (p *parser) parseDeclOrRecover() (decl ast.Decl, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		decl, err = nil, b.err
		if err == nil {
			p.synchronize()
		}
	}()
	return p.parseDecl(), nil
}

// synchronize skips to the next token that looks like the start of a
// top-level declaration: a declaration keyword at the start of a line.
func (p *parser) synchronize() {
	p.advance()
	for {
		tok := p.peek()
		if tok.kind == tokEOF {
			return
		}
		if tok.kind == tokKeyword && p.info.SourcePos(tok.start).Col == 1 {
			switch tok.text {
			case "import", "pub", "fn", "type", "external":
				return
			}
		}
		p.advance()
	}
}

func (p *parser) parseDecl() ast.Decl {
	start := p.peek()
	if p.acceptKeyword("import") {
		return p.parseImport(start)
	}
	public := p.acceptKeyword("pub")
	switch tok := p.peek(); {
	case tok.is(tokKeyword, "fn"):
		return p.parseFn(start, public)
	case tok.is(tokKeyword, "type"):
		return p.parseTypeDecl(start, public)
	case tok.is(tokKeyword, "external"):
		return p.parseExternal(start, public)
	default:
		p.errorf(tok, "expected a declaration, found %v", tok)
		return nil
	}
}

func (p *parser) parseImport(start token) *ast.DeclImport {
	decl := &ast.DeclImport{}
	decl.Module = append(decl.Module, p.expect(tokName, "").text)
	for p.acceptPunct("/") {
		decl.Module = append(decl.Module, p.expect(tokName, "").text)
	}
	if p.atPunct(".") && p.peekN(1).is(tokPunct, "{") {
		p.advance()
		p.advance()
		decl.Unqualified = parseSeq(p, "}", p.parseUnqualifiedImport)
	}
	if p.acceptKeyword("as") {
		decl.As = p.expect(tokName, "").text
	}
	decl.Location = p.loc(start)
	return decl
}

func (p *parser) parseUnqualifiedImport() ast.UnqualifiedImport {
	start := p.expectAnyName()
	imp := ast.UnqualifiedImport{Name: start.text}
	if p.acceptKeyword("as") {
		imp.As = p.expectAnyName().text
	}
	imp.Location = p.loc(start)
	return imp
}

func (p *parser) expectAnyName() token {
	tok := p.peek()
	if tok.kind != tokName && tok.kind != tokUpName {
		p.errorf(tok, "expected a name, found %v", tok)
	}
	return p.advance()
}

func (p *parser) parseFn(start token, public bool) *ast.DeclFn {
	p.expect(tokKeyword, "fn")
	decl := &ast.DeclFn{Public: public, Name: p.expect(tokName, "").text}
	p.expect(tokPunct, "(")
	decl.Args = parseSeq(p, ")", p.parseArg)
	decl.Return = p.parseReturn()
	decl.Body = p.parseBlock()
	decl.Location = p.loc(start)
	return decl
}

// parseArg parses a function parameter: an optional label, a name, and an
// optional type annotation.
func (p *parser) parseArg() ast.Arg {
	start := p.peek()
	name := p.expectArgName()
	var arg ast.Arg
	if next := p.peek(); next.kind == tokName || next.kind == tokDiscardName {
		if name.kind != tokName {
			p.errorf(name, "a discarded argument cannot have a label")
		}
		arg.Label = name.text
		name = p.advance()
	}
	arg.Name = name.text
	if p.acceptPunct(":") {
		arg.Annotation = p.parseType()
	}
	arg.Location = p.loc(start)
	return arg
}

func (p *parser) expectArgName() token {
	tok := p.peek()
	if tok.kind != tokName && tok.kind != tokDiscardName {
		p.errorf(tok, "expected an argument name, found %v", tok)
	}
	return p.advance()
}

func (p *parser) parseReturn() ast.Type {
	if p.acceptPunct("->") {
		return p.parseType()
	}
	return nil
}

func (p *parser) parseTypeDecl(start token, public bool) ast.Decl {
	p.expect(tokKeyword, "type")
	name := p.expect(tokUpName, "").text
	params := p.parseTypeParams()

	if p.acceptPunct("=") {
		decl := &ast.DeclTypeAlias{Public: public, Alias: name, Args: params}
		decl.Resolved = p.parseType()
		decl.Location = p.loc(start)
		return decl
	}

	decl := &ast.DeclCustomType{Public: public, Name: name, Args: params}
	p.expect(tokPunct, "{")
	for !p.acceptPunct("}") {
		decl.Constructors = append(decl.Constructors, p.parseConstructor())
	}
	decl.Location = p.loc(start)
	return decl
}

func (p *parser) parseTypeParams() []string {
	if !p.acceptPunct("(") {
		return nil
	}
	return parseSeq(p, ")", func() string {
		return p.expect(tokName, "").text
	})
}

func (p *parser) parseConstructor() ast.RecordConstructor {
	start := p.peek()
	ctor := ast.RecordConstructor{Name: p.expect(tokUpName, "").text}
	if p.acceptPunct("(") {
		ctor.Args = parseSeq(p, ")", func() ast.RecordConstructorArg {
			start := p.peek()
			label, typ := p.parseLabelledType()
			return ast.RecordConstructorArg{Location: p.loc(start), Label: label, Type: typ}
		})
	}
	ctor.Location = p.loc(start)
	return ctor
}

func (p *parser) parseLabelledType() (label string, typ ast.Type) {
	if p.peek().kind == tokName && p.peekN(1).is(tokPunct, ":") {
		label = p.advance().text
		p.advance()
	}
	return label, p.parseType()
}

func (p *parser) parseExternal(start token, public bool) ast.Decl {
	p.expect(tokKeyword, "external")

	if p.acceptKeyword("type") {
		decl := &ast.DeclExternalType{Public: public, Name: p.expect(tokUpName, "").text}
		decl.Args = p.parseTypeParams()
		decl.Location = p.loc(start)
		return decl
	}

	p.expect(tokKeyword, "fn")
	decl := &ast.DeclExternalFn{Public: public, Name: p.expect(tokName, "").text}
	p.expect(tokPunct, "(")
	decl.Args = parseSeq(p, ")", func() ast.ExternalFnArg {
		start := p.peek()
		label, typ := p.parseLabelledType()
		return ast.ExternalFnArg{Location: p.loc(start), Label: label, Type: typ}
	})
	p.expect(tokPunct, "->")
	decl.Return = p.parseType()
	p.expect(tokPunct, "=")
	decl.Module = p.expect(tokString, "").text
	decl.Function = p.expect(tokString, "").text
	decl.Location = p.loc(start)
	return decl
}

func (p *parser) parseType() ast.Type {
	start := p.peek()
	switch {
	case start.is(tokKeyword, "fn"):
		p.advance()
		p.expect(tokPunct, "(")
		typ := &ast.TypeFn{Args: parseSeq(p, ")", p.parseType)}
		p.expect(tokPunct, "->")
		typ.Return = p.parseType()
		typ.Location = p.loc(start)
		return typ

	case start.is(tokKeyword, "tuple"):
		p.advance()
		p.expect(tokPunct, "(")
		typ := &ast.TypeTuple{Elems: parseSeq(p, ")", p.parseType)}
		typ.Location = p.loc(start)
		return typ

	case start.kind == tokUpName:
		p.advance()
		return p.parseTypeConstructor(start, "", start.text)

	case start.kind == tokName:
		p.advance()
		if p.atPunct(".") && p.peekN(1).kind == tokUpName {
			p.advance()
			name := p.advance()
			return p.parseTypeConstructor(start, start.text, name.text)
		}
		return &ast.TypeVar{Location: p.loc(start), Name: start.text}

	default:
		p.errorf(start, "expected a type, found %v", start)
		return nil
	}
}

func (p *parser) parseTypeConstructor(start token, module, name string) *ast.TypeConstructor {
	typ := &ast.TypeConstructor{Module: module, Name: name}
	if p.acceptPunct("(") {
		typ.Args = parseSeq(p, ")", p.parseType)
	}
	typ.Location = p.loc(start)
	return typ
}

// parseBlock parses a brace-delimited sequence of expressions.
func (p *parser) parseBlock() ast.Expr {
	p.expect(tokPunct, "{")
	body := p.parseStatements()
	p.expect(tokPunct, "}")
	return body
}

// parseStatements parses the contents of a block up to, but not including,
// the closing brace. A let binding scopes over the rest of the block, so
// the result is a chain of lets and sequences.
func (p *parser) parseStatements() ast.Expr {
	start := p.peek()
	if p.acceptKeyword("let") {
		let := &ast.ExprLet{Pattern: p.parsePattern()}
		p.expect(tokPunct, "=")
		let.Value = p.parseExpr()
		if tok := p.peek(); tok.is(tokPunct, "}") {
			p.errorf(tok, "a let binding must be followed by an expression")
		}
		let.Then = p.parseStatements()
		let.Location = p.loc(start)
		return let
	}

	first := p.parseExpr()
	if p.atPunct("}") {
		return first
	}
	seq := &ast.ExprSeq{First: first, Then: p.parseStatements()}
	seq.Location = p.loc(start)
	return seq
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinary(1)
}

// parseBinary parses a chain of binary operators binding at least as tightly
// as minPrec. All operators are left associative.
func (p *parser) parseBinary(minPrec int) ast.Expr {
	start := p.peek()
	left := p.parsePostfix()
	for {
		tok := p.peek()
		if tok.kind != tokPunct {
			return left
		}

		if tok.text == "|>" {
			if ast.PipePrecedence < minPrec {
				return left
			}
			p.advance()
			right := p.parseBinary(ast.PipePrecedence + 1)
			left = &ast.ExprPipe{Location: p.loc(start), Left: left, Right: right}
			continue
		}

		op, ok := ast.LookupBinOp(tok.text)
		if !ok || op.Precedence() < minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(op.Precedence() + 1)
		left = &ast.ExprBinOp{Location: p.loc(start), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parsePostfix() ast.Expr {
	start := p.peek()
	expr := p.parsePrimary()
	for {
		switch {
		case p.acceptPunct("("):
			args := parseSeq(p, ")", p.parseCallArg)
			expr = &ast.ExprCall{Location: p.loc(start), Fun: expr, Args: args}

		case p.acceptPunct("."):
			switch tok := p.advance(); tok.kind {
			case tokName, tokUpName:
				expr = &ast.ExprFieldAccess{Location: p.loc(start), Container: expr, Label: tok.text}
			case tokInt:
				index, err := strconv.Atoi(strings.ReplaceAll(tok.text, "_", ""))
				if err != nil {
					p.errorf(tok, "invalid tuple index %s", tok.text)
				}
				expr = &ast.ExprTupleIndex{Location: p.loc(start), Tuple: expr, Index: index}
			default:
				p.errorf(tok, "expected a field name or tuple index, found %v", tok)
			}

		default:
			return expr
		}
	}
}

func (p *parser) parseCallArg() ast.CallArg[ast.Expr] {
	start := p.peek()
	var arg ast.CallArg[ast.Expr]
	if start.kind == tokName && p.peekN(1).is(tokPunct, ":") {
		arg.Label = start.text
		p.advance()
		p.advance()
	}
	arg.Value = p.parseExpr()
	arg.Location = p.loc(start)
	return arg
}

func (p *parser) parsePrimary() ast.Expr {
	start := p.peek()
	switch {
	case start.kind == tokInt, start.kind == tokFloat,
		start.is(tokPunct, "-") && (p.peekN(1).kind == tokInt || p.peekN(1).kind == tokFloat):
		negative := p.acceptPunct("-")
		num := p.advance()
		if num.kind == tokFloat {
			return &ast.ExprFloat{Location: p.loc(start), Value: p.floatValue(num, negative)}
		}
		return &ast.ExprInt{Location: p.loc(start), Value: p.intValue(num, negative)}

	case start.kind == tokString:
		p.advance()
		return &ast.ExprString{Location: p.loc(start), Value: start.text}

	case start.kind == tokName, start.kind == tokUpName:
		p.advance()
		return &ast.ExprVar{Location: p.loc(start), Name: start.text}

	case start.is(tokKeyword, "todo"):
		p.advance()
		return &ast.ExprTodo{Location: p.loc(start)}

	case start.is(tokKeyword, "fn"):
		p.advance()
		p.expect(tokPunct, "(")
		fn := &ast.ExprFn{Args: parseSeq(p, ")", p.parseArg)}
		fn.Return = p.parseReturn()
		fn.Body = p.parseBlock()
		fn.Location = p.loc(start)
		return fn

	case start.is(tokKeyword, "tuple"):
		p.advance()
		p.expect(tokPunct, "(")
		tuple := &ast.ExprTuple{Elems: parseSeq(p, ")", p.parseExpr)}
		tuple.Location = p.loc(start)
		return tuple

	case start.is(tokPunct, "["):
		p.advance()
		return p.parseListExpr(start)

	case start.is(tokKeyword, "case"):
		p.advance()
		return p.parseCase(start)

	default:
		p.errorf(start, "expected an expression, found %v", start)
		return nil
	}
}

// parseListExpr parses the rest of a list literal, "[a, b | tail]", as a
// chain of cons cells.
func (p *parser) parseListExpr(start token) ast.Expr {
	var (
		elems []ast.Expr
		tail  ast.Expr
	)
	for !p.atPunct("]") {
		elems = append(elems, p.parseExpr())
		if p.acceptPunct("|") {
			tail = p.parseExpr()
			break
		}
		if !p.acceptPunct(",") {
			break
		}
	}
	p.expect(tokPunct, "]")

	loc := p.loc(start)
	if tail == nil {
		tail = &ast.ExprNil{Location: loc}
	}
	for i := len(elems) - 1; i >= 0; i-- {
		cell := loc
		if i > 0 {
			cell.Start = elems[i].Loc().Start
		}
		tail = &ast.ExprCons{Location: cell, Head: elems[i], Tail: tail}
	}
	return tail
}

func (p *parser) parseCase(start token) *ast.ExprCase {
	expr := &ast.ExprCase{Subjects: []ast.Expr{p.parseExpr()}}
	for p.acceptPunct(",") {
		expr.Subjects = append(expr.Subjects, p.parseExpr())
	}
	open := p.expect(tokPunct, "{")
	for !p.acceptPunct("}") {
		expr.Clauses = append(expr.Clauses, p.parseClause(len(expr.Subjects)))
	}
	if len(expr.Clauses) == 0 {
		p.errorf(open, "a case expression must have at least one clause")
	}
	expr.Location = p.loc(start)
	return expr
}

// parseClause parses "patterns | alternatives if guard -> body". Every
// pattern list must have one pattern per subject.
func (p *parser) parseClause(subjects int) ast.Clause {
	start := p.peek()
	clause := ast.Clause{Patterns: p.parseClausePatterns(subjects)}
	for p.acceptPunct("|") {
		clause.Alternatives = append(clause.Alternatives, p.parseClausePatterns(subjects))
	}
	if p.acceptKeyword("if") {
		clause.Guard = p.parseGuard(1)
	}
	p.expect(tokPunct, "->")
	clause.Then = p.parseExpr()
	clause.Location = p.loc(start)
	return clause
}

func (p *parser) parseClausePatterns(subjects int) []ast.Pattern {
	start := p.peek()
	patterns := []ast.Pattern{p.parsePattern()}
	for p.acceptPunct(",") {
		patterns = append(patterns, p.parsePattern())
	}
	if len(patterns) != subjects {
		p.errorf(start, "expected %d patterns, found %d", subjects, len(patterns))
	}
	return patterns
}

func (p *parser) parseGuard(minPrec int) ast.Guard {
	start := p.peek()
	left := p.parseGuardOperand()
	for {
		tok := p.peek()
		if tok.kind != tokPunct {
			return left
		}
		op, ok := ast.LookupBinOp(tok.text)
		if !ok || op.Precedence() < minPrec {
			return left
		}
		if !op.IsGuard() {
			p.errorf(tok, "operator %v is not allowed in a guard", op)
		}
		p.advance()
		right := p.parseGuard(op.Precedence() + 1)
		left = &ast.GuardBinOp{Location: p.loc(start), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseGuardOperand() ast.Guard {
	start := p.peek()
	switch {
	case start.kind == tokInt, start.kind == tokFloat,
		start.is(tokPunct, "-") && (p.peekN(1).kind == tokInt || p.peekN(1).kind == tokFloat):
		negative := p.acceptPunct("-")
		num := p.advance()
		if num.kind == tokFloat {
			return &ast.GuardFloat{Location: p.loc(start), Value: p.floatValue(num, negative)}
		}
		return &ast.GuardInt{Location: p.loc(start), Value: p.intValue(num, negative)}

	case start.kind == tokString:
		p.advance()
		return &ast.GuardString{Location: p.loc(start), Value: start.text}

	case start.kind == tokName:
		p.advance()
		return &ast.GuardVar{Location: p.loc(start), Name: start.text}

	default:
		p.errorf(start, "expected a guard expression, found %v", start)
		return nil
	}
}

func (p *parser) parsePattern() ast.Pattern {
	start := p.peek()
	pattern := p.parsePatternPrimary()
	for p.acceptKeyword("as") {
		name := p.expect(tokName, "")
		pattern = &ast.PatternLet{Location: p.loc(start), Name: name.text, Pattern: pattern}
	}
	return pattern
}

func (p *parser) parsePatternPrimary() ast.Pattern {
	start := p.peek()
	switch {
	case start.kind == tokInt, start.kind == tokFloat,
		start.is(tokPunct, "-") && (p.peekN(1).kind == tokInt || p.peekN(1).kind == tokFloat):
		negative := p.acceptPunct("-")
		num := p.advance()
		if num.kind == tokFloat {
			return &ast.PatternFloat{Location: p.loc(start), Value: p.floatValue(num, negative)}
		}
		return &ast.PatternInt{Location: p.loc(start), Value: p.intValue(num, negative)}

	case start.kind == tokString:
		p.advance()
		return &ast.PatternString{Location: p.loc(start), Value: start.text}

	case start.kind == tokDiscardName:
		p.advance()
		return &ast.PatternDiscard{Location: p.loc(start), Name: start.text}

	case start.kind == tokName:
		p.advance()
		if p.atPunct(".") && p.peekN(1).kind == tokUpName {
			p.advance()
			name := p.advance()
			return p.parsePatternConstructor(start, start.text, name.text)
		}
		return &ast.PatternVar{Location: p.loc(start), Name: start.text}

	case start.kind == tokUpName:
		p.advance()
		return p.parsePatternConstructor(start, "", start.text)

	case start.is(tokKeyword, "tuple"):
		p.advance()
		p.expect(tokPunct, "(")
		tuple := &ast.PatternTuple{Elems: parseSeq(p, ")", p.parsePattern)}
		tuple.Location = p.loc(start)
		return tuple

	case start.is(tokPunct, "["):
		p.advance()
		return p.parseListPattern(start)

	default:
		p.errorf(start, "expected a pattern, found %v", start)
		return nil
	}
}

func (p *parser) parsePatternConstructor(start token, module, name string) *ast.PatternConstructor {
	pattern := &ast.PatternConstructor{Module: module, Name: name}
	if p.acceptPunct("(") {
		pattern.Args = parseSeq(p, ")", func() ast.CallArg[ast.Pattern] {
			start := p.peek()
			var arg ast.CallArg[ast.Pattern]
			if start.kind == tokName && p.peekN(1).is(tokPunct, ":") {
				arg.Label = start.text
				p.advance()
				p.advance()
			}
			arg.Value = p.parsePattern()
			arg.Location = p.loc(start)
			return arg
		})
	}
	pattern.Location = p.loc(start)
	return pattern
}

func (p *parser) parseListPattern(start token) ast.Pattern {
	var (
		elems []ast.Pattern
		tail  ast.Pattern
	)
	for !p.atPunct("]") {
		elems = append(elems, p.parsePattern())
		if p.acceptPunct("|") {
			tail = p.parsePattern()
			break
		}
		if !p.acceptPunct(",") {
			break
		}
	}
	p.expect(tokPunct, "]")

	loc := p.loc(start)
	if tail == nil {
		tail = &ast.PatternNil{Location: loc}
	}
	for i := len(elems) - 1; i >= 0; i-- {
		cell := loc
		if i > 0 {
			cell.Start = elems[i].Loc().Start
		}
		tail = &ast.PatternCons{Location: cell, Head: elems[i], Tail: tail}
	}
	return tail
}

func (p *parser) intValue(tok token, negative bool) int64 {
	text := strings.ReplaceAll(tok.text, "_", "")
	if negative {
		text = "-" + text
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		p.errorf(tok, "integer literal %s is out of range", text)
	} else if err != nil {
		p.errorf(tok, "invalid integer literal %s", text)
	}
	return v
}

func (p *parser) floatValue(tok token, negative bool) float64 {
	text := strings.ReplaceAll(tok.text, "_", "")
	v, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		p.errorf(tok, "float literal %s is out of range", text)
	} else if err != nil {
		p.errorf(tok, "invalid float literal %s", text)
	}
	if negative {
		v = -v
	}
	return v
}
