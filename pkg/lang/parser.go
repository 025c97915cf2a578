/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"errors"
	"strings"

	"github.com/dburkart/tinyc/pkg/common/parse"
	"github.com/rs/zerolog"
)

// Parser checks a token sequence against the grammar. It builds no tree;
// the only thing it records is the symbol table.
type Parser struct {
	Tokens  []parse.Token
	Pos     int
	Symbols *SymbolTable
	Log     zerolog.Logger
}

// Parse consumes Tokens up to and including TOK_EOF. The first grammar
// violation is returned as a *parse.SyntaxError.
func (p *Parser) Parse() (err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			err = &syntaxError
		}
	}()

	if p.Symbols == nil {
		p.Symbols = NewSymbolTable(InsertOrUpdate)
	}

	p.program()

	return nil
}

// program
//
// Grammar:
//
//	program         = *statement EOF
func (p *Parser) program() {
	for !p.at(TOK_EOF) {
		p.statement()
	}
	p.expect(TOK_EOF)
}

// statement dispatches on the leading token
//
// Grammar:
//
//	statement       = declaration / assignment / if-stmt / return-stmt / block / for-loop
func (p *Parser) statement() {
	tok := p.current()
	typ, _ := tok.Type.(TokenType)

	switch {
	case typ.IsTypeKeyword():
		p.declaration()
	case typ == TOK_IDENTIFIER:
		p.assignment()
	case typ == TOK_IF:
		p.ifStatement()
	case typ == TOK_RETURN:
		p.returnStatement()
	case typ == TOK_CURLY_O:
		p.block()
	case typ == TOK_FOR:
		p.forLoop()
	default:
		p.fail("statement")
	}
}

// block
//
// Grammar:
//
//	block           = "{" *statement "}"
func (p *Parser) block() {
	p.enter("block")

	p.expect(TOK_CURLY_O)
	for !p.at(TOK_CURLY_X, TOK_EOF) {
		p.statement()
	}
	p.expect(TOK_CURLY_X)
}

// declaration records the declared name in the symbol table
//
// Grammar:
//
//	declaration     = type identifier ";"
//	type            = "int" / "float" / "double" / "string" / "bool" / "char"
func (p *Parser) declaration() {
	p.enter("declaration")

	typ := p.expect(TypeKeywords...)
	id := p.expect(TOK_IDENTIFIER)
	p.expect(TOK_SEMICOLON)

	err := p.Symbols.Declare(id.Lexeme, typ.Lexeme, "", id.Location.Line)
	if err != nil {
		var redeclared *RedeclarationError
		if !errors.As(err, &redeclared) {
			panic(err)
		}
		panic(parse.SyntaxError{Token: id, Expected: "new identifier", Message: err.Error()})
	}

	p.Log.Debug().Str("name", id.Lexeme).Str("type", typ.Lexeme).Int("line", id.Location.Line).Msg("declared")
}

// assignment records the right hand side text for declared names
//
// Grammar:
//
//	assignment      = identifier "=" expression ";"
func (p *Parser) assignment() {
	p.enter("assignment")

	id := p.expect(TOK_IDENTIFIER)
	p.expect(TOK_ASSIGN)

	start := p.Pos
	p.expression()
	value := p.text(start, p.Pos)

	p.expect(TOK_SEMICOLON)

	if p.Symbols.Assign(id.Lexeme, value) {
		p.Log.Debug().Str("name", id.Lexeme).Str("value", value).Msg("assigned")
	}
}

// ifStatement
//
// Grammar:
//
//	if-stmt         = "if" "(" expression ")" statement [ "else" statement ]
func (p *Parser) ifStatement() {
	p.enter("if")

	p.expect(TOK_IF)
	p.expect(TOK_PAREN_L)
	p.expression()
	p.expect(TOK_PAREN_R)
	p.statement()

	if p.at(TOK_ELSE) {
		p.expect(TOK_ELSE)
		p.statement()
	}
}

// returnStatement
//
// Grammar:
//
//	return-stmt     = "return" expression ";"
func (p *Parser) returnStatement() {
	p.enter("return")

	p.expect(TOK_RETURN)
	p.expression()
	p.expect(TOK_SEMICOLON)
}

// forLoop
//
// Grammar:
//
//	for-loop        = "for" "(" for-init for-cond for-incr ")" block
//	for-init        = declaration / assignment
//	for-cond        = expression ";"
//	for-incr        = expression
func (p *Parser) forLoop() {
	p.enter("for")

	p.expect(TOK_FOR)
	p.expect(TOK_PAREN_L)

	typ, _ := p.current().Type.(TokenType)
	switch {
	case typ.IsTypeKeyword():
		p.declaration()
	case typ == TOK_IDENTIFIER:
		p.assignment()
	default:
		p.fail("declaration or assignment")
	}

	p.expression()
	p.expect(TOK_SEMICOLON)

	p.expression()
	p.expect(TOK_PAREN_R)

	p.block()
}

// expression
//
// Grammar:
//
//	expression      = term *( ( "+" / "-" ) term ) [ ">" expression ]
func (p *Parser) expression() {
	p.term()

	for p.at(TOK_PLUS, TOK_MINUS) {
		p.advance()
		p.term()
	}

	if p.at(TOK_GREATER) {
		p.advance()
		p.expression()
	}
}

// term
//
// Grammar:
//
//	term            = factor *( ( "*" / "/" ) factor )
func (p *Parser) term() {
	p.factor()

	for p.at(TOK_STAR, TOK_SLASH) {
		p.advance()
		p.factor()
	}
}

// factor
//
// Grammar:
//
//	factor          = number / identifier / "(" expression ")"
func (p *Parser) factor() {
	switch {
	case p.at(TOK_NUMBER, TOK_IDENTIFIER):
		p.advance()
	case p.at(TOK_PAREN_L):
		p.expect(TOK_PAREN_L)
		p.expression()
		p.expect(TOK_PAREN_R)
	default:
		p.fail("expression")
	}
}

// current returns the lookahead token. Running off the end of Tokens reads
// as TOK_EOF.
func (p *Parser) current() parse.Token {
	if p.Pos < len(p.Tokens) {
		return p.Tokens[p.Pos]
	}

	loc := parse.Location{Line: 1}
	if len(p.Tokens) > 0 {
		last := p.Tokens[len(p.Tokens)-1].Location
		loc = parse.Location{Start: last.End, End: last.End, Line: last.Line}
	}
	return parse.Token{Type: TOK_EOF, Location: loc}
}

func (p *Parser) at(types ...TokenType) bool {
	tok := p.current()
	for _, t := range types {
		if tok.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) advance() parse.Token {
	tok := p.current()
	if p.Pos < len(p.Tokens) {
		p.Pos++
	}
	p.Log.Trace().Object("token", tok).Int("pos", p.Pos).Msg("consumed")
	return tok
}

// expect consumes the lookahead token if it is one of types, and fails
// otherwise.
func (p *Parser) expect(types ...TokenType) parse.Token {
	if p.at(types...) {
		return p.advance()
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.ToString())
	}
	p.fail(strings.Join(names, " or "))

	return parse.Token{}
}

// fail raises a syntax error at the lookahead token. An unexpected end of
// input is reported on the line of the last token consumed.
func (p *Parser) fail(expected string) {
	tok := p.current()

	if tok.Type == TOK_EOF && p.Pos > 0 {
		prev := p.Tokens[p.Pos-1].Location
		tok.Location = parse.Location{Start: prev.End, End: prev.End, Line: prev.Line}
	}

	p.Log.Debug().Object("token", tok).Str("expected", expected).Msg("syntax error")
	panic(parse.NewSyntaxError(tok, expected))
}

func (p *Parser) enter(rule string) {
	p.Log.Trace().Str("rule", rule).Int("pos", p.Pos).Send()
}

// text joins the lexemes of Tokens[start:end] with single spaces
func (p *Parser) text(start, end int) string {
	if end > len(p.Tokens) {
		end = len(p.Tokens)
	}

	lexemes := make([]string, 0, end-start)
	for _, tok := range p.Tokens[start:end] {
		lexemes = append(lexemes, tok.Lexeme)
	}
	return strings.Join(lexemes, " ")
}
