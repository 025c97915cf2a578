/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	// Type keywords
	TOK_INT
	TOK_FLOAT
	TOK_DOUBLE
	TOK_STRING
	TOK_BOOL
	TOK_CHAR

	// Control keywords
	TOK_IF
	TOK_ELSE
	TOK_RETURN
	TOK_FOR
	TOK_WHILE

	TOK_IDENTIFIER
	TOK_NUMBER

	// Operators
	TOK_ASSIGN
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_GREATER
	TOK_LESS

	TOK_PAREN_L
	TOK_PAREN_R
	TOK_CURLY_O
	TOK_CURLY_X
	TOK_SEMICOLON
)

// TypeKeywords are the token types which may begin a declaration
var TypeKeywords = []TokenType{TOK_INT, TOK_FLOAT, TOK_DOUBLE, TOK_STRING, TOK_BOOL, TOK_CHAR}

var keywords = map[string]TokenType{
	"int":    TOK_INT,
	"float":  TOK_FLOAT,
	"double": TOK_DOUBLE,
	"string": TOK_STRING,
	"bool":   TOK_BOOL,
	"char":   TOK_CHAR,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"return": TOK_RETURN,
	"for":    TOK_FOR,
	"while":  TOK_WHILE,
}

var operators = map[rune]TokenType{
	'=': TOK_ASSIGN,
	'+': TOK_PLUS,
	'-': TOK_MINUS,
	'*': TOK_STAR,
	'/': TOK_SLASH,
	'>': TOK_GREATER,
	'<': TOK_LESS,
	'(': TOK_PAREN_L,
	')': TOK_PAREN_R,
	'{': TOK_CURLY_O,
	'}': TOK_CURLY_X,
	';': TOK_SEMICOLON,
}

// Keyword returns the keyword token type for word, if word is reserved
func Keyword(word string) (TokenType, bool) {
	t, ok := keywords[word]
	return t, ok
}

func (t TokenType) IsTypeKeyword() bool {
	return t >= TOK_INT && t <= TOK_CHAR
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_INT:
		return "TOK_INT"
	case TOK_FLOAT:
		return "TOK_FLOAT"
	case TOK_DOUBLE:
		return "TOK_DOUBLE"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_BOOL:
		return "TOK_BOOL"
	case TOK_CHAR:
		return "TOK_CHAR"
	case TOK_IF:
		return "TOK_IF"
	case TOK_ELSE:
		return "TOK_ELSE"
	case TOK_RETURN:
		return "TOK_RETURN"
	case TOK_FOR:
		return "TOK_FOR"
	case TOK_WHILE:
		return "TOK_WHILE"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_ASSIGN:
		return "TOK_ASSIGN"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_GREATER:
		return "TOK_GREATER"
	case TOK_LESS:
		return "TOK_LESS"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_CURLY_O:
		return "TOK_CURLY_O"
	case TOK_CURLY_X:
		return "TOK_CURLY_X"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	}
	return "TOK_UNKNOWN"
}
