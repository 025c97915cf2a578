/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// SyntaxError is raised for the first token which does not fit the grammar.
// Expected describes what the grammar wanted at that point, either a token
// type name or a rule name such as "statement".
type SyntaxError struct {
	Token    Token
	Expected string
	Message  string
}

func NewSyntaxError(t Token, expected string) SyntaxError {
	return SyntaxError{Token: t, Expected: expected}
}

func (s *SyntaxError) Line() int {
	return s.Token.Location.Line
}

func (s *SyntaxError) Error() string {
	if s.Message != "" {
		return fmt.Sprintf("syntax error at line %d: %s", s.Line(), s.Message)
	}

	found := fmt.Sprintf("'%s'", s.Token.Lexeme)
	if s.Token.Lexeme == "" {
		found = "end of input"
	}

	typ := "TOK_UNKNOWN"
	if s.Token.Type != nil {
		typ = s.Token.Type.ToString()
	}

	return fmt.Sprintf("syntax error at line %d: expected %s but found %s (%s)", s.Line(), s.Expected, found, typ)
}

func (s *SyntaxError) FormatError(input string) string {
	return formatAt(input, s.Token.Location, s.Error())
}

// LexicalError is raised when a character matches no token rule
type LexicalError struct {
	Char     rune
	Location Location
}

func (l *LexicalError) Line() int {
	return l.Location.Line
}

func (l *LexicalError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at line %d", l.Char, l.Location.Line)
}

func (l *LexicalError) FormatError(input string) string {
	return formatAt(input, l.Location, l.Error())
}

// formatAt renders the source line containing loc with the span underlined
func formatAt(input string, loc Location, message string) string {
	start := loc.Start
	if start > len(input) {
		start = len(input)
	}
	if start < 0 {
		start = 0
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd == -1 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}

	repeat := loc.End - loc.Start - 1
	if repeat < 0 {
		repeat = 0
	}
	if start+1+repeat > lineEnd {
		repeat = 0
	}

	prefix := fmt.Sprintf("%4d | ", loc.Line)

	errorString := "Error found in program:\n"
	errorString += prefix + input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", len(prefix)+start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}
