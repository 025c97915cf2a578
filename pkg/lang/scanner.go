/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"strings"
	"unicode/utf8"

	"github.com/dburkart/tinyc/pkg/common/parse"
)

type Scanner struct {
	Input string
	Start int
	Pos   int
	Line  int
}

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace matches blanks other than '\n', which the scanner counts
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// Tokenize scans input to completion. The returned slice always ends with a
// single TOK_EOF token; on a lexical error no tokens are returned.
func Tokenize(input string) ([]parse.Token, error) {
	s := Scanner{Input: input}
	return s.Tokenize()
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier or keyword.
//
// Grammar:
//
//	identifier      = ALPHA *(ALPHA / DIGIT)
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for isDigit(r) || isAlpha(r) {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	number          = 1*DIGIT
func (s *Scanner) MatchNumber() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for i := s.Pos; isDigit(r); {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchComment returns the length of a line comment, up to but not including
// the newline which ends it.
//
// Grammar:
//
//	comment         = "//" *(%x00-09 / %x0B-10FFFF)
func (s *Scanner) MatchComment() int {
	if !strings.HasPrefix(s.Input[s.Pos:], "//") {
		return 0
	}

	end := strings.IndexByte(s.Input[s.Pos:], '\n')
	if end == -1 {
		return len(s.Input) - s.Pos
	}
	return end
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	if s.Line == 0 {
		s.Line = 1
	}

	for {
		s.Start = s.Pos
		if s.Pos >= len(s.Input) {
			t.Type = TOK_EOF
			break
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		found := true
		skip := 0

		switch {
		case r == '\n':
			s.Line++
			skip = width
			found = false
		case isSpace(r):
			skip = width
			found = false
		case r == '/' && strings.HasPrefix(s.Input[s.Pos:], "//"):
			skip = s.MatchComment()
			found = false
		case isDigit(r):
			t.Type = TOK_NUMBER
			skip = s.MatchNumber()
		case isAlpha(r):
			t.Type = TOK_IDENTIFIER
			skip = s.MatchIdentifier()
			if kw, ok := Keyword(s.Input[s.Pos : s.Pos+skip]); ok {
				t.Type = kw
			}
		default:
			t.Type = TOK_INVALID
			if op, ok := operators[r]; ok {
				t.Type = op
			}
			skip = width
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos, Line: s.Line}
	s.Start = s.Pos

	return t
}

// Tokenize emits tokens until the end of input, stopping at the first
// character which matches no rule.
func (s *Scanner) Tokenize() ([]parse.Token, error) {
	tokens := []parse.Token{}

	for {
		tok := s.Emit()

		if tok.Type == TOK_INVALID {
			r, _ := utf8.DecodeRuneInString(tok.Lexeme)
			return nil, &parse.LexicalError{Char: r, Location: tok.Location}
		}

		tokens = append(tokens, tok)
		if tok.Type == TOK_EOF {
			return tokens, nil
		}
	}
}
