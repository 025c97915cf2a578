/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "github.com/rs/zerolog"

type TokenType interface {
	ToString() string
}

// Location is the byte span of a token within its input, along with the
// 1-based line the span starts on.
type Location struct {
	Start int
	End   int
	Line  int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}

// Is reports whether the token is of any of the given types
func (t Token) Is(types ...TokenType) bool {
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

func (t Token) MarshalZerologObject(e *zerolog.Event) {
	typ := "TOK_UNKNOWN"
	if t.Type != nil {
		typ = t.Type.ToString()
	}
	e.Str("type", typ).Str("lexeme", t.Lexeme).Int("line", t.Location.Line)
}
