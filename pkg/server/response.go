/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"errors"

	"github.com/dburkart/tinyc/pkg/common/parse"
	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dburkart/tinyc/pkg/repl"
)

type (
	ErrResponse struct {
		Kind      string `json:"kind"`
		Line      int    `json:"line"`
		Lexeme    string `json:"lexeme,omitempty"`
		Token     string `json:"token,omitempty"`
		Expected  string `json:"expected,omitempty"`
		Message   string `json:"message"`
		Formatted string `json:"formatted"`
	}

	CheckResponse struct {
		ID      string        `json:"id"`
		Ok      bool          `json:"ok"`
		Tokens  int           `json:"tokens"`
		Symbols []lang.Symbol `json:"symbols,omitempty"`
		Error   *ErrResponse  `json:"error,omitempty"`
	}

	TokensResponse struct {
		ID     string          `json:"id"`
		Ok     bool            `json:"ok"`
		Tokens repl.TokenTable `json:"tokens,omitempty"`
		Error  *ErrResponse    `json:"error,omitempty"`
	}
)

// NewErrResponse describes a check failure. The second return value is the
// metrics result label for the failure.
func NewErrResponse(input string, err error) (*ErrResponse, string) {
	resp := &ErrResponse{
		Message:   err.Error(),
		Formatted: lang.FormatError(input, err),
	}

	var lexical *parse.LexicalError
	if errors.As(err, &lexical) {
		resp.Kind = "lexical"
		resp.Line = lexical.Line()
		resp.Lexeme = string(lexical.Char)
		return resp, ResultLexicalError
	}

	var syntax *parse.SyntaxError
	if errors.As(err, &syntax) {
		resp.Kind = "syntax"
		resp.Line = syntax.Line()
		resp.Lexeme = syntax.Token.Lexeme
		resp.Token = syntax.Token.Type.ToString()
		resp.Expected = syntax.Expected
		return resp, ResultSyntaxError
	}

	resp.Kind = "internal"
	return resp, "error"
}

func NewCheckResponse(id, input string, policy lang.Policy) (CheckResponse, string) {
	resp := CheckResponse{ID: id}

	result, err := lang.Check(input, lang.WithPolicy(policy))
	if err != nil {
		e, label := NewErrResponse(input, err)
		resp.Error = e
		return resp, label
	}

	resp.Ok = true
	resp.Tokens = len(result.Tokens)
	resp.Symbols = result.Symbols.Symbols()
	return resp, ResultOk
}

func NewTokensResponse(id, input string) (TokensResponse, string) {
	resp := TokensResponse{ID: id}

	tokens, err := lang.Tokenize(input)
	if err != nil {
		e, label := NewErrResponse(input, err)
		resp.Error = e
		return resp, label
	}

	resp.Ok = true
	resp.Tokens = repl.TokenTable(tokens)
	return resp, ResultOk
}
