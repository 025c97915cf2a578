/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"errors"

	"github.com/dburkart/tinyc/pkg/common/parse"
	"github.com/rs/zerolog"
)

type Result struct {
	Tokens  []parse.Token
	Symbols *SymbolTable
}

type options struct {
	policy  Policy
	symbols *SymbolTable
	log     zerolog.Logger
}

type Option func(*options)

// WithPolicy sets the redeclaration policy of a freshly created symbol table
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithSymbols checks against an existing symbol table instead of a new one
func WithSymbols(st *SymbolTable) Option {
	return func(o *options) {
		o.symbols = st
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Check tokenizes and syntax checks input. The returned error is either a
// *parse.LexicalError or a *parse.SyntaxError, and checking stops at the
// first one found.
func Check(input string, opts ...Option) (*Result, error) {
	o := options{policy: InsertOrUpdate, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.symbols == nil {
		o.symbols = NewSymbolTable(o.policy)
	}

	tokens, err := Tokenize(input)
	if err != nil {
		o.log.Debug().Err(err).Msg("tokenizing failed")
		return nil, err
	}
	o.log.Trace().Int("tokens", len(tokens)).Msg("tokenized input")

	p := Parser{
		Tokens:  tokens,
		Symbols: o.symbols,
		Log:     o.log,
	}

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return &Result{Tokens: tokens, Symbols: p.Symbols}, nil
}

func IsLexical(err error) bool {
	var lexical *parse.LexicalError
	return errors.As(err, &lexical)
}

func IsSyntax(err error) bool {
	var syntax *parse.SyntaxError
	return errors.As(err, &syntax)
}

// FormatError renders err against the input it was raised for, falling back
// to err.Error() for errors which carry no location.
func FormatError(input string, err error) string {
	var lexical *parse.LexicalError
	if errors.As(err, &lexical) {
		return lexical.FormatError(input)
	}

	var syntax *parse.SyntaxError
	if errors.As(err, &syntax) {
		return syntax.FormatError(input)
	}

	return err.Error()
}
