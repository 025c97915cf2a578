/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strings"

	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"
)

// Session buffers program text between checks and carries one symbol table
// across every successful check.
type Session struct {
	Symbols *lang.SymbolTable

	log    zerolog.Logger
	buffer []string

	checks   int
	failures int
	bytes    uint64
}

func NewSession(policy lang.Policy, log zerolog.Logger) *Session {
	return &Session{
		Symbols: lang.NewSymbolTable(policy),
		log:     log,
	}
}

func (s *Session) Add(line string) {
	s.buffer = append(s.buffer, line)
}

// Source returns the buffered program
func (s *Session) Source() string {
	return strings.Join(s.buffer, "\n")
}

func (s *Session) Pending() bool {
	return len(s.buffer) > 0
}

// Check checks the buffered program and clears the buffer. Symbols declared
// by a failing program are discarded.
func (s *Session) Check() (string, *lang.Result, error) {
	input := s.Source()
	s.buffer = nil

	s.checks++
	s.bytes += uint64(len(input))

	result, err := lang.Check(input, lang.WithSymbols(s.Symbols.Clone()), lang.WithLogger(s.log))
	if err != nil {
		s.failures++
		s.log.Debug().Err(err).Int("check", s.checks).Msg("check failed")
		return input, nil, err
	}

	s.Symbols = result.Symbols
	s.log.Debug().Int("check", s.checks).Int("symbols", s.Symbols.Len()).Msg("check passed")
	return input, result, nil
}

// Tokens tokenizes the buffered program without consuming it
func (s *Session) Tokens() (string, TokenTable, error) {
	input := s.Source()
	tokens, err := lang.Tokenize(input)
	if err != nil {
		return input, nil, err
	}
	return input, TokenTable(tokens), nil
}

func (s *Session) SetPolicy(p lang.Policy) {
	s.Symbols.Policy = p
}

func (s *Session) Reset() {
	s.buffer = nil
	s.Symbols = lang.NewSymbolTable(s.Symbols.Policy)
}

func (s *Session) Stats() string {
	return fmt.Sprintf("%s checked (%d failed), %s read, %s",
		english.Plural(s.checks, "program", "programs"),
		s.failures,
		humanize.Bytes(s.bytes),
		english.Plural(s.Symbols.Len(), "symbol", "symbols"),
	)
}
