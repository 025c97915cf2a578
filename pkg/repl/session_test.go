/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"testing"

	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/rs/zerolog"
)

func TestSessionCarriesSymbols(t *testing.T) {
	s := NewSession(lang.InsertOrUpdate, zerolog.Nop())

	s.Add("int a;")
	s.Add("a = 1;")
	if _, _, err := s.Check(); err != nil {
		t.Fatal(err)
	}

	if s.Pending() {
		t.Error("check should clear the buffer")
	}

	s.Add("int b;")
	if _, _, err := s.Check(); err != nil {
		t.Fatal(err)
	}

	if s.Symbols.Len() != 2 {
		t.Errorf("wanted 2 symbols, got %d", s.Symbols.Len())
	}

	if sym, _ := s.Symbols.Lookup("a"); sym.Value != "1" {
		t.Errorf("wanted a = 1, got '%s'", sym.Value)
	}
}

func TestSessionFailedCheckKeepsSymbols(t *testing.T) {
	s := NewSession(lang.InsertOrUpdate, zerolog.Nop())

	s.Add("int a;")
	s.Check()

	s.Add("int b;")
	s.Add("b = ;")
	input, _, err := s.Check()
	if err == nil {
		t.Fatal("expected the check to fail")
	}

	if input != "int b;\nb = ;" {
		t.Errorf("unexpected input %q", input)
	}

	if _, ok := s.Symbols.Lookup("b"); ok {
		t.Error("symbols from a failed check should be discarded")
	}

	if s.Symbols.Len() != 1 {
		t.Errorf("wanted 1 symbol, got %d", s.Symbols.Len())
	}
}

func TestSessionPolicy(t *testing.T) {
	s := NewSession(lang.InsertOrUpdate, zerolog.Nop())
	s.SetPolicy(lang.RejectRedeclaration)

	s.Add("int a;")
	s.Check()
	s.Add("char a;")
	if _, _, err := s.Check(); !lang.IsSyntax(err) {
		t.Errorf("wanted a syntax error, got %v", err)
	}

	s.Reset()
	if s.Symbols.Len() != 0 {
		t.Error("reset should clear symbols")
	}
	if s.Symbols.Policy != lang.RejectRedeclaration {
		t.Error("reset should keep the policy")
	}
}

func TestSessionTokens(t *testing.T) {
	s := NewSession(lang.InsertOrUpdate, zerolog.Nop())
	s.Add("x = 1;")

	_, tokens, err := s.Tokens()
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 5 {
		t.Errorf("wanted 5 tokens, got %d", len(tokens))
	}

	if !s.Pending() {
		t.Error("showing tokens should not consume the buffer")
	}

	s.Add("y = #;")
	if _, _, err := s.Tokens(); !lang.IsLexical(err) {
		t.Errorf("wanted a lexical error, got %v", err)
	}
}

func TestSessionStats(t *testing.T) {
	s := NewSession(lang.InsertOrUpdate, zerolog.Nop())
	s.Add("int a;")
	s.Check()
	s.Add("@")
	s.Check()

	want := "2 programs checked (1 failed), 7 B read, 1 symbol"
	if got := s.Stats(); got != want {
		t.Errorf("wanted '%s', got '%s'", want, got)
	}
}
