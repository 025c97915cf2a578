/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang_test

import (
	"strings"
	"testing"

	"github.com/dburkart/tinyc/pkg/common/parse"
	"github.com/dburkart/tinyc/pkg/lang"
)

func TestCheckDeclaration(t *testing.T) {
	result, err := lang.Check("int a;")
	if err != nil {
		t.Fatal(err)
	}

	sym, ok := result.Symbols.Lookup("a")
	if !ok {
		t.Fatal("a should be in the symbol table")
	}

	if sym.Type != "int" || sym.Value != "" {
		t.Errorf("wanted a -> (int, \"\"), got (%s, %q)", sym.Type, sym.Value)
	}
}

func TestCheckMissingSemicolon(t *testing.T) {
	_, err := lang.Check("a = 5")

	syntaxError, ok := err.(*parse.SyntaxError)
	if !ok {
		t.Fatalf("wanted *parse.SyntaxError, got %T", err)
	}

	if syntaxError.Line() != 1 {
		t.Errorf("wanted line 1, got %d", syntaxError.Line())
	}

	if syntaxError.Expected != lang.TOK_SEMICOLON.ToString() {
		t.Errorf("wanted %s, got %s", lang.TOK_SEMICOLON.ToString(), syntaxError.Expected)
	}

	if !lang.IsSyntax(err) || lang.IsLexical(err) {
		t.Error("error was misclassified")
	}
}

func TestCheckIfElse(t *testing.T) {
	input := `
		int a;
		int b;
		if (b > 10) { return b; } else { return 0; }
	`

	result, err := lang.Check(input)
	if err != nil {
		t.Fatal(err)
	}

	if result.Symbols.Len() != 2 {
		t.Errorf("wanted 2 symbols, got %d", result.Symbols.Len())
	}
}

func TestCheckLexicalError(t *testing.T) {
	_, err := lang.Check("\nx @ y;")

	lexical, ok := err.(*parse.LexicalError)
	if !ok {
		t.Fatalf("wanted *parse.LexicalError, got %T", err)
	}

	if lexical.Char != '@' || lexical.Line() != 2 {
		t.Errorf("wanted '@' on line 2, got '%c' on line %d", lexical.Char, lexical.Line())
	}

	if !lang.IsLexical(err) || lang.IsSyntax(err) {
		t.Error("error was misclassified")
	}
}

func TestCheckCommentThenDeclaration(t *testing.T) {
	result, err := lang.Check("// a comment\nint z;")
	if err != nil {
		t.Fatal(err)
	}

	sym, ok := result.Symbols.Lookup("z")
	if !ok {
		t.Fatal("z should be in the symbol table")
	}

	if sym.Line != 2 {
		t.Errorf("wanted z declared on line 2, got %d", sym.Line)
	}
}

func TestCheckWithSymbols(t *testing.T) {
	st := lang.NewSymbolTable(lang.RejectRedeclaration)

	if _, err := lang.Check("int a;", lang.WithSymbols(st)); err != nil {
		t.Fatal(err)
	}

	_, err := lang.Check("int a;", lang.WithSymbols(st))
	if !lang.IsSyntax(err) {
		t.Fatalf("redeclaring a across checks should fail, got %v", err)
	}

	if !strings.Contains(err.Error(), "already declared") {
		t.Errorf("unexpected message %s", err)
	}
}

func TestCheckWithPolicy(t *testing.T) {
	if _, err := lang.Check("int a; int a;"); err != nil {
		t.Errorf("default policy should allow redeclaration, got %s", err)
	}

	if _, err := lang.Check("int a; int a;", lang.WithPolicy(lang.RejectRedeclaration)); err == nil {
		t.Error("reject policy should fail on redeclaration")
	}
}

func TestFormatError(t *testing.T) {
	input := "int a;\na = 5 +;\nreturn a;"

	_, err := lang.Check(input)
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "Error found in program:\n" +
		"   2 | a = 5 +;\n" +
		"              ^ syntax error at line 2: expected expression but found ';' (TOK_SEMICOLON)\n"

	if got := lang.FormatError(input, err); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatLexicalError(t *testing.T) {
	input := "int a;\na = $;"

	_, err := lang.Check(input)
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "Error found in program:\n" +
		"   2 | a = $;\n" +
		"           ^ unexpected character '$' at line 2\n"

	if got := lang.FormatError(input, err); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}
