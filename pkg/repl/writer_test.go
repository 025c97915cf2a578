/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dburkart/tinyc/pkg/lang"
)

func testTable() *lang.SymbolTable {
	st := lang.NewSymbolTable(lang.InsertOrUpdate)
	st.Declare("b", "int", "a + 10", 2)
	st.Declare("a", "float", "", 1)
	return st
}

func TestCSVWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewOutputWriter(buf, "csv")

	if err := w.Write(testTable()); err != nil {
		t.Fatal(err)
	}

	want := "Name,Type,Value,Line\na,float,,1\nb,int,a + 10,2\n"
	if buf.String() != want {
		t.Errorf("wanted %q, got %q", want, buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewOutputWriter(buf, "json")

	tokens, err := lang.Tokenize("a;")
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Write(TokenTable(tokens)); err != nil {
		t.Fatal(err)
	}

	want := `[{"line":1,"type":"TOK_IDENTIFIER","lexeme":"a"},{"line":1,"type":"TOK_SEMICOLON","lexeme":";"},{"line":1,"type":"TOK_EOF","lexeme":""}]` + "\n"
	if buf.String() != want {
		t.Errorf("wanted %s, got %s", want, buf.String())
	}
}

func TestTextWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewOutputWriter(buf, "text")

	if err := w.Write(testTable()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, s := range []string{"a + 10", "float"} {
		if !strings.Contains(out, s) {
			t.Errorf("table output is missing %q:\n%s", s, out)
		}
	}
}
