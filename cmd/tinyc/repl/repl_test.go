/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dburkart/tinyc/pkg/repl"
	"github.com/rs/zerolog"
)

func run(t *testing.T, s *repl.Session, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	writer := repl.NewOutputWriter(&out, "csv")
	completer := readline.NewPrefixCompleter(readline.PcItem(":check"))

	for _, line := range lines {
		cmd, err := repl.ParseREPLCommand([]byte(line))
		if err != nil {
			t.Fatalf("%q: %s", line, err)
		}
		dispatch(s, cmd, writer, &out, completer, zerolog.Nop())
	}
	return out.String()
}

func TestDispatchCheck(t *testing.T) {
	s := repl.NewSession(lang.InsertOrUpdate, zerolog.Nop())

	out := run(t, s, "int a;", "a = 5;", "", ":symbols")
	if !strings.HasPrefix(out, "ok\n") {
		t.Errorf("wanted ok, got %q", out)
	}
	if !strings.Contains(out, "a,int,5,1") {
		t.Errorf("wanted symbol row for a, got %q", out)
	}
}

func TestDispatchFailure(t *testing.T) {
	s := repl.NewSession(lang.InsertOrUpdate, zerolog.Nop())

	out := run(t, s, "a = 5", ":check")
	if !strings.Contains(out, "Error found in program:") {
		t.Errorf("wanted a formatted error, got %q", out)
	}
	if s.Pending() {
		t.Error("buffer should be cleared after a check")
	}
}

func TestDispatchPolicyAndReset(t *testing.T) {
	s := repl.NewSession(lang.InsertOrUpdate, zerolog.Nop())

	out := run(t, s, ":policy reject", "int a;", "", "int a;", "")
	if !strings.Contains(out, "redeclaration policy is now reject") {
		t.Errorf("missing policy message in %q", out)
	}
	if !strings.Contains(out, "already declared") {
		t.Errorf("wanted a redeclaration error, got %q", out)
	}

	run(t, s, ":reset")
	if s.Symbols.Len() != 0 {
		t.Errorf("wanted an empty table after reset, got %d symbols", s.Symbols.Len())
	}
}

func TestDispatchEmptyCheck(t *testing.T) {
	s := repl.NewSession(lang.InsertOrUpdate, zerolog.Nop())

	if out := run(t, s, "", ""); out != "" {
		t.Errorf("blank lines on an empty buffer should print nothing, got %q", out)
	}
}

type closedWriter struct{}

func (closedWriter) Write(v repl.Printable) error {
	return errors.New("writer closed")
}

func TestDispatchWriteError(t *testing.T) {
	s := repl.NewSession(lang.InsertOrUpdate, zerolog.Nop())
	s.Add("int a;")

	var out, logs bytes.Buffer
	log := zerolog.New(&logs)
	completer := readline.NewPrefixCompleter()

	for _, line := range []string{":tokens", ":symbols"} {
		cmd, err := repl.ParseREPLCommand([]byte(line))
		if err != nil {
			t.Fatal(err)
		}
		dispatch(s, cmd, closedWriter{}, &out, completer, log)
	}

	got := logs.String()
	for _, msg := range []string{"unable to write tokens", "unable to write symbols", "writer closed"} {
		if !strings.Contains(got, msg) {
			t.Errorf("wanted %q in logs, got %q", msg, got)
		}
	}
}
