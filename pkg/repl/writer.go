/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dburkart/tinyc/pkg/common/parse"
	"github.com/olekukonko/tablewriter"
)

// Printable is anything which can be shown as rows under a header
type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

// Formats lists the names accepted by NewOutputWriter
var Formats = []string{"text", "csv", "json"}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return err
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) error {
	headers := []any{}
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return err
	}
	return table.Render()
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	return enc.Encode(v)
}

// TokenTable shows a token sequence one token per row
type TokenTable []parse.Token

func (t TokenTable) Headers() []string {
	return []string{"Line", "Type", "Lexeme"}
}

func (t TokenTable) Values() [][]string {
	ret := [][]string{}
	for _, tok := range t {
		ret = append(ret, []string{strconv.Itoa(tok.Location.Line), tok.Type.ToString(), tok.Lexeme})
	}
	return ret
}

type jsonToken struct {
	Line   int    `json:"line"`
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
}

func (t TokenTable) MarshalJSON() ([]byte, error) {
	ret := make([]jsonToken, 0, len(t))
	for _, tok := range t {
		ret = append(ret, jsonToken{Line: tok.Location.Line, Type: tok.Type.ToString(), Lexeme: tok.Lexeme})
	}
	return json.Marshal(ret)
}
