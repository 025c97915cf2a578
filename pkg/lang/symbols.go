/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lang

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Policy decides what happens when a name is declared more than once
type Policy int

const (
	// InsertOrUpdate inserts first declarations and overwrites later ones
	InsertOrUpdate Policy = iota
	// RejectRedeclaration fails any declaration of a name already present
	RejectRedeclaration
)

func (p Policy) String() string {
	switch p {
	case InsertOrUpdate:
		return "insert"
	case RejectRedeclaration:
		return "reject"
	}
	return "unknown"
}

// ParsePolicy maps the configuration spelling of a policy to its value
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "insert", "update":
		return InsertOrUpdate, nil
	case "reject":
		return RejectRedeclaration, nil
	}
	return InsertOrUpdate, fmt.Errorf("unknown redeclaration policy %s", strconv.Quote(s))
}

type Symbol struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

type RedeclarationError struct {
	Name     string
	Previous Symbol
}

func (r *RedeclarationError) Error() string {
	return fmt.Sprintf("'%s' already declared as %s at line %d", r.Name, r.Previous.Type, r.Previous.Line)
}

type SymbolTable struct {
	Policy  Policy
	entries map[string]Symbol
}

func NewSymbolTable(policy Policy) *SymbolTable {
	return &SymbolTable{
		Policy:  policy,
		entries: make(map[string]Symbol),
	}
}

// Declare records name with its type and value according to the table's
// Policy.
func (st *SymbolTable) Declare(name, typ, value string, line int) error {
	if st.entries == nil {
		st.entries = make(map[string]Symbol)
	}

	if prev, ok := st.entries[name]; ok && st.Policy == RejectRedeclaration {
		return &RedeclarationError{Name: name, Previous: prev}
	}

	st.entries[name] = Symbol{Name: name, Type: typ, Value: value, Line: line}
	return nil
}

// Assign sets the value of an already declared name. It reports whether the
// name was present.
func (st *SymbolTable) Assign(name, value string) bool {
	sym, ok := st.entries[name]
	if !ok {
		return false
	}
	sym.Value = value
	st.entries[name] = sym
	return true
}

func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := st.entries[name]
	return sym, ok
}

func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// Symbols returns every entry ordered by name
func (st *SymbolTable) Symbols() []Symbol {
	ret := make([]Symbol, 0, len(st.entries))
	for _, v := range st.entries {
		ret = append(ret, v)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret
}

func (st *SymbolTable) Headers() []string {
	return []string{"Name", "Type", "Value", "Line"}
}

func (st *SymbolTable) Values() [][]string {
	ret := [][]string{}
	for _, sym := range st.Symbols() {
		ret = append(ret, []string{sym.Name, sym.Type, sym.Value, strconv.Itoa(sym.Line)})
	}
	return ret
}

func (st *SymbolTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(st.Symbols())
}

// Clone returns a copy of the table which shares no state with st
func (st *SymbolTable) Clone() *SymbolTable {
	ret := NewSymbolTable(st.Policy)
	for k, v := range st.entries {
		ret.entries[k] = v
	}
	return ret
}
