// SPDX-License-Identifier: Apache-2.0

// Package reftable implements the three parallel interning tables AMF3
// shares between writer and reader — strings, complex values, and class
// traits. All three follow the same check-cache-first, insert-if-absent
// shape: intern an encountered value keyed by content or identity, and
// return its existing index on a repeat.
package reftable

import "fmt"

// MaxEntries is the largest number of entries any table may hold — AMF3
// reference indices are U29 values, so indices are bounded to [0, 2^29).
const MaxEntries = 1 << 29

// ErrOverflow is returned by Intern when a table has reached MaxEntries.
var ErrOverflow = fmt.Errorf("reftable: reference table overflow")

// Strings interns nonempty strings by byte content. The empty string is
// never interned on the wire — callers simply never
// call Intern for it.
type Strings struct {
	index map[string]int
	order []string
}

// NewStrings returns an empty string table.
func NewStrings() *Strings {
	return &Strings{index: make(map[string]int)}
}

// Intern returns the index of s, inserting it at the next index if this is
// its first occurrence. The returned bool is true when s was newly
// inserted (the caller must then emit the inline payload).
func (t *Strings) Intern(s string) (index int, isNew bool, err error) {
	if idx, ok := t.index[s]; ok {
		return idx, false, nil
	}
	if len(t.order) >= MaxEntries {
		return 0, false, ErrOverflow
	}
	idx := len(t.order)
	t.index[s] = idx
	t.order = append(t.order, s)
	return idx, true, nil
}

// Register inserts s (read from the wire) at the next index without a
// lookup, mirroring the decode-side "always append, never search" use.
func (t *Strings) Register(s string) {
	t.order = append(t.order, s)
}

// Get returns the string at index, or false if it is not yet defined.
func (t *Strings) Get(index int) (string, bool) {
	if index < 0 || index >= len(t.order) {
		return "", false
	}
	return t.order[index], true
}

// Values interns complex values (DATE, ARRAY, OBJECT, VECTOR_*,
// DICTIONARY, and blob types) by identity rather than content: two
// distinct host objects that happen to look alike are never the same
// wire reference. Go pointer types satisfy this naturally under `==`.
type Values struct {
	index map[any]int
	order []any
}

// NewValues returns an empty complex-value table.
func NewValues() *Values {
	return &Values{index: make(map[any]int)}
}

// Intern returns the index of v by identity, inserting it at the next
// index on first sight. The caller must insert *before* recursing into
// v's contents, so that self-references within the payload resolve to
// a back-reference instead of recursing forever.
func (t *Values) Intern(v any) (index int, isNew bool, err error) {
	if idx, ok := t.index[v]; ok {
		return idx, false, nil
	}
	if len(t.order) >= MaxEntries {
		return 0, false, ErrOverflow
	}
	idx := len(t.order)
	t.index[v] = idx
	t.order = append(t.order, v)
	return idx, true, nil
}

// Register inserts v at the next index without a lookup (decode side).
func (t *Values) Register(v any) int {
	idx := len(t.order)
	t.order = append(t.order, v)
	return idx
}

// Get returns the value at index, or false if it is not yet defined.
func (t *Values) Get(index int) (any, bool) {
	if index < 0 || index >= len(t.order) {
		return nil, false
	}
	return t.order[index], true
}

// Traits interns class descriptors by identity of the descriptor record,
// not by structural equality of class name and member list — two distinct
// traits records with identical fields still get distinct wire entries.
type Traits struct {
	index map[any]int
	order []any
}

// NewTraits returns an empty traits table.
func NewTraits() *Traits {
	return &Traits{index: make(map[any]int)}
}

// Intern returns the index of tr by identity, inserting it on first sight.
func (t *Traits) Intern(tr any) (index int, isNew bool, err error) {
	if idx, ok := t.index[tr]; ok {
		return idx, false, nil
	}
	if len(t.order) >= MaxEntries {
		return 0, false, ErrOverflow
	}
	idx := len(t.order)
	t.index[tr] = idx
	t.order = append(t.order, tr)
	return idx, true, nil
}

// Register inserts tr at the next index without a lookup (decode side).
func (t *Traits) Register(tr any) int {
	idx := len(t.order)
	t.order = append(t.order, tr)
	return idx
}

// Get returns the traits record at index, or false if undefined.
func (t *Traits) Get(index int) (any, bool) {
	if index < 0 || index >= len(t.order) {
		return nil, false
	}
	return t.order[index], true
}
