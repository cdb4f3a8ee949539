/*
 * params.go, part of protview.
 *
 * Copyright 2024 The protview authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


//Package params implements an ordered set of named parameters. Each
//parameter holds a number, a string or a boolean. The insertion order
//of the keys is kept, also through JSON encoding and decoding, so a
//set of parameters written to a file reads back identical.
package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind is the type of value held by a Value.
type Kind int

const (
	Invalid Kind = iota
	NumberKind
	StringKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	}
	return "invalid"
}

// Value is a tagged union of a number, a string and a boolean.
// The zero Value is invalid.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: NumberKind, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: StringKind, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// Float returns the number held, and false if v is not a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == NumberKind }

// Str returns the string held, and false if v is not a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == StringKind }

// Boolean returns the boolean held, and false if v is not a boolean.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == BoolKind }

// String returns a human-readable form of the value.
func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case StringKind:
		return v.str
	case BoolKind:
		return strconv.FormatBool(v.b)
	}
	return "<invalid>"
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NumberKind:
		return json.Marshal(v.num)
	case StringKind:
		return json.Marshal(v.str)
	case BoolKind:
		return json.Marshal(v.b)
	}
	return nil, Error{Message: "cannot encode an invalid value", deco: []string{"MarshalJSON"}}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return Error{Message: err.Error(), deco: []string{"UnmarshalJSON"}}
	}
	val, err := tokenValue(tok)
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	*v = val
	return nil
}

func tokenValue(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	}
	return Value{}, Error{Message: fmt.Sprintf("unsupported value %v, only numbers, strings and booleans are allowed", tok), deco: []string{"tokenValue"}}
}

// Params is an ordered mapping from keys to values.
// The zero value is an empty, usable, set of parameters.
type Params struct {
	keys []string
	vals map[string]Value
}

// New returns an empty set of parameters.
func New() *Params {
	return &Params{vals: make(map[string]Value)}
}

// Set sets the value for key. A new key goes after all the existing
// ones, an existing key keeps its position.
func (P *Params) Set(key string, v Value) {
	if P.vals == nil {
		P.vals = make(map[string]Value)
	}
	if _, ok := P.vals[key]; !ok {
		P.keys = append(P.keys, key)
	}
	P.vals[key] = v
}

// Get returns the value for key, and whether it was present.
func (P *Params) Get(key string) (Value, bool) {
	v, ok := P.vals[key]
	return v, ok
}

// Delete removes key. Deleting an absent key does nothing.
func (P *Params) Delete(key string) {
	if _, ok := P.vals[key]; !ok {
		return
	}
	delete(P.vals, key)
	for i, k := range P.keys {
		if k == key {
			P.keys = append(P.keys[:i], P.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of parameters.
func (P *Params) Len() int { return len(P.keys) }

// Keys returns a copy of the keys, in insertion order.
func (P *Params) Keys() []string {
	return append([]string(nil), P.keys...)
}

// Each calls fn for every parameter, in insertion order.
func (P *Params) Each(fn func(key string, v Value)) {
	for _, k := range P.keys {
		fn(k, P.vals[k])
	}
}

// MarshalJSON encodes P as a JSON object with the keys in insertion order.
func (P *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range P.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, errDecorate(err, "MarshalJSON")
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := P.vals[k].MarshalJSON()
		if err != nil {
			return nil, errDecorate(err, "MarshalJSON")
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, keeping the order of its keys.
// Any previous content of P is discarded.
func (P *Params) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return Error{Message: err.Error(), deco: []string{"UnmarshalJSON"}}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Error{Message: "parameters must be a JSON object", deco: []string{"UnmarshalJSON"}}
	}
	np := New()
	for {
		tok, err = dec.Token()
		if err == io.EOF {
			return Error{Message: "unexpected end of input", deco: []string{"UnmarshalJSON"}}
		}
		if err != nil {
			return Error{Message: err.Error(), deco: []string{"UnmarshalJSON"}}
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			break
		}
		key, ok := tok.(string)
		if !ok {
			return Error{Message: fmt.Sprintf("unexpected token %v", tok), deco: []string{"UnmarshalJSON"}}
		}
		tok, err = dec.Token()
		if err != nil {
			return Error{Message: err.Error(), deco: []string{"UnmarshalJSON"}}
		}
		v, err := tokenValue(tok)
		if err != nil {
			return errDecorate(err, "UnmarshalJSON: key "+key)
		}
		np.Set(key, v)
	}
	*P = *np
	return nil
}
