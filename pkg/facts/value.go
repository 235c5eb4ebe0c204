// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package facts

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// AllowedScalar is a constraint (compile-time) for what a scalar fact may hold.
type AllowedScalar interface {
	~string | ~int64 | ~bool | ~float64
}

// Value is a *runtime* interface over the three value variants: *Scalar[T],
// *Array and *Map. It is sealed; only this package implements it.
type Value interface {
	isValue()

	// Any returns the native representation: the scalar itself, []any or map[string]any.
	Any() any

	// Equal reports value-level equality.
	Equal(other Value) bool

	String() string
}

// Scalar wraps one primitive. The wrapped value is fixed at construction.
type Scalar[T AllowedScalar] struct {
	v T
}

// Scalar variants used throughout the fact store.
type (
	StringValue  = Scalar[string]
	IntegerValue = Scalar[int64]
	BooleanValue = Scalar[bool]
	DoubleValue  = Scalar[float64]
)

// Convenience constructors for each scalar type.
func Str(v string) *StringValue { return &Scalar[string]{v: v} }
func Int(v int64) *IntegerValue { return &Scalar[int64]{v: v} }
func Bool(v bool) *BooleanValue { return &Scalar[bool]{v: v} }
func Float(v float64) *DoubleValue { return &Scalar[float64]{v: v} }

func (*Scalar[T]) isValue() {}

// Value returns the wrapped primitive.
func (s *Scalar[T]) Value() T { return s.v }

func (s *Scalar[T]) Any() any { return s.v }

func (s *Scalar[T]) Equal(other Value) bool {
	o, ok := other.(*Scalar[T])
	return ok && o.v == s.v
}

// String returns the string representation of the underlying scalar value.
func (s *Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.v)
}

// MarshalJSON makes the JSON value be the underlying scalar (not an object wrapper).
func (s *Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

// MarshalYAML makes the YAML value be the underlying scalar (not an object wrapper).
func (s *Scalar[T]) MarshalYAML() (any, error) {
	return s.v, nil
}

// Array is an ordered, index-addressable sequence of values.
type Array struct {
	elems []Value
}

// NewArray creates an array holding values in order. Nil values are dropped.
func NewArray(values ...Value) *Array {
	elems := make([]Value, 0, len(values))
	for _, v := range values {
		if v != nil {
			elems = append(elems, v)
		}
	}
	return &Array{elems: elems}
}

// StringArray creates an array of string values.
func StringArray(values []string) *Array {
	elems := make([]Value, len(values))
	for i, s := range values {
		elems[i] = Str(s)
	}
	return &Array{elems: elems}
}

func (*Array) isValue() {}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Index returns the element at i, or false when i is out of range.
func (a *Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Elem returns the element at i if it exists and holds a T.
func Elem[T Value](a *Array, i int) (T, bool) {
	var zero T
	if a == nil {
		return zero, false
	}
	v, ok := a.Index(i)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func (a *Array) Any() any {
	out := make([]any, len(a.elems))
	for i, v := range a.elems {
		out[i] = v.Any()
	}
	return out
}

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(o.elems) != len(a.elems) {
		return false
	}
	for i := range a.elems {
		if !a.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	return encodeString(a.Any())
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Any())
}

func (a *Array) MarshalYAML() (any, error) {
	return a.Any(), nil
}

// Map associates unique string keys with values.
type Map struct {
	entries map[string]Value
}

// NewMap creates a map from entries. The input is copied; nil values are dropped.
func NewMap(entries map[string]Value) *Map {
	m := &Map{entries: make(map[string]Value, len(entries))}
	for k, v := range entries {
		if v != nil {
			m.entries[k] = v
		}
	}
	return m
}

func (*Map) isValue() {}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns all keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field returns the value under key if it exists and holds a T.
func Field[T Value](m *Map, key string) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	v, ok := m.entries[key]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func (m *Map) Any() any {
	out := make(map[string]any, len(m.entries))
	for k, v := range m.entries {
		out[k] = v.Any()
	}
	return out
}

func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || len(o.entries) != len(m.entries) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (m *Map) String() string {
	return encodeString(m.Any())
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Any())
}

func (m *Map) MarshalYAML() (any, error) {
	return m.Any(), nil
}

func encodeString(v any) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ToValue converts decoded native data into a Value. Integers of every width
// become IntegerValue, float32 becomes DoubleValue, []any and map[string]any
// convert recursively. Unsigned values beyond int64 and unknown types are
// stored as their string representation. A nil input yields nil.
func ToValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return nil
	case Value:
		return val
	case string:
		return Str(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint:
		return uintValue(uint64(val))
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint64:
		return uintValue(val)
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case []string:
		return StringArray(val)
	case []any:
		elems := make([]Value, 0, len(val))
		for _, e := range val {
			elems = append(elems, ToValue(e))
		}
		return NewArray(elems...)
	case map[string]any:
		entries := make(map[string]Value, len(val))
		for k, e := range val {
			entries[k] = ToValue(e)
		}
		return NewMap(entries)
	case map[any]any:
		entries := make(map[string]Value, len(val))
		for k, e := range val {
			entries[fmt.Sprintf("%v", k)] = ToValue(e)
		}
		return NewMap(entries)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

func uintValue(v uint64) Value {
	if v > math.MaxInt64 {
		return Str(fmt.Sprintf("%d", v))
	}
	return Int(int64(v))
}
