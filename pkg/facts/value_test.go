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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestScalar_Value(t *testing.T) {
	assert.Equal(t, "isa", Str("isa").Value())
	assert.Equal(t, int64(4), Int(4).Value())
	assert.True(t, Bool(true).Value())
	assert.InDelta(t, 1.5, Float(1.5).Value(), 0.0001)
}

func TestScalar_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", Str("hello"), "hello"},
		{"integer", Int(-42), "-42"},
		{"bool", Bool(false), "false"},
		{"double", Float(3.25), "3.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same string", Str("a"), Str("a"), true},
		{"different string", Str("a"), Str("b"), false},
		{"int vs string", Int(1), Str("1"), false},
		{"int vs double", Int(1), Float(1), false},
		{"arrays equal", StringArray([]string{"a", "b"}), NewArray(Str("a"), Str("b")), true},
		{"arrays order matters", StringArray([]string{"a", "b"}), StringArray([]string{"b", "a"}), false},
		{"arrays length", StringArray([]string{"a"}), StringArray([]string{"a", "b"}), false},
		{"maps equal", NewMap(map[string]Value{"k": Int(1)}), NewMap(map[string]Value{"k": Int(1)}), true},
		{"maps differ", NewMap(map[string]Value{"k": Int(1)}), NewMap(map[string]Value{"k": Int(2)}), false},
		{"map vs array", NewMap(nil), NewArray(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestArray_TypedAccess(t *testing.T) {
	a := NewArray(Str("p1"), Int(2), nil, Bool(true))

	require.Equal(t, 3, a.Len(), "nil elements are dropped")

	s, ok := Elem[*StringValue](a, 0)
	require.True(t, ok)
	assert.Equal(t, "p1", s.Value())

	_, ok = Elem[*StringValue](a, 1)
	assert.False(t, ok, "type mismatch reads as absent")

	_, ok = Elem[*StringValue](a, 3)
	assert.False(t, ok, "out of range reads as absent")

	_, ok = Elem[*StringValue](a, -1)
	assert.False(t, ok)

	_, ok = Elem[*StringValue](nil, 0)
	assert.False(t, ok)
}

func TestMap_TypedAccess(t *testing.T) {
	m := NewMap(map[string]Value{
		"count":  Int(4),
		"isa":    Str("x86_64"),
		"models": StringArray([]string{"a"}),
		"nil":    nil,
	})

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"count", "isa", "models"}, m.Keys())

	count, ok := Field[*IntegerValue](m, "count")
	require.True(t, ok)
	assert.Equal(t, int64(4), count.Value())

	_, ok = Field[*StringValue](m, "count")
	assert.False(t, ok)

	models, ok := Field[*Array](m, "models")
	require.True(t, ok)
	assert.Equal(t, 1, models.Len())

	_, ok = Field[*IntegerValue](m, "missing")
	assert.False(t, ok)

	_, ok = Field[*IntegerValue](nil, "count")
	assert.False(t, ok)
}

func TestNewMap_CopiesInput(t *testing.T) {
	src := map[string]Value{"a": Int(1)}
	m := NewMap(src)
	src["b"] = Int(2)

	assert.Equal(t, 1, m.Len())
}

func TestValue_JSON(t *testing.T) {
	m := NewMap(map[string]Value{
		"count":  Int(4),
		"models": StringArray([]string{"p1", "p2"}),
		"ok":     Bool(true),
		"speed":  Str("10.00 GHz"),
	})

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":4,"models":["p1","p2"],"ok":true,"speed":"10.00 GHz"}`, string(b))

	assert.JSONEq(t, string(b), m.String())
}

func TestValue_YAML(t *testing.T) {
	m := NewMap(map[string]Value{
		"count":  Int(4),
		"models": StringArray([]string{"p1"}),
	})

	b, err := yaml.Marshal(m)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, 4, got["count"])
	assert.Equal(t, []any{"p1"}, got["models"])
}

func TestToValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, nil},
		{"string", "x", Str("x")},
		{"bool", true, Bool(true)},
		{"int", 7, Int(7)},
		{"int32", int32(-7), Int(-7)},
		{"uint8", uint8(200), Int(200)},
		{"uint64 small", uint64(12), Int(12)},
		{"uint64 huge", uint64(18446744073709551615), Str("18446744073709551615")},
		{"float32", float32(0.5), Float(0.5)},
		{"float64", 2.5, Float(2.5)},
		{"strings", []string{"a", "b"}, StringArray([]string{"a", "b"})},
		{"slice", []any{"a", 1}, NewArray(Str("a"), Int(1))},
		{"map", map[string]any{"a": []any{true}}, NewMap(map[string]Value{"a": NewArray(Bool(true))})},
		{"any keys", map[any]any{1: "one"}, NewMap(map[string]Value{"1": Str("one")})},
		{"value passthrough", Int(3), Int(3)},
		{"struct fallback", struct{ A int }{1}, Str("{1}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToValue(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestMapBuilder(t *testing.T) {
	b := NewMapBuilder().
		SetString("isa", "x86_64").
		SetInt("count", 4).
		SetBool("virtual", false).
		SetFloat("load", 0.25).
		Set("models", StringArray([]string{"a"})).
		Set("ignored", nil)

	assert.Equal(t, 5, b.Len())

	m := b.Build()
	b.SetInt("late", 1)

	assert.Equal(t, 5, m.Len(), "built map must not see later builder writes")
	_, ok := m.Get("late")
	assert.False(t, ok)
}
