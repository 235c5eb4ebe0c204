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

// MapBuilder provides a fluent API for building Map values.
type MapBuilder struct {
	entries map[string]Value
}

// NewMapBuilder creates an empty MapBuilder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{
		entries: make(map[string]Value),
	}
}

// Set adds or replaces a key. A nil value is ignored.
func (b *MapBuilder) Set(key string, value Value) *MapBuilder {
	if value != nil {
		b.entries[key] = value
	}
	return b
}

// SetString is a convenience method for adding string values.
func (b *MapBuilder) SetString(key, value string) *MapBuilder {
	b.entries[key] = Str(value)
	return b
}

// SetInt is a convenience method for adding integer values.
func (b *MapBuilder) SetInt(key string, value int64) *MapBuilder {
	b.entries[key] = Int(value)
	return b
}

// SetBool is a convenience method for adding bool values.
func (b *MapBuilder) SetBool(key string, value bool) *MapBuilder {
	b.entries[key] = Bool(value)
	return b
}

// SetFloat is a convenience method for adding float64 values.
func (b *MapBuilder) SetFloat(key string, value float64) *MapBuilder {
	b.entries[key] = Float(value)
	return b
}

// Len returns the number of keys set so far.
func (b *MapBuilder) Len() int {
	return len(b.entries)
}

// Build constructs the Map. The builder may keep being used; later calls
// do not affect maps already built.
func (b *MapBuilder) Build() *Map {
	return NewMap(b.entries)
}
