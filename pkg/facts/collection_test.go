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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
)

// stubResolver adds a fixed set of facts and counts its runs.
type stubResolver struct {
	name     string
	names    []string
	produce  map[string]Value
	err      error
	resolved bool
	runs     int
	before   func(c *Collection)
}

func (s *stubResolver) Name() string    { return s.name }
func (s *stubResolver) Names() []string { return s.names }

func (s *stubResolver) Resolve(c *Collection) error {
	if s.resolved {
		return nil
	}
	s.resolved = true
	s.runs++
	if s.before != nil {
		s.before(c)
	}
	if s.err != nil {
		return s.err
	}
	for k, v := range s.produce {
		c.AddFact(k, v)
	}
	return nil
}

func newCPUStub() *stubResolver {
	return &stubResolver{
		name:  "cpu",
		names: []string{"cpu", "cpu_count", "cpu*"},
		produce: map[string]Value{
			"cpu":       NewMap(map[string]Value{"count": Int(2)}),
			"cpu_count": Int(2),
			"cpu0":      Str("model"),
		},
	}
}

func TestCollection_ResolvesOncePerResolver(t *testing.T) {
	c := NewCollection()
	r := newCPUStub()
	require.NoError(t, c.Add(r))

	count, ok := Get[*IntegerValue](c, "cpu_count")
	require.True(t, ok)
	assert.Equal(t, int64(2), count.Value())

	root, ok := Get[*Map](c, "cpu")
	require.True(t, ok)
	assert.Equal(t, 1, root.Len())

	model, ok := Get[*StringValue](c, "cpu0")
	require.True(t, ok)
	assert.Equal(t, "model", model.Value())

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 1, r.runs, "resolver must run exactly once")
}

func TestCollection_LazyResolution(t *testing.T) {
	c := NewCollection()
	cpu := newCPUStub()
	mem := &stubResolver{
		name:    "mem",
		names:   []string{"mem"},
		produce: map[string]Value{"mem": Int(1024)},
	}
	require.NoError(t, c.Add(cpu))
	require.NoError(t, c.Add(mem))

	_, ok := c.Lookup("mem")
	require.True(t, ok)
	assert.Equal(t, 0, cpu.runs, "unrelated resolver must stay unresolved")
	assert.Equal(t, []string{"mem"}, c.Names())

	assert.Equal(t, 4, c.Size())
	assert.Equal(t, 1, cpu.runs)
	assert.Equal(t, 1, mem.runs)
}

func TestCollection_TypeMismatchIsAbsent(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(newCPUStub()))

	_, ok := Get[*StringValue](c, "cpu_count")
	assert.False(t, ok)

	_, ok = Get[*Array](c, "cpu")
	assert.False(t, ok)

	_, ok = Get[*IntegerValue](c, "unknown")
	assert.False(t, ok)
}

func TestCollection_EmptyResolverAddsNothing(t *testing.T) {
	c := NewCollection()
	r := &stubResolver{name: "empty", names: []string{"empty"}}
	require.NoError(t, c.Add(r))

	assert.Equal(t, 0, c.Size())
	_, ok := c.Lookup("empty")
	assert.False(t, ok)
	assert.Equal(t, 1, r.runs)
	assert.NoError(t, c.Err())
}

func TestCollection_AddSameResolverTwice(t *testing.T) {
	c := NewCollection()
	r := newCPUStub()
	require.NoError(t, c.Add(r))
	require.NoError(t, c.Add(r))

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 1, r.runs)
}

func TestCollection_AddConflict(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"same literal", []string{"cpu_count"}},
		{"pattern covers existing", []string{"cpu_*"}},
		{"literal inside existing pattern", []string{"cpu7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection()
			require.NoError(t, c.Add(newCPUStub()))

			other := &stubResolver{name: "other", names: tt.names}
			err := c.Add(other)
			require.Error(t, err)
			assert.True(t, facterrors.HasCode(err, facterrors.ErrCodeConflict))

			assert.Equal(t, 3, c.Size())
			assert.Equal(t, 0, other.runs, "rejected resolver must never run")
		})
	}
}

func TestCollection_AddInvalid(t *testing.T) {
	c := NewCollection()

	err := c.Add(nil)
	require.Error(t, err)
	assert.True(t, facterrors.HasCode(err, facterrors.ErrCodeInvalidRequest))

	err = c.Add(&stubResolver{name: "nameless"})
	require.Error(t, err)
	assert.True(t, facterrors.HasCode(err, facterrors.ErrCodeInvalidRequest))
}

func TestCollection_Blocklist(t *testing.T) {
	c := NewCollection(WithBlocklist("cp*"))
	r := newCPUStub()
	require.NoError(t, c.Add(r))

	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, r.runs)
}

func TestCollection_AddFactNeverOverwrites(t *testing.T) {
	c := NewCollection()
	assert.True(t, c.AddFact("cpu_count", Int(64)))
	assert.False(t, c.AddFact("cpu_count", Int(1)))
	assert.False(t, c.AddFact("nothing", nil))
	assert.False(t, c.AddFact("", Int(1)))

	r := newCPUStub()
	require.NoError(t, c.Add(r))

	count, ok := Get[*IntegerValue](c, "cpu_count")
	require.True(t, ok)
	assert.Equal(t, int64(64), count.Value(), "pre-existing fact wins")
	assert.Equal(t, 0, r.runs, "present facts do not trigger resolution")

	assert.Equal(t, 3, c.Size())
	count, _ = Get[*IntegerValue](c, "cpu_count")
	assert.Equal(t, int64(64), count.Value())
}

func TestCollection_ResolverDefect(t *testing.T) {
	c := NewCollection()
	boom := errors.New("boom")
	r := &stubResolver{name: "broken", names: []string{"broken"}, err: boom}
	require.NoError(t, c.Add(r))

	_, ok := c.Lookup("broken")
	assert.False(t, ok)
	assert.ErrorIs(t, c.Err(), boom)

	err := c.ResolveAll()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, r.runs)
}

func TestCollection_DependencyBetweenResolvers(t *testing.T) {
	c := NewCollection()
	base := &stubResolver{
		name:    "model",
		names:   []string{"hardwaremodel"},
		produce: map[string]Value{"hardwaremodel": Str("x86_64")},
	}
	dependent := &stubResolver{name: "isa", names: []string{"isa"}}
	dependent.before = func(c *Collection) {
		if v, ok := Get[*StringValue](c, "hardwaremodel"); ok {
			dependent.produce = map[string]Value{"isa": Str(v.Value())}
		}
	}
	require.NoError(t, c.Add(dependent))
	require.NoError(t, c.Add(base))

	isa, ok := Get[*StringValue](c, "isa")
	require.True(t, ok)
	assert.Equal(t, "x86_64", isa.Value())
	assert.Equal(t, 1, base.runs)
}

func TestCollection_SelfLookupTerminates(t *testing.T) {
	c := NewCollection()
	r := &stubResolver{name: "loop", names: []string{"loop"}}
	r.before = func(c *Collection) {
		_, ok := c.Lookup("loop")
		assert.False(t, ok)
	}
	require.NoError(t, c.Add(r))

	_, ok := c.Lookup("loop")
	assert.False(t, ok)
	assert.Equal(t, 1, r.runs)
}

func TestCollection_EachAndMarshal(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(newCPUStub()))
	require.NoError(t, c.ResolveAll())

	var names []string
	c.Each(func(name string, _ Value) bool {
		names = append(names, name)
		return len(names) < 2
	})
	assert.Equal(t, []string{"cpu", "cpu0"}, names)

	b, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"cpu":{"count":2},"cpu0":"model","cpu_count":2}`, string(b))
}
