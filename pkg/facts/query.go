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
	"strconv"
	"strings"
)

// Query resolves a dotted path such as "processors.models.1". The first
// segment names a fact; each later segment selects a map key or an array
// index. Map keys that contain dots, such as unit names, match when the
// joined segments name the key exactly; the longest such key wins.
func (c *Collection) Query(path string) (Value, bool) {
	if v, ok := c.Lookup(path); ok {
		return v, true
	}

	segments := strings.Split(path, ".")
	v, ok := c.Lookup(segments[0])
	if !ok {
		return nil, false
	}
	return walk(v, segments[1:])
}

func walk(v Value, segments []string) (Value, bool) {
	if len(segments) == 0 {
		return v, true
	}
	switch cur := v.(type) {
	case *Map:
		for n := len(segments); n > 0; n-- {
			child, ok := cur.Get(strings.Join(segments[:n], "."))
			if !ok {
				continue
			}
			if found, ok := walk(child, segments[n:]); ok {
				return found, true
			}
		}
	case *Array:
		i, err := strconv.Atoi(segments[0])
		if err != nil {
			return nil, false
		}
		if child, ok := cur.Index(i); ok {
			return walk(child, segments[1:])
		}
	}
	return nil, false
}

// Select resolves the facts matching patterns and returns them as native
// values keyed by name. Patterns without wildcards are answered through
// Query, so dotted paths select nested values. With no patterns every fact
// is returned.
func (c *Collection) Select(patterns ...string) map[string]any {
	if len(patterns) == 0 {
		c.resolveAll()
		return c.native()
	}

	out := make(map[string]any)
	for _, p := range patterns {
		if !strings.Contains(p, "*") {
			if v, ok := c.Query(p); ok {
				out[p] = v.Any()
			}
			continue
		}
		for _, r := range c.resolvers {
			for _, name := range r.Names() {
				if namesOverlap(name, p) {
					c.run(r)
					break
				}
			}
		}
		for name, v := range c.facts {
			if MatchName(name, p) {
				out[name] = v.Any()
			}
		}
	}
	return out
}
