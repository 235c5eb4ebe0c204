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
	stderrors "errors"
	"log/slog"
	"sort"
	"time"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
)

// claim records that a resolver produces the facts matching pattern.
type claim struct {
	pattern  string
	resolver Resolver
}

// Collection is the fact store. It owns the registered resolvers, runs them
// on demand and keeps every fact they produce.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	resolvers []Resolver
	claims    []claim
	resolved  map[Resolver]bool
	facts     map[string]Value
	blocklist []string
	errs      []error
}

// Option configures a Collection.
type Option func(*Collection)

// WithBlocklist skips resolvers whose Name matches any of the patterns.
func WithBlocklist(patterns ...string) Option {
	return func(c *Collection) {
		c.blocklist = append(c.blocklist, patterns...)
	}
}

// NewCollection creates an empty collection.
func NewCollection(opts ...Option) *Collection {
	c := &Collection{
		resolved: make(map[Resolver]bool),
		facts:    make(map[string]Value),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers r as the producer of every name it reports. Adding the same
// resolver again is a no-op. A name already claimed by a different resolver
// is rejected with ErrCodeConflict, leaving the collection unchanged.
func (c *Collection) Add(r Resolver) error {
	if r == nil {
		return facterrors.New(facterrors.ErrCodeInvalidRequest, "resolver cannot be nil")
	}
	for _, existing := range c.resolvers {
		if existing == r {
			return nil
		}
	}
	if MatchAny(r.Name(), c.blocklist) {
		slog.Debug("resolver blocked", slog.String("resolver", r.Name()))
		return nil
	}

	names := r.Names()
	if len(names) == 0 {
		return facterrors.NewWithContext(facterrors.ErrCodeInvalidRequest,
			"resolver produces no facts", map[string]any{"resolver": r.Name()})
	}

	for _, name := range names {
		for _, cl := range c.claims {
			if namesOverlap(name, cl.pattern) {
				return facterrors.NewWithContext(facterrors.ErrCodeConflict,
					"fact name already claimed by another resolver",
					map[string]any{
						"fact":     name,
						"resolver": r.Name(),
						"owner":    cl.resolver.Name(),
						"claimed":  cl.pattern,
					})
			}
		}
	}

	for _, name := range names {
		c.claims = append(c.claims, claim{pattern: name, resolver: r})
	}
	c.resolvers = append(c.resolvers, r)
	return nil
}

// AddFact stores a fact directly. Existing facts are never replaced: it
// returns false when name is already present or value is nil.
func (c *Collection) AddFact(name string, value Value) bool {
	if name == "" || value == nil {
		return false
	}
	if _, ok := c.facts[name]; ok {
		return false
	}
	c.facts[name] = value
	factsRealized.Set(float64(len(c.facts)))
	return true
}

// Lookup resolves the producers of name and returns its value.
func (c *Collection) Lookup(name string) (Value, bool) {
	if v, ok := c.facts[name]; ok {
		return v, true
	}
	for _, r := range c.producers(name) {
		c.run(r)
	}
	v, ok := c.facts[name]
	return v, ok
}

// Get returns the fact name if it exists and holds a T. Resolution defects
// surface as absence here and are reported by Err.
func Get[T Value](c *Collection, name string) (T, bool) {
	var zero T
	v, ok := c.Lookup(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Size realizes every registered resolver and returns the number of facts.
func (c *Collection) Size() int {
	c.resolveAll()
	return len(c.facts)
}

// ResolveAll runs every registered resolver that has not yet run and
// returns the accumulated resolver defects, if any.
func (c *Collection) ResolveAll() error {
	c.resolveAll()
	return c.Err()
}

// Err returns the defects reported by resolvers so far, joined.
func (c *Collection) Err() error {
	return stderrors.Join(c.errs...)
}

// Names returns the names of all realized facts in sorted order without
// triggering resolution.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.facts))
	for name := range c.facts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every realized fact in name order until fn returns false.
func (c *Collection) Each(fn func(name string, value Value) bool) {
	for _, name := range c.Names() {
		if !fn(name, c.facts[name]) {
			return
		}
	}
}

// MarshalJSON encodes every realized fact as one JSON object.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.native())
}

// MarshalYAML encodes every realized fact as one YAML mapping.
func (c *Collection) MarshalYAML() (any, error) {
	return c.native(), nil
}

func (c *Collection) native() map[string]any {
	out := make(map[string]any, len(c.facts))
	for name, v := range c.facts {
		out[name] = v.Any()
	}
	return out
}

func (c *Collection) resolveAll() {
	// Index-based: resolvers added during a run are picked up too.
	for i := 0; i < len(c.resolvers); i++ {
		c.run(c.resolvers[i])
	}
}

// producers returns the distinct resolvers claiming name, in registration order.
func (c *Collection) producers(name string) []Resolver {
	var out []Resolver
	for _, cl := range c.claims {
		if !MatchName(name, cl.pattern) {
			continue
		}
		dup := false
		for _, r := range out {
			if r == cl.resolver {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cl.resolver)
		}
	}
	return out
}

// run invokes r once per collection. r is marked before it runs so a lookup
// from inside its own data gathering sees absence instead of recursing.
func (c *Collection) run(r Resolver) {
	if c.resolved[r] {
		return
	}
	c.resolved[r] = true

	name := r.Name()
	before := len(c.facts)
	start := time.Now()
	err := r.Resolve(c)
	resolverDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		resolverRunsTotal.WithLabelValues(name, "error").Inc()
		slog.Error("resolver failed",
			slog.String("resolver", name),
			slog.String("error", err.Error()))
		c.errs = append(c.errs, err)
		return
	}

	resolverRunsTotal.WithLabelValues(name, "success").Inc()
	slog.Debug("resolver finished",
		slog.String("resolver", name),
		slog.Int("facts", len(c.facts)-before),
		slog.Duration("duration", time.Since(start)))
}
