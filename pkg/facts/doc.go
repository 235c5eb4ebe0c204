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

// Package facts provides the fact store and the resolver contract.
//
// # Overview
//
// A Collection holds named facts. Facts are produced lazily by resolvers: the
// first lookup of a name runs the resolver registered for it, and that single
// run adds every fact the resolver knows about. A resolver runs at most once
// per collection no matter how many of its facts are requested.
//
// # Values
//
// Fact values form a small sealed algebra:
//
//	*Scalar[T]  // StringValue, IntegerValue, BooleanValue, DoubleValue
//	*Array      // ordered, index-addressable
//	*Map        // string keys
//
// Values are immutable. Typed retrieval never fails loudly; a mismatch reads
// as absence:
//
//	count, ok := facts.Get[*facts.IntegerValue](c, facts.ProcessorCount)
//	procs, ok := facts.Get[*facts.Map](c, facts.Processors)
//	isa, ok := facts.Field[*facts.StringValue](procs, "isa")
//	model, ok := facts.Elem[*facts.StringValue](models, 0)
//
// # Structured and Flat Facts
//
// Resolvers write two views of the same data: a structured root such as
// "processors" holding a *Map, and flat facts such as "processor_count" for
// consumers that predate the structured form. Both come from one pass over
// one data value, so they cannot disagree.
//
// # Usage
//
//	c := facts.NewCollection(facts.WithBlocklist("systemd"))
//	if err := c.Add(resolvers.NewProcessorResolver(src)); err != nil {
//	    return err
//	}
//
//	v, ok := c.Query("processors.models.0")
//
// # Errors
//
// Missing platform data is never an error. A resolver that returns an error
// reports a defect: the collection logs it, keeps it for Err and ResolveAll,
// and the affected facts read as absent. Registering two resolvers for the
// same fact name fails with ErrCodeConflict.
package facts
