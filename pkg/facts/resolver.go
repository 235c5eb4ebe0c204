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

// Resolver gathers one category of platform data and projects it into facts.
//
// Implementations must be pointer types: the collection keys its
// bookkeeping on resolver identity so a resolver shared across several fact
// names still runs once.
type Resolver interface {
	// Name identifies the resolver group (e.g. "processor") in logs, metrics
	// and blocklists.
	Name() string

	// Names lists the fact names the resolver can produce. Entries may use
	// '*' wildcards for families of names such as "processor*".
	Names() []string

	// Resolve gathers data and adds the resulting facts to the collection.
	// Calls after the first are no-ops. Absent platform data is not an
	// error; a returned error signals a defect.
	Resolve(facts *Collection) error
}
