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

package resolvers

import (
	"log/slog"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/facts"
)

// dataset is the intermediate result a source hands to a projection.
type dataset interface {
	// IsEmpty reports whether the collector determined nothing at all.
	IsEmpty() bool

	// Validate rejects data no collector should ever produce.
	Validate() error
}

// resolver drives the collect-then-project cycle shared by every resolver
// in this package.
type resolver[D dataset] struct {
	name     string
	names    []string
	collect  func(*facts.Collection) (D, error)
	project  func(D, *facts.Collection)
	resolved bool
}

func (r *resolver[D]) Name() string {
	return r.name
}

func (r *resolver[D]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Resolve gathers data once and, when any was found, writes the structured
// and flat facts in a single pass.
func (r *resolver[D]) Resolve(c *facts.Collection) error {
	if r.resolved {
		return nil
	}
	r.resolved = true

	data, err := r.collect(c)
	if err != nil {
		return facterrors.WrapWithContext(facterrors.ErrCodeResolver,
			"failed to collect data", err, map[string]any{"resolver": r.name})
	}
	if data.IsEmpty() {
		slog.Debug("no data found", slog.String("resolver", r.name))
		return nil
	}
	if err := data.Validate(); err != nil {
		return facterrors.WrapWithContext(facterrors.ErrCodeResolver,
			"invalid data", err, map[string]any{"resolver": r.name})
	}

	r.project(data, c)
	return nil
}
