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
	"strings"

	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/version"
)

// KernelData describes the running kernel. Empty strings mean unknown.
type KernelData struct {
	// Name is the kernel name, e.g. "Linux".
	Name string
	// Release is the full kernel release, e.g. "6.8.0-45-generic".
	Release string
}

// IsEmpty reports whether no field is set.
func (d KernelData) IsEmpty() bool {
	return d.Name == "" && d.Release == ""
}

// Validate accepts any kernel data.
func (d KernelData) Validate() error {
	return nil
}

// KernelSource gathers kernel data from the platform.
type KernelSource interface {
	CollectKernel(c *facts.Collection) (KernelData, error)
}

// KernelSourceFunc adapts a function to KernelSource.
type KernelSourceFunc func(c *facts.Collection) (KernelData, error)

// CollectKernel calls f(c).
func (f KernelSourceFunc) CollectKernel(c *facts.Collection) (KernelData, error) {
	return f(c)
}

// NewKernelResolver returns the resolver for the flat kernel facts. The
// kernel has no structured root.
func NewKernelResolver(src KernelSource) facts.Resolver {
	return &resolver[KernelData]{
		name: "kernel",
		names: []string{
			facts.Kernel,
			facts.KernelRelease,
			facts.KernelVersion,
			facts.KernelMajVersion,
		},
		collect: src.CollectKernel,
		project: projectKernel,
	}
}

func projectKernel(d KernelData, c *facts.Collection) {
	if d.Name != "" {
		c.AddFact(facts.Kernel, facts.Str(d.Name))
	}
	if d.Release == "" {
		return
	}

	c.AddFact(facts.KernelRelease, facts.Str(d.Release))
	kernelVersion, _, _ := strings.Cut(d.Release, "-")
	c.AddFact(facts.KernelVersion, facts.Str(kernelVersion))
	c.AddFact(facts.KernelMajVersion, facts.Str(majorMinor(kernelVersion)))
}

// majorMinor keeps the first two dot-separated components of v.
func majorMinor(v string) string {
	if parsed, err := version.ParseVersion(v); err == nil {
		return parsed.Truncate(2).String()
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}
