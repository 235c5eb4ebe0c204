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
	"fmt"

	"github.com/NVIDIA/node-facts/pkg/facts"
)

// MemoryData holds memory sizes in bytes. Zero means unknown.
type MemoryData struct {
	MemTotal     uint64
	MemAvailable uint64
	SwapTotal    uint64
	SwapFree     uint64
}

// IsEmpty reports whether neither system memory nor swap was found.
func (d MemoryData) IsEmpty() bool {
	return d.MemTotal == 0 && d.SwapTotal == 0
}

// Validate rejects free amounts larger than the totals they belong to.
func (d MemoryData) Validate() error {
	if d.MemAvailable > d.MemTotal {
		return fmt.Errorf("available memory %d exceeds total %d", d.MemAvailable, d.MemTotal)
	}
	if d.SwapFree > d.SwapTotal {
		return fmt.Errorf("free swap %d exceeds total %d", d.SwapFree, d.SwapTotal)
	}
	return nil
}

// MemorySource gathers memory data from the platform.
type MemorySource interface {
	CollectMemory(c *facts.Collection) (MemoryData, error)
}

// MemorySourceFunc adapts a function to MemorySource.
type MemorySourceFunc func(c *facts.Collection) (MemoryData, error)

// CollectMemory calls f(c).
func (f MemorySourceFunc) CollectMemory(c *facts.Collection) (MemoryData, error) {
	return f(c)
}

// NewMemoryResolver returns the resolver for the "memory" fact and the
// memorysize/memoryfree/swapsize/swapfree flat facts.
func NewMemoryResolver(src MemorySource) facts.Resolver {
	return &resolver[MemoryData]{
		name: "memory",
		names: []string{
			facts.Memory,
			facts.MemorySize,
			facts.MemoryFree,
			facts.MemorySizeMB,
			facts.MemoryFreeMB,
			facts.SwapSize,
			facts.SwapFree,
			facts.SwapSizeMB,
			facts.SwapFreeMB,
		},
		collect: src.CollectMemory,
		project: projectMemory,
	}
}

func projectMemory(d MemoryData, c *facts.Collection) {
	root := facts.NewMapBuilder()

	if d.MemTotal > 0 {
		root.Set("system", usage(d.MemTotal, d.MemAvailable))
		c.AddFact(facts.MemorySize, facts.Str(FormatBytes(d.MemTotal)))
		c.AddFact(facts.MemoryFree, facts.Str(FormatBytes(d.MemAvailable)))
		c.AddFact(facts.MemorySizeMB, facts.Float(toMB(d.MemTotal)))
		c.AddFact(facts.MemoryFreeMB, facts.Float(toMB(d.MemAvailable)))
	}

	if d.SwapTotal > 0 {
		root.Set("swap", usage(d.SwapTotal, d.SwapFree))
		c.AddFact(facts.SwapSize, facts.Str(FormatBytes(d.SwapTotal)))
		c.AddFact(facts.SwapFree, facts.Str(FormatBytes(d.SwapFree)))
		c.AddFact(facts.SwapSizeMB, facts.Float(toMB(d.SwapTotal)))
		c.AddFact(facts.SwapFreeMB, facts.Float(toMB(d.SwapFree)))
	}

	c.AddFact(facts.Memory, root.Build())
}

// usage builds the total/available/used map for one memory pool; total > 0.
func usage(total, available uint64) *facts.Map {
	used := total - available
	return facts.NewMapBuilder().
		SetString("total", FormatBytes(total)).
		SetInt("total_bytes", int64(total)).
		SetString("available", FormatBytes(available)).
		SetInt("available_bytes", int64(available)).
		SetString("used", FormatBytes(used)).
		SetInt("used_bytes", int64(used)).
		SetString("capacity", fmt.Sprintf("%.2f%%", float64(used)/float64(total)*100)).
		Build()
}
