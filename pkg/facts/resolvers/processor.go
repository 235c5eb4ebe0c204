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
	"errors"
	"fmt"
	"strconv"

	"github.com/NVIDIA/node-facts/pkg/facts"
)

// ProcessorData is what a processor collector found. Zero values mean unknown.
type ProcessorData struct {
	// ISA is the instruction set architecture name.
	ISA string
	// LogicalCount is the number of logical processors.
	LogicalCount int
	// PhysicalCount is the number of physical packages.
	PhysicalCount int
	// Models lists one model name per logical processor, in processor order.
	Models []string
	// Speed is the clock speed in hertz.
	Speed int64
}

// IsEmpty reports whether no field is set.
func (d ProcessorData) IsEmpty() bool {
	return d.ISA == "" && d.LogicalCount == 0 && d.PhysicalCount == 0 &&
		len(d.Models) == 0 && d.Speed == 0
}

// Validate rejects negative counts and speeds.
func (d ProcessorData) Validate() error {
	if d.LogicalCount < 0 || d.PhysicalCount < 0 {
		return fmt.Errorf("negative processor count (logical %d, physical %d)", d.LogicalCount, d.PhysicalCount)
	}
	if d.Speed < 0 {
		return errors.New("negative processor speed")
	}
	return nil
}

// ProcessorSource gathers processor data from the platform.
type ProcessorSource interface {
	CollectProcessors(c *facts.Collection) (ProcessorData, error)
}

// ProcessorSourceFunc adapts a function to ProcessorSource.
type ProcessorSourceFunc func(c *facts.Collection) (ProcessorData, error)

// CollectProcessors calls f(c).
func (f ProcessorSourceFunc) CollectProcessors(c *facts.Collection) (ProcessorData, error) {
	return f(c)
}

// NewProcessorResolver returns the resolver for the "processors" fact and
// its flat counterparts: processor_count, physical_processor_count,
// hardware_isa and processor0..processorN.
func NewProcessorResolver(src ProcessorSource) facts.Resolver {
	return &resolver[ProcessorData]{
		name: "processor",
		names: []string{
			facts.Processors,
			facts.ProcessorCount,
			facts.PhysicalProcessorCount,
			facts.HardwareISA,
			facts.Processor + "*",
		},
		collect: src.CollectProcessors,
		project: projectProcessors,
	}
}

func projectProcessors(d ProcessorData, c *facts.Collection) {
	root := facts.NewMapBuilder()

	if d.LogicalCount > 0 {
		root.SetInt("count", int64(d.LogicalCount))
		c.AddFact(facts.ProcessorCount, facts.Int(int64(d.LogicalCount)))
	}

	if d.PhysicalCount > 0 {
		root.SetInt("physicalcount", int64(d.PhysicalCount))
		c.AddFact(facts.PhysicalProcessorCount, facts.Int(int64(d.PhysicalCount)))
	}

	if d.ISA != "" {
		root.SetString("isa", d.ISA)
		c.AddFact(facts.HardwareISA, facts.Str(d.ISA))
	}

	if len(d.Models) > 0 {
		root.Set("models", facts.StringArray(d.Models))
		for i, model := range d.Models {
			c.AddFact(facts.Processor+strconv.Itoa(i), facts.Str(model))
		}
	}

	if d.Speed > 0 {
		root.SetString("speed", FormatFrequency(d.Speed))
	}

	c.AddFact(facts.Processors, root.Build())
}
