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

package os

import (
	"log/slog"

	"github.com/klauspost/cpuid/v2"

	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

// detectCPU reads the processor through the CPUID instruction. It backs up
// procfs on hosts where /proc is not mounted or not Linux.
var detectCPU = cpuidProcessors

// CollectProcessors reads /proc/cpuinfo and sysfs cpufreq data. The ISA comes
// from the hardwaremodel fact when another resolver already knows it.
func (c *Collector) CollectProcessors(fc *facts.Collection) (resolvers.ProcessorData, error) {
	slog.Debug("collecting processor data", slog.String("proc", c.procPath()))

	d := c.readProcessors()
	if d.LogicalCount == 0 {
		slog.Debug("no processors in procfs, falling back to cpuid")
		fallback := detectCPU()
		fallback.PhysicalCount = d.PhysicalCount
		if d.Speed > 0 {
			fallback.Speed = d.Speed
		}
		d = fallback
	}
	d.ISA = c.isa(fc)

	return d, nil
}

func (c *Collector) isa(fc *facts.Collection) string {
	if fc != nil {
		if v, ok := facts.Get[*facts.StringValue](fc, facts.HardwareModel); ok {
			return v.Value()
		}
	}
	return c.readUname().machine
}

func cpuidProcessors() resolvers.ProcessorData {
	cpu := cpuid.CPU
	d := resolvers.ProcessorData{
		LogicalCount: cpu.LogicalCores,
		Speed:        cpu.Hz,
	}
	if cpu.BrandName != "" && cpu.LogicalCores > 0 {
		d.Models = make([]string, cpu.LogicalCores)
		for i := range d.Models {
			d.Models[i] = cpu.BrandName
		}
	}
	return d
}
