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

// Well-known fact names. Structured roots hold a *Map; the rest are flat
// facts kept for consumers that predate the structured form.
const (
	// Processor facts
	Processors             = "processors"
	ProcessorCount         = "processor_count"
	PhysicalProcessorCount = "physical_processor_count"
	HardwareISA            = "hardware_isa"

	// Processor is the prefix of the per-model facts processor0, processor1, ...
	Processor = "processor"

	// Memory facts
	Memory       = "memory"
	MemorySize   = "memorysize"
	MemoryFree   = "memoryfree"
	MemorySizeMB = "memorysize_mb"
	MemoryFreeMB = "memoryfree_mb"
	SwapSize     = "swapsize"
	SwapFree     = "swapfree"
	SwapSizeMB   = "swapsize_mb"
	SwapFreeMB   = "swapfree_mb"

	// Kernel facts
	Kernel           = "kernel"
	KernelRelease    = "kernelrelease"
	KernelVersion    = "kernelversion"
	KernelMajVersion = "kernelmajversion"

	// Operating system facts
	OS                        = "os"
	OperatingSystem           = "operatingsystem"
	OSFamily                  = "osfamily"
	Architecture              = "architecture"
	HardwareModel             = "hardwaremodel"
	OperatingSystemRelease    = "operatingsystemrelease"
	OperatingSystemMajRelease = "operatingsystemmajrelease"
	LSBDistID                 = "lsbdistid"
	LSBDistCodename           = "lsbdistcodename"
	LSBDistDescription        = "lsbdistdescription"

	// SystemD facts
	SystemD        = "systemd"
	SystemDVersion = "systemd_version"
)
