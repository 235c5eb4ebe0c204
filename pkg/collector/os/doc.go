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

// Package os reads processor, memory, kernel and operating system data
// from the local host.
//
// Collector implements the processor, memory, kernel and operating system
// sources of package resolvers, so the same value can back all four:
//
//	c := &os.Collector{}
//	col := facts.NewCollection()
//	_ = col.Add(resolvers.NewProcessorResolver(c))
//	_ = col.Add(resolvers.NewMemoryResolver(c))
//
// # Data Sources
//
//   - /proc/cpuinfo: logical processors, models, physical ids (prometheus/procfs)
//   - /sys/devices/system/cpu: package topology and cpuinfo_max_freq (procfs/sysfs)
//   - /proc/meminfo: memory and swap sizes (prometheus/procfs)
//   - uname(2): kernel name, release and machine (golang.org/x/sys/unix)
//   - /etc/os-release, falling back to /usr/lib/os-release
//
// On hosts without procfs the processor source falls back to CPUID
// (klauspost/cpuid). ProcPath, SysPath and ReleasePaths point the collector
// at another tree, which is how the tests run against testdata.
//
// # Error Handling
//
// Unreadable or missing sources are absence: the affected fields stay zero
// and the reason is logged at debug level. The Collect methods never return
// an error for platform conditions.
package os
