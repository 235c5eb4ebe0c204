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

	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

// CollectMemory reads system memory and swap sizes from /proc/meminfo.
func (c *Collector) CollectMemory(*facts.Collection) (resolvers.MemoryData, error) {
	slog.Debug("collecting memory data", slog.String("proc", c.procPath()))
	return c.readMemory(), nil
}

// CollectKernel reads the kernel name and release from uname(2).
func (c *Collector) CollectKernel(*facts.Collection) (resolvers.KernelData, error) {
	u := c.readUname()
	return resolvers.KernelData{Name: u.sysname, Release: u.release}, nil
}
