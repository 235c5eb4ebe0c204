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

	"github.com/NVIDIA/node-facts/pkg/defaults"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

var (
	_ resolvers.ProcessorSource       = (*Collector)(nil)
	_ resolvers.MemorySource          = (*Collector)(nil)
	_ resolvers.KernelSource          = (*Collector)(nil)
	_ resolvers.OperatingSystemSource = (*Collector)(nil)
)

// Collector reads processor, memory, kernel and operating system data
// from the local host. Missing sources produce empty data, never errors.
type Collector struct {
	// ProcPath is the procfs mount point. Defaults to /proc.
	ProcPath string

	// SysPath is the sysfs mount point. Defaults to /sys.
	SysPath string

	// ReleasePaths are the os-release candidates, first existing wins.
	// Defaults to /etc/os-release then /usr/lib/os-release.
	ReleasePaths []string

	uname func() (utsname, error)
}

// utsname is the part of uname(2) the collector uses.
type utsname struct {
	sysname string
	release string
	machine string
}

func (c *Collector) procPath() string {
	if c.ProcPath == "" {
		return defaults.ProcPath
	}
	return c.ProcPath
}

func (c *Collector) sysPath() string {
	if c.SysPath == "" {
		return defaults.SysPath
	}
	return c.SysPath
}

func (c *Collector) releasePaths() []string {
	if len(c.ReleasePaths) == 0 {
		return []string{defaults.OSReleasePath, defaults.OSReleaseFallbackPath}
	}
	return c.ReleasePaths
}

func (c *Collector) readUname() utsname {
	fn := c.uname
	if fn == nil {
		fn = systemUname
	}
	u, err := fn()
	if err != nil {
		slog.Debug("uname unavailable", slog.String("error", err.Error()))
		return utsname{}
	}
	return u
}
