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

//go:build linux

package os

import (
	"log/slog"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"

	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

func (c *Collector) readMemory() resolvers.MemoryData {
	pfs, err := procfs.NewFS(c.procPath())
	if err != nil {
		slog.Debug("procfs unavailable", slog.String("error", err.Error()))
		return resolvers.MemoryData{}
	}
	mi, err := pfs.Meminfo()
	if err != nil {
		slog.Debug("failed to read meminfo", slog.String("error", err.Error()))
		return resolvers.MemoryData{}
	}

	d := resolvers.MemoryData{
		MemTotal:     kiB(mi.MemTotal),
		MemAvailable: kiB(mi.MemAvailable),
		SwapTotal:    kiB(mi.SwapTotal),
		SwapFree:     kiB(mi.SwapFree),
	}
	// Kernels before 3.14 lack MemAvailable.
	if mi.MemAvailable == nil {
		d.MemAvailable = kiB(mi.MemFree) + kiB(mi.Buffers) + kiB(mi.Cached)
	}
	if d.MemAvailable > d.MemTotal {
		d.MemAvailable = d.MemTotal
	}
	return d
}

// kiB converts a meminfo kB field to bytes; a missing field is 0.
func kiB(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v * 1024
}

func systemUname() (utsname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return utsname{}, err
	}
	return utsname{
		sysname: unix.ByteSliceToString(u.Sysname[:]),
		release: unix.ByteSliceToString(u.Release[:]),
		machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
