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
	"path/filepath"
	"strconv"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"

	"github.com/NVIDIA/node-facts/pkg/collector/file"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

func (c *Collector) readProcessors() resolvers.ProcessorData {
	var d resolvers.ProcessorData
	var mhz float64

	pfs, err := procfs.NewFS(c.procPath())
	if err != nil {
		slog.Debug("procfs unavailable", slog.String("error", err.Error()))
	} else if info, err := pfs.CPUInfo(); err != nil {
		slog.Debug("failed to read cpuinfo", slog.String("error", err.Error()))
	} else {
		packages := make(map[string]struct{})
		for _, p := range info {
			if p.ModelName != "" {
				d.Models = append(d.Models, p.ModelName)
			}
			if p.PhysicalID != "" {
				packages[p.PhysicalID] = struct{}{}
			}
			if mhz == 0 {
				mhz = p.CPUMHz
			}
		}
		d.LogicalCount = len(info)
		d.PhysicalCount = len(packages)
	}

	sfs, err := sysfs.NewFS(c.sysPath())
	if err != nil {
		slog.Debug("sysfs unavailable", slog.String("error", err.Error()))
	} else {
		if n := physicalPackages(sfs); n > 0 {
			d.PhysicalCount = n
		}
		d.Speed = c.maxFrequency(sfs)
	}

	if d.Speed == 0 && mhz > 0 {
		d.Speed = int64(mhz * 1e6)
	}
	return d
}

// physicalPackages counts distinct physical_package_id values.
func physicalPackages(fs sysfs.FS) int {
	cpus, err := fs.CPUs()
	if err != nil {
		slog.Debug("failed to list cpus", slog.String("error", err.Error()))
		return 0
	}
	packages := make(map[string]struct{})
	for _, cpu := range cpus {
		t, err := cpu.Topology()
		if err != nil || t.PhysicalPackageID == "" {
			continue
		}
		packages[t.PhysicalPackageID] = struct{}{}
	}
	return len(packages)
}

// maxFrequency returns the highest cpuinfo_max_freq across cpus in hertz.
// When the cpufreq summary cannot be read as a whole, for example because
// devices/system/cpu/offline is missing, each cpu is read on its own.
func (c *Collector) maxFrequency(fs sysfs.FS) int64 {
	stats, err := fs.SystemCpufreq()
	if err != nil {
		slog.Debug("cpufreq summary unavailable, reading cpus individually",
			slog.String("error", err.Error()))
		return c.maxFrequencyPerCPU()
	}
	var khz uint64
	for _, s := range stats {
		if s.CpuinfoMaximumFrequency != nil && *s.CpuinfoMaximumFrequency > khz {
			khz = *s.CpuinfoMaximumFrequency
		}
	}
	return int64(khz) * 1000
}

func (c *Collector) maxFrequencyPerCPU() int64 {
	paths, err := filepath.Glob(filepath.Join(c.sysPath(),
		"devices", "system", "cpu", "cpu[0-9]*", "cpufreq", "cpuinfo_max_freq"))
	if err != nil || len(paths) == 0 {
		return 0
	}

	parser := file.NewParser()
	var khz uint64
	for _, path := range paths {
		lines, err := parser.GetLines(path)
		if err != nil || len(lines) == 0 {
			slog.Debug("failed to read cpuinfo_max_freq", slog.String("path", path))
			continue
		}
		v, err := strconv.ParseUint(lines[0], 10, 64)
		if err != nil {
			slog.Debug("invalid cpuinfo_max_freq", slog.String("path", path), slog.String("value", lines[0]))
			continue
		}
		khz = max(khz, v)
	}
	return int64(khz) * 1000
}
