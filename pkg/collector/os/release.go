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
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/node-facts/pkg/collector/file"
	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

const fileKVDelRelease = "="

// distributions maps os-release IDs to the operating system name and family.
var distributions = map[string]struct{ name, family string }{
	"ubuntu":              {"Ubuntu", "Debian"},
	"debian":              {"Debian", "Debian"},
	"linuxmint":           {"LinuxMint", "Debian"},
	"rhel":                {"RedHat", "RedHat"},
	"centos":              {"CentOS", "RedHat"},
	"fedora":              {"Fedora", "RedHat"},
	"rocky":               {"Rocky", "RedHat"},
	"almalinux":           {"AlmaLinux", "RedHat"},
	"ol":                  {"OracleLinux", "RedHat"},
	"amzn":                {"Amazon", "RedHat"},
	"sles":                {"SLES", "Suse"},
	"opensuse":            {"OpenSuSE", "Suse"},
	"opensuse-leap":       {"OpenSuSE", "Suse"},
	"opensuse-tumbleweed": {"OpenSuSE", "Suse"},
	"arch":                {"Archlinux", "Archlinux"},
	"gentoo":              {"Gentoo", "Gentoo"},
	"alpine":              {"Alpine", "Alpine"},
}

// familyLike maps ID_LIKE entries to a family for derivative distributions.
var familyLike = map[string]string{
	"debian": "Debian",
	"ubuntu": "Debian",
	"rhel":   "RedHat",
	"fedora": "RedHat",
	"centos": "RedHat",
	"suse":   "Suse",
	"arch":   "Archlinux",
}

// debianArchitectures maps machine names to dpkg architecture names.
var debianArchitectures = map[string]string{
	"x86_64":  "amd64",
	"aarch64": "arm64",
	"i686":    "i386",
	"armv7l":  "armhf",
}

// CollectOperatingSystem reads os-release and uname(2).
//
//	NAME="Ubuntu"
//	ID=ubuntu
//	VERSION_ID="22.04"
//	PRETTY_NAME="Ubuntu 22.04.4 LTS"
func (c *Collector) CollectOperatingSystem(*facts.Collection) (resolvers.OperatingSystemData, error) {
	u := c.readUname()
	release := c.readRelease()

	d := resolvers.OperatingSystemData{
		Hardware:    u.machine,
		Release:     release["VERSION_ID"],
		Codename:    firstNonEmpty(release["VERSION_CODENAME"], release["UBUNTU_CODENAME"]),
		Description: release["PRETTY_NAME"],
	}

	id := strings.ToLower(release["ID"])
	if dist, ok := distributions[id]; ok {
		d.Name = dist.name
		d.Family = dist.family
	} else {
		d.Name = firstNonEmpty(release["NAME"], u.sysname)
		for _, like := range strings.Fields(strings.ToLower(release["ID_LIKE"])) {
			if family, ok := familyLike[like]; ok {
				d.Family = family
				break
			}
		}
	}
	if id != "" {
		d.DistroID = d.Name
	}
	if d.Family == "" {
		d.Family = u.sysname
	}

	d.Architecture = u.machine
	if arch, ok := debianArchitectures[u.machine]; ok && (d.Family == "Debian" || d.Family == "Gentoo") {
		d.Architecture = arch
	}

	return d, nil
}

// readRelease parses the first existing os-release file. Per freedesktop.org,
// /usr/lib/os-release is the fallback for /etc/os-release.
func (c *Collector) readRelease() map[string]string {
	parser := file.NewParser(
		file.WithKVDelimiter(fileKVDelRelease),

		// Remove surrounding quotes if any per freedesktop.org spec
		file.WithVTrimChars(`"'`),
		file.WithSkipComments(true),

		// Skip malformed lines (lines without '=' that got empty default value)
		file.WithSkipEmptyValues(true),
	)

	for _, path := range c.releasePaths() {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		params, err := parser.GetMap(path)
		if err != nil {
			slog.Debug("failed to read os release",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		return params
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
