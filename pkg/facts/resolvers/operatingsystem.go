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
	"strings"

	"github.com/NVIDIA/node-facts/pkg/facts"
)

// OperatingSystemData describes the installed operating system. Empty
// strings mean unknown.
type OperatingSystemData struct {
	// Name is the distribution name, e.g. "Ubuntu".
	Name string
	// Family groups related distributions, e.g. "Debian" or "RedHat".
	Family string
	// Architecture is the distribution's name for the architecture, e.g. "amd64".
	Architecture string
	// Hardware is the machine hardware name, e.g. "x86_64".
	Hardware string
	// Release is the full release version, e.g. "22.04".
	Release string
	// DistroID is the os-release ID, e.g. "ubuntu".
	DistroID string
	// Codename is the release code name, e.g. "jammy".
	Codename string
	// Description is the human readable name, e.g. "Ubuntu 22.04.4 LTS".
	Description string
}

// IsEmpty reports whether no field is set.
func (d OperatingSystemData) IsEmpty() bool {
	return d == OperatingSystemData{}
}

// Validate accepts any operating system data.
func (d OperatingSystemData) Validate() error {
	return nil
}

// OperatingSystemSource gathers operating system data from the platform.
type OperatingSystemSource interface {
	CollectOperatingSystem(c *facts.Collection) (OperatingSystemData, error)
}

// OperatingSystemSourceFunc adapts a function to OperatingSystemSource.
type OperatingSystemSourceFunc func(c *facts.Collection) (OperatingSystemData, error)

// CollectOperatingSystem calls f(c).
func (f OperatingSystemSourceFunc) CollectOperatingSystem(c *facts.Collection) (OperatingSystemData, error) {
	return f(c)
}

// NewOperatingSystemResolver returns the resolver for the "os" fact and the
// legacy operatingsystem, osfamily, architecture, hardwaremodel and lsb* facts.
func NewOperatingSystemResolver(src OperatingSystemSource) facts.Resolver {
	return &resolver[OperatingSystemData]{
		name: "os",
		names: []string{
			facts.OS,
			facts.OperatingSystem,
			facts.OSFamily,
			facts.Architecture,
			facts.HardwareModel,
			facts.OperatingSystemRelease,
			facts.OperatingSystemMajRelease,
			facts.LSBDistID,
			facts.LSBDistCodename,
			facts.LSBDistDescription,
		},
		collect: src.CollectOperatingSystem,
		project: projectOperatingSystem,
	}
}

func projectOperatingSystem(d OperatingSystemData, c *facts.Collection) {
	root := facts.NewMapBuilder()

	setString := func(key, flat, v string) {
		if v == "" {
			return
		}
		root.SetString(key, v)
		c.AddFact(flat, facts.Str(v))
	}
	setString("name", facts.OperatingSystem, d.Name)
	setString("family", facts.OSFamily, d.Family)
	setString("architecture", facts.Architecture, d.Architecture)
	setString("hardware", facts.HardwareModel, d.Hardware)

	if d.Release != "" {
		major, minor := splitRelease(d.Release)
		release := facts.NewMapBuilder().
			SetString("full", d.Release).
			SetString("major", major)
		if minor != "" {
			release.SetString("minor", minor)
		}
		root.Set("release", release.Build())
		c.AddFact(facts.OperatingSystemRelease, facts.Str(d.Release))
		c.AddFact(facts.OperatingSystemMajRelease, facts.Str(major))
	}

	distro := facts.NewMapBuilder()
	for _, kv := range []struct{ key, flat, v string }{
		{"id", facts.LSBDistID, d.DistroID},
		{"codename", facts.LSBDistCodename, d.Codename},
		{"description", facts.LSBDistDescription, d.Description},
	} {
		if kv.v == "" {
			continue
		}
		distro.SetString(kv.key, kv.v)
		c.AddFact(kv.flat, facts.Str(kv.v))
	}
	if distro.Len() > 0 {
		root.Set("distro", distro.Build())
	}

	c.AddFact(facts.OS, root.Build())
}

// splitRelease returns the first and second dot-separated components.
func splitRelease(release string) (major, minor string) {
	parts := strings.SplitN(release, ".", 3)
	major = parts[0]
	if len(parts) > 1 {
		minor = parts[1]
	}
	return major, minor
}
