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

	"github.com/NVIDIA/node-facts/pkg/facts"
)

// UnitState is the state of one systemd unit.
type UnitState struct {
	Name          string
	ActiveState   string
	SubState      string
	UnitFileState string
}

// SystemDData is what the systemd collector found.
type SystemDData struct {
	// Version is the systemd manager version, e.g. "255".
	Version string
	// Units lists the states of the watched units.
	Units []UnitState
}

// IsEmpty reports whether neither a version nor any unit was found.
func (d SystemDData) IsEmpty() bool {
	return d.Version == "" && len(d.Units) == 0
}

// Validate rejects units without a name.
func (d SystemDData) Validate() error {
	for _, u := range d.Units {
		if u.Name == "" {
			return errors.New("unit without a name")
		}
	}
	return nil
}

// SystemDSource gathers systemd data from the platform.
type SystemDSource interface {
	CollectSystemD(c *facts.Collection) (SystemDData, error)
}

// SystemDSourceFunc adapts a function to SystemDSource.
type SystemDSourceFunc func(c *facts.Collection) (SystemDData, error)

// CollectSystemD calls f(c).
func (f SystemDSourceFunc) CollectSystemD(c *facts.Collection) (SystemDData, error) {
	return f(c)
}

// NewSystemDResolver returns the resolver for the "systemd" and
// "systemd_version" facts.
func NewSystemDResolver(src SystemDSource) facts.Resolver {
	return &resolver[SystemDData]{
		name:    "systemd",
		names:   []string{facts.SystemD, facts.SystemDVersion},
		collect: src.CollectSystemD,
		project: projectSystemD,
	}
}

func projectSystemD(d SystemDData, c *facts.Collection) {
	root := facts.NewMapBuilder()

	if d.Version != "" {
		root.SetString("version", d.Version)
		c.AddFact(facts.SystemDVersion, facts.Str(d.Version))
	}

	if len(d.Units) > 0 {
		units := facts.NewMapBuilder()
		for _, u := range d.Units {
			state := facts.NewMapBuilder()
			if u.ActiveState != "" {
				state.SetString("active", u.ActiveState)
			}
			if u.SubState != "" {
				state.SetString("sub", u.SubState)
			}
			if u.UnitFileState != "" {
				state.SetString("enabled", u.UnitFileState)
			}
			units.Set(u.Name, state.Build())
		}
		root.Set("units", units.Build())
	}

	c.AddFact(facts.SystemD, root.Build())
}
