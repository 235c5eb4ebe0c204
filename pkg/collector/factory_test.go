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

package collector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	factory := NewDefaultFactory()

	expectedServices := []string{"containerd.service", "docker.service", "kubelet.service"}
	assert.Equal(t, expectedServices, factory.SystemDServices)
	assert.Empty(t, factory.ProcPath)
	assert.Empty(t, factory.SysPath)
}

func TestDefaultFactory_Options(t *testing.T) {
	services := []string{"custom1.service", "custom2.service"}
	factory := NewDefaultFactory(
		WithSystemDServices(services),
		WithProcPath("/host/proc"),
		WithSysPath("/host/sys"),
		WithReleasePaths("/host/etc/os-release"),
	)

	assert.Equal(t, services, factory.SystemDServices)
	assert.Equal(t, "/host/proc", factory.ProcPath)
	assert.Equal(t, "/host/sys", factory.SysPath)
	assert.Equal(t, []string{"/host/etc/os-release"}, factory.ReleasePaths)

	host := factory.hostCollector()
	assert.Equal(t, "/host/proc", host.ProcPath)
	assert.Same(t, host, factory.hostCollector())
}

func TestDefaultFactory_AllResolvers(t *testing.T) {
	factory := NewDefaultFactory()

	tests := []struct {
		create func() facts.Resolver
		name   string
	}{
		{factory.CreateProcessorResolver, "processor"},
		{factory.CreateMemoryResolver, "memory"},
		{factory.CreateKernelResolver, "kernel"},
		{factory.CreateOperatingSystemResolver, "os"},
		{factory.CreateSystemDResolver, "systemd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.create()
			require.NotNil(t, r)
			assert.Equal(t, tt.name, r.Name())
			assert.NotEmpty(t, r.Names())
		})
	}
}

func TestRegister(t *testing.T) {
	c := facts.NewCollection()
	require.NoError(t, Register(c, NewDefaultFactory()))

	// Every resolver claims distinct names, so a second factory conflicts.
	err := Register(c, NewDefaultFactory())
	require.Error(t, err)
	assert.True(t, facterrors.HasCode(err, facterrors.ErrCodeConflict))
}

func TestRegister_Blocklist(t *testing.T) {
	c := facts.NewCollection(facts.WithBlocklist("systemd", "mem*"))
	require.NoError(t, Register(c, NewDefaultFactory(
		WithProcPath(t.TempDir()),
		WithSysPath(t.TempDir()),
		WithReleasePaths(filepath.Join(t.TempDir(), "os-release")),
	)))

	_, ok := c.Lookup(facts.Memory)
	assert.False(t, ok)
	_, ok = c.Lookup(facts.SystemD)
	assert.False(t, ok)
}

// stubFactory returns resolvers fed by fixed data.
type stubFactory struct{}

func (stubFactory) CreateProcessorResolver() facts.Resolver {
	return resolvers.NewProcessorResolver(resolvers.ProcessorSourceFunc(
		func(c *facts.Collection) (resolvers.ProcessorData, error) {
			d := resolvers.ProcessorData{LogicalCount: 8}
			if v, ok := facts.Get[*facts.StringValue](c, facts.HardwareModel); ok {
				d.ISA = v.Value()
			}
			return d, nil
		}))
}

func (stubFactory) CreateMemoryResolver() facts.Resolver {
	return resolvers.NewMemoryResolver(resolvers.MemorySourceFunc(
		func(*facts.Collection) (resolvers.MemoryData, error) {
			return resolvers.MemoryData{MemTotal: 1 << 30, MemAvailable: 1 << 29}, nil
		}))
}

func (stubFactory) CreateKernelResolver() facts.Resolver {
	return resolvers.NewKernelResolver(resolvers.KernelSourceFunc(
		func(*facts.Collection) (resolvers.KernelData, error) {
			return resolvers.KernelData{Name: "Linux", Release: "6.8.0-45-generic"}, nil
		}))
}

func (stubFactory) CreateOperatingSystemResolver() facts.Resolver {
	return resolvers.NewOperatingSystemResolver(resolvers.OperatingSystemSourceFunc(
		func(*facts.Collection) (resolvers.OperatingSystemData, error) {
			return resolvers.OperatingSystemData{Name: "Ubuntu", Hardware: "aarch64"}, nil
		}))
}

func (stubFactory) CreateSystemDResolver() facts.Resolver {
	return resolvers.NewSystemDResolver(resolvers.SystemDSourceFunc(
		func(*facts.Collection) (resolvers.SystemDData, error) {
			return resolvers.SystemDData{}, nil
		}))
}

func TestRegister_CrossResolverLookup(t *testing.T) {
	c := facts.NewCollection()
	require.NoError(t, Register(c, stubFactory{}))

	isa, ok := facts.Get[*facts.StringValue](c, facts.HardwareISA)
	require.True(t, ok)
	assert.Equal(t, "aarch64", isa.Value())

	require.NoError(t, c.ResolveAll())
	_, ok = c.Lookup(facts.SystemD)
	assert.False(t, ok)
	assert.Equal(t, "512.00 MiB", c.Select(facts.MemoryFree)[facts.MemoryFree])
}
