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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/node-facts/pkg/defaults"
	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/serializer"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, []string{defaults.ExternalFactsDir}, c.ExternalDirs)
	assert.Equal(t, defaults.SystemDServices, c.SystemDServices)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, defaults.ProcPath, c.ProcPath)
	assert.Equal(t, defaults.SysPath, c.SysPath)
	assert.NoError(t, c.Validate())
}

func TestNew_DefaultsAreNotShared(t *testing.T) {
	c := New()
	c.SystemDServices[0] = "changed.service"
	assert.NotEqual(t, "changed.service", defaults.SystemDServices[0])
}

func TestNew_Options(t *testing.T) {
	c := New(
		WithFormat("yaml"),
		WithOutput("out.yaml"),
		WithExternalDirs("a", "b"),
		WithBlocklist("memory"),
		WithSystemDServices("kubelet.service"),
		WithMetricsFile("m.prom"),
		WithLogLevel("warn"),
		WithProcPath("/host/proc"),
		WithSysPath("/host/sys"),
	)
	assert.Equal(t, &Config{
		Format:          "yaml",
		Output:          "out.yaml",
		ExternalDirs:    []string{"a", "b"},
		Blocklist:       []string{"memory"},
		SystemDServices: []string{"kubelet.service"},
		MetricsFile:     "m.prom",
		LogLevel:        "warn",
		ProcPath:        "/host/proc",
		SysPath:         "/host/sys",
	}, c)
	assert.Equal(t, serializer.FormatYAML, c.OutputFormat())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		opts    []Option
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name: "no file",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, New(), c)
			},
		},
		{
			name: "yaml file",
			path: "testdata/config.yaml",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "table", c.Format)
				assert.Equal(t, "/tmp/facts.txt", c.Output)
				assert.Equal(t, []string{"/srv/facts.d"}, c.ExternalDirs)
				assert.Equal(t, []string{"systemd"}, c.Blocklist)
				assert.Equal(t, "/tmp/nodefacts.prom", c.MetricsFile)
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, defaults.SystemDServices, c.SystemDServices)
			},
		},
		{
			name: "json file",
			path: "testdata/config.json",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "cbor", c.Format)
				assert.Equal(t, []string{"kubelet.service"}, c.SystemDServices)
				assert.Equal(t, "/host/proc", c.ProcPath)
				assert.Equal(t, defaults.SysPath, c.SysPath)
			},
		},
		{
			name: "options override file",
			path: "testdata/config.yaml",
			opts: []Option{WithFormat("json"), WithBlocklist()},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "json", c.Format)
				assert.Empty(t, c.Blocklist)
				assert.Equal(t, "debug", c.LogLevel)
			},
		},
		{
			name:    "unknown key",
			path:    "testdata/unknown-key.yaml",
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    "testdata/missing.yaml",
			wantErr: true,
		},
		{
			name:    "invalid option",
			opts:    []Option{WithFormat("xml")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.path, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, facterrors.HasCode(err, facterrors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{"valid", nil, ""},
		{"cbor", []Option{WithFormat("cbor")}, ""},
		{"upper case level", []Option{WithLogLevel("DEBUG")}, ""},
		{"unknown format", []Option{WithFormat("xml")}, "unknown output format"},
		{"unknown level", []Option{WithLogLevel("loud")}, "unknown log level"},
		{"empty blocklist entry", []Option{WithBlocklist("memory", " ")}, "blocklist"},
		{"empty unit", []Option{WithSystemDServices("")}, "systemd service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.opts...).Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
