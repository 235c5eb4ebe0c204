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
	"fmt"
	"slices"
	"strings"

	"github.com/NVIDIA/node-facts/pkg/defaults"
	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/serializer"
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config holds the settings of a nodefacts run. It is read from a YAML or
// JSON file; command line flags override individual fields.
type Config struct {
	// Format is the output format (json, yaml, table or cbor).
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Output is the output file path. Empty or "-" means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// ExternalDirs are scanned for operator-supplied facts, in order.
	ExternalDirs []string `json:"externalDirs,omitempty" yaml:"externalDirs,omitempty"`

	// Blocklist holds resolver group patterns that are never run.
	Blocklist []string `json:"blocklist,omitempty" yaml:"blocklist,omitempty"`

	// SystemDServices are the units reported under systemd.units.
	SystemDServices []string `json:"systemdServices,omitempty" yaml:"systemdServices,omitempty"`

	// MetricsFile, when set, receives resolver metrics in the Prometheus
	// text format after the run.
	MetricsFile string `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`

	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	ProcPath string `json:"procPath,omitempty" yaml:"procPath,omitempty"`
	SysPath  string `json:"sysPath,omitempty" yaml:"sysPath,omitempty"`
}

// Option mutates a Config.
type Option func(*Config)

// WithFormat sets the output format.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithOutput sets the output path.
func WithOutput(path string) Option {
	return func(c *Config) {
		c.Output = path
	}
}

// WithExternalDirs replaces the external fact directories.
func WithExternalDirs(dirs ...string) Option {
	return func(c *Config) {
		c.ExternalDirs = dirs
	}
}

// WithBlocklist replaces the resolver blocklist.
func WithBlocklist(patterns ...string) Option {
	return func(c *Config) {
		c.Blocklist = patterns
	}
}

// WithSystemDServices replaces the reported systemd units.
func WithSystemDServices(units ...string) Option {
	return func(c *Config) {
		c.SystemDServices = units
	}
}

// WithMetricsFile sets the metrics textfile path.
func WithMetricsFile(path string) Option {
	return func(c *Config) {
		c.MetricsFile = path
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithProcPath sets the procfs mount point.
func WithProcPath(path string) Option {
	return func(c *Config) {
		c.ProcPath = path
	}
}

// WithSysPath sets the sysfs mount point.
func WithSysPath(path string) Option {
	return func(c *Config) {
		c.SysPath = path
	}
}

// New returns a Config populated with defaults and then the given options.
func New(opts ...Option) *Config {
	c := &Config{}
	c.applyDefaults()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the configuration file at path, fills unset fields with
// defaults and applies opts on top. An empty path yields New(opts...).
// The result is validated.
func Load(path string, opts ...Option) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		c := New(opts...)
		return c, c.Validate()
	}

	c, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInvalidRequest,
			"failed to load config", err, map[string]any{"path": path})
	}

	c.applyDefaults()
	for _, opt := range opts {
		opt(c)
	}
	return c, c.Validate()
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = string(serializer.FormatJSON)
	}
	if c.ExternalDirs == nil {
		c.ExternalDirs = []string{defaults.ExternalFactsDir}
	}
	if c.SystemDServices == nil {
		c.SystemDServices = slices.Clone(defaults.SystemDServices)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ProcPath == "" {
		c.ProcPath = defaults.ProcPath
	}
	if c.SysPath == "" {
		c.SysPath = defaults.SysPath
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if serializer.Format(c.Format).IsUnknown() {
		return facterrors.New(facterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format %q (supported: %s)",
				c.Format, strings.Join(serializer.SupportedFormats(), ", ")))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return facterrors.New(facterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	for _, p := range c.Blocklist {
		if strings.TrimSpace(p) == "" {
			return facterrors.New(facterrors.ErrCodeInvalidRequest, "blocklist entries must not be empty")
		}
	}
	for _, u := range c.SystemDServices {
		if strings.TrimSpace(u) == "" {
			return facterrors.New(facterrors.ErrCodeInvalidRequest, "systemd service names must not be empty")
		}
	}
	return nil
}

// OutputFormat returns the configured format as a serializer.Format.
func (c *Config) OutputFormat() serializer.Format {
	return serializer.Format(c.Format)
}
