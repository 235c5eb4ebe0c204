/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/node-facts/pkg/serializer"
)

const (
	name           = "nodefacts"
	versionDefault = "dev"
	envPrefix      = "NODEFACTS_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the nodefacts command with the process arguments.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func envVar(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Resolve and print machine facts",
		ArgsUsage:             "[fact-name-or-pattern...]",
		Description: `Resolve facts about this machine (processors, memory, kernel, operating
system, systemd units) together with operator-supplied external facts and
print them.

With no arguments every fact is printed. Arguments select facts by name,
by wildcard pattern (processor*) or by dotted path into structured facts
(processors.models.0, os.release.major).

# Examples

  nodefacts --format yaml
  nodefacts processor_count memory.system.capacity
  nodefacts --blocklist systemd --format table 'processor*'
  nodefacts --metrics-file /var/lib/node_exporter/textfile/nodefacts.prom`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage: fmt.Sprintf("Output format (supported values: %s)",
					strings.Join(serializer.SupportedFormats(), ", ")),
				Value:   string(serializer.FormatJSON),
				Sources: cli.EnvVars(envVar("format")),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
				Sources: cli.EnvVars(envVar("output")),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML or JSON configuration file",
				Sources: cli.EnvVars(envVar("config")),
			},
			&cli.StringSliceFlag{
				Name:    "external-dir",
				Usage:   "Directory of external fact files (can be repeated)",
				Sources: cli.EnvVars(envVar("external-dir")),
			},
			&cli.StringSliceFlag{
				Name:    "blocklist",
				Usage:   "Resolver group to skip, wildcards allowed (can be repeated)",
				Sources: cli.EnvVars(envVar("blocklist")),
			},
			&cli.StringSliceFlag{
				Name:    "systemd-service",
				Usage:   "Systemd unit to report under systemd.units (can be repeated)",
				Sources: cli.EnvVars(envVar("systemd-service")),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write resolver metrics in Prometheus text format to this file",
				Sources: cli.EnvVars(envVar("metrics-file")),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(envVar("log-level")),
			},
			&cli.StringFlag{
				Name:    "proc-path",
				Usage:   "procfs mount point",
				Sources: cli.EnvVars(envVar("proc-path")),
			},
			&cli.StringFlag{
				Name:    "sys-path",
				Usage:   "sysfs mount point",
				Sources: cli.EnvVars(envVar("sys-path")),
			},
		},
		Action: factsAction,
	}
}
