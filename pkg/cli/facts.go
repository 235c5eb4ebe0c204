/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/node-facts/pkg/collector"
	"github.com/NVIDIA/node-facts/pkg/config"
	"github.com/NVIDIA/node-facts/pkg/defaults"
	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/logging"
	"github.com/NVIDIA/node-facts/pkg/serializer"
	"github.com/NVIDIA/node-facts/pkg/snapshotter"
)

func factsAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFromCmd(cmd)
	if err != nil {
		return err
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", cmd.String("config"))

	w, err := serializer.NewFileWriterOrStdout(cfg.OutputFormat(), cfg.Output)
	if err != nil {
		return facterrors.Wrap(facterrors.ErrCodeInvalidRequest, "failed to open output", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	ns := &snapshotter.NodeSnapshotter{
		Factory: collector.NewDefaultFactory(
			collector.WithSystemDServices(cfg.SystemDServices),
			collector.WithProcPath(cfg.ProcPath),
			collector.WithSysPath(cfg.SysPath),
		),
		Serializer:   w,
		Blocklist:    cfg.Blocklist,
		ExternalDirs: cfg.ExternalDirs,
		Environ:      os.Environ(),
		Timeout:      defaults.CLIResolveTimeout,
		MetricsFile:  cfg.MetricsFile,
	}
	return ns.Measure(ctx, cmd.Args().Slice()...)
}

// configFromCmd loads the --config file and overlays every flag the user
// set explicitly, on the command line or through the environment.
func configFromCmd(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option
	if cmd.IsSet("format") {
		opts = append(opts, config.WithFormat(cmd.String("format")))
	}
	if cmd.IsSet("output") {
		opts = append(opts, config.WithOutput(cmd.String("output")))
	}
	if cmd.IsSet("external-dir") {
		opts = append(opts, config.WithExternalDirs(cmd.StringSlice("external-dir")...))
	}
	if cmd.IsSet("blocklist") {
		opts = append(opts, config.WithBlocklist(cmd.StringSlice("blocklist")...))
	}
	if cmd.IsSet("systemd-service") {
		opts = append(opts, config.WithSystemDServices(cmd.StringSlice("systemd-service")...))
	}
	if cmd.IsSet("metrics-file") {
		opts = append(opts, config.WithMetricsFile(cmd.String("metrics-file")))
	}
	if cmd.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(cmd.String("log-level")))
	}
	if cmd.IsSet("proc-path") {
		opts = append(opts, config.WithProcPath(cmd.String("proc-path")))
	}
	if cmd.IsSet("sys-path") {
		opts = append(opts, config.WithSysPath(cmd.String("sys-path")))
	}
	return config.Load(cmd.String("config"), opts...)
}
