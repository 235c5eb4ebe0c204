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

package snapshotter

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/node-facts/pkg/collector"
	"github.com/NVIDIA/node-facts/pkg/collector/external"
	"github.com/NVIDIA/node-facts/pkg/defaults"
	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/facts"
	"github.com/NVIDIA/node-facts/pkg/serializer"
)

// NodeSnapshotter resolves the facts of the current node in one pass and
// serializes them.
type NodeSnapshotter struct {
	// Factory creates the built-in resolvers. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer receives the selected facts. If nil, JSON is written to stdout.
	Serializer serializer.Serializer

	// Blocklist holds resolver group patterns that are never run.
	Blocklist []string

	// ExternalDirs are loaded, in order, before any resolver runs.
	ExternalDirs []string

	// Environ is scanned for defaults.EnvFactPrefix variables.
	Environ []string

	// Timeout bounds how long Measure waits for resolution. Zero means no limit.
	// Resolvers are not interrupted: after the deadline Measure returns, but the
	// pending resolution keeps running in the background against the discarded
	// collection until its resolvers return. Sources that may block should
	// bound their own I/O.
	Timeout time.Duration

	// MetricsFile, when set, receives the Prometheus text exposition of
	// Gatherer (default: prometheus.DefaultGatherer) after the snapshot.
	MetricsFile string
	Gatherer    prometheus.Gatherer
}

// Measure resolves the facts matching names (all facts when empty) and
// serializes them. Resolver defects do not stop the snapshot: the facts that
// did resolve are written first and the defects are returned afterwards.
func (n *NodeSnapshotter) Measure(ctx context.Context, names ...string) error {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}
	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	slog.Debug("starting node snapshot", slog.Int("names", len(names)))

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	err := n.measure(ctx, names)
	switch {
	case err == nil:
		snapshotCollectionTotal.WithLabelValues("success").Inc()
	case facterrors.HasCode(err, facterrors.ErrCodeResolver):
		snapshotCollectionTotal.WithLabelValues("defect").Inc()
	default:
		snapshotCollectionTotal.WithLabelValues("error").Inc()
	}

	if n.MetricsFile != "" {
		if merr := n.writeMetrics(); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func (n *NodeSnapshotter) measure(ctx context.Context, names []string) error {
	c, err := n.collection()
	if err != nil {
		return err
	}

	data, err := n.resolve(ctx, c, names)
	if err != nil {
		return err
	}
	snapshotFactCount.Set(float64(len(data)))

	if err := n.Serializer.Serialize(ctx, data); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return facterrors.Wrap(facterrors.ErrCodeInternal, "failed to serialize", err)
	}

	if err := c.Err(); err != nil {
		return facterrors.Wrap(facterrors.ErrCodeResolver, "one or more resolvers failed", err)
	}

	slog.Debug("snapshot complete", slog.Int("facts", len(data)))
	return nil
}

// collection builds the fact collection. External and environment facts
// are inserted first so built-in resolvers never replace them.
func (n *NodeSnapshotter) collection() (*facts.Collection, error) {
	c := facts.NewCollection(facts.WithBlocklist(n.Blocklist...))

	for _, dir := range n.ExternalDirs {
		values, err := external.LoadDir(dir)
		if err != nil {
			// per-file failures are already logged; keep what loaded
			slog.Debug("external facts incomplete", slog.String("dir", dir), slog.String("error", err.Error()))
		}
		if count := external.Apply(c, values); count > 0 {
			slog.Debug("external facts loaded", slog.String("dir", dir), slog.Int("count", count))
		}
	}

	env := external.LoadEnvironment(defaults.EnvFactPrefix, n.Environ)
	if count := external.Apply(c, env); count > 0 {
		slog.Debug("environment facts loaded", slog.Int("count", count))
	}

	if err := collector.Register(c, n.Factory); err != nil {
		return nil, err
	}
	return c, nil
}

// resolve selects the requested facts. Resolution itself is synchronous;
// the deadline only bounds how long Measure waits for it. On timeout the
// goroutine running Select is left behind and exits once Select returns;
// done is buffered so that send never blocks.
func (n *NodeSnapshotter) resolve(ctx context.Context, c *facts.Collection, names []string) (map[string]any, error) {
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	done := make(chan map[string]any, 1)
	go func() {
		done <- c.Select(names...)
	}()

	select {
	case data := <-done:
		return data, nil
	case <-ctx.Done():
		return nil, facterrors.Wrap(facterrors.ErrCodeInternal, "fact resolution did not finish", ctx.Err())
	}
}

func (n *NodeSnapshotter) writeMetrics() error {
	gatherer := n.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(n.MetricsFile, gatherer); err != nil {
		return facterrors.WrapWithContext(facterrors.ErrCodeInternal, "failed to write metrics", err,
			map[string]any{"path": n.MetricsFile})
	}
	return nil
}
