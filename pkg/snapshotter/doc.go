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

// Package snapshotter resolves the facts of the current node and writes them
// through a serializer.
//
// # Overview
//
// A snapshot is one pass over a fresh facts.Collection:
//
//  1. facts from the external fact directories and NODEFACTS_FACT_*
//     environment variables are inserted,
//  2. the built-in resolvers from a collector.Factory are registered,
//     skipping blocklisted groups,
//  3. the requested facts (or all of them) are resolved and serialized,
//  4. resolver metrics are optionally written to a Prometheus textfile.
//
// Facts inserted in step 1 are never replaced by a resolver.
//
// # Usage
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "facts.yaml")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	s := &snapshotter.NodeSnapshotter{
//	    Factory:      collector.NewDefaultFactory(),
//	    Serializer:   w,
//	    ExternalDirs: []string{defaults.ExternalFactsDir},
//	    Environ:      os.Environ(),
//	    Timeout:      defaults.CLIResolveTimeout,
//	}
//	if err := s.Measure(ctx, "processors", "memory.system"); err != nil {
//	    return err
//	}
//
// # Errors
//
// A resolver defect does not abort the snapshot. The resolved facts are
// written and Measure then returns an error with code ErrCodeResolver.
// Failures to build the collection, to finish within Timeout or to write
// the output are returned with ErrCodeConflict or ErrCodeInternal.
//
// # Metrics
//
//   - nodefacts_snapshot_duration_seconds: histogram of snapshot duration
//   - nodefacts_snapshot_total{status}: snapshots by outcome (success, defect, error)
//   - nodefacts_snapshot_facts: facts in the last snapshot
//
// Resolver level metrics are exported by package facts.
package snapshotter
