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

// Package defaults provides centralized configuration constants for node-facts.
//
// This package defines timeout values, platform paths, and other defaults
// used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Collector timeouts: bound blocking platform collectors (D-Bus)
//   - CLI timeouts: overall budget for one invocation
//   - Paths: procfs, sysfs, os-release and external fact locations
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/node-facts/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(context.Background(), defaults.CollectorTimeout)
//	defer cancel()
package defaults
