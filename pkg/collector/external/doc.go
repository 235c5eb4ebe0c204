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

// Package external loads facts supplied by operators instead of collectors.
//
// Two sources are supported:
//
//   - a directory of fact files: *.yaml and *.yml (YAML mappings), *.json
//     (JSON objects) and *.txt (key=value lines)
//   - environment variables carrying a prefix, e.g. NODEFACTS_FACT_rack=r12
//
// Fact names are lower-cased. Loaded facts are meant to be added to a
// collection before anything resolves, so they take precedence over the
// built-in resolvers:
//
//	values, err := external.LoadDir("/etc/nodefacts/facts.d")
//	external.Apply(c, values)
//	external.Apply(c, external.LoadEnvironment(defaults.EnvFactPrefix, os.Environ()))
package external
