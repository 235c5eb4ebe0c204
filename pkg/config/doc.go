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

// Package config holds the run configuration of the nodefacts CLI.
//
// A Config is assembled from three layers, later layers winning:
//
//  1. built-in defaults (see package defaults),
//  2. an optional YAML or JSON file passed with --config,
//  3. command line flags and NODEFACTS_* environment variables.
//
// Unknown keys in a YAML file are rejected so typos surface early.
//
//	format: yaml
//	externalDirs:
//	  - /etc/nodefacts/facts.d
//	blocklist:
//	  - systemd
//	metricsFile: /var/lib/node_exporter/textfile/nodefacts.prom
package config
