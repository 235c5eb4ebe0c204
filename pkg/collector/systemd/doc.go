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

// Package systemd reads systemd manager and unit state over D-Bus.
//
// Collector implements resolvers.SystemDSource. For each configured unit it
// reports the active state, sub state and unit file state:
//
//	c := &systemd.Collector{Services: []string{"kubelet.service"}}
//	_ = col.Add(resolvers.NewSystemDResolver(c))
//
// Units reported when none are configured (defaults.SystemDServices):
//   - containerd.service: container runtime
//   - docker.service: Docker daemon (alternative runtime)
//   - kubelet.service: Kubernetes node agent
//
// # Graceful Degradation
//
// Inside containers and on hosts without systemd the D-Bus connection fails.
// That is treated as absence: no systemd facts are produced and nothing is
// reported as an error. Collection is bounded by defaults.CollectorTimeout.
package systemd
