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

// Package collector wires host data sources to fact resolvers.
//
// # Overview
//
// The resolvers in package facts/resolvers only project data; the sources
// that read it live here, one subpackage per platform facility. This
// package ties the two together and registers the result with a
// facts.Collection.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting resolver creation:
//
//	type Factory interface {
//	    CreateProcessorResolver() facts.Resolver
//	    CreateMemoryResolver() facts.Resolver
//	    CreateKernelResolver() facts.Resolver
//	    CreateOperatingSystemResolver() facts.Resolver
//	    CreateSystemDResolver() facts.Resolver
//	}
//
// The DefaultFactory provides production implementations with configurable options:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithSystemDServices([]string{"containerd.service", "kubelet.service"}),
//	    collector.WithProcPath("/host/proc"),
//	)
//
//	c := facts.NewCollection()
//	if err := collector.Register(c, factory); err != nil {
//	    return err
//	}
//
// # Subpackages
//
//   - collector/os - processors, memory, kernel and OS release
//   - collector/systemd - systemd manager and unit state over D-Bus
//   - collector/file - line and key/value file parser
//   - collector/external - operator-supplied and environment facts
//
// # Error Handling
//
// Sources treat unavailable platform facilities as absence. Register only
// fails when resolvers claim overlapping fact names.
package collector
