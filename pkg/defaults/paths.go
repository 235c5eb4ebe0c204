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

package defaults

// Platform data sources.
const (
	// ProcPath is the procfs mount point.
	ProcPath = "/proc"

	// SysPath is the sysfs mount point.
	SysPath = "/sys"

	// OSReleasePath is the primary os-release file.
	OSReleasePath = "/etc/os-release"

	// OSReleaseFallbackPath is read when OSReleasePath does not exist.
	OSReleaseFallbackPath = "/usr/lib/os-release"
)

// External facts.
const (
	// ExternalFactsDir is the default directory for operator-supplied facts.
	ExternalFactsDir = "/etc/nodefacts/facts.d"

	// EnvFactPrefix marks environment variables exported as facts:
	// NODEFACTS_FACT_rack=r12 becomes the fact "rack".
	EnvFactPrefix = "NODEFACTS_FACT_"

	// MaxExternalFactSize caps a single external fact file.
	MaxExternalFactSize = 1 << 20
)

// SystemDServices are the units reported when none are configured.
var SystemDServices = []string{
	"containerd.service",
	"docker.service",
	"kubelet.service",
}
