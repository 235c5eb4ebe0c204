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

import "time"

// Collector timeouts for platform data collection.
const (
	// CollectorTimeout bounds a single blocking collection such as a D-Bus round trip.
	// The fact core has no cancellation, so collectors apply it themselves.
	CollectorTimeout = 5 * time.Second

	// CollectorConnectTimeout bounds establishing a D-Bus connection.
	CollectorConnectTimeout = 2 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIResolveTimeout is the overall budget for resolving all facts.
	CLIResolveTimeout = 1 * time.Minute
)
