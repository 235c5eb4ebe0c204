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

//go:build !linux

package os

import (
	"errors"

	"github.com/NVIDIA/node-facts/pkg/facts/resolvers"
)

var errUnsupported = errors.New("not supported on this platform")

func (c *Collector) readProcessors() resolvers.ProcessorData {
	return resolvers.ProcessorData{}
}

func (c *Collector) readMemory() resolvers.MemoryData {
	return resolvers.MemoryData{}
}

func systemUname() (utsname, error) {
	return utsname{}, errUnsupported
}
