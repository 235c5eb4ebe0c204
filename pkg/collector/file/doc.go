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

// Package file parses line-oriented configuration files.
//
// A Parser splits content into entries (newline-delimited by default) and,
// for GetMap and ParseMap, each entry into a key and a value:
//
//	parser := file.NewParser(
//	    file.WithKVDelimiter("="),
//	    file.WithVTrimChars(`"'`),
//	    file.WithSkipEmptyValues(true),
//	)
//	release, err := parser.GetMap("/etc/os-release")
//
// Reads are bounded by WithMaxSize and must be valid UTF-8. Errors are
// *errors.StructuredError values; a missing file carries ErrCodeNotFound
// and still matches fs.ErrNotExist.
package file
