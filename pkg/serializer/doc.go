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

// Package serializer encodes and decodes fact data in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented, HTML characters not escaped
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - One FACT/VALUE row per leaf, keyed by its dotted path
//     (processors.models.0), the same syntax facts.Collection.Query accepts
//   - Write-only
//
// CBOR:
//   - Core Deterministic Encoding (RFC 8949 §4.2), github.com/fxamacker/cbor/v2
//   - The same facts always produce identical bytes
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, c.Select(names...))
//
// # Usage - Decoding
//
//	cfg, err := serializer.FromFile[config.Config]("/etc/nodefacts/config.yaml")
//
// The format is detected from the extension by FormatFromPath. YAML
// decoding rejects unknown fields.
package serializer
