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

package external

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/node-facts/pkg/collector/file"
	"github.com/NVIDIA/node-facts/pkg/defaults"
	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
	"github.com/NVIDIA/node-facts/pkg/facts"
)

type decodeFunc func(path string) (map[string]any, error)

// LoadDir reads every fact file in dir in name order. A missing directory
// yields no facts. Files that cannot be parsed are skipped and reported in
// the returned error; facts from the other files are still returned. When
// two files define the same fact the first one wins.
func LoadDir(dir string) (map[string]facts.Value, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("external facts directory not found", slog.String("dir", dir))
			return nil, nil
		}
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInternal,
			"failed to read external facts directory", err, map[string]any{"dir": dir})
	}

	out := make(map[string]facts.Value)
	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		decode := decoderFor(path)
		if decode == nil {
			slog.Debug("skipping file with unknown extension", slog.String("path", path))
			continue
		}

		data, err := decode(path)
		if err != nil {
			slog.Warn("failed to load external facts",
				slog.String("path", path),
				slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}

		for name, raw := range data {
			name = strings.ToLower(name)
			v := facts.ToValue(normalize(raw))
			if v == nil {
				continue
			}
			if _, exists := out[name]; exists {
				slog.Debug("external fact already defined",
					slog.String("fact", name),
					slog.String("path", path))
				continue
			}
			out[name] = v
		}
	}

	return out, errors.Join(errs...)
}

// LoadEnvironment turns PREFIX_name=value entries of environ into string
// facts. The prefix is matched case-insensitively.
func LoadEnvironment(prefix string, environ []string) map[string]facts.Value {
	out := make(map[string]facts.Value)
	upper := strings.ToUpper(prefix)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(strings.ToUpper(key), upper) {
			continue
		}
		name := strings.ToLower(key[len(prefix):])
		if name == "" {
			continue
		}
		out[name] = facts.Str(value)
	}
	return out
}

// Apply adds values to c in name order and returns the number added.
// Names already present in c are left untouched.
func Apply(c *facts.Collection, values map[string]facts.Value) int {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	added := 0
	for _, name := range names {
		if c.AddFact(name, values[name]) {
			added++
		}
	}
	return added
}

func decoderFor(path string) decodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML
	case ".json":
		return decodeJSON
	case ".txt":
		return decodeText
	default:
		return nil
	}
}

func readLimited(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInternal,
			"failed to stat fact file", err, map[string]any{"path": path})
	}
	if info.Size() > defaults.MaxExternalFactSize {
		return nil, facterrors.NewWithContext(facterrors.ErrCodeInvalidRequest,
			"fact file exceeds maximum size",
			map[string]any{"path": path, "maxSize": defaults.MaxExternalFactSize})
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInternal,
			"failed to read fact file", err, map[string]any{"path": path})
	}
	return b, nil
}

func decodeYAML(path string) (map[string]any, error) {
	b, err := readLimited(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInvalidRequest,
			"invalid YAML fact file", err, map[string]any{"path": path})
	}
	return data, nil
}

func decodeJSON(path string) (map[string]any, error) {
	b, err := readLimited(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInvalidRequest,
			"invalid JSON fact file", err, map[string]any{"path": path})
	}
	return data, nil
}

func decodeText(path string) (map[string]any, error) {
	parser := file.NewParser(file.WithMaxSize(defaults.MaxExternalFactSize))
	kv, err := parser.GetMap(path)
	if err != nil {
		return nil, err
	}
	data := make(map[string]any, len(kv))
	for k, v := range kv {
		data[k] = v
	}
	return data, nil
}

// normalize converts json.Number to int64 or float64, recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
