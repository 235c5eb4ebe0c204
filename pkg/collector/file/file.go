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

package file

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser splits line-oriented files into entries and key/value pairs.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip entries starting with "#".
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value used when an entry has no delimiter.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets characters to trim from both ends of values.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues drops entries whose value ends up empty.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a new file parser with the provided options.
// Default settings: newline delimiter, "=" pairs, comments skipped, 1MB max size.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20,
		skipComments: true,
		kvDelimiter:  "=",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at path and parses it with ParseMap.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.ParseMap(b), nil
}

// GetLines reads the file at path and parses it with ParseLines.
func (p *Parser) GetLines(path string) ([]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.ParseLines(b), nil
}

// ParseMap splits each entry at the first key-value delimiter. Keys and
// values are trimmed of whitespace, values also of the configured trim
// characters. An entry without a delimiter maps to the default value.
// Later entries win over earlier ones with the same key.
func (p *Parser) ParseMap(content []byte) map[string]string {
	result := make(map[string]string)
	for _, entry := range p.ParseLines(content) {
		key, value, found := strings.Cut(entry, p.kvDelimiter)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if !found {
			value = p.vDefault
		} else {
			value = strings.TrimSpace(value)
			if p.vTrimChars != "" {
				value = strings.Trim(value, p.vTrimChars)
			}
		}

		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", slog.String("key", key))
			continue
		}
		result[key] = value
	}
	return result
}

// ParseLines splits content at the delimiter and returns the trimmed,
// non-empty entries, without comments when those are skipped.
func (p *Parser) ParseLines(content []byte) []string {
	parts := strings.Split(string(content), p.delimiter)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(entry, "#") {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// read loads at most maxSize bytes of valid UTF-8 from path. Pseudo files
// report a zero size, so the limit is enforced on the read itself.
func (p *Parser) read(path string) ([]byte, error) {
	if path == "" {
		return nil, facterrors.New(facterrors.ErrCodeInvalidRequest, "file path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		code := facterrors.ErrCodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = facterrors.ErrCodeNotFound
		}
		return nil, facterrors.WrapWithContext(code, "failed to read file", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, int64(p.maxSize)+1))
	if err != nil {
		return nil, facterrors.WrapWithContext(facterrors.ErrCodeInternal, "failed to read file", err,
			map[string]any{"path": path})
	}
	if len(b) > p.maxSize {
		return nil, facterrors.NewWithContext(facterrors.ErrCodeInvalidRequest, "file exceeds maximum size",
			map[string]any{"path": path, "maxSize": p.maxSize})
	}
	if !utf8.Valid(b) {
		return nil, facterrors.NewWithContext(facterrors.ErrCodeInvalidRequest, "file content is not valid UTF-8",
			map[string]any{"path": path})
	}
	return b, nil
}
