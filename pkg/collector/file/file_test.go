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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facterrors "github.com/NVIDIA/node-facts/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewParser(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want Parser
	}{
		{
			name: "default options",
			want: Parser{delimiter: "\n", maxSize: 1 << 20, skipComments: true, kvDelimiter: "="},
		},
		{
			name: "all options",
			opts: []Option{
				WithDelimiter(" "),
				WithMaxSize(10),
				WithSkipComments(false),
				WithKVDelimiter(":"),
				WithVDefault("true"),
				WithVTrimChars(`"`),
				WithSkipEmptyValues(true),
			},
			want: Parser{
				delimiter:       " ",
				maxSize:         10,
				skipComments:    false,
				kvDelimiter:     ":",
				vDefault:        "true",
				vTrimChars:      `"`,
				skipEmptyValues: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewParser(tt.opts...))
		})
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		content string
		want    []string
	}{
		{"empty", nil, "", []string{}},
		{"blank lines and whitespace", nil, "  a \n\n\t\nb\n", []string{"a", "b"}},
		{"comments skipped", nil, "# header\na\n  # indented\nb", []string{"a", "b"}},
		{"comments kept", []Option{WithSkipComments(false)}, "# header\na", []string{"# header", "a"}},
		{"custom delimiter", []Option{WithDelimiter(" ")}, "ro quiet  splash", []string{"ro", "quiet", "splash"}},
		{"unicode", nil, "名前=値\nemoji=🚀", []string{"名前=値", "emoji=🚀"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewParser(tt.opts...).ParseLines([]byte(tt.content)))
		})
	}
}

func TestParseMap(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		content string
		want    map[string]string
	}{
		{
			name:    "basic pairs",
			content: "a=1\nb = 2 \n",
			want:    map[string]string{"a": "1", "b": "2"},
		},
		{
			name:    "value keeps later delimiters",
			content: "url=http://x/?a=b",
			want:    map[string]string{"url": "http://x/?a=b"},
		},
		{
			name:    "key without value uses default",
			opts:    []Option{WithVDefault("true")},
			content: "quiet\nro",
			want:    map[string]string{"quiet": "true", "ro": "true"},
		},
		{
			name:    "kernel command line",
			opts:    []Option{WithDelimiter(" ")},
			content: "BOOT_IMAGE=/vmlinuz root=UUID=abc ro quiet",
			want:    map[string]string{"BOOT_IMAGE": "/vmlinuz", "root": "UUID=abc", "ro": "", "quiet": ""},
		},
		{
			name:    "os-release quoting",
			opts:    []Option{WithVTrimChars(`"'`), WithSkipEmptyValues(true)},
			content: "NAME=\"Ubuntu\"\nID=ubuntu\nVARIANT=''\nMALFORMED\n",
			want:    map[string]string{"NAME": "Ubuntu", "ID": "ubuntu"},
		},
		{
			name:    "custom kv delimiter",
			opts:    []Option{WithKVDelimiter(":")},
			content: "rack: r12\nzone:  b",
			want:    map[string]string{"rack": "r12", "zone": "b"},
		},
		{
			name:    "empty key ignored",
			content: "=value\nk=v",
			want:    map[string]string{"k": "v"},
		},
		{
			name:    "last duplicate wins",
			content: "k=1\nk=2",
			want:    map[string]string{"k": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewParser(tt.opts...).ParseMap([]byte(tt.content)))
		})
	}
}

func TestGetMap(t *testing.T) {
	path := writeFile(t, "# facts\nrack=r12\nrole=worker\n")

	got, err := NewParser().GetMap(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rack": "r12", "role": "worker"}, got)
}

func TestGetLines(t *testing.T) {
	path := writeFile(t, "line1\nline2\n")

	got, err := NewParser().GetLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"line1", "line2"}, got)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		opts []Option
		code facterrors.ErrorCode
		msg  string
	}{
		{
			name: "empty path",
			path: func(*testing.T) string { return "" },
			code: facterrors.ErrCodeInvalidRequest,
			msg:  "cannot be empty",
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			code: facterrors.ErrCodeNotFound,
			msg:  "failed to read file",
		},
		{
			name: "too large",
			path: func(t *testing.T) string { return writeFile(t, strings.Repeat("x", 11)) },
			opts: []Option{WithMaxSize(10)},
			code: facterrors.ErrCodeInvalidRequest,
			msg:  "exceeds maximum size",
		},
		{
			name: "invalid utf-8",
			path: func(t *testing.T) string { return writeFile(t, "\xff\xfe") },
			code: facterrors.ErrCodeInvalidRequest,
			msg:  "not valid UTF-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(tt.opts...).GetMap(tt.path(t))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.msg)
			assert.True(t, facterrors.HasCode(err, tt.code), "code %s in %v", tt.code, err)
		})
	}
}

func TestRead_MissingFileIsNotExist(t *testing.T) {
	_, err := NewParser().GetLines(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRead_ExactlyMaxSize(t *testing.T) {
	path := writeFile(t, "k=123456")

	got, err := NewParser(WithMaxSize(8)).GetMap(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "123456"}, got)
}

func BenchmarkParseMap(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("key")
		sb.WriteString(strings.Repeat("x", i%10))
		sb.WriteString("=value\n")
	}
	content := []byte(sb.String())
	p := NewParser()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ParseMap(content)
	}
}
