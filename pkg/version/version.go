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

// Package version parses the dotted numeric versions reported by kernels and
// system components, e.g. "6.8.0-45-generic" or "v1.2".
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a numeric version with one to three significant components.
// Anything after the numeric part ("-45-generic", "+dirty") is kept in Extras.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision is the number of significant components (1, 2 or 3).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the significant components joined by dots. Extras are
// not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Truncate returns v limited to at most precision components. Dropped
// components and extras are cleared.
func (v Version) Truncate(precision int) Version {
	if precision < 1 {
		precision = 1
	}
	out := Version{Major: v.Major, Precision: min(v.Precision, precision)}
	if out.Precision >= 2 {
		out.Minor = v.Minor
	}
	if out.Precision >= 3 {
		out.Patch = v.Patch
	}
	return out
}

// Compare returns -1, 0 or 1 comparing v to other over the components both
// versions define.
func (v Version) Compare(other Version) int {
	a := []int{v.Major, v.Minor, v.Patch}
	b := []int{other.Major, other.Minor, other.Patch}
	for i := range min(v.Precision, other.Precision) {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// ParseVersion parses "1", "1.2" or "1.2.3" with an optional "v" prefix.
// A '-' or '+' following a digit starts the extras.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	main := s
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			main, v.Extras = s[:i], s[i:]
			break
		}
	}

	parts := strings.Split(main, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.HasPrefix(part, "+") {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = n
		case 1:
			v.Minor = n
		case 2:
			v.Patch = n
		}
	}
	v.Precision = len(parts)
	return v, nil
}
