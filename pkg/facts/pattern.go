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

package facts

import "strings"

// MatchName reports whether name matches pattern. A pattern without '*' must
// match exactly; each '*' matches any run of characters.
func MatchName(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	segments := strings.Split(pattern, "*")

	pos := 0
	for i, segment := range segments {
		if segment == "" {
			continue // consecutive or leading/trailing wildcards
		}

		// First segment must be at the start (unless pattern starts with *)
		if i == 0 {
			if !strings.HasPrefix(name, segment) {
				return false
			}
			pos = len(segment)
			continue
		}

		// Last segment must be at the end (unless pattern ends with *)
		if i == len(segments)-1 {
			return len(name)-pos >= len(segment) && strings.HasSuffix(name[pos:], segment)
		}

		// Middle segments must appear in order
		idx := strings.Index(name[pos:], segment)
		if idx == -1 {
			return false
		}
		pos += idx + len(segment)
	}

	return true
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if MatchName(name, p) {
			return true
		}
	}
	return false
}

// namesOverlap reports whether some fact name could match both a and b.
// For two wildcard patterns it compares the literal prefix and suffix, which
// can report overlap that a full intersection check would rule out.
func namesOverlap(a, b string) bool {
	aWild := strings.Contains(a, "*")
	bWild := strings.Contains(b, "*")
	switch {
	case !aWild && !bWild:
		return a == b
	case !aWild:
		return MatchName(a, b)
	case !bWild:
		return MatchName(b, a)
	}

	ap, bp := a[:strings.Index(a, "*")], b[:strings.Index(b, "*")]
	if !strings.HasPrefix(ap, bp) && !strings.HasPrefix(bp, ap) {
		return false
	}
	as, bs := a[strings.LastIndex(a, "*")+1:], b[strings.LastIndex(b, "*")+1:]
	return strings.HasSuffix(as, bs) || strings.HasSuffix(bs, as)
}
