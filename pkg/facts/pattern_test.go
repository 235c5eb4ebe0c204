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

import "testing"

func TestMatchName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"processors", "processors", true},
		{"processor0", "processors", false},
		{"processor0", "processor*", true},
		{"processor", "processor*", true},
		{"processor_count", "*count", true},
		{"count_total", "*count", false},
		{"physical_processor_count", "*processor*", true},
		{"kernelrelease", "kernel*release", true},
		{"kernel", "kernel*release", false},
		{"ab", "ab*ab", false},
		{"abab", "ab*ab", true},
		{"anything", "*", true},
		{"", "*", true},
		{"a", "**", true},
	}
	for _, tt := range tests {
		t.Run(tt.name+"~"+tt.pattern, func(t *testing.T) {
			if got := MatchName(tt.name, tt.pattern); got != tt.want {
				t.Errorf("MatchName(%q, %q) = %v, want %v", tt.name, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	if !MatchAny("systemd", []string{"kernel", "sys*"}) {
		t.Error("expected systemd to match sys*")
	}
	if MatchAny("systemd", nil) {
		t.Error("expected no match against empty pattern list")
	}
}

func TestNamesOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"processors", "processors", true},
		{"processors", "memory", false},
		{"processor*", "processor0", true},
		{"processor0", "processor*", true},
		{"processor*", "memory", false},
		{"processor*", "proc*", true},
		{"processor*", "memory*", false},
		{"*_mb", "*_count", false},
		{"*_mb", "swap*", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := namesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("namesOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
