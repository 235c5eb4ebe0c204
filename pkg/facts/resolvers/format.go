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

package resolvers

import (
	"fmt"
	"math"
)

var (
	frequencyUnits = []string{"Hz", "kHz", "MHz", "GHz", "THz"}
	byteUnits      = []string{"bytes", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// FormatFrequency renders hz with two decimals and the largest suffix that
// keeps the value below 1000, e.g. 10000000000 -> "10.00 GHz".
func FormatFrequency(hz int64) string {
	return formatUnits(float64(hz), 1000, frequencyUnits)
}

// FormatBytes renders n with two decimals in 1024 steps, e.g. "15.52 GiB".
func FormatBytes(n uint64) string {
	return formatUnits(float64(n), 1024, byteUnits)
}

// formatUnits divides by base while the value is at least base. The check
// runs on the rounded value so 999999 Hz reads "1.00 MHz", not "1000.00 kHz".
func formatUnits(value, base float64, units []string) string {
	i := 0
	for i < len(units)-1 && round2(value) >= base {
		value /= base
		i++
	}
	return fmt.Sprintf("%.2f %s", value, units[i])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toMB converts bytes to mebibytes rounded to two decimals.
func toMB(n uint64) float64 {
	return round2(float64(n) / (1024 * 1024))
}
