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

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nodefacts_resolver_runs_total",
			Help: "Total number of resolver runs",
		},
		[]string{"resolver", "status"}, // success or error
	)

	resolverDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nodefacts_resolver_duration_seconds",
			Help:    "Time taken by individual resolvers",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"resolver"},
	)

	factsRealized = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nodefacts_facts_realized",
			Help: "Number of facts in the most recently updated collection",
		},
	)
)
