// Copyright Cartesi and individual authors (see AUTHORS)
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package merkle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// These counters are registered against the default registry the first
// time this package is imported; nothing here blocks on exporting them,
// so a process embedding this module decides entirely on its own whether
// and how to scrape them.
var (
	pushBacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "merkle_pushbacks_total",
		Help: "Number of leaf hashes appended to a BackMerkleTree or CompleteMerkleTree.",
	}, []string{"tree"})

	proofsIssuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "merkle_proofs_issued_total",
		Help: "Number of inclusion proofs constructed.",
	}, []string{"tree"})

	treeDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "merkle_tree_depth",
		Help: "log2_root_size - log2_leaf_size for the most recently constructed tree of each kind.",
	}, []string{"tree"})
)

const (
	metricTreeBack     = "back"
	metricTreeComplete = "complete"
)
