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
	"github.com/cartesi/merkle-tree/errs"
	"github.com/cartesi/merkle-tree/merkle/hashers"
)

// ComposeProof assembles a Proof from a flat description using the
// decreasing-log2_size sibling ordering external wire formats use:
// siblings[0] is the sibling at log2_size = log2RootSize-1, siblings[k] is
// the sibling at log2_size = log2RootSize-1-k. This is the only place in
// the module where that ordering is honoured; Proof itself is always
// indexed by log2_size.
func ComposeProof(log2RootSize, log2TargetSize int, targetAddress uint64, targetHash, rootHash hashers.Hash, siblingsDecreasing []hashers.Hash) (*Proof, error) {
	want := log2RootSize - log2TargetSize
	if want < 0 {
		want = 0
	}
	if len(siblingsDecreasing) != want {
		return nil, errs.InvalidArgumentf("wrong number of sibling hashes: got %d, want %d", len(siblingsDecreasing), want)
	}

	p, err := NewProof(log2RootSize, log2TargetSize)
	if err != nil {
		return nil, err
	}
	if err := p.SetTargetAddress(targetAddress); err != nil {
		return nil, err
	}
	p.SetTargetHash(targetHash)
	p.SetRootHash(rootHash)
	for i, sibling := range siblingsDecreasing {
		log2Size := log2RootSize - 1 - i
		if err := p.SetSiblingHash(sibling, log2Size); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DecomposeProof serialises p's sibling hashes in decreasing log2_size
// order, the inverse of ComposeProof.
func DecomposeProof(p *Proof) []hashers.Hash {
	n := p.log2RootSize - p.log2TargetSize
	out := make([]hashers.Hash, n)
	for i := 0; i < n; i++ {
		log2Size := p.log2RootSize - 1 - i
		// log2Size is always within [log2TargetSize, log2RootSize) by
		// construction of the loop bounds, so the error is unreachable.
		h, _ := p.GetSiblingHash(log2Size)
		out[i] = h
	}
	return out
}
