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

// PristineTree holds the hash of the all-zero subtree at every height
// between log2WordSize and log2RootSize, inclusive. It is immutable after
// construction and amortizes the cost of hashing zero subtrees over the
// lifetime of whatever tree owns it.
type PristineTree struct {
	log2RootSize int
	log2WordSize int
	hashes       []hashers.Hash
}

// NewPristineTree precomputes the pristine hash table for the given sizes.
func NewPristineTree(log2RootSize, log2WordSize int, h hashers.Hasher) (*PristineTree, error) {
	if log2RootSize < 0 {
		return nil, errs.OutOfRangef("log2_root_size is negative")
	}
	if log2WordSize < 0 {
		return nil, errs.OutOfRangef("log2_word_size is negative")
	}
	if log2WordSize > log2RootSize {
		return nil, errs.OutOfRangef("log2_word_size is greater than log2_root_size")
	}

	n := log2RootSize - log2WordSize + 1
	hashes := make([]hashers.Hash, n)
	word := make([]byte, uint64(1)<<uint(log2WordSize))
	hashes[0] = hashers.HashData(h, word)
	for i := 1; i < n; i++ {
		hashes[i] = hashers.ConcatHash(h, hashes[i-1], hashes[i-1])
	}
	return &PristineTree{
		log2RootSize: log2RootSize,
		log2WordSize: log2WordSize,
		hashes:       hashes,
	}, nil
}

// Log2RootSize returns the log2 of the largest subtree this table holds a
// pristine hash for.
func (p *PristineTree) Log2RootSize() int {
	return p.log2RootSize
}

// Log2WordSize returns the log2 of the smallest subtree this table holds
// a pristine hash for.
func (p *PristineTree) Log2WordSize() int {
	return p.log2WordSize
}

// GetHash returns the pristine hash of the subtree of size 2^log2Size.
func (p *PristineTree) GetHash(log2Size int) (hashers.Hash, error) {
	if log2Size < p.log2WordSize || log2Size > p.log2RootSize {
		return hashers.Hash{}, errs.OutOfRangef("log2_size %d is out of range [%d, %d]", log2Size, p.log2WordSize, p.log2RootSize)
	}
	return p.hashes[log2Size-p.log2WordSize], nil
}
