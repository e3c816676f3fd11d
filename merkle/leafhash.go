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

// HashLeafBytes hashes a leaf's raw bytes the way an external producer is
// expected to: data is split into 2^log2WordSize-byte words, each word is
// hashed independently, and the word hashes are folded pairwise up to
// log2LeafSize. data must be exactly 2^log2LeafSize bytes long.
func HashLeafBytes(h hashers.Hasher, data []byte, log2WordSize, log2LeafSize int) (hashers.Hash, error) {
	if log2WordSize < 0 {
		return hashers.Hash{}, errs.OutOfRangef("log2_word_size is negative")
	}
	if log2WordSize > log2LeafSize {
		return hashers.Hash{}, errs.OutOfRangef("log2_word_size is greater than log2_leaf_size")
	}
	want := uint64(1) << uint(log2LeafSize)
	if uint64(len(data)) != want {
		return hashers.Hash{}, errs.InvalidArgumentf("leaf data has wrong length: got %d, want %d", len(data), want)
	}
	return hashLeafLevel(h, data, log2WordSize, log2LeafSize), nil
}

func hashLeafLevel(h hashers.Hasher, data []byte, log2WordSize, log2Size int) hashers.Hash {
	if log2Size == log2WordSize {
		return hashers.HashData(h, data)
	}
	half := len(data) / 2
	left := hashLeafLevel(h, data[:half], log2WordSize, log2Size-1)
	right := hashLeafLevel(h, data[half:], log2WordSize, log2Size-1)
	return hashers.ConcatHash(h, left, right)
}
