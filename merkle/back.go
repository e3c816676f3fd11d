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
	"math/bits"

	"github.com/golang/glog"

	"github.com/cartesi/merkle-tree/errs"
	"github.com/cartesi/merkle-tree/merkle/hashers"
)

// EnableProofSelfCheck controls whether BackMerkleTree and
// CompleteMerkleTree re-verify every proof they produce before returning it. It defaults to on: the extra
// cost is O(depth) hashes, negligible next to the cost of producing the
// proof in the first place, and a production build that needs to shave
// it off can flip this once at startup.
var EnableProofSelfCheck = true

// BackMerkleTree is an append-only, streaming Merkle tree. Leaves are
// filled left to right; it keeps only O(depth) hashes of context, so
// push_back, the root hash, and the next-leaf proof are all O(depth).
//
// A BackMerkleTree owns its context array and pristine table exclusively;
// it is not safe for concurrent use by multiple goroutines, though
// distinct instances built with distinct Hashers are fully independent
// (see the package-level concurrency notes in doc.go).
type BackMerkleTree struct {
	log2RootSize int
	log2LeafSize int
	leafCount    uint64
	maxLeaves    uint64
	context      []hashers.Hash
	pristine     *PristineTree
	hasher       hashers.Hasher
}

// NewBackMerkleTree creates an empty BackMerkleTree with the given sizes.
func NewBackMerkleTree(log2RootSize, log2LeafSize, log2WordSize int, h hashers.Hasher) (*BackMerkleTree, error) {
	if log2RootSize < 0 {
		return nil, errs.OutOfRangef("log2_root_size is negative")
	}
	if log2LeafSize < 0 {
		return nil, errs.OutOfRangef("log2_leaf_size is negative")
	}
	if log2WordSize < 0 {
		return nil, errs.OutOfRangef("log2_word_size is negative")
	}
	if log2LeafSize > log2RootSize {
		return nil, errs.OutOfRangef("log2_leaf_size is greater than log2_root_size")
	}
	if log2WordSize > log2LeafSize {
		return nil, errs.OutOfRangef("log2_word_size is greater than log2_leaf_size")
	}
	if log2RootSize >= 64 {
		return nil, errs.OutOfRangef("tree is too large for a 64-bit address")
	}

	pristine, err := NewPristineTree(log2RootSize, log2WordSize, h)
	if err != nil {
		return nil, err
	}

	depth := log2RootSize - log2LeafSize
	t := &BackMerkleTree{
		log2RootSize: log2RootSize,
		log2LeafSize: log2LeafSize,
		maxLeaves:    uint64(1) << uint(depth),
		context:      make([]hashers.Hash, depth+1),
		pristine:     pristine,
		hasher:       h,
	}
	treeDepth.WithLabelValues(metricTreeBack).Set(float64(depth))
	return t, nil
}

// LeafCount returns the number of leaves appended so far.
func (t *BackMerkleTree) LeafCount() uint64 { return t.leafCount }

// MaxLeaves returns the tree's capacity in leaves.
func (t *BackMerkleTree) MaxLeaves() uint64 { return t.maxLeaves }

// PushBack appends leafHash as the next leaf.
func (t *BackMerkleTree) PushBack(leafHash hashers.Hash) error {
	if t.leafCount >= t.maxLeaves {
		return errs.OutOfRangef("tree already has the maximum of %d leaves", t.maxLeaves)
	}
	depth := t.log2RootSize - t.log2LeafSize
	right := leafHash
	for i := 0; i <= depth; i++ {
		if t.leafCount&(uint64(1)<<uint(i)) != 0 {
			left := t.context[i]
			right = hashers.ConcatHash(t.hasher, left, right)
			continue
		}
		t.context[i] = right
		break
	}
	t.leafCount++
	glog.V(4).Infof("back-merkle-tree: push_back leaf_count=%d bit_len=%d", t.leafCount, bits.Len64(t.leafCount))
	pushBacksTotal.WithLabelValues(metricTreeBack).Inc()
	return nil
}

// GetRootHash returns the tree's current root hash, folding pristine
// hashes in for any positions not yet written.
func (t *BackMerkleTree) GetRootHash() hashers.Hash {
	depth := t.log2RootSize - t.log2LeafSize
	if t.leafCount == t.maxLeaves {
		return t.context[depth]
	}
	// pristine(log2_leaf_size) always exists: NewPristineTree was built
	// with log2_word_size <= log2_leaf_size <= log2_root_size.
	root, _ := t.pristine.GetHash(t.log2LeafSize)
	for i := 0; i < depth; i++ {
		if t.leafCount&(uint64(1)<<uint(i)) != 0 {
			left := t.context[i]
			root = hashers.ConcatHash(t.hasher, left, root)
		} else {
			right, _ := t.pristine.GetHash(t.log2LeafSize + i)
			root = hashers.ConcatHash(t.hasher, root, right)
		}
	}
	return root
}

// GetNextLeafProof returns a proof for the position the next push_back
// would fill: target_hash is the pristine leaf hash, and the proof
// verifies against the tree's current root.
func (t *BackMerkleTree) GetNextLeafProof() (*Proof, error) {
	if t.leafCount >= t.maxLeaves {
		return nil, errs.OutOfRangef("tree is full")
	}
	glog.V(2).Infof("back-merkle-tree: get_next_leaf_proof leaf_count=%d", t.leafCount)
	depth := t.log2RootSize - t.log2LeafSize

	p, err := NewProof(t.log2RootSize, t.log2LeafSize)
	if err != nil {
		return nil, err
	}
	if err := p.SetTargetAddress(t.leafCount << uint(t.log2LeafSize)); err != nil {
		return nil, err
	}
	leafPristine, _ := t.pristine.GetHash(t.log2LeafSize)
	p.SetTargetHash(leafPristine)

	hash := leafPristine
	for i := 0; i < depth; i++ {
		if t.leafCount&(uint64(1)<<uint(i)) != 0 {
			left := t.context[i]
			if err := p.SetSiblingHash(left, t.log2LeafSize+i); err != nil {
				return nil, err
			}
			hash = hashers.ConcatHash(t.hasher, left, hash)
		} else {
			right, _ := t.pristine.GetHash(t.log2LeafSize + i)
			if err := p.SetSiblingHash(right, t.log2LeafSize+i); err != nil {
				return nil, err
			}
			hash = hashers.ConcatHash(t.hasher, hash, right)
		}
	}
	p.SetRootHash(hash)

	if EnableProofSelfCheck && !p.Verify(t.hasher) {
		errs.AssertInvariant(false, "back-merkle-tree: produced invalid proof")
		return nil, errs.Internalf("back-merkle-tree: produced invalid proof")
	}
	proofsIssuedTotal.WithLabelValues(metricTreeBack).Inc()
	return p, nil
}
