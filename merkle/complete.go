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
	"github.com/golang/glog"

	"github.com/cartesi/merkle-tree/errs"
	"github.com/cartesi/merkle-tree/merkle/hashers"
)

// CompleteMerkleTree is a sparse, left-flushed Merkle tree: the leaf
// level holds a run of non-pristine leaves followed implicitly by
// pristine ones, and only the non-pristine hashes are ever stored.
//
// Unlike BackMerkleTree it supports point queries and proofs at any
// internal node, not just the next unwritten leaf, at the cost of storing
// every non-pristine hash at every level (about twice the number of
// leaves written) instead of O(depth) total.
type CompleteMerkleTree struct {
	log2RootSize int
	log2LeafSize int
	pristine     *PristineTree
	hasher       hashers.Hasher
	// levels[i] holds the non-pristine hashes at log2_size =
	// log2LeafSize+i, for i in [0, log2RootSize-log2LeafSize].
	levels [][]hashers.Hash
}

func checkCompleteTreeSizes(log2RootSize, log2LeafSize, log2WordSize int) error {
	if log2RootSize < 0 {
		return errs.OutOfRangef("log2_root_size is negative")
	}
	if log2LeafSize < 0 {
		return errs.OutOfRangef("log2_leaf_size is negative")
	}
	if log2WordSize < 0 {
		return errs.OutOfRangef("log2_word_size is negative")
	}
	if log2LeafSize > log2RootSize {
		return errs.OutOfRangef("log2_leaf_size is greater than log2_root_size")
	}
	if log2WordSize > log2LeafSize {
		return errs.OutOfRangef("log2_word_size is greater than log2_leaf_size")
	}
	if log2RootSize >= 64 {
		return errs.OutOfRangef("tree is too large for a 64-bit address")
	}
	return nil
}

// NewCompleteMerkleTree creates an empty (fully pristine) CompleteMerkleTree.
func NewCompleteMerkleTree(log2RootSize, log2LeafSize, log2WordSize int, h hashers.Hasher) (*CompleteMerkleTree, error) {
	if err := checkCompleteTreeSizes(log2RootSize, log2LeafSize, log2WordSize); err != nil {
		return nil, err
	}
	pristine, err := NewPristineTree(log2RootSize, log2WordSize, h)
	if err != nil {
		return nil, err
	}
	t := &CompleteMerkleTree{
		log2RootSize: log2RootSize,
		log2LeafSize: log2LeafSize,
		pristine:     pristine,
		hasher:       h,
		levels:       make([][]hashers.Hash, log2RootSize-log2LeafSize+1),
	}
	treeDepth.WithLabelValues(metricTreeComplete).Set(float64(log2RootSize - log2LeafSize))
	return t, nil
}

// NewCompleteMerkleTreeFromLeaves creates a CompleteMerkleTree pre-loaded
// with leaves, assumed flushed left, and bubbles their hashes up to the
// root immediately.
func NewCompleteMerkleTreeFromLeaves(log2RootSize, log2LeafSize, log2WordSize int, h hashers.Hasher, leaves []hashers.Hash) (*CompleteMerkleTree, error) {
	t, err := NewCompleteMerkleTree(log2RootSize, log2LeafSize, log2WordSize, h)
	if err != nil {
		return nil, err
	}
	maxLeaves := uint64(1) << uint(log2RootSize-log2LeafSize)
	if uint64(len(leaves)) > maxLeaves {
		return nil, errs.OutOfRangef("%d leaves exceed the tree's capacity of %d", len(leaves), maxLeaves)
	}
	t.levels[0] = append([]hashers.Hash(nil), leaves...)
	t.bubbleUp()
	return t, nil
}

// NewCompleteMerkleTreeFromLeafBytes hashes raw leaf byte slices (each
// exactly 2^log2LeafSize bytes, via repeated word hashing per HashLeafBytes)
// before building the tree, saving the caller from hashing leaves by hand.
func NewCompleteMerkleTreeFromLeafBytes(log2RootSize, log2LeafSize, log2WordSize int, h hashers.Hasher, leaves [][]byte) (*CompleteMerkleTree, error) {
	hashes := make([]hashers.Hash, len(leaves))
	for i, raw := range leaves {
		hh, err := HashLeafBytes(h, raw, log2WordSize, log2LeafSize)
		if err != nil {
			return nil, err
		}
		hashes[i] = hh
	}
	return NewCompleteMerkleTreeFromLeaves(log2RootSize, log2LeafSize, log2WordSize, h, hashes)
}

// Size returns the number of leaves stored (non-pristine or not).
func (t *CompleteMerkleTree) Size() uint64 {
	return uint64(len(t.levels[0]))
}

// GetRootHash returns the tree's root hash.
func (t *CompleteMerkleTree) GetRootHash() hashers.Hash {
	h, _ := t.GetNodeHash(0, t.log2RootSize)
	return h
}

// GetNodeHash returns the hash of the node covering
// [address, address+2^log2Size).
func (t *CompleteMerkleTree) GetNodeHash(address uint64, log2Size int) (hashers.Hash, error) {
	if log2Size < t.log2LeafSize || log2Size > t.log2RootSize {
		return hashers.Hash{}, errs.OutOfRangef("log2_size %d is out of range [%d, %d]", log2Size, t.log2LeafSize, t.log2RootSize)
	}
	if address%(uint64(1)<<uint(log2Size)) != 0 {
		return hashers.Hash{}, errs.OutOfRangef("address %d is not a multiple of 2^%d", address, log2Size)
	}
	if log2Size < 64 && address+(uint64(1)<<uint(log2Size)) > (uint64(1)<<uint(t.log2RootSize)) {
		return hashers.Hash{}, errs.OutOfRangef("node [%d, %d) extends past the tree's range", address, address+(uint64(1)<<uint(log2Size)))
	}

	level := t.levels[log2Size-t.log2LeafSize]
	idx := address >> uint(log2Size)
	if idx < uint64(len(level)) {
		return level[idx], nil
	}
	return t.pristine.GetHash(log2Size)
}

// PushBack appends a new leaf hash and recomputes every ancestor level.
func (t *CompleteMerkleTree) PushBack(h hashers.Hash) error {
	depth := t.log2RootSize - t.log2LeafSize
	maxLeaves := uint64(1) << uint(depth)
	if uint64(len(t.levels[0])) >= maxLeaves {
		return errs.OutOfRangef("tree already has the maximum of %d leaves", maxLeaves)
	}
	t.levels[0] = append(t.levels[0], h)
	t.bubbleUp()
	glog.V(4).Infof("complete-merkle-tree: push_back size=%d", len(t.levels[0]))
	pushBacksTotal.WithLabelValues(metricTreeComplete).Inc()
	return nil
}

// bubbleUp recomputes every level above the leaves from scratch, keeping
// the invariant "level L+1 is exactly derived from level L" trivially
// true after every mutation, at the cost of revisiting every level on
// every push_back.
func (t *CompleteMerkleTree) bubbleUp() {
	depth := t.log2RootSize - t.log2LeafSize
	glog.V(4).Infof("complete-merkle-tree: bubble_up leaves=%d depth=%d", len(t.levels[0]), depth)
	for l := 0; l < depth; l++ {
		cur := t.levels[l]
		if len(cur) == 0 {
			t.levels[l+1] = nil
			continue
		}
		log2Size := t.log2LeafSize + l
		pristineSibling, _ := t.pristine.GetHash(log2Size)
		n := (len(cur) + 1) / 2
		next := make([]hashers.Hash, n)
		for j := 0; j < n; j++ {
			left := cur[2*j]
			right := pristineSibling
			if 2*j+1 < len(cur) {
				right = cur[2*j+1]
			}
			next[j] = hashers.ConcatHash(t.hasher, left, right)
		}
		t.levels[l+1] = next
	}
}

// GetProof returns an inclusion proof for the node covering
// [address, address+2^log2Size).
func (t *CompleteMerkleTree) GetProof(address uint64, log2Size int) (*Proof, error) {
	glog.V(2).Infof("complete-merkle-tree: get_proof address=%d log2_size=%d", address, log2Size)
	targetHash, err := t.GetNodeHash(address, log2Size)
	if err != nil {
		return nil, err
	}
	rootHash, err := t.GetNodeHash(0, t.log2RootSize)
	if err != nil {
		return nil, err
	}

	p, err := NewProof(t.log2RootSize, log2Size)
	if err != nil {
		return nil, err
	}
	if err := p.SetTargetAddress(address); err != nil {
		return nil, err
	}
	p.SetTargetHash(targetHash)
	p.SetRootHash(rootHash)

	for l := log2Size; l < t.log2RootSize; l++ {
		ancestorAddress := address &^ (uint64(1)<<uint(l) - 1)
		siblingAddress := ancestorAddress ^ (uint64(1) << uint(l))
		sibling, err := t.GetNodeHash(siblingAddress, l)
		if err != nil {
			return nil, err
		}
		if err := p.SetSiblingHash(sibling, l); err != nil {
			return nil, err
		}
	}

	if EnableProofSelfCheck && !p.Verify(t.hasher) {
		errs.AssertInvariant(false, "complete-merkle-tree: produced invalid proof")
		return nil, errs.Internalf("complete-merkle-tree: produced invalid proof")
	}
	proofsIssuedTotal.WithLabelValues(metricTreeComplete).Inc()
	return p, nil
}
