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

// Proof is an inclusion proof for a node at a given address and log2 size,
// against a root at a (possibly much larger) log2 size. It carries one
// sibling hash per height from the target's log2 size up to, but not
// including, the root's.
//
// A Proof built by a tree is freshly allocated and owns an independent
// sibling slice: mutating one such Proof never affects another, and
// neither affects the tree that produced it.
type Proof struct {
	log2RootSize   int
	log2TargetSize int
	targetAddress  uint64
	targetHash     hashers.Hash
	rootHash       hashers.Hash
	// siblings[i] holds the sibling hash at height log2TargetSize+i, for
	// i in [0, log2RootSize-log2TargetSize).
	siblings []hashers.Hash
}

// NewProof creates an empty proof for the given sizes. All hashes start
// out zero; callers fill them in with the setters below.
func NewProof(log2RootSize, log2TargetSize int) (*Proof, error) {
	if log2RootSize < 0 {
		return nil, errs.OutOfRangef("log2_root_size is negative")
	}
	if log2TargetSize < 0 {
		return nil, errs.OutOfRangef("log2_target_size is negative")
	}
	if log2TargetSize > log2RootSize {
		return nil, errs.OutOfRangef("log2_target_size is greater than log2_root_size")
	}
	return &Proof{
		log2RootSize:   log2RootSize,
		log2TargetSize: log2TargetSize,
		siblings:       make([]hashers.Hash, log2RootSize-log2TargetSize),
	}, nil
}

// Log2RootSize returns the log2 size of the proof's root.
func (p *Proof) Log2RootSize() int { return p.log2RootSize }

// Log2TargetSize returns the log2 size of the proof's target.
func (p *Proof) Log2TargetSize() int { return p.log2TargetSize }

// TargetAddress returns the address of the target node.
func (p *Proof) TargetAddress() uint64 { return p.targetAddress }

// TargetHash returns the hash of the target node.
func (p *Proof) TargetHash() hashers.Hash { return p.targetHash }

// RootHash returns the hash the proof claims as the root.
func (p *Proof) RootHash() hashers.Hash { return p.rootHash }

// SetTargetAddress sets the target node's address. It must be a multiple
// of 2^log2TargetSize.
func (p *Proof) SetTargetAddress(address uint64) error {
	if p.log2TargetSize < 64 && address%(uint64(1)<<uint(p.log2TargetSize)) != 0 {
		return errs.OutOfRangef("target_address %d is not a multiple of 2^%d", address, p.log2TargetSize)
	}
	p.targetAddress = address
	return nil
}

// SetTargetHash sets the target node's hash.
func (p *Proof) SetTargetHash(h hashers.Hash) {
	p.targetHash = h
}

// SetRootHash sets the hash the proof claims as the root.
func (p *Proof) SetRootHash(h hashers.Hash) {
	p.rootHash = h
}

// siblingIndex validates log2Size and returns its offset into siblings.
func (p *Proof) siblingIndex(log2Size int) (int, error) {
	if log2Size < p.log2TargetSize || log2Size >= p.log2RootSize {
		return 0, errs.OutOfRangef("sibling log2_size %d is out of range [%d, %d)", log2Size, p.log2TargetSize, p.log2RootSize)
	}
	return log2Size - p.log2TargetSize, nil
}

// SetSiblingHash places h as the sibling hash at the given height.
func (p *Proof) SetSiblingHash(h hashers.Hash, log2Size int) error {
	i, err := p.siblingIndex(log2Size)
	if err != nil {
		return err
	}
	p.siblings[i] = h
	return nil
}

// GetSiblingHash returns the sibling hash stored at the given height.
func (p *Proof) GetSiblingHash(log2Size int) (hashers.Hash, error) {
	i, err := p.siblingIndex(log2Size)
	if err != nil {
		return hashers.Hash{}, err
	}
	return p.siblings[i], nil
}

// Verify recomputes the root from the target hash and the sibling hashes
// and reports whether it matches the proof's stored root hash.
func (p *Proof) Verify(h hashers.Hasher) bool {
	running := p.targetHash
	for i := p.log2TargetSize; i < p.log2RootSize; i++ {
		sibling := p.siblings[i-p.log2TargetSize]
		if p.targetAddress&(uint64(1)<<uint(i)) == 0 {
			running = hashers.ConcatHash(h, running, sibling)
		} else {
			running = hashers.ConcatHash(h, sibling, running)
		}
	}
	return running == p.rootHash
}

// Slice restricts p to a sub-range [newTargetSize, newRootSize] with
// log2TargetSize <= newTargetSize <= newRootSize <= log2RootSize,
// recomputing the intermediate node hashes along the way. It does not
// require p to currently verify.
func (p *Proof) Slice(h hashers.Hasher, newRootSize, newTargetSize int) (*Proof, error) {
	if newTargetSize < p.log2TargetSize {
		return nil, errs.OutOfRangef("new_target_size %d is below the proof's target size %d", newTargetSize, p.log2TargetSize)
	}
	if newRootSize < newTargetSize {
		return nil, errs.OutOfRangef("new_root_size %d is below new_target_size %d", newRootSize, newTargetSize)
	}
	if newRootSize > p.log2RootSize {
		return nil, errs.OutOfRangef("new_root_size %d is above the proof's root size %d", newRootSize, p.log2RootSize)
	}

	running := p.targetHash
	var targetHashAtNewTarget hashers.Hash
	haveTargetHash := false
	for i := p.log2TargetSize; i < newRootSize; i++ {
		if i == newTargetSize {
			targetHashAtNewTarget = running
			haveTargetHash = true
		}
		sibling := p.siblings[i-p.log2TargetSize]
		if p.targetAddress&(uint64(1)<<uint(i)) == 0 {
			running = hashers.ConcatHash(h, running, sibling)
		} else {
			running = hashers.ConcatHash(h, sibling, running)
		}
	}
	if !haveTargetHash {
		// Loop never reached newTargetSize (happens whenever
		// newTargetSize == newRootSize), so the node at newRootSize is
		// also the new target.
		targetHashAtNewTarget = running
	}

	sliced, err := NewProof(newRootSize, newTargetSize)
	if err != nil {
		return nil, err
	}
	mask := uint64(1)<<uint(newTargetSize) - 1
	if newTargetSize >= 64 {
		mask = ^uint64(0)
	}
	if err := sliced.SetTargetAddress(p.targetAddress &^ mask); err != nil {
		return nil, err
	}
	sliced.SetTargetHash(targetHashAtNewTarget)
	sliced.SetRootHash(running)
	for i := newTargetSize; i < newRootSize; i++ {
		if err := sliced.SetSiblingHash(p.siblings[i-p.log2TargetSize], i); err != nil {
			return nil, err
		}
	}
	return sliced, nil
}
