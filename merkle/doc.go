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

// Package merkle implements binary Merkle trees over Keccak-256, in three
// flavors that share the same address/level geometry and the same Proof
// type: PristineTree (precomputed all-zero subtree hashes, used by the
// other two as filler for the positions they haven't written yet),
// BackMerkleTree (append-only, O(depth) context, streaming proofs for the
// next unwritten leaf), and CompleteMerkleTree (left-flushed, stores every
// non-pristine hash per level, supports point queries and proofs anywhere
// in the tree).
//
// BackMerkleTree and CompleteMerkleTree are not safe for concurrent use,
// read-only queries included: each owns its internal state exclusively and
// keeps the Hasher passed to its constructor as scratch space for its
// hashing, so callers sharing one across goroutines must serialize access
// themselves. Two trees built with the same Hasher share that scratch
// state; instances built with distinct Hashers, including a
// BackMerkleTree and a CompleteMerkleTree tracking the same sequence of
// appended leaves, are fully independent. PristineTree keeps no Hasher and
// never mutates after construction, so it is safe to share read-only.
package merkle
