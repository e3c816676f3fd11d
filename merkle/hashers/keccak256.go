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

package hashers

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak256Hasher is the sole production Hasher: Keccak-256 with a 32-byte
// digest, the hash function every tree engine in this module uses.
type Keccak256Hasher struct {
	h hash.Hash
}

// NewKeccak256Hasher returns a ready-to-use Keccak-256 Hasher.
func NewKeccak256Hasher() *Keccak256Hasher {
	return &Keccak256Hasher{h: sha3.NewLegacyKeccak256()}
}

// Reset implements Hasher.
func (k *Keccak256Hasher) Reset() {
	k.h.Reset()
}

// Write implements Hasher.
func (k *Keccak256Hasher) Write(data []byte) {
	// hash.Hash.Write never returns an error.
	_, _ = k.h.Write(data)
}

// Sum implements Hasher.
func (k *Keccak256Hasher) Sum() Hash {
	var out Hash
	copy(out[:], k.h.Sum(nil))
	return out
}
