// Copyright 2020 ConsenSys AG
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

// Package fingerprint derives stable job identifiers for candidates handed
// to an external test-sieving oracle (spec.md §6.1's test_sieve collaborator)
// and for the engine's in-process synthesis cache. The original C engine
// never needed this: fact_obj_t* and nfs_job_t* are addressed by pointer
// within a single process. A Go engine that may shell out to an external
// oracle process instead needs a content-derived tag.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// JobID hashes (n, formDescription, candidateIndex) into a 16-hex-character
// identifier. blake2b is already reachable from the module's dependency
// graph (golang.org/x/crypto, a direct requirement pulled in for exactly
// this kind of keyed hashing across the retrieved corpus — see
// other_examples/91d8206c_gtank-blake2__blake2b-blake2b.go.go) and needs no
// key material, unlike the SHA2/HMAC constructions elsewhere in that corpus.
func JobID(n *big.Int, formDescription string, candidateIndex int) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		// blake2b.New only fails for bad key/size combinations; both are
		// fixed constants here.
		panic(fmt.Sprintf("fingerprint: blake2b init: %v", err))
	}
	h.Write(n.Bytes())
	h.Write([]byte{0})
	h.Write([]byte(formDescription))
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", candidateIndex)
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey hashes (n, config fingerprint) into a key the engine can use to
// memoize a full synthesis run for one input across repeated calls in the
// same process.
func CacheKey(n *big.Int, maxBase, maxBits int) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic(fmt.Sprintf("fingerprint: blake2b init: %v", err))
	}
	h.Write(n.Bytes())
	fmt.Fprintf(h, ":%d:%d", maxBase, maxBits)
	return hex.EncodeToString(h.Sum(nil))
}
