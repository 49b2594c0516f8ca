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

package poly

import (
	"math/big"

	"github.com/nfscore/snfspoly/form"
)

// Candidate is the SNFS candidate record C of spec.md §3: a form descriptor,
// a fixed-width small-integer coefficient array used during construction,
// the owned polynomial pair, and the metrics attached by G, F, and H.
type Candidate struct {
	N    *big.Int
	Form form.Form

	// C holds the small-integer construction coefficients, low degree
	// first, index 0..MaxDegree (spec.md §3: "redundant with P.alg but in
	// a fixed-width numeric type for fast arithmetic").
	C [MaxDegree + 1]int64

	P Polynomial

	Difficulty  float64
	SDifficulty float64
	ANorm       float64
	RNorm       float64
	Valid       bool
	Rank        int
}

// Clone deep-copies the candidate, including its owned Polynomial. Used when
// the engine hands the winner out of a candidate slice it otherwise discards
// (spec.md §3: "the winner must be cloned out before the arena is freed").
func (c Candidate) Clone() Candidate {
	out := c
	out.P = c.P.Clone()
	return out
}
