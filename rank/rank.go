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

// Package rank implements the ranker (component H) of spec.md §4.H: scaling
// each candidate's difficulty by its norm imbalance, then sorting ascending
// by scaled difficulty. Grounded on snfs_scale_difficulty and
// qcomp_snfs_sdifficulty in _examples/original_source/factor/nfs/snfs.c.
package rank

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/nfscore/snfspoly/poly"
)

// imbalanceThreshold is the log10(ratio) value below which no penalty is
// applied (spec.md §4.H: "penalty = max(0, log10(ratio) - 6)").
const imbalanceThreshold = 6.0

// Scale computes ratio, side, penalty, and sdifficulty for cand in place,
// per spec.md §4.H.
func Scale(cand *poly.Candidate) {
	hi, lo := cand.ANorm, cand.RNorm
	if lo > hi {
		hi, lo = lo, hi
	}
	ratio := 1.0
	if lo > 0 {
		ratio = hi / lo
	}

	if cand.ANorm > cand.RNorm {
		cand.P.Side = poly.Algebraic
	} else {
		cand.P.Side = poly.Rational
	}

	penalty := math.Max(0, math.Log10(ratio)-imbalanceThreshold)
	cand.SDifficulty = cand.Difficulty + penalty
}

// Rank scales every candidate, sorts the slice ascending by sdifficulty, and
// assigns Rank 0..n-1 (spec.md §4.H: "Sort candidates ascending by
// sdifficulty, assign ranks 0..n-1").
//
// The sort must be stable and use a true floating-point comparison: the
// source casts the difference to int before comparing, which collapses any
// pair within +/-1.0 of each other to "equal" and silently reorders them
// (spec.md §9's first open question flags this as a bug). SortStableFunc
// with a direct float64 comparison is the faithful fix.
func Rank(candidates []poly.Candidate) {
	for i := range candidates {
		Scale(&candidates[i])
	}
	slices.SortStableFunc(candidates, func(a, b poly.Candidate) bool {
		return a.SDifficulty < b.SDifficulty
	})
	for i := range candidates {
		candidates[i].Rank = i
	}
}
