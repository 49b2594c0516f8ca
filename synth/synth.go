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

// Package synth implements the polynomial synthesizer (component E) of
// spec.md §4.E: given a recognized form, it emits the cyclotomic-reduction
// candidate when c1 == +1 and the exponent hits one of the seven priority
// residues, or the family of exact-fit/round-up/round-down/composite-
// rebalancing candidates otherwise. Grounded on gen_brent_poly in
// _examples/original_source/factor/nfs/snfs.c.
package synth

import (
	"math/big"

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/internal/snfslog"
	"github.com/nfscore/snfspoly/poly"
)

// Synthesize builds every candidate polynomial pair implied by f for N,
// validates each with poly.Validate, estimates its norms with
// poly.EstimateNorms, and returns only the valid ones (spec.md §4.E's
// closing line: "validate with G, estimate norms with F, and keep only
// valid candidates").
func Synthesize(f form.Form, n *big.Int) []poly.Candidate {
	log := snfslog.Logger().With().Str("component", "synth.Synthesize").Str("form", f.Description()).Logger()

	var raw []poly.Candidate
	if f.C1 == 1 {
		if red, k, ok := selectReduction(f.E1); ok {
			raw = []poly.Candidate{buildReductionCandidate(f, n, red, k)}
			log.Debug().Int("r", red.r).Int("k", k).Msg("cyclotomic reduction fired")
		}
	}
	if raw == nil {
		raw = noReductionCandidates(f, n)
		log.Debug().Int("count", len(raw)).Msg("no-reduction branch")
	}

	out := make([]poly.Candidate, 0, len(raw))
	for i := range raw {
		c := &raw[i]
		if err := poly.Validate(c); err != nil {
			log.Debug().Int("index", i).Err(err).Msg("candidate rejected")
			continue
		}
		poly.EstimateNorms(c)
		out = append(out, *c)
	}
	return out
}
