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

package engine

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/poly"
)

// candidateRecord is the CBOR-serializable projection of a poly.Candidate
// (SPEC_FULL.md §4.O): big.Int fields are carried as decimal strings since
// cbor/v2 has no native big.Int support.
type candidateRecord struct {
	Rank        int      `cbor:"rank"`
	Valid       bool     `cbor:"valid"`
	Alg         []string `cbor:"alg"`
	Rat0        string   `cbor:"rat0"`
	Rat1        string   `cbor:"rat1"`
	M           string   `cbor:"m"`
	Skew        float64  `cbor:"skew"`
	Side        string   `cbor:"side"`
	Difficulty  float64  `cbor:"difficulty"`
	SDifficulty float64  `cbor:"sdifficulty"`
	ANorm       float64  `cbor:"anorm"`
	RNorm       float64  `cbor:"rnorm"`
}

// dumpDocument is the top-level CBOR artifact: the input N, the recognized
// form, the engine version, and every ranked candidate (not just the
// winner).
type dumpDocument struct {
	N             string             `cbor:"n"`
	FormKind      string             `cbor:"form_kind"`
	FormDesc      string             `cbor:"form_description"`
	EngineVersion string             `cbor:"engine_version"`
	Candidates    []candidateRecord  `cbor:"candidates"`
}

func toRecord(c poly.Candidate) candidateRecord {
	alg := make([]string, len(c.P.Alg))
	for i, v := range c.P.Alg {
		alg[i] = v.String()
	}
	return candidateRecord{
		Rank:        c.Rank,
		Valid:       c.Valid,
		Alg:         alg,
		Rat0:        bigStringOrZero(c.P.Rat, 0),
		Rat1:        bigStringOrZero(c.P.Rat, 1),
		M:           c.P.M.String(),
		Skew:        c.P.Skew,
		Side:        c.P.Side.String(),
		Difficulty:  c.Difficulty,
		SDifficulty: c.SDifficulty,
		ANorm:       c.ANorm,
		RNorm:       c.RNorm,
	}
}

func bigStringOrZero(s []*big.Int, i int) string {
	if i >= len(s) || s[i] == nil {
		return "0"
	}
	return s[i].String()
}

// DumpCandidates writes every ranked candidate (SPEC_FULL.md §4.O's
// machine-readable sibling artifact, not a replacement for WritePolyFile)
// as a single CBOR document.
func DumpCandidates(w io.Writer, n *big.Int, f form.Form, candidates []poly.Candidate) error {
	doc := dumpDocument{
		N:             n.String(),
		FormKind:      f.Kind.String(),
		FormDesc:      f.Description(),
		EngineVersion: Version.String(),
		Candidates:    make([]candidateRecord, len(candidates)),
	}
	for i, c := range candidates {
		doc.Candidates[i] = toRecord(c)
	}
	if err := cbor.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("engine: cbor encode candidate dump: %w", err)
	}
	return nil
}
