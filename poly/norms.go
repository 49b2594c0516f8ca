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
	"math"
	"math/big"
)

// scaleConst is the arbitrary, but side-shared, scaling constant of
// spec.md §4.F ("The constant 10^6 is arbitrary but must be identical on
// both sides so the ratio is meaningful").
const scaleConst = 1e6

// EstimateNorms approximates the algebraic and rational sieving norms for
// cand, writing ANorm and RNorm (spec.md §4.F). Grounded on approx_norms in
// _examples/original_source/factor/nfs/snfs.c; per spec.md §9's open
// question the accumulator there starts from an uninitialized big integer,
// here it is simply a float64 zero value, already correctly initialized.
func EstimateNorms(cand *Candidate) {
	skew := cand.P.Skew
	if skew <= 0 {
		skew = 1
	}
	a := math.Sqrt(skew) * scaleConst
	b := scaleConst / math.Sqrt(skew)

	deg := cand.P.Degree()
	ratio := a / b

	var anorm float64
	pow := 1.0 // (a/b)^i, i starting at 0
	for i := 0; i <= deg && i < len(cand.P.Alg); i++ {
		anorm += bigAbsFloat(cand.P.Alg[i]) * pow
		pow *= ratio
	}
	anorm *= math.Pow(b, float64(deg))

	rnorm := bigAbsFloat(cand.P.Rat[1])*a + bigAbsFloat(cand.P.Rat[0])*b

	cand.ANorm = anorm
	cand.RNorm = rnorm
}

// bigAbsFloat converts |v| to float64. Algebraic coefficients fit in 32
// bits by construction (spec.md §3), so this never loses meaningful
// precision for norm estimation purposes.
func bigAbsFloat(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	f.Abs(f)
	out, _ := f.Float64()
	return out
}
