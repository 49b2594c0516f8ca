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

package synth

import (
	"math"
	"math/big"

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/internal/smallprime"
	"github.com/nfscore/snfspoly/poly"
)

// noReductionCandidates implements spec.md §4.E.2: the exponent hits no
// cyclotomic priority residue, so instead build degree {4,5,6} candidates
// by exact-fit, round-up, round-down, and (for a composite base) per-factor
// rebalancing. Grounded on the `for (i=4; i<7; i++)` loop in gen_brent_poly,
// _examples/original_source/factor/nfs/snfs.c.
func noReductionCandidates(f form.Form, n *big.Int) []poly.Candidate {
	var out []poly.Candidate
	factors, composite := compositeFactors(f.B1)

	// The builders read the form as N | C1*B1^E1 + C2. A homogeneous form
	// N | B1^E1 + C1*B2^E1 keeps its sign in C1, so they get a copy with
	// leading coefficient 1 and the sign as the constant term.
	cf := f
	if f.IsHomogeneous() {
		cf.C1, cf.C2 = 1, f.C1
	}

	for d := 4; d <= 6; d++ {
		e := f.E1
		if e%d == 0 {
			out = append(out, exactFitCandidate(cf, n, d))
			continue
		}

		out = append(out, roundUpCandidate(cf, n, d))
		out = append(out, roundDownCandidate(cf, n, d))

		if composite && len(factors) > 1 {
			out = append(out, rebalanceCandidates(cf, n, d, factors)...)
		}
	}
	for i := range out {
		out[i].Form = f
	}
	return out
}

// compositeFactors factors base b via the small-prime table (spec.md §4.E.2
// step 1), reporting ok=false (and no usable factorization) when b is prime
// or exceeds the table's reach.
func compositeFactors(b int) (factors []int, composite bool) {
	factors, ok := smallprime.Factor(b)
	if !ok || len(factors) < 2 {
		return nil, false
	}
	return factors, true
}

func baseM(b int, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(b)), big.NewInt(int64(exp)), nil)
}

// ratLinear builds the rational side and final common root for a degree-d
// no-reduction candidate: for a pure Brent form it is the trivial -x + m;
// for a homogeneous form it is -b2^me*x + b1^me, with m recomputed as
// (b1/b2)^me mod N. Grounded on the SNFS_H_CUNNINGHAM branch following each
// of the three code blocks in gen_brent_poly's degree loop.
func ratLinear(f form.Form, n *big.Int, me int, primaryPow *big.Int) (rat [2]*big.Int, m *big.Int) {
	if !f.IsHomogeneous() {
		return [2]*big.Int{new(big.Int).Set(primaryPow), big.NewInt(-1)}, new(big.Int).Set(primaryPow)
	}
	b2Pow := baseM(f.B2, me)
	inv := new(big.Int).ModInverse(b2Pow, n)
	if inv == nil {
		inv = new(big.Int)
	}
	mOut := new(big.Int).Mul(primaryPow, inv)
	mOut.Mod(mOut, n)
	return [2]*big.Int{new(big.Int).Set(primaryPow), new(big.Int).Neg(b2Pow)}, mOut
}

func newCandidate(f form.Form, n *big.Int, d int, cd, c0 int64, m *big.Int, rat [2]*big.Int, skew, difficulty float64) poly.Candidate {
	alg := make([]*big.Int, d+1)
	for i := range alg {
		alg[i] = big.NewInt(0)
	}
	alg[d] = big.NewInt(cd)
	alg[0] = big.NewInt(c0)

	cand := poly.Candidate{
		N:    n,
		Form: f,
		P: poly.Polynomial{
			Alg:  alg,
			Rat:  []*big.Int{rat[0], rat[1]},
			M:    m,
			Skew: skew,
			Side: poly.Rational,
		},
		Difficulty: difficulty,
	}
	cand.C[d] = cd
	cand.C[0] = c0
	return cand
}

// exactFitCandidate implements spec.md §4.E.2's "Exact-fit" case.
func exactFitCandidate(f form.Form, n *big.Int, d int) poly.Candidate {
	me := f.E1 / d
	primaryPow := baseM(f.B1, me)
	rat, m := ratLinear(f, n, me, primaryPow)
	difficulty := float64(f.E1) * math.Log10(float64(f.B1))
	return newCandidate(f, n, d, f.C1, f.C2, m, rat, 1.0, difficulty)
}

// roundUpCandidate implements spec.md §4.E.2's "Round-up exponent" case.
func roundUpCandidate(f form.Form, n *big.Int, d int) poly.Candidate {
	e := f.E1
	inc := d - (e % d)
	me := (e + inc) / d
	primaryPow := baseM(f.B1, me)

	cd := pow64(f.B2, inc) * f.C1
	c0 := pow64(f.B1, inc) * f.C2
	skew := math.Pow(math.Abs(float64(c0))/math.Abs(float64(cd)), 1.0/float64(d))

	rat, m := ratLinear(f, n, me, primaryPow)
	difficulty := float64(e+inc) * math.Log10(float64(f.B1))
	return newCandidate(f, n, d, cd, c0, m, rat, skew, difficulty)
}

// roundDownCandidate implements spec.md §4.E.2's "Round-down exponent" case.
func roundDownCandidate(f form.Form, n *big.Int, d int) poly.Candidate {
	e := f.E1
	inc := e % d
	me := (e - inc) / d
	primaryPow := baseM(f.B1, me)

	cd := pow64(f.B1, inc) * f.C1
	c0 := pow64(f.B2, inc) * f.C2
	skew := math.Pow(math.Abs(float64(c0))/math.Abs(float64(cd)), 1.0/float64(d))

	rat, m := ratLinear(f, n, me, primaryPow)
	difficulty := float64(e)*math.Log10(float64(f.B1)) + math.Log10(math.Abs(float64(cd)))
	return newCandidate(f, n, d, cd, c0, m, rat, skew, difficulty)
}

// rebalanceCandidates implements spec.md §4.E.2's composite-base
// rebalancing: one candidate per prime factor of a composite base, counted
// with multiplicity (a repeated factor yields repeated candidates), pushing
// that factor up to the next multiple of d while pushing the remaining
// factors down by e mod d.
func rebalanceCandidates(f form.Form, n *big.Int, d int, factors []int) []poly.Candidate {
	e := f.E1
	i1 := d - (e % d)
	i2 := e % d

	var out []poly.Candidate
	for j, fj := range factors {
		rest := 1
		for k, fk := range factors {
			if k == j {
				continue
			}
			rest *= fk
		}

		c0 := pow64(fj, i1) * f.C2
		cd := pow64(f.B2, i1) * f.C1
		for k, fk := range factors {
			if k == j {
				continue
			}
			cd *= pow64(fk, i2)
		}
		skew := math.Pow(math.Abs(float64(c0))/math.Abs(float64(cd)), 1.0/float64(d))

		meUp := (e + i1) / d
		meDown := (e - i2) / d
		mUp := baseM(fj, meUp)
		mDown := baseM(rest, meDown)
		primaryPow := new(big.Int).Mul(mUp, mDown)

		difficulty := float64(d)*bigLog10(primaryPow) + math.Log10(math.Abs(float64(cd)))

		rat, m := ratLinear(f, n, meUp, primaryPow)
		out = append(out, newCandidate(f, n, d, cd, c0, m, rat, skew, difficulty))
	}
	return out
}

func pow64(base, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= int64(base)
	}
	return result
}

func bigLog10(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	abs, _ := f.Float64()
	return math.Log10(math.Abs(abs))
}
