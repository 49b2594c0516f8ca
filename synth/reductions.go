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
	"github.com/nfscore/snfspoly/poly"
)

// reduction describes one cyclotomic algebraic-factor reduction (spec.md
// §4.E.1's table). coeffsHighFirst lists c[deg..0] using sigma as the
// placeholder for the sign term, exactly as printed in the table; sign
// placement is expanded by expandCoeffs.
type reduction struct {
	r               int
	degree          int
	coeffsHighFirst []coeffTerm
	halved          bool // halved-degree branch (15, 21, 11, 13) vs straight (6, 5, 7)
	oddSix          bool // the r == 6, e mod 6 == 3 special case
}

// coeffTerm is one entry of a coeffsHighFirst row: a fixed integer multiple
// of sigma (Mul == 0 means "no sigma factor", i.e. a constant), optionally
// scaled by an extra power of b (used only by the r == 6 odd subcase, whose
// table entries are b^2, -b*sigma, and 1).
type coeffTerm struct {
	Mul    int64 // multiplier on sigma; 0 means this term is the plain constant below
	Const  int64 // plain integer value when Mul == 0
	BPower int   // extra factor of b^BPower applied on top
}

func term(mul, constVal int64, bpow int) coeffTerm { return coeffTerm{Mul: mul, Const: constVal, BPower: bpow} }

// reductionTable enumerates the eight branches of spec.md §4.E.1, listed
// 21, 15, then 6 (even and odd-6 subcases), 5, 7, 11, 13. Grounded on
// the gen_brent_poly if/else-if chain in
// _examples/original_source/factor/nfs/snfs.c, re-architected per spec.md
// §9's "table of {residue, coeff_pattern, m_formula}" design note. The
// table order is not the dispatch order: selectReduction below checks 15
// before 21.
var reductionTable = []reduction{
	{r: 21, degree: 6, halved: true, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(1, 0, 0), term(0, -6, 0), term(-6, 0, 0), term(0, 8, 0), term(8, 0, 0), term(0, 1, 0),
	}},
	{r: 15, degree: 4, halved: true, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(1, 0, 0), term(0, -4, 0), term(-4, 0, 0), term(0, 1, 0),
	}},
	{r: 6, degree: 4, halved: false, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(0, 0, 0), term(0, -1, 0), term(0, 0, 0), term(0, 1, 0),
	}},
	{r: 6, degree: 4, halved: false, oddSix: true, coeffsHighFirst: []coeffTerm{
		term(0, 1, 2), term(0, 0, 0), term(-1, 0, 1), term(0, 0, 0), term(0, 1, 0),
	}},
	{r: 5, degree: 4, halved: false, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(-1, 0, 0), term(0, 1, 0), term(-1, 0, 0), term(0, 1, 0),
	}},
	{r: 7, degree: 6, halved: false, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(-1, 0, 0), term(0, 1, 0), term(-1, 0, 0), term(0, 1, 0), term(-1, 0, 0), term(0, 1, 0),
	}},
	{r: 11, degree: 5, halved: true, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(-1, 0, 0), term(0, -4, 0), term(3, 0, 0), term(0, 3, 0), term(-1, 0, 0),
	}},
	{r: 13, degree: 6, halved: true, coeffsHighFirst: []coeffTerm{
		term(0, 1, 0), term(-1, 0, 0), term(0, -5, 0), term(4, 0, 0), term(0, 6, 0), term(-3, 0, 0), term(0, -1, 0),
	}},
}

// selectReduction implements spec.md §4.E.1's priority dispatch: "Priority
// 15, 21, then 6/3, then 5, 7, 11, 13. Each fires only when c1 == +1 and
// e mod r == 0 (or, for r = 6 special-case, e mod 6 == 3)". Returns the
// matching reduction and k = e/r (k = (e-3)/6 for the odd-6 subcase), or
// ok=false if the exponent hits no priority residue (caller falls to the
// no-reduction branch of spec.md §4.E.2). 15 is checked before 21 to match
// gen_brent_poly's actual if/else-if order (exp1 % 15 before exp1 % 21).
func selectReduction(e int) (red reduction, k int, ok bool) {
	switch {
	case e%15 == 0:
		return reductionTable[1], e / 15, true
	case e%21 == 0:
		return reductionTable[0], e / 21, true
	case e%6 == 0:
		return reductionTable[2], e / 6, true
	case e%6 == 3:
		return reductionTable[3], (e - 3) / 6, true
	case e%5 == 0:
		return reductionTable[4], e / 5, true
	case e%7 == 0:
		return reductionTable[5], e / 7, true
	case e%11 == 0:
		return reductionTable[6], e / 11, true
	case e%13 == 0:
		return reductionTable[7], e / 13, true
	default:
		return reduction{}, 0, false
	}
}

// buildReductionCandidate realizes one of the four formula builders of
// spec.md §9 ("(straight vs halved) x (pure vs homogeneous)"), dispatched on
// red.halved and f.IsHomogeneous().
func buildReductionCandidate(f form.Form, n *big.Int, red reduction, k int) poly.Candidate {
	sigma := reductionSigma(f)
	b := big.NewInt(int64(f.B1))

	alg := expandCoeffs(red.coeffsHighFirst, sigma, b)

	var m *big.Int
	var rat [2]*big.Int
	var baseForDifficulty float64

	if f.IsHomogeneous() {
		b2 := big.NewInt(int64(f.B2))
		bk := new(big.Int).Exp(b, big.NewInt(int64(k)), n)
		b2k := new(big.Int).Exp(b2, big.NewInt(int64(k)), n)
		b2kInv := new(big.Int).ModInverse(b2k, n)
		if b2kInv == nil {
			b2kInv = new(big.Int) // gcd(b2^k, N) != 1; leave m = 0, validator will reject
		}
		m = new(big.Int).Mul(bk, b2kInv)
		m.Mod(m, n)

		if red.halved {
			b1b2k := new(big.Int).Exp(new(big.Int).Mul(b, b2), big.NewInt(int64(k)), n)
			b12k := new(big.Int).Exp(b, big.NewInt(int64(2*k)), nil)
			b22k := new(big.Int).Exp(b2, big.NewInt(int64(2*k)), nil)
			rat[1] = new(big.Int).Neg(b1b2k)
			rat[0] = new(big.Int).Add(b12k, b22k)
		} else {
			b2kExact := new(big.Int).Exp(b2, big.NewInt(int64(k)), nil)
			b1kExact := new(big.Int).Exp(b, big.NewInt(int64(k)), nil)
			rat[1] = new(big.Int).Neg(b2kExact)
			rat[0] = b1kExact
		}
		baseForDifficulty = math.Log10(float64(f.B1)) + math.Log10(float64(f.B2))
	} else {
		bk := new(big.Int).Exp(b, big.NewInt(int64(k)), n)

		if red.halved {
			bkInv := new(big.Int).ModInverse(bk, n)
			if bkInv == nil {
				bkInv = new(big.Int)
			}
			m = new(big.Int).Add(bk, bkInv)
			m.Mod(m, n)

			b2k := new(big.Int).Exp(b, big.NewInt(int64(2*k)), nil)
			rat[1] = new(big.Int).Neg(new(big.Int).Exp(b, big.NewInt(int64(k)), nil))
			rat[0] = new(big.Int).Add(b2k, big.NewInt(1))
		} else {
			m = new(big.Int).Exp(b, big.NewInt(int64(k)), nil)
			rat[1] = big.NewInt(-1)
			rat[0] = new(big.Int).Set(m)
		}
		baseForDifficulty = math.Log10(float64(f.B1))
	}

	degMultiplier := float64(red.degree)
	if red.halved {
		degMultiplier = float64(2 * red.degree)
	}
	difficulty := baseForDifficulty * degMultiplier * float64(k)

	skew := 1.0
	if red.oddSix {
		skew = 1 / math.Sqrt(float64(f.B1)) // b^(-1/2), spec.md §4.E.1
	}

	cand := poly.Candidate{
		N:    n,
		Form: f,
		P: poly.Polynomial{
			Alg:  alg,
			Rat:  rat[:],
			M:    m,
			Skew: skew,
			Side: poly.Rational,
		},
		Difficulty: difficulty,
	}
	for i, c := range alg {
		if i <= MaxDegreeIndex {
			cand.C[i] = safeInt64(c)
		}
	}
	return cand
}

// MaxDegreeIndex mirrors poly.MaxDegree (7), the last index of
// poly.Candidate.C.
const MaxDegreeIndex = 7

func safeInt64(v *big.Int) int64 {
	if v.IsInt64() {
		return v.Int64()
	}
	if v.Sign() < 0 {
		return -1 << 62
	}
	return 1 << 62
}

// reductionSigma returns the sign sigma used throughout spec.md §4.E.1's
// coefficient table: for a pure Brent form it is sign(c2); for a homogeneous
// form the sign already lives in c1.
func reductionSigma(f form.Form) int64 {
	if f.IsHomogeneous() {
		if f.C1 < 0 {
			return -1
		}
		return 1
	}
	if f.C2 < 0 {
		return -1
	}
	return 1
}

// expandCoeffs realizes one coeffsHighFirst row (high degree first, per the
// table as printed in spec.md §4.E.1) into low-degree-first *big.Int
// coefficients, substituting sigma and the given base b.
func expandCoeffs(row []coeffTerm, sigma int64, b *big.Int) []*big.Int {
	out := make([]*big.Int, len(row))
	deg := len(row) - 1
	for i, t := range row {
		var v *big.Int
		if t.Mul != 0 {
			v = big.NewInt(t.Mul * sigma)
		} else {
			v = big.NewInt(t.Const)
		}
		if t.BPower > 0 {
			bp := new(big.Int).Exp(b, big.NewInt(int64(t.BPower)), nil)
			v = new(big.Int).Mul(v, bp)
		}
		out[deg-i] = v // row is high-degree-first; out is low-degree-first
	}
	return out
}
