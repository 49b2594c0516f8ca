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
	"errors"
	"math/big"
)

// ErrInvalidCandidate is returned by Validate when a candidate fails its
// congruence check (spec.md §7: "InvalidCandidate — validator fails; that
// candidate is discarded; synthesis continues").
var ErrInvalidCandidate = errors.New("snfs: candidate fails f(m) = g(m) = 0 (mod N) check")

// Validate computes Sum c[i]*m^i mod N by Horner's scheme on the algebraic
// coefficients, and rat1*m+rat0 mod N on the rational side, requiring both
// residues to be zero (spec.md §4.G). Grounded on check_poly in
// _examples/original_source/factor/nfs/snfs.c, which evaluates both sides
// by the same Horner recurrence mod N.
//
// On success it sets cand.Valid and returns nil; on failure it leaves
// cand.Valid false and returns ErrInvalidCandidate, per spec.md §4.G
// ("Failure sets valid = false and the caller discards the candidate").
func Validate(cand *Candidate) error {
	n := cand.N
	m := cand.P.M

	algRes := hornerMod(cand.P.Alg, m, n)
	if algRes.Sign() != 0 {
		cand.Valid = false
		return ErrInvalidCandidate
	}

	ratRes := new(big.Int).Mul(cand.P.Rat[1], m)
	ratRes.Add(ratRes, cand.P.Rat[0])
	ratRes.Mod(ratRes, n)
	if ratRes.Sign() != 0 {
		cand.Valid = false
		return ErrInvalidCandidate
	}

	cand.Valid = true
	return nil
}

// hornerMod evaluates the polynomial with coefficients coeffs (low degree
// first) at x, reduced mod n, via Horner's scheme. big.Int.Mod against a
// positive n always returns the non-negative Euclidean residue.
func hornerMod(coeffs []*big.Int, x, n *big.Int) *big.Int {
	acc := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, coeffs[i])
		acc.Mod(acc, n)
	}
	return acc
}
