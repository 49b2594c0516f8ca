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

// Package poly implements the polynomial pair (component B), the SNFS
// candidate record (component C), the validator (component G), and the
// norm estimator (component F) of spec.md §3, §4.F, §4.G. Grounded on
// snfs_init/snfs_clear/snfs_copy_poly, check_poly, and approx_norms in
// _examples/original_source/factor/nfs/snfs.c.
package poly

import "math/big"

// MaxDegree bounds the algebraic polynomial's degree (spec.md §3: "implicit
// degree d <= MAX_DEGREE (7 suffices here)").
const MaxDegree = 7

// Side names which polynomial carries the special-q for lattice sieving.
type Side int

const (
	Rational Side = iota
	Algebraic
)

func (s Side) String() string {
	if s == Algebraic {
		return "algebraic"
	}
	return "rational"
}

// Polynomial is the NFS polynomial pair P of spec.md §3: an algebraic side
// of degree d <= MaxDegree, a linear rational side, and the common integer
// root m with alg(m) == rat(m) == 0 (mod N).
type Polynomial struct {
	Alg  []*big.Int // coefficients a_0 .. a_d, low degree first
	Rat  []*big.Int // always length 2: [rat0, rat1], rat(x) = rat1*x + rat0
	M    *big.Int
	Skew float64
	Side Side
}

// Degree returns the algebraic side's degree (len(Alg)-1), or -1 if empty.
func (p Polynomial) Degree() int {
	return len(p.Alg) - 1
}

// cloneInts returns a deep copy of a *big.Int slice.
func cloneInts(src []*big.Int) []*big.Int {
	out := make([]*big.Int, len(src))
	for i, v := range src {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Clone deep-copies the polynomial, matching the "winner must be deep-copied
// before the candidate array is freed" lifecycle rule of spec.md §3.
func (p Polynomial) Clone() Polynomial {
	return Polynomial{
		Alg:  cloneInts(p.Alg),
		Rat:  cloneInts(p.Rat),
		M:    new(big.Int).Set(p.M),
		Skew: p.Skew,
		Side: p.Side,
	}
}
