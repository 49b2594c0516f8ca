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

package form

import (
	"math"
	"math/big"

	"github.com/nfscore/snfspoly/internal/bigmath"
	"github.com/nfscore/snfspoly/internal/snfslog"
)

// Options bounds the recognizer's parameter grid (spec.md §4.D "Inputs").
type Options struct {
	// MaxBase bounds the base scanned in the Brent/homogeneous grid, default 100.
	MaxBase int
	// MaxBits bounds b^e < 2^MaxBits, default 1000.
	MaxBits int
}

// DefaultOptions returns the spec's default bounds.
func DefaultOptions() Options {
	return Options{MaxBase: 100, MaxBits: 1000}
}

func (o Options) normalized() Options {
	if o.MaxBase <= 0 {
		o.MaxBase = 100
	}
	if o.MaxBits <= 0 {
		o.MaxBits = 1000
	}
	return o
}

// skipBase lists prime powers of smaller bases, already covered when that
// smaller base is scanned (spec.md §4.D.1: "excluding prime powers of
// smaller bases").
var skipBase = map[int]bool{
	4: true, 8: true, 9: true, 16: true, 25: true, 27: true,
	32: true, 36: true, 49: true, 64: true, 81: true,
}

// Recognize scans the Brent, tail, and homogeneous-Cunningham grids in that
// order (spec.md §4.D "Ordering") and returns the first hit, or
// ErrNoFormFound if none of the three scans find one within bounds.
func Recognize(n *big.Int, opts Options) (Form, error) {
	opts = opts.normalized()
	log := snfslog.Logger().With().Str("component", "form.Recognize").Logger()

	if f, ok := scanBrent(n, opts); ok {
		log.Debug().Str("form", f.Description()).Msg("brent grid hit")
		return f, nil
	}
	maxeTail := maxExponent(opts.MaxBase-1, opts.MaxBits)
	if f, ok := tailScan(n, maxeTail); ok {
		log.Debug().Str("form", f.Description()).Msg("tail scan hit")
		return f, nil
	}
	if f, ok := scanHomogeneousCunningham(n, opts); ok {
		log.Debug().Str("form", f.Description()).Msg("homogeneous cunningham hit")
		return f, nil
	}
	log.Info().Msg("no special form found within bounds")
	return Form{}, ErrNoFormFound
}

// maxExponent returns floor(MaxBits / log2(b)) + 1, the per-base exponent
// ceiling of spec.md §4.D.1, for b >= 2.
func maxExponent(b, maxBits int) int {
	if b < 2 {
		return 0
	}
	return int(float64(maxBits)/math.Log2(float64(b))) + 1
}

const offset = int64(1) << 30 // the "+2^30" single-limb shift, spec.md §4.D.1

// scanBrent implements spec.md §4.D.1.
func scanBrent(n *big.Int, opts Options) (Form, bool) {
	offsetBig := big.NewInt(offset)
	twoPow32 := new(big.Int).Lsh(big.NewInt(1), 32)

	for b := 2; b < opts.MaxBase; b++ {
		if skipBase[b] {
			continue
		}
		maxe := maxExponent(b, opts.MaxBits)
		bBig := big.NewInt(int64(b))
		p := new(big.Int).Exp(bBig, big.NewInt(31), nil)

		for e := 32; e < maxe; e++ {
			p.Mul(p, bBig) // p = b^e

			r := new(big.Int).Add(n, offsetBig)
			r.Mod(r, p)

			if r.BitLen() > 32 {
				continue
			}

			var c2 int64
			negative := false
			if r.Cmp(offsetBig) > 0 {
				c2 = new(big.Int).Sub(r, offsetBig).Int64()
			} else {
				c2 = new(big.Int).Sub(offsetBig, r).Int64()
				negative = true
			}

			rPrime := new(big.Int)
			if negative {
				rPrime.Add(n, big.NewInt(c2))
			} else {
				rPrime.Sub(n, big.NewInt(c2))
			}

			c1, rem := new(big.Int), new(big.Int)
			c1.QuoRem(rPrime, p, rem)
			if rem.Sign() != 0 {
				continue
			}
			if c1.Sign() < 0 || c1.Cmp(twoPow32) >= 0 {
				continue
			}

			c1Int := c1.Int64()
			if c1Int%int64(b) == 0 {
				continue // degenerate form (spec.md §7: DegenerateForm)
			}

			signedC2 := c2
			if negative {
				signedC2 = -c2
			}
			return Form{Kind: Brent, C1: c1Int, B1: b, E1: e, C2: signedC2, B2: 1}, true
		}
	}
	return Form{}, false
}

// tailScan implements spec.md §4.D.2: for large-base, small-exponent forms,
// test N+1 and N-1 for being an exact e-th power. The original C
// (find_brent_form's second loop) stores the sign into form->coeff1 and
// leaves form->coeff2 untouched; that breaks the f(m) === 0 (mod N)
// invariant downstream, so here the sign is attached to C2 instead, keeping
// C1 == 1 consistent with the main grid's encoding (N | C1*B1^E1 + C2) and
// letting the §4.E.1 priority dispatch ("fires only when c1 == +1") apply
// uniformly across both scan paths. See DESIGN.md, "Open Question: tail
// scan sign encoding".
func tailScan(n *big.Int, maxe int) (Form, bool) {
	twoPow32 := new(big.Int).Lsh(big.NewInt(1), 32)

	for e := maxe; e > 1; e-- {
		// N + 1 == root^e  <=>  N == root^e - 1
		if f, ok := tryExactPower(n, 1, e, -1, twoPow32); ok {
			return f, true
		}
		// N - 1 == root^e  <=>  N == root^e + 1
		if f, ok := tryExactPower(n, -1, e, 1, twoPow32); ok {
			return f, true
		}
	}
	return Form{}, false
}

func tryExactPower(n *big.Int, delta int64, e int, c2 int64, limit *big.Int) (Form, bool) {
	a := new(big.Int).Add(n, big.NewInt(delta))
	if a.Sign() <= 0 {
		return Form{}, false
	}
	root, exact := bigmath.IsExactPower(a, uint(e))
	if !exact || root.Sign() <= 0 || root.Cmp(limit) >= 0 {
		return Form{}, false
	}
	return Form{Kind: Brent, C1: 1, B1: int(root.Int64()), E1: e, C2: c2, B2: 1}, true
}

// scanHomogeneousCunningham implements spec.md §4.D.3.
func scanHomogeneousCunningham(n *big.Int, opts Options) (Form, bool) {
	for i := 3; i < opts.MaxBase; i++ {
		for j := 2; j < i; j++ {
			if gcd(i, j) != 1 {
				continue
			}
			maxe := maxExponent(i, opts.MaxBits)
			iBig, jBig := big.NewInt(int64(i)), big.NewInt(int64(j))
			pi := new(big.Int).Exp(iBig, big.NewInt(19), nil)
			pj := new(big.Int).Exp(jBig, big.NewInt(19), nil)

			for k := 20; k < maxe; k++ {
				pi.Mul(pi, iBig)
				pj.Mul(pj, jBig)

				sum := new(big.Int).Add(pi, pj)
				if new(big.Int).Mod(sum, n).Sign() == 0 {
					return Form{Kind: HCunningham, C1: 1, B1: i, E1: k, B2: j, E2: k}, true
				}
				diff := new(big.Int).Sub(pi, pj)
				if new(big.Int).Mod(diff, n).Sign() == 0 {
					return Form{Kind: HCunningham, C1: -1, B1: i, E1: k, B2: j, E2: k}, true
				}
			}
		}
	}
	return Form{}, false
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
