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

// Package bigmath collects the handful of arbitrary-precision helpers the
// recognizer and synthesizer need on top of math/big: the BigInt facility
// itself is an external boundary (spec.md §1 — "assumed provided by a
// big-integer facility"); nothing in the retrieved corpus offers a general,
// arbitrary-modulus big-integer type (gnark-crypto's field elements are
// compiled for one fixed curve modulus each and cannot represent a
// runtime-chosen N — see DESIGN.md), so this package wraps the standard
// library the way other_examples/fc55e816_akalin-aks-go__bigintpoly.go.go
// wraps math/big for its own polynomial arithmetic: small, allocation-light
// helpers built directly on *big.Int.
package bigmath

import "math/big"

// FitsUint32 reports whether v is non-negative and fits in 32 bits.
func FitsUint32(v *big.Int) bool {
	return v.Sign() >= 0 && v.BitLen() <= 32
}

// IsExactPower reports whether n is exactly r^e for some non-negative
// integer r, returning r on success. It mirrors the tail-scan use of
// mpz_root/mpz_pow in find_brent_form (original_source/factor/nfs/snfs.c):
// take the integer e-th root, then verify by re-exponentiating.
func IsExactPower(n *big.Int, e uint) (root *big.Int, exact bool) {
	if n.Sign() < 0 || e == 0 {
		return nil, false
	}
	root = nthRoot(n, e)
	check := new(big.Int).Exp(root, big.NewInt(int64(e)), nil)
	return root, check.Cmp(n) == 0
}

// nthRoot computes floor(n^(1/e)) for n >= 0, e >= 1, via Newton's method on
// big.Int, the standard integer-root iteration (no library in the retrieved
// corpus exposes an arbitrary-root big-integer primitive; math/big itself
// only special-cases Sqrt).
func nthRoot(n *big.Int, e uint) *big.Int {
	if n.Sign() == 0 {
		return big.NewInt(0)
	}
	if e == 1 {
		return new(big.Int).Set(n)
	}
	bigE := big.NewInt(int64(e))
	eMinus1 := big.NewInt(int64(e - 1))

	// initial guess: 2^ceil(bitlen(n)/e)
	guessBits := (n.BitLen() + int(e) - 1) / int(e)
	if guessBits < 1 {
		guessBits = 1
	}
	x := new(big.Int).Lsh(big.NewInt(1), uint(guessBits))

	for {
		// x_{k+1} = ((e-1)*x_k + n/x_k^(e-1)) / e
		xPow := new(big.Int).Exp(x, eMinus1, nil)
		if xPow.Sign() == 0 {
			break
		}
		term := new(big.Int).Quo(n, xPow)
		next := new(big.Int).Mul(eMinus1, x)
		next.Add(next, term)
		next.Quo(next, bigE)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	// correct for any off-by-one from truncation.
	for {
		up := new(big.Int).Add(x, big.NewInt(1))
		upPow := new(big.Int).Exp(up, bigE, nil)
		if upPow.Cmp(n) > 0 {
			break
		}
		x = up
	}
	return x
}

// ModInverse returns the modular inverse of a mod n, or nil if a has no
// inverse mod n (gcd(a, n) != 1).
func ModInverse(a, n *big.Int) *big.Int {
	inv := new(big.Int)
	if inv.ModInverse(a, n) == nil {
		return nil
	}
	return inv
}

// PowInt returns base^exp as a fresh *big.Int, exp >= 0.
func PowInt(base int64, exp uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), new(big.Int).SetUint64(exp), nil)
}
