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

// Package smallprime provides the small-prime table used to factor composite
// sieving bases. The table is built on the first call to Table, under a
// sync.Once, not via package-level static initialization, per the engine's
// design notes (spec.md §9: "Small-
// prime table ... Preserve read-only sharing but initialize explicitly").
package smallprime

import "sync"

const defaultLimit = 1000

var (
	once  sync.Once
	table []int
)

// Table returns the read-only table of primes up to (and including) 1000,
// computed lazily on first use via a sieve of Eratosthenes. The returned
// slice must not be mutated by callers.
func Table() []int {
	once.Do(func() {
		table = sieve(defaultLimit)
	})
	return table
}

// sieve returns all primes p with 2 <= p <= limit.
func sieve(limit int) []int {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []int
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= limit && p != 0; m += p {
			composite[m] = true
		}
	}
	return primes
}

// Factor returns the prime factorization of n (with multiplicity), trial
// dividing by Table() only. A cofactor left over after trial division is
// reported as a prime factor when it is at most 1000^2, which covers every
// sieving base this engine considers (MaxBase defaults to 100). A larger
// cofactor cannot be resolved with the table; Factor then returns the
// factors found so far and ok=false.
func Factor(n int) (factors []int, ok bool) {
	if n < 2 {
		return nil, n == 1
	}
	remaining := n
	for _, p := range Table() {
		if remaining == 1 {
			break
		}
		if p*p > remaining {
			break
		}
		for remaining%p == 0 {
			factors = append(factors, p)
			remaining /= p
		}
	}
	if remaining > 1 {
		if remaining > defaultLimit*defaultLimit {
			// every table prime was tried; the cofactor may still be composite.
			return factors, false
		}
		// no table prime divides remaining and remaining <= 1000^2, so it is prime.
		factors = append(factors, remaining)
		remaining = 1
	}
	return factors, remaining == 1
}
