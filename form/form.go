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

// Package form implements the form recognizer (spec.md §4.D, component D):
// scanning a bounded two-dimensional parameter grid to decide whether N
// divides a number of Brent or homogeneous-Cunningham form. Grounded on
// find_brent_form / find_hcunn_form in
// _examples/original_source/factor/nfs/snfs.c.
package form

import (
	"errors"
	"fmt"
)

// ErrNoFormFound is returned when every scan in Recognize completes without
// a hit (spec.md §7: "NoFormFound — recognizer returns F = NONE; ... caller
// chooses general NFS").
var ErrNoFormFound = errors.New("snfs: no special form found within bounds")

// Kind tags the recognized algebraic form.
type Kind int

const (
	// None means no special form was recognized.
	None Kind = iota
	// Brent is N | C1*B1^E1 + C2 (B2 == 1, E2 unused).
	Brent
	// HCunningham is N | B1^E1 + C1*B2^E1 (C1 in {+1,-1}, E2 == E1, C2 unused).
	HCunningham
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Brent:
		return "brent"
	case HCunningham:
		return "h_cunningham"
	default:
		return fmt.Sprintf("form.Kind(%d)", int(k))
	}
}

// Form is the tagged-union form descriptor (spec.md §3, §4.D). The NONE
// variant is represented by the zero value's Kind field, removing the need
// for a separate "valid" flag on the descriptor (spec.md §9).
type Form struct {
	Kind Kind

	C1 int64 // leading/sign coefficient
	B1 int   // primary base
	E1 int   // primary exponent
	C2 int64 // constant-term coefficient (Brent only)
	B2 int   // secondary base (HCunningham only; Brent uses B2 == 1)
	E2 int   // secondary exponent (HCunningham only; equals E1)
}

// IsHomogeneous reports whether the form pairs two distinct bases
// (N | b1^e +/- b2^e), as opposed to a pure power form (N | c1*b^e + c2).
func (f Form) IsHomogeneous() bool {
	return f.Kind == HCunningham
}

// Description renders the human-readable form string used in the poly-file
// comment header (spec.md §6.2).
func (f Form) Description() string {
	sign := '+'
	switch f.Kind {
	case HCunningham:
		if f.C1 < 0 {
			sign = '-'
		}
		return fmt.Sprintf("%d^%d%c%d^%d", f.B1, f.E1, sign, f.B2, f.E2)
	case Brent:
		if f.C2 < 0 {
			sign = '-'
		}
		absC2 := f.C2
		if absC2 < 0 {
			absC2 = -absC2
		}
		if f.C1 == 1 {
			return fmt.Sprintf("%d^%d%c%d", f.B1, f.E1, sign, absC2)
		}
		absC1 := f.C1
		if absC1 < 0 {
			absC1 = -absC1
		}
		return fmt.Sprintf("%d*%d^%d%c%d", absC1, f.B1, f.E1, sign, absC2)
	default:
		return "none"
	}
}
