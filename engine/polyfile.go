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

	"github.com/nfscore/snfspoly/form"
	"github.com/nfscore/snfspoly/poly"
)

// WritePolyFile emits the bit-exact poly-file text format of spec.md §6.2
// for the chosen winner: n, a form-description comment, a scaled-difficulty
// comment, type, and size, followed by the coefficient lines. Engine version
// is stamped into log records (see engine.Select), not into this file, to
// keep the header exactly five lines. Grounded on print_snfs in
// _examples/original_source/factor/nfs/snfs.c.
func WritePolyFile(w io.Writer, n *big.Int, f form.Form, winner poly.Candidate) error {
	side := "rational"
	if winner.P.Side == poly.Algebraic {
		side = "algebraic"
	}

	lines := []string{
		fmt.Sprintf("n: %s", n.String()),
		fmt.Sprintf("# %s, difficulty: %.2f, anorm: %.2e, rnorm: %.2e",
			f.Description(), winner.Difficulty, winner.ANorm, winner.RNorm),
		fmt.Sprintf("# scaled difficulty: %.2f, suggest sieving %s side", winner.SDifficulty, side),
		"type: snfs",
		fmt.Sprintf("size: %d", int(winner.SDifficulty)),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("engine: write poly file header: %w", err)
		}
	}

	for d := winner.P.Degree(); d >= 0; d-- {
		if _, err := fmt.Fprintf(w, "c%d: %s\n", d, winner.P.Alg[d].String()); err != nil {
			return fmt.Errorf("engine: write poly file algebraic side: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "Y1: %s\n", winner.P.Rat[1].String()); err != nil {
		return fmt.Errorf("engine: write poly file rational side: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Y0: %s\n", winner.P.Rat[0].String()); err != nil {
		return fmt.Errorf("engine: write poly file rational side: %w", err)
	}
	if _, err := fmt.Fprintf(w, "m: %s\n", winner.P.M.String()); err != nil {
		return fmt.Errorf("engine: write poly file root: %w", err)
	}
	if _, err := fmt.Fprintf(w, "skew: %.4f\n", winner.P.Skew); err != nil {
		return fmt.Errorf("engine: write poly file skew: %w", err)
	}
	return nil
}
