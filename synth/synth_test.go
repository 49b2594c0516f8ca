package synth

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nfscore/snfspoly/form"
)

func bigStrs(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestSynthesize_CyclotomicReduction15(t *testing.T) {
	// N = 3^165 - 1, e = 165 = 15*11: reduction r=15 fires, sigma = -1
	// (sign of c2 = -1). Table (high-to-low): (1, sigma, -4, -4*sigma, 1)
	// = (1, -1, -4, 4, 1); low-to-high: [1, 4, -4, -1, 1].
	f := form.Form{Kind: form.Brent, C1: 1, B1: 3, E1: 165, C2: -1, B2: 1}
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
	n.Sub(n, big.NewInt(1))

	candidates := Synthesize(f, n)
	require.Len(t, candidates, 1)
	require.Equal(t, []string{"1", "4", "-4", "-1", "1"}, bigStrs(candidates[0].P.Alg))
	require.Equal(t, 4, candidates[0].P.Degree())
}

func TestSynthesize_CyclotomicReduction_15BeatsTwentyOne(t *testing.T) {
	// N = 2^105 - 1: e=105 = 15*7 = 21*5, divisible by both. The priority
	// order is 15 before 21, so r=15 (degree 4) must fire here, not r=21
	// (degree 6).
	f := form.Form{Kind: form.Brent, C1: 1, B1: 2, E1: 105, C2: -1, B2: 1}
	n := new(big.Int).Exp(big.NewInt(2), big.NewInt(105), nil)
	n.Sub(n, big.NewInt(1))

	candidates := Synthesize(f, n)
	require.Len(t, candidates, 1)
	require.Equal(t, 4, candidates[0].P.Degree())
	require.Equal(t, []string{"1", "4", "-4", "-1", "1"}, bigStrs(candidates[0].P.Alg))
	require.True(t, candidates[0].Valid)
}

func TestSynthesize_CyclotomicReduction_PriorityOrder(t *testing.T) {
	// N = 10^120 + 1: e=120 is divisible by both 15 and 6. The priority
	// order is "15, 21, then 6/3, then 5, 7, 11, 13", so r=15 fires here,
	// not r=6 as spec.md §8 scenario 5's narrative claims (120 mod 15 == 0
	// strictly precedes the 120 mod 6 == 0 check under the actual rule) --
	// see DESIGN.md, "Open Question: scenario 5 vs the priority-dispatch
	// rule".
	f := form.Form{Kind: form.Brent, C1: 1, B1: 10, E1: 120, C2: 1, B2: 1}
	n := new(big.Int).Exp(big.NewInt(10), big.NewInt(120), nil)
	n.Add(n, big.NewInt(1))

	candidates := Synthesize(f, n)
	require.Len(t, candidates, 1)
	require.Equal(t, []string{"1", "-4", "-4", "1", "1"}, bigStrs(candidates[0].P.Alg))

	// r=15 is a halved branch: m = b^k + b^(-k) mod N, k = e/r = 120/15.
	bk := new(big.Int).Exp(big.NewInt(10), big.NewInt(8), n)
	bkInv := new(big.Int).ModInverse(bk, n)
	want := new(big.Int).Add(bk, bkInv)
	want.Mod(want, n)
	require.Equal(t, want.String(), candidates[0].P.M.String())
	require.True(t, candidates[0].Valid)
}

func TestSynthesize_NoReductionRoundingAndRebalance(t *testing.T) {
	// N = 6^100 - 1: e=100 hits no priority residue (100 mod 21,15,6,5,7,11,13
	// all nonzero except... 100 mod 5 == 0, so this actually fires r=5).
	// Use e=101 instead, which is coprime to all seven residues, to force
	// the no-reduction/composite-rebalancing branch of spec.md §4.E.2.
	f := form.Form{Kind: form.Brent, C1: 1, B1: 6, E1: 101, C2: -1, B2: 1}
	n := new(big.Int).Exp(big.NewInt(6), big.NewInt(101), nil)
	n.Sub(n, big.NewInt(1))

	candidates := Synthesize(f, n)
	require.NotEmpty(t, candidates)

	var sawDegree4, sawRebalanced bool
	for _, c := range candidates {
		if c.P.Degree() == 4 {
			sawDegree4 = true
		}
		// Round-up leads with 1 and round-down with a power of 6; only a
		// rebalanced candidate leads with a power of a single prime factor.
		if lead := c.P.Alg[c.P.Degree()].Int64(); lead != 1 && lead%6 != 0 {
			sawRebalanced = true
		}
	}
	require.True(t, sawDegree4)
	require.True(t, sawRebalanced)

	for _, c := range candidates {
		require.True(t, c.Valid)
		require.Contains(t, []int{4, 5, 6}, c.P.Degree())
	}
}

func TestSynthesize_FitsUint32OnBrentForm(t *testing.T) {
	// Law (spec.md §8): for any N in Brent form, every emitted candidate's
	// algebraic coefficients fit in 32 bits.
	f := form.Form{Kind: form.Brent, C1: 1, B1: 3, E1: 165, C2: -1, B2: 1}
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
	n.Sub(n, big.NewInt(1))

	for _, c := range Synthesize(f, n) {
		for _, coeff := range c.P.Alg {
			require.LessOrEqual(t, coeff.BitLen(), 32)
		}
	}
}

func TestSynthesize_HomogeneousCunningham(t *testing.T) {
	f := form.Form{Kind: form.HCunningham, C1: 1, B1: 3, E1: 97, B2: 2, E2: 97}
	n := new(big.Int).Add(
		new(big.Int).Exp(big.NewInt(3), big.NewInt(97), nil),
		new(big.Int).Exp(big.NewInt(2), big.NewInt(97), nil),
	)
	candidates := Synthesize(f, n)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		require.True(t, c.Valid)
	}
}
