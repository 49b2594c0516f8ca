package poly

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClone_DeepCopyEqualButIndependent(t *testing.T) {
	p := Polynomial{
		Alg:  []*big.Int{big.NewInt(1), big.NewInt(-1)},
		Rat:  []*big.Int{big.NewInt(2), big.NewInt(-1)},
		M:    big.NewInt(42),
		Skew: 1.5,
		Side: Algebraic,
	}
	clone := p.Clone()

	diff := cmp.Diff(p, clone, cmpopts.IgnoreUnexported(big.Int{}), cmp.Comparer(func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	}))
	if diff != "" {
		t.Fatalf("clone diverged from original (-want +got):\n%s", diff)
	}

	clone.Alg[0].SetInt64(999)
	if p.Alg[0].Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("mutating clone's coefficients mutated the original: got %s", p.Alg[0])
	}
}

func TestCandidateClone_Independent(t *testing.T) {
	c := Candidate{
		N: big.NewInt(100),
		P: Polynomial{
			Alg: []*big.Int{big.NewInt(1), big.NewInt(2)},
			Rat: []*big.Int{big.NewInt(3), big.NewInt(-1)},
			M:   big.NewInt(7),
		},
	}
	clone := c.Clone()
	clone.P.M.SetInt64(123)
	if c.P.M.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("mutating clone's m mutated the original: got %s", c.P.M)
	}
}
