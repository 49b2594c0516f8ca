package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	// N = 2^6 - 1 = 63, alg = x^2 - 1 evaluated at m = 8 (2^3): 64 - 1 = 63
	n := big.NewInt(63)
	cand := Candidate{
		N: n,
		P: Polynomial{
			Alg: []*big.Int{big.NewInt(-1), big.NewInt(0), big.NewInt(1)},
			Rat: []*big.Int{big.NewInt(8), big.NewInt(-1)},
			M:   big.NewInt(8),
		},
	}
	err := Validate(&cand)
	require.NoError(t, err)
	require.True(t, cand.Valid)
}

func TestValidate_RejectsBadRoot(t *testing.T) {
	n := big.NewInt(63)
	cand := Candidate{
		N: n,
		P: Polynomial{
			Alg: []*big.Int{big.NewInt(-1), big.NewInt(0), big.NewInt(1)},
			Rat: []*big.Int{big.NewInt(9), big.NewInt(-1)},
			M:   big.NewInt(9), // 81 - 1 = 80, not 0 mod 63
		},
	}
	err := Validate(&cand)
	require.ErrorIs(t, err, ErrInvalidCandidate)
	require.False(t, cand.Valid)
}
