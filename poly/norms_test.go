package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateNorms_Positive(t *testing.T) {
	cand := Candidate{
		P: Polynomial{
			Alg:  []*big.Int{big.NewInt(-1), big.NewInt(0), big.NewInt(0), big.NewInt(1)},
			Rat:  []*big.Int{big.NewInt(8), big.NewInt(-1)},
			Skew: 1.0,
		},
	}
	EstimateNorms(&cand)
	require.Greater(t, cand.ANorm, 0.0)
	require.Greater(t, cand.RNorm, 0.0)
}

func TestEstimateNorms_SkewInvariantScaleConst(t *testing.T) {
	cand := Candidate{
		P: Polynomial{
			Alg:  []*big.Int{big.NewInt(1), big.NewInt(1)},
			Rat:  []*big.Int{big.NewInt(1), big.NewInt(-1)},
			Skew: 4.0,
		},
	}
	EstimateNorms(&cand)
	require.Greater(t, cand.ANorm, 0.0)
	require.Greater(t, cand.RNorm, 0.0)
}
