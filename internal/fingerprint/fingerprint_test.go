package fingerprint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobID_Deterministic(t *testing.T) {
	n := big.NewInt(12345)
	a := JobID(n, "brent", 0)
	b := JobID(n, "brent", 0)
	require.Equal(t, a, b)
	require.Len(t, a, 16)
}

func TestJobID_DistinctInputsDiffer(t *testing.T) {
	n := big.NewInt(12345)
	require.NotEqual(t, JobID(n, "brent", 0), JobID(n, "brent", 1))
	require.NotEqual(t, JobID(n, "brent", 0), JobID(n, "h_cunningham", 0))
}

func TestCacheKey_Deterministic(t *testing.T) {
	n := big.NewInt(999)
	require.Equal(t, CacheKey(n, 100, 1000), CacheKey(n, 100, 1000))
	require.NotEqual(t, CacheKey(n, 100, 1000), CacheKey(n, 50, 1000))
}
