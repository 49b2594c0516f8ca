package form

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestRecognize_BrentGrid(t *testing.T) {
	// 3^165 - 1 sits squarely in the main grid scan (b=3, e=165).
	n := new(big.Int).Sub(new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil), big.NewInt(1))
	f, err := Recognize(n, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, Brent, f.Kind)
	require.Equal(t, 3, f.B1)
	require.Equal(t, 165, f.E1)
	require.Equal(t, int64(1), f.C1)
	require.Equal(t, int64(-1), f.C2)
}

func TestRecognize_BaseTwoViaGrid(t *testing.T) {
	// 2^256 - 1: base 2 is outside the main grid's [2, MaxBase) scan range
	// only once MaxBase <= 2; with the spec default MaxBase=100 the main
	// grid itself already covers b=2, e=256 (e is within [32, maxe)), so
	// this case is exercised directly against the grid instead of forcing
	// an artificially small MaxBase.
	n := new(big.Int).Sub(new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil), big.NewInt(1))
	f, err := Recognize(n, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, Brent, f.Kind)
	require.Equal(t, 2, f.B1)
	require.Equal(t, 256, f.E1)
	require.Equal(t, int64(1), f.C1)
	require.Equal(t, int64(-1), f.C2)
}

func TestRecognize_TailScanBeyondGrid(t *testing.T) {
	// The base under test (101) is not below MaxBase (100), so only the tail
	// scan can find it.
	n := new(big.Int).Sub(new(big.Int).Exp(big.NewInt(101), big.NewInt(40), nil), big.NewInt(1))
	f, err := Recognize(n, Options{MaxBase: 100, MaxBits: 1000})
	require.NoError(t, err)
	require.Equal(t, Brent, f.Kind)
	require.Equal(t, 101, f.B1)
	require.Equal(t, 40, f.E1)
	require.Equal(t, int64(1), f.C1)
	require.Equal(t, int64(-1), f.C2)
}

func TestRecognize_HomogeneousCunningham(t *testing.T) {
	two97 := new(big.Int).Exp(big.NewInt(2), big.NewInt(97), nil)
	three97 := new(big.Int).Exp(big.NewInt(3), big.NewInt(97), nil)
	n := new(big.Int).Add(two97, three97)

	f, err := Recognize(n, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, HCunningham, f.Kind)
	require.Equal(t, 3, f.B1)
	require.Equal(t, 2, f.B2)
	require.Equal(t, 97, f.E1)
	require.Equal(t, int64(1), f.C1)
}

func TestRecognize_NoFormFound(t *testing.T) {
	// A large prime has no special form within the default bounds.
	n, ok := new(big.Int).SetString("1000000000000000000000000000057", 10)
	require.True(t, ok)
	_, err := Recognize(n, DefaultOptions())
	require.ErrorIs(t, err, ErrNoFormFound)
}

func TestRecognize_Deterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("recognizer is deterministic", prop.ForAll(
		func(seed int64) bool {
			n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
			n.Sub(n, big.NewInt(1))
			n.Add(n, big.NewInt(seed%7)) // small jitter, still resolved deterministically either way
			f1, err1 := Recognize(n, DefaultOptions())
			f2, err2 := Recognize(n, DefaultOptions())
			return (err1 == nil) == (err2 == nil) && f1 == f2
		},
		gen.Int64Range(0, 6),
	))

	properties.TestingRun(t)
}
