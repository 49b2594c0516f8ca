package engine

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nfscore/snfspoly/form"
)

func TestEngine_SelectAndWritePolyFile(t *testing.T) {
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
	n.Sub(n, big.NewInt(1))

	eng := New(DefaultConfig())
	result, err := eng.Select(n)
	require.NoError(t, err)
	require.Equal(t, form.Brent, result.Form.Kind)
	require.NotEmpty(t, result.Candidates)

	var buf bytes.Buffer
	require.NoError(t, WritePolyFile(&buf, n, result.Form, result.Winner()))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	winner := result.Winner()
	wantHeaderLen := 5 + winner.P.Degree() + 1 + 4 // header + alg coeffs + Y1/Y0/m/skew
	require.Len(t, lines, wantHeaderLen)

	require.Equal(t, "n: "+n.String(), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "# "+result.Form.Description()+", difficulty:"))
	require.True(t, strings.HasPrefix(lines[2], "# scaled difficulty:"))
	require.Equal(t, "type: snfs", lines[3])
	require.True(t, strings.HasPrefix(lines[4], "size: "))
	require.False(t, strings.Contains(out, "engine_version"), "poly file header must not carry the engine version")
}

func TestEngine_SelectNoFormFound(t *testing.T) {
	n, ok := new(big.Int).SetString("1000000000000000000000000000057", 10)
	require.True(t, ok)

	eng := New(DefaultConfig())
	_, err := eng.Select(n)
	require.ErrorIs(t, err, form.ErrNoFormFound)
}

func TestEngine_SelectCaches(t *testing.T) {
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
	n.Sub(n, big.NewInt(1))

	eng := New(DefaultConfig())
	r1, err := eng.Select(n)
	require.NoError(t, err)
	r2, err := eng.Select(n)
	require.NoError(t, err)
	require.Equal(t, r1.Form, r2.Form)
}

func TestEngine_DumpCandidates(t *testing.T) {
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(165), nil)
	n.Sub(n, big.NewInt(1))

	eng := New(DefaultConfig())
	result, err := eng.Select(n)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DumpCandidates(&buf, n, result.Form, result.Candidates))
	require.NotEmpty(t, buf.Bytes())
}
