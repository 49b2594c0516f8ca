package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	cases := []struct {
		name string
		f    Form
		want string
	}{
		{"pure leading 1", Form{Kind: Brent, C1: 1, B1: 2, E1: 256, C2: -1}, "2^256-1"},
		{"pure leading non-1", Form{Kind: Brent, C1: 3, B1: 5, E1: 10, C2: -2}, "3*5^10-2"},
		{"homogeneous plus", Form{Kind: HCunningham, C1: 1, B1: 3, E1: 97, B2: 2, E2: 97}, "3^97+2^97"},
		{"homogeneous minus", Form{Kind: HCunningham, C1: -1, B1: 3, E1: 97, B2: 2, E2: 97}, "3^97-2^97"},
		{"none", Form{}, "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.f.Description())
		})
	}
}

func TestIsHomogeneous(t *testing.T) {
	require.True(t, Form{Kind: HCunningham}.IsHomogeneous())
	require.False(t, Form{Kind: Brent}.IsHomogeneous())
	require.False(t, Form{Kind: None}.IsHomogeneous())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "none", None.String())
	require.Equal(t, "brent", Brent.String())
	require.Equal(t, "h_cunningham", HCunningham.String())
}
