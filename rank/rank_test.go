package rank

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/nfscore/snfspoly/poly"
)

func TestRank_StabilityScenario(t *testing.T) {
	// spec.md §8 scenario 6: A (difficulty 200.0, balanced norms) and
	// B (difficulty 198.0, norm ratio 10^8) both land at sdifficulty 200.0.
	a := poly.Candidate{Difficulty: 200.0, ANorm: 1.0, RNorm: 1.0}
	b := poly.Candidate{Difficulty: 198.0, ANorm: 1e8, RNorm: 1.0}

	candidates := []poly.Candidate{a, b}
	Rank(candidates)

	require.InDelta(t, 200.0, candidates[0].SDifficulty, 1e-9)
	require.InDelta(t, 200.0, candidates[1].SDifficulty, 1e-9)
	// Stable sort: equal keys keep their original relative order.
	require.Equal(t, 200.0, candidates[0].Difficulty)
	require.Equal(t, 198.0, candidates[1].Difficulty)
	require.Equal(t, 0, candidates[0].Rank)
	require.Equal(t, 1, candidates[1].Rank)
}

func TestRank_SideAssignment(t *testing.T) {
	c := poly.Candidate{Difficulty: 10, ANorm: 5, RNorm: 1}
	Scale(&c)
	require.Equal(t, poly.Algebraic, c.P.Side)

	c2 := poly.Candidate{Difficulty: 10, ANorm: 1, RNorm: 5}
	Scale(&c2)
	require.Equal(t, poly.Rational, c2.P.Side)
}

func TestRank_TotalOrderAfterSort(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("ranking is non-decreasing by sdifficulty", prop.ForAll(
		func(diffs []float64) bool {
			candidates := make([]poly.Candidate, len(diffs))
			for i, d := range diffs {
				candidates[i] = poly.Candidate{Difficulty: d, ANorm: 1, RNorm: 1}
			}
			Rank(candidates)
			for i := 1; i < len(candidates); i++ {
				if candidates[i-1].SDifficulty > candidates[i].SDifficulty {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-1000, 1000)),
	))

	properties.TestingRun(t)
}
