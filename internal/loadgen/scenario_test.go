package loadgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChooserDistribution(t *testing.T) {
	scenarios := []Scenario{
		{Name: "heavy", Weight: 8},
		{Name: "light", Weight: 2},
		{Name: "off", Weight: 0},
	}

	selector, err := newChooser(scenarios)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	counts := make(map[string]int)
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[selector.pick(rng).Name]++
	}

	require.Zero(t, counts["off"], "zero-weight scenario must never be selected")
	require.Equal(t, draws, counts["heavy"]+counts["light"])
	require.InDelta(t, 0.8, float64(counts["heavy"])/draws, 0.02)
}

func TestChooserDeterministicUnderFixedSeed(t *testing.T) {
	scenarios := []Scenario{
		{Name: "a", Weight: 1},
		{Name: "b", Weight: 3},
		{Name: "c", Weight: 6},
	}

	selector, err := newChooser(scenarios)
	require.NoError(t, err)

	first := drawNames(selector, 100, 42)
	second := drawNames(selector, 100, 42)
	require.Equal(t, first, second)

	other := drawNames(selector, 100, 43)
	require.NotEqual(t, first, other)
}

func drawNames(selector *chooser, n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, selector.pick(rng).Name)
	}
	return names
}

func TestChooserRejectsBadWeights(t *testing.T) {
	_, err := newChooser([]Scenario{{Name: "a", Weight: 0}})
	require.Error(t, err)

	_, err = newChooser([]Scenario{{Name: "a", Weight: -1}})
	require.Error(t, err)
}

func TestDefaultScenariosTagging(t *testing.T) {
	tagged := 0
	for _, sc := range DefaultScenarios() {
		if sc.Tag == TagExpectedError {
			tagged++
		}
	}
	require.Equal(t, 2, tagged, "both forced-error scenarios carry the expected-error tag")
}
