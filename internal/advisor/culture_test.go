package advisor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssessKnownPair(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		scorer := NewCulturalScorer(rand.New(rand.NewSource(seed)))

		result, err := scorer.Assess(FitRequest{
			HomeCountry:   "US",
			TargetCountry: "JP",
			YearsAbroad:   0,
		})
		require.NoError(t, err)

		// us->jp base is 65, no experience bonus, perturbation < 15.
		require.GreaterOrEqual(t, result.Score, 65)
		require.LessOrEqual(t, result.Score, 100)
		require.Less(t, result.Score, 80)
		require.NotEmpty(t, result.Differences)
		require.NotEmpty(t, result.Tips)
		require.Equal(t, "us", result.HomeCountry)
		require.Equal(t, "jp", result.TargetCountry)
	}
}

func TestAssessExperienceBonus(t *testing.T) {
	scorer := NewCulturalScorer(rand.New(rand.NewSource(1)))

	// 10 years abroad caps the bonus at 20.
	capped, err := scorer.Assess(FitRequest{
		HomeCountry:   "us",
		TargetCountry: "jp",
		YearsAbroad:   10,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, capped.Score, 85)
	require.LessOrEqual(t, capped.Score, 100)

	// Negative years never subtract.
	scorer = NewCulturalScorer(rand.New(rand.NewSource(1)))
	negative, err := scorer.Assess(FitRequest{
		HomeCountry:   "us",
		TargetCountry: "jp",
		YearsAbroad:   -3,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, negative.Score, 65)
}

func TestAssessUnknownPairUsesDefault(t *testing.T) {
	scorer := NewCulturalScorer(rand.New(rand.NewSource(7)))

	result, err := scorer.Assess(FitRequest{
		HomeCountry:   "br",
		TargetCountry: "no",
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.Score, 70)
	require.Equal(t, defaultPair.differences, result.Differences)
	require.Equal(t, defaultPair.tips, result.Tips)
}

func TestAssessValidation(t *testing.T) {
	scorer := NewCulturalScorer(nil)

	_, err := scorer.Assess(FitRequest{TargetCountry: "jp"})
	require.Error(t, err)

	_, err = scorer.Assess(FitRequest{HomeCountry: "us"})
	require.Error(t, err)
}

func TestFitLevel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{90, "Excellent readiness"},
		{85, "Excellent readiness"},
		{75, "Good readiness"},
		{60, "Moderate readiness"},
		{40, "Needs preparation"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, fitLevel(tt.score), "score %d", tt.score)
	}
}
