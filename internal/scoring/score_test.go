package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.NotNil(t, cat)
	assert.Equal(t, 8, cat.Len())

	// 5 * (3+3+2+2+2+1+1), CanBeAutomated excluded from the ceiling
	assert.Equal(t, 70, cat.MaxRawScore())

	f, ok := cat.Factor(FactorCanBeAutomated)
	require.True(t, ok)
	assert.Equal(t, 0, f.Weight)
	assert.Equal(t, "Can it be Automated", f.Name)

	assert.Equal(t, "Quarterly", cat.OptionLabel(FactorRegressionFrequency, ScoreMedium))
	assert.Equal(t, "No", cat.OptionLabel(FactorCanBeAutomated, ScoreLow))
	assert.Empty(t, cat.OptionLabel(FactorRepetitive, 2))
	assert.Empty(t, cat.Questions())
}

func TestCatalogImmutable(t *testing.T) {
	factors := []Factor{
		{Key: "a", Name: "A", Weight: 2},
	}
	cat := NewCatalog(factors, nil, nil)

	factors[0].Weight = 100
	got := cat.Factors()
	assert.Equal(t, 2, got[0].Weight)

	got[0].Weight = 50
	again, _ := cat.Factor("a")
	assert.Equal(t, 2, again.Weight)
}

func TestComputeScore_AllMax(t *testing.T) {
	cat := DefaultCatalog()
	scores := map[FactorKey]int{
		FactorCanBeAutomated:       ScoreHigh,
		FactorRegressionFrequency:  ScoreHigh,
		FactorCustomerImpact:       ScoreHigh,
		FactorManualEffort:         ScoreHigh,
		FactorAutomationComplexity: ScoreHigh,
		FactorExistingFramework:    ScoreHigh,
		FactorAngularFramework:     ScoreHigh,
		FactorRepetitive:           ScoreHigh,
	}

	raw, normalized := ComputeScore(scores, cat)
	assert.Equal(t, 70, raw)
	assert.Equal(t, 100.0, normalized)
}

func TestComputeScore_Override(t *testing.T) {
	cat := DefaultCatalog()

	// All factors maxed but the test cannot be automated: the override
	// wins over everything else.
	scores := map[FactorKey]int{
		FactorCanBeAutomated:       ScoreLow,
		FactorRegressionFrequency:  ScoreHigh,
		FactorCustomerImpact:       ScoreHigh,
		FactorManualEffort:         ScoreHigh,
		FactorAutomationComplexity: ScoreHigh,
		FactorExistingFramework:    ScoreHigh,
		FactorAngularFramework:     ScoreHigh,
		FactorRepetitive:           ScoreHigh,
	}

	raw, normalized := ComputeScore(scores, cat)
	assert.Equal(t, 0, raw)
	assert.Equal(t, 0.0, normalized)
	assert.False(t, CanAutomate(scores))
}

func TestComputeScore_PartialScores(t *testing.T) {
	cat := NewCatalog(
		[]Factor{
			{Key: FactorCanBeAutomated, Name: "Can it be Automated", Weight: 0},
			{Key: FactorRegressionFrequency, Name: "Regression Frequency", Weight: 3},
			{Key: FactorCustomerImpact, Name: "Customer Impact", Weight: 3},
		},
		nil, nil,
	)
	require.Equal(t, 30, cat.MaxRawScore())

	tests := []struct {
		name           string
		scores         map[FactorKey]int
		wantRaw        int
		wantNormalized float64
	}{
		{
			name: "both factors max",
			scores: map[FactorKey]int{
				FactorCanBeAutomated:      ScoreHigh,
				FactorRegressionFrequency: ScoreHigh,
				FactorCustomerImpact:      ScoreHigh,
			},
			wantRaw:        30,
			wantNormalized: 100.0,
		},
		{
			name: "missing factor contributes zero",
			scores: map[FactorKey]int{
				FactorRegressionFrequency: ScoreHigh,
			},
			wantRaw:        15,
			wantNormalized: 50.0,
		},
		{
			name:           "empty scores",
			scores:         map[FactorKey]int{},
			wantRaw:        0,
			wantNormalized: 0.0,
		},
		{
			name: "rounded to one decimal",
			scores: map[FactorKey]int{
				FactorRegressionFrequency: ScoreLow,
				FactorCustomerImpact:      ScoreMedium,
			},
			// 3 + 9 = 12 -> 40.0
			wantRaw:        12,
			wantNormalized: 40.0,
		},
		{
			name: "override with other factors maxed",
			scores: map[FactorKey]int{
				FactorCanBeAutomated:      ScoreLow,
				FactorRegressionFrequency: ScoreHigh,
				FactorCustomerImpact:      ScoreHigh,
			},
			wantRaw:        0,
			wantNormalized: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, normalized := ComputeScore(tt.scores, cat)
			assert.Equal(t, tt.wantRaw, raw)
			assert.Equal(t, tt.wantNormalized, normalized)
		})
	}
}

func TestComputeScore_Rounding(t *testing.T) {
	cat := DefaultCatalog()
	scores := map[FactorKey]int{
		FactorRegressionFrequency: ScoreLow,
	}

	// 3/70 -> 4.2857... -> 4.3
	raw, normalized := ComputeScore(scores, cat)
	assert.Equal(t, 3, raw)
	assert.Equal(t, 4.3, normalized)
}

func TestComputeScore_ZeroWeightCatalog(t *testing.T) {
	cat := NewCatalog([]Factor{{Key: "flag", Name: "Flag", Weight: 0}}, nil, nil)

	raw, normalized := ComputeScore(map[FactorKey]int{"flag": ScoreHigh}, cat)
	assert.Equal(t, 0, raw)
	assert.Equal(t, 0.0, normalized)
}

func TestComputeScore_NormalizationBounds(t *testing.T) {
	cat := DefaultCatalog()

	keys := []FactorKey{
		FactorRegressionFrequency, FactorCustomerImpact, FactorManualEffort,
		FactorAutomationComplexity, FactorExistingFramework,
		FactorAngularFramework, FactorRepetitive,
	}

	// Walk every single-factor deviation from the all-max map: the
	// normalized score stays in [0,100] and hits 100 only for all-5s.
	for _, key := range keys {
		for _, v := range ScoreValues {
			scores := map[FactorKey]int{FactorCanBeAutomated: ScoreHigh}
			for _, k := range keys {
				scores[k] = ScoreHigh
			}
			scores[key] = v

			_, normalized := ComputeScore(scores, cat)
			assert.GreaterOrEqual(t, normalized, 0.0)
			assert.LessOrEqual(t, normalized, 100.0)
			if v == ScoreHigh {
				assert.Equal(t, 100.0, normalized)
			} else {
				assert.Less(t, normalized, 100.0, "factor %s at %d", key, v)
			}
		}
	}
}
