package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		canAutomate bool
		want        Tier
	}{
		{"exactly highest boundary", 90.0, true, TierHighest},
		{"just below highest", 89.9, true, TierHigh},
		{"exactly high boundary", 80.0, true, TierHigh},
		{"just below high", 79.9, true, TierMedium},
		{"exactly medium boundary", 60.0, true, TierMedium},
		{"just below medium", 59.9, true, TierLow},
		{"exactly low boundary", 40.0, true, TierLow},
		{"just below low", 39.9, true, TierLowest},
		{"zero", 0.0, true, TierLowest},
		{"hundred", 100.0, true, TierHighest},
		{"cannot automate ignores score", 100.0, false, TierWontAutomate},
		{"cannot automate at zero", 0.0, false, TierWontAutomate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score, tt.canAutomate))
		})
	}
}

func TestTierRank(t *testing.T) {
	ordered := Tiers()
	assert.Len(t, ordered, 6)
	for i, tier := range ordered {
		assert.Equal(t, i, tier.Rank())
	}
	assert.Equal(t, 6, Tier("Bogus").Rank())
}
