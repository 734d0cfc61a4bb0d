package scoring

// Tier is a priority tier label assigned from the normalized score.
type Tier string

// Priority tiers, highest first.
const (
	TierHighest      Tier = "Highest"
	TierHigh         Tier = "High"
	TierMedium       Tier = "Medium"
	TierLow          Tier = "Low"
	TierLowest       Tier = "Lowest"
	TierWontAutomate Tier = "Won't Automate"
)

// Tier thresholds on the 0-100 normalized score. These are fixed
// constants of the classifier, not user-configurable.
const (
	ThresholdHighest = 90.0
	ThresholdHigh    = 80.0
	ThresholdMedium  = 60.0
	ThresholdLow     = 40.0
)

// Tiers returns all tiers in rank order.
func Tiers() []Tier {
	return []Tier{TierHighest, TierHigh, TierMedium, TierLow, TierLowest, TierWontAutomate}
}

// Classify maps a normalized score to a priority tier. A test that cannot
// be automated lands in TierWontAutomate regardless of its score.
func Classify(normalized float64, canAutomate bool) Tier {
	if !canAutomate {
		return TierWontAutomate
	}
	switch {
	case normalized >= ThresholdHighest:
		return TierHighest
	case normalized >= ThresholdHigh:
		return TierHigh
	case normalized >= ThresholdMedium:
		return TierMedium
	case normalized >= ThresholdLow:
		return TierLow
	default:
		return TierLowest
	}
}

// Rank returns the sort rank of a tier: Highest=0 through WontAutomate=5.
// Unknown labels sort last.
func (t Tier) Rank() int {
	switch t {
	case TierHighest:
		return 0
	case TierHigh:
		return 1
	case TierMedium:
		return 2
	case TierLow:
		return 3
	case TierLowest:
		return 4
	case TierWontAutomate:
		return 5
	default:
		return 6
	}
}
