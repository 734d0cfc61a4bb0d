package scoring

import "math"

// ComputeScore calculates the weighted raw score and the 0-100 normalized
// score for a map of factor scores.
//
// Factors absent from scores contribute 0, so callers may omit optional
// factors. CanBeAutomated never contributes to the sum; a score of 1
// ("No") on it overrides everything and yields (0, 0).
func ComputeScore(scores map[FactorKey]int, cat *Catalog) (int, float64) {
	if cat.Has(FactorCanBeAutomated) && scores[FactorCanBeAutomated] == ScoreLow {
		return 0, 0
	}

	raw := 0
	for _, f := range cat.factors {
		if f.Key == FactorCanBeAutomated {
			continue
		}
		if score, ok := scores[f.Key]; ok {
			raw += score * f.Weight
		}
	}

	// A zero ceiling means a catalog with no weighted factors. That is a
	// construction bug, not a data problem; refuse to divide by it.
	if cat.maxRaw == 0 {
		return raw, 0
	}

	normalized := float64(raw) / float64(cat.maxRaw) * 100
	return raw, math.Round(normalized*10) / 10
}

// CanAutomate reports whether a score map marks the test as automatable.
// Only an explicit "No" (score 1) on CanBeAutomated disqualifies it.
func CanAutomate(scores map[FactorKey]int) bool {
	return scores[FactorCanBeAutomated] != ScoreLow
}
