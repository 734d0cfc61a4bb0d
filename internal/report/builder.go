// Package report turns the ranked backlog into a renderer-neutral
// structure: tier groupings, per-test factor details and the per-section
// breakdown. Markup is the renderers' problem, not this package's.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

// FactorInfo is the catalog metadata renderers need for headers and the
// scoring guide.
type FactorInfo struct {
	Key    scoring.FactorKey
	Name   string
	Weight int
}

// FactorScore is one scored factor of a test, with its display label.
type FactorScore struct {
	Key   scoring.FactorKey
	Name  string
	Score int
	Label string
}

// Answer is one yes/no answer, ordered by question for stable output.
type Answer struct {
	Question string
	Answer   bool
}

// Entry is a single test as it appears in a report.
type Entry struct {
	ID          int
	Name        string
	TicketID    string
	Section     string
	Description string
	TotalScore  float64
	RawScore    int
	Factors     []FactorScore
	Answers     []Answer

	// Scores keeps the full raw map for flat exports that need a value
	// per factor column regardless of the display selection above.
	Scores map[scoring.FactorKey]int
}

// TierGroup is one priority tier with its tests, already sorted.
type TierGroup struct {
	Tier        scoring.Tier
	Description string
	Lower       float64
	Upper       float64
	HasLower    bool
	HasUpper    bool
	Entries     []Entry
}

// SectionSummary counts a section's tests per tier.
type SectionSummary struct {
	Name   string
	Total  int
	Counts map[scoring.Tier]int
}

// Report is the structured prioritization report consumed by renderers.
type Report struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	TotalTests  int
	Factors     []FactorInfo
	Tiers       []TierGroup
	// Sections is the per-section breakdown; empty unless at least two
	// distinct non-empty sections exist.
	Sections []SectionSummary
}

// Build assembles a report from the sorted backlog and its tier view.
func Build(tests []*backlog.Test, tiers backlog.PriorityTiers, cat *scoring.Catalog) *Report {
	rep := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		TotalTests:  len(tests),
		Sections:    buildSectionBreakdown(tests),
	}

	for _, f := range cat.Factors() {
		rep.Factors = append(rep.Factors, FactorInfo{Key: f.Key, Name: f.Name, Weight: f.Weight})
	}

	for _, tier := range scoring.Tiers() {
		group := TierGroup{
			Tier:        tier,
			Description: tierDescription(tier),
		}
		group.Lower, group.Upper, group.HasLower, group.HasUpper = tierBounds(tier, tiers)

		for _, t := range tiers.ByTier(tier) {
			group.Entries = append(group.Entries, buildEntry(t, tier, cat))
		}
		rep.Tiers = append(rep.Tiers, group)
	}

	return rep
}

func buildEntry(t *backlog.Test, tier scoring.Tier, cat *scoring.Catalog) Entry {
	entry := Entry{
		ID:          t.ID,
		Name:        t.Name,
		TicketID:    t.TicketID,
		Section:     t.Section,
		Description: t.Description,
		TotalScore:  t.TotalScore,
		RawScore:    t.RawScore,
		Scores:      t.Scores,
	}

	// In the Won't Automate group the automatability factor leads, since
	// it is the one that put the test there, and is dropped from the
	// generic loop to avoid listing it twice.
	wont := tier == scoring.TierWontAutomate
	if wont {
		if score, ok := t.Scores[scoring.FactorCanBeAutomated]; ok {
			entry.Factors = append(entry.Factors, FactorScore{
				Key:   scoring.FactorCanBeAutomated,
				Name:  factorName(cat, scoring.FactorCanBeAutomated),
				Score: score,
				Label: cat.OptionLabel(scoring.FactorCanBeAutomated, score),
			})
		}
	}

	for _, f := range cat.Factors() {
		if wont && f.Key == scoring.FactorCanBeAutomated {
			continue
		}
		score, ok := t.Scores[f.Key]
		if !ok {
			continue
		}
		entry.Factors = append(entry.Factors, FactorScore{
			Key:   f.Key,
			Name:  f.Name,
			Score: score,
			Label: cat.OptionLabel(f.Key, score),
		})
	}

	for q, a := range t.YesNoAnswers {
		entry.Answers = append(entry.Answers, Answer{Question: q, Answer: a})
	}
	sort.Slice(entry.Answers, func(i, j int) bool {
		return entry.Answers[i].Question < entry.Answers[j].Question
	})

	return entry
}

func buildSectionBreakdown(tests []*backlog.Test) []SectionSummary {
	bySection := map[string][]*backlog.Test{}
	for _, t := range tests {
		if t.Section == "" {
			continue
		}
		bySection[t.Section] = append(bySection[t.Section], t)
	}
	if len(bySection) < 2 {
		return nil
	}

	names := make([]string, 0, len(bySection))
	for name := range bySection {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]SectionSummary, 0, len(names))
	for _, name := range names {
		summary := SectionSummary{
			Name:   name,
			Total:  len(bySection[name]),
			Counts: make(map[scoring.Tier]int),
		}
		for _, t := range bySection[name] {
			summary.Counts[t.Priority]++
		}
		out = append(out, summary)
	}
	return out
}

func tierDescription(tier scoring.Tier) string {
	switch tier {
	case scoring.TierHighest:
		return "Recommended for immediate automation"
	case scoring.TierHigh:
		return "Recommended for second phase automation"
	case scoring.TierMedium:
		return "Recommended for third phase automation"
	case scoring.TierLow:
		return "Automate as capacity allows"
	case scoring.TierLowest:
		return "Not recommended for automation"
	case scoring.TierWontAutomate:
		return "Identified as not worth automating yet"
	default:
		return ""
	}
}

func tierBounds(tier scoring.Tier, tiers backlog.PriorityTiers) (lower, upper float64, hasLower, hasUpper bool) {
	switch tier {
	case scoring.TierHighest:
		return tiers.HighestThreshold, 0, true, false
	case scoring.TierHigh:
		return tiers.HighThreshold, tiers.HighestThreshold, true, true
	case scoring.TierMedium:
		return tiers.MediumThreshold, tiers.HighThreshold, true, true
	case scoring.TierLow:
		return tiers.LowThreshold, tiers.MediumThreshold, true, true
	case scoring.TierLowest:
		return 0, tiers.LowThreshold, false, true
	default:
		return 0, 0, false, false
	}
}

func factorName(cat *scoring.Catalog, key scoring.FactorKey) string {
	if f, ok := cat.Factor(key); ok {
		return f.Name
	}
	return string(key)
}
