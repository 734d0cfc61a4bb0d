package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

func buildRepo(t *testing.T) *backlog.Repository {
	t.Helper()
	repo := backlog.NewRepository(scoring.DefaultCatalog())

	repo.AddTest(backlog.TestInput{
		Name:     "Verify that user can log in with valid credentials",
		Section:  "Login",
		TicketID: "AUTH-1001",
		Scores: map[scoring.FactorKey]int{
			scoring.FactorCanBeAutomated:       scoring.ScoreHigh,
			scoring.FactorRegressionFrequency:  scoring.ScoreHigh,
			scoring.FactorCustomerImpact:       scoring.ScoreHigh,
			scoring.FactorManualEffort:         scoring.ScoreHigh,
			scoring.FactorAutomationComplexity: scoring.ScoreHigh,
			scoring.FactorExistingFramework:    scoring.ScoreHigh,
			scoring.FactorAngularFramework:     scoring.ScoreHigh,
			scoring.FactorRepetitive:           scoring.ScoreHigh,
		},
	})
	repo.AddTest(backlog.TestInput{
		Name:    "Check if legacy plugin behaves",
		Section: "Settings",
		Scores: map[scoring.FactorKey]int{
			scoring.FactorCanBeAutomated:      scoring.ScoreLow,
			scoring.FactorRegressionFrequency: scoring.ScoreHigh,
		},
	})
	return repo
}

func TestBuild(t *testing.T) {
	repo := buildRepo(t)
	cat := repo.Catalog()

	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), cat)

	require.NotNil(t, rep)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", rep.ID.String())
	assert.False(t, rep.GeneratedAt.IsZero())
	assert.Equal(t, 2, rep.TotalTests)
	assert.Len(t, rep.Factors, 8)
	require.Len(t, rep.Tiers, 6)

	highest := rep.Tiers[0]
	assert.Equal(t, scoring.TierHighest, highest.Tier)
	assert.True(t, highest.HasLower)
	assert.False(t, highest.HasUpper)
	assert.Equal(t, 90.0, highest.Lower)
	require.Len(t, highest.Entries, 1)
	assert.Equal(t, "AUTH-1001", highest.Entries[0].TicketID)
	assert.Equal(t, 100.0, highest.Entries[0].TotalScore)

	// Empty tiers stay present so renderers can emit their placeholder.
	assert.Empty(t, rep.Tiers[2].Entries)
	assert.Equal(t, scoring.TierLowest, rep.Tiers[4].Tier)
	assert.False(t, rep.Tiers[4].HasLower)
	assert.Equal(t, 40.0, rep.Tiers[4].Upper)
}

func TestBuild_WontAutomateFactorOrder(t *testing.T) {
	repo := buildRepo(t)

	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), repo.Catalog())

	wont := rep.Tiers[5]
	require.Equal(t, scoring.TierWontAutomate, wont.Tier)
	require.Len(t, wont.Entries, 1)

	factors := wont.Entries[0].Factors
	require.Len(t, factors, 2) // automatability + the one other scored factor
	assert.Equal(t, scoring.FactorCanBeAutomated, factors[0].Key)
	assert.Equal(t, "No", factors[0].Label)
	assert.Equal(t, scoring.FactorRegressionFrequency, factors[1].Key)
	for _, f := range factors[1:] {
		assert.NotEqual(t, scoring.FactorCanBeAutomated, f.Key)
	}
}

func TestBuild_SkipsAbsentFactors(t *testing.T) {
	repo := backlog.NewRepository(scoring.DefaultCatalog())
	repo.AddTest(backlog.TestInput{
		Name: "sparse",
		Scores: map[scoring.FactorKey]int{
			scoring.FactorRepetitive: scoring.ScoreMedium,
		},
	})

	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), repo.Catalog())

	var entry *Entry
	for i := range rep.Tiers {
		if len(rep.Tiers[i].Entries) > 0 {
			entry = &rep.Tiers[i].Entries[0]
		}
	}
	require.NotNil(t, entry)
	require.Len(t, entry.Factors, 1)
	assert.Equal(t, "Repetitive", entry.Factors[0].Name)
	assert.Equal(t, "Somewhat repetitive", entry.Factors[0].Label)
}

func TestBuild_SectionBreakdown(t *testing.T) {
	repo := buildRepo(t)
	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), repo.Catalog())

	require.Len(t, rep.Sections, 2)
	assert.Equal(t, "Login", rep.Sections[0].Name)
	assert.Equal(t, 1, rep.Sections[0].Total)
	assert.Equal(t, 1, rep.Sections[0].Counts[scoring.TierHighest])
	assert.Equal(t, "Settings", rep.Sections[1].Name)
	assert.Equal(t, 1, rep.Sections[1].Counts[scoring.TierWontAutomate])
}

func TestBuild_SectionBreakdownSkippedForSingleSection(t *testing.T) {
	repo := backlog.NewRepository(scoring.DefaultCatalog())
	repo.AddTest(backlog.TestInput{Name: "a", Section: "Login"})
	repo.AddTest(backlog.TestInput{Name: "b"})

	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), repo.Catalog())
	assert.Empty(t, rep.Sections)
}

func TestBuild_YesNoAnswersOrdered(t *testing.T) {
	repo := backlog.NewRepository(scoring.DefaultCatalog())
	repo.AddTest(backlog.TestInput{
		Name: "with answers",
		YesNoAnswers: map[string]bool{
			"critical_path": true,
			"api_only":      false,
		},
	})

	rep := Build(repo.GetSorted(""), repo.GetPriorityTiers(""), repo.Catalog())

	var entry *Entry
	for i := range rep.Tiers {
		if len(rep.Tiers[i].Entries) > 0 {
			entry = &rep.Tiers[i].Entries[0]
		}
	}
	require.NotNil(t, entry)
	require.Len(t, entry.Answers, 2)
	assert.Equal(t, "api_only", entry.Answers[0].Question)
	assert.Equal(t, "critical_path", entry.Answers[1].Question)
}
