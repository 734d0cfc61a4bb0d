package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewDataGenerator(1).Test()
	b := NewDataGenerator(1).Test()
	assert.Equal(t, a, b)

	c := NewDataGenerator(2).Test()
	assert.NotEqual(t, a, c)
}

func TestGenerator_ValidScores(t *testing.T) {
	g := NewDataGenerator(99)
	for i := 0; i < 200; i++ {
		in := g.Test()
		assert.NotEmpty(t, in.Name)
		assert.NotEmpty(t, in.Section)
		assert.NotEmpty(t, in.TicketID)
		for key, score := range in.Scores {
			assert.Contains(t, scoring.ScoreValues, score, "factor %s", key)
		}
	}
}

func TestPopulate(t *testing.T) {
	repo := backlog.NewRepository(scoring.DefaultCatalog())
	NewDataGenerator(7).Populate(repo, 50)

	require.Equal(t, 50, repo.Len())
	assert.NotEmpty(t, repo.Sections())

	// Every generated test carries a consistent derived tier.
	for _, test := range repo.GetSorted("") {
		if !test.CanAutomate() {
			assert.Equal(t, scoring.TierWontAutomate, test.Priority)
			assert.Zero(t, test.TotalScore)
		} else {
			assert.Equal(t, scoring.Classify(test.TotalScore, true), test.Priority)
		}
	}
}
