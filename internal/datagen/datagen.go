// Package datagen generates realistic sample backlogs for demos and
// tests.
package datagen

import (
	"fmt"
	"math/rand"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/scoring"
)

// DataGenerator generates realistic manual-test records
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a generator. The same seed reproduces the
// same backlog.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{rng: rand.New(rand.NewSource(seed))}
}

var sections = []string{
	"Login", "User Management", "Dashboard", "Reports", "Settings",
	"Profile", "Notifications", "Search", "Cart", "Checkout",
}

var prefixes = []string{
	"Verify that", "Check if", "Ensure", "Validate", "Test that", "Confirm",
}

var actions = map[string][]string{
	"Login": {
		"user can log in with valid credentials",
		"login fails with invalid password",
		"forgot password functionality works",
		"user can log in with SSO",
		"login works after session timeout",
		"CAPTCHA appears after multiple failed attempts",
		"two-factor authentication works",
	},
	"User Management": {
		"new user can be created successfully",
		"user details can be edited",
		"admin can assign roles to users",
		"user permissions are applied correctly",
		"password policies are enforced",
	},
	"Dashboard": {
		"widgets load with correct data",
		"dashboard refreshes automatically",
		"charts render for the selected period",
	},
	"Reports": {
		"report totals match the source data",
		"report can be exported to CSV",
		"scheduled reports are delivered",
	},
	"Settings": {
		"changed settings persist after reload",
		"invalid settings are rejected with a message",
	},
	"Profile": {
		"profile picture can be updated",
		"email change requires confirmation",
	},
	"Notifications": {
		"notifications appear for new events",
		"notification preferences are honored",
	},
	"Search": {
		"search returns relevant results",
		"filters narrow search results correctly",
		"bulk actions work on search results",
	},
	"Cart": {
		"items can be added to the cart",
		"cart totals update when quantities change",
	},
	"Checkout": {
		"checkout completes with a valid card",
		"declined payments show a clear error",
		"order confirmation email is sent",
	},
}

var ticketPrefixes = map[string]string{
	"Login":           "AUTH-",
	"User Management": "USER-",
	"Dashboard":       "DASH-",
	"Reports":         "REP-",
	"Settings":        "SET-",
	"Profile":         "PROF-",
	"Notifications":   "NOTIF-",
	"Search":          "SRCH-",
	"Cart":            "SHOP-",
	"Checkout":        "SHOP-",
}

var descriptions = []string{
	"Covers the primary user journey end to end",
	"Edge case reported by a customer",
	"Part of the quarterly regression suite",
	"Smoke coverage for the release pipeline",
	"Exercises validation and error messaging",
	"",
}

// Test produces one random test input. Roughly one in twenty comes out
// marked as not automatable, mirroring a realistic manual backlog.
func (g *DataGenerator) Test() backlog.TestInput {
	section := sections[g.rng.Intn(len(sections))]
	verbs := actions[section]

	return backlog.TestInput{
		Name:        fmt.Sprintf("%s %s", prefixes[g.rng.Intn(len(prefixes))], verbs[g.rng.Intn(len(verbs))]),
		Section:     section,
		TicketID:    fmt.Sprintf("%s%d", ticketPrefixes[section], 1000+g.rng.Intn(9000)),
		Description: descriptions[g.rng.Intn(len(descriptions))],
		Scores:      g.scores(),
	}
}

// Populate fills the repository with n generated tests.
func (g *DataGenerator) Populate(repo *backlog.Repository, n int) {
	for i := 0; i < n; i++ {
		repo.AddTest(g.Test())
	}
}

func (g *DataGenerator) scores() map[scoring.FactorKey]int {
	scores := map[scoring.FactorKey]int{
		// 5% no, 10% maybe, 85% yes
		scoring.FactorCanBeAutomated: g.weighted(5, 10, 85),
	}
	if scores[scoring.FactorCanBeAutomated] == scoring.ScoreLow {
		for _, key := range factorKeys {
			scores[key] = scoring.ScoreMedium
		}
		return scores
	}

	scores[scoring.FactorRegressionFrequency] = g.weighted(20, 50, 30)
	scores[scoring.FactorCustomerImpact] = g.weighted(15, 55, 30)

	// Frequently regressing, high impact tests tend to cost more to run
	// by hand.
	if scores[scoring.FactorRegressionFrequency] >= scoring.ScoreMedium &&
		scores[scoring.FactorCustomerImpact] >= scoring.ScoreMedium {
		scores[scoring.FactorManualEffort] = g.weighted(10, 40, 50)
	} else {
		scores[scoring.FactorManualEffort] = g.weighted(40, 40, 20)
	}

	scores[scoring.FactorAutomationComplexity] = g.weighted(20, 45, 35)
	scores[scoring.FactorExistingFramework] = g.weighted(30, 40, 30)
	scores[scoring.FactorAngularFramework] = g.weighted(25, 25, 50)
	scores[scoring.FactorRepetitive] = g.weighted(20, 40, 40)

	return scores
}

var factorKeys = []scoring.FactorKey{
	scoring.FactorRegressionFrequency,
	scoring.FactorCustomerImpact,
	scoring.FactorManualEffort,
	scoring.FactorAutomationComplexity,
	scoring.FactorExistingFramework,
	scoring.FactorAngularFramework,
	scoring.FactorRepetitive,
}

// weighted picks 1, 3 or 5 with the given percentage weights.
func (g *DataGenerator) weighted(low, medium, high int) int {
	n := g.rng.Intn(low + medium + high)
	switch {
	case n < low:
		return scoring.ScoreLow
	case n < low+medium:
		return scoring.ScoreMedium
	default:
		return scoring.ScoreHigh
	}
}
