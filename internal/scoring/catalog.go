// Package scoring implements the weighted scoring model used to rank
// manual tests by automation value: the factor catalog, the score
// computation, and the priority tier classifier.
package scoring

// FactorKey identifies a scoring factor in the catalog.
type FactorKey string

// Known factor keys of the default catalog.
const (
	FactorCanBeAutomated       FactorKey = "can_be_automated"
	FactorRegressionFrequency  FactorKey = "regression_frequency"
	FactorCustomerImpact       FactorKey = "customer_impact"
	FactorManualEffort         FactorKey = "manual_effort"
	FactorAutomationComplexity FactorKey = "automation_complexity"
	FactorExistingFramework    FactorKey = "existing_framework"
	FactorAngularFramework     FactorKey = "angular_framework"
	FactorRepetitive           FactorKey = "repetitive"
)

// Score values allowed for every factor.
const (
	ScoreLow    = 1
	ScoreMedium = 3
	ScoreHigh   = 5
)

// ScoreValues are the discrete values a factor may be scored with.
var ScoreValues = []int{ScoreLow, ScoreMedium, ScoreHigh}

// Factor is one weighted scoring factor. CanBeAutomated carries weight 0;
// it gates the override path rather than contributing to the sum.
type Factor struct {
	Key    FactorKey
	Name   string
	Weight int
}

// Question is a free-form yes/no question attached to the catalog. The
// default catalog carries none, but the model supports them end to end.
type Question struct {
	Text   string
	Impact string
}

// Catalog is the immutable set of factors, their score option labels, and
// any yes/no questions. Construct it once and inject it; never mutate.
type Catalog struct {
	factors   []Factor
	index     map[FactorKey]int
	options   map[FactorKey]map[int]string
	questions map[string]Question
	maxRaw    int
}

// NewCatalog builds a catalog from factor definitions and per-factor score
// option labels. Inputs are copied so later mutation of the arguments
// cannot leak into the catalog.
func NewCatalog(factors []Factor, options map[FactorKey]map[int]string, questions map[string]Question) *Catalog {
	c := &Catalog{
		factors:   make([]Factor, len(factors)),
		index:     make(map[FactorKey]int, len(factors)),
		options:   make(map[FactorKey]map[int]string, len(options)),
		questions: make(map[string]Question, len(questions)),
	}
	copy(c.factors, factors)
	for i, f := range c.factors {
		c.index[f.Key] = i
		if f.Key != FactorCanBeAutomated {
			c.maxRaw += ScoreHigh * f.Weight
		}
	}
	for key, labels := range options {
		m := make(map[int]string, len(labels))
		for score, label := range labels {
			m[score] = label
		}
		c.options[key] = m
	}
	for key, q := range questions {
		c.questions[key] = q
	}
	return c
}

// DefaultCatalog returns the standard factor set used by the QA team.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]Factor{
			{Key: FactorCanBeAutomated, Name: "Can it be Automated", Weight: 0},
			{Key: FactorRegressionFrequency, Name: "Regression Frequency", Weight: 3},
			{Key: FactorCustomerImpact, Name: "Customer Impact", Weight: 3},
			{Key: FactorManualEffort, Name: "Manual Test Effort", Weight: 2},
			{Key: FactorAutomationComplexity, Name: "Automation Complexity", Weight: 2},
			{Key: FactorExistingFramework, Name: "Existing Framework", Weight: 2},
			{Key: FactorAngularFramework, Name: "Angular Framework", Weight: 1},
			{Key: FactorRepetitive, Name: "Repetitive", Weight: 1},
		},
		map[FactorKey]map[int]string{
			FactorCanBeAutomated: {
				ScoreLow:    "No",
				ScoreMedium: "Maybe",
				ScoreHigh:   "Yes",
			},
			FactorRegressionFrequency: {
				ScoreLow:    "Semi-annual",
				ScoreMedium: "Quarterly",
				ScoreHigh:   "Always",
			},
			FactorCustomerImpact: {
				ScoreLow:    "Minor functionality",
				ScoreMedium: "Important functionality",
				ScoreHigh:   "Critical business process",
			},
			FactorManualEffort: {
				ScoreLow:    "< 5 minutes",
				ScoreMedium: "5-20 minutes",
				ScoreHigh:   "> 20 minutes",
			},
			FactorAutomationComplexity: {
				ScoreLow:    "Very difficult to automate",
				ScoreMedium: "Moderate effort",
				ScoreHigh:   "Easy to automate",
			},
			FactorExistingFramework: {
				ScoreLow:    "No Page Objects",
				ScoreMedium: "Some Page Objects",
				ScoreHigh:   "Established Page Objects",
			},
			FactorAngularFramework: {
				ScoreLow:    "Old Angular JS framework",
				ScoreMedium: "Migrating soon",
				ScoreHigh:   "New Angular framework",
			},
			FactorRepetitive: {
				ScoreLow:    "Not repetitive",
				ScoreMedium: "Somewhat repetitive",
				ScoreHigh:   "Highly repetitive",
			},
		},
		nil,
	)
}

// Factors returns the factors in catalog order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func (c *Catalog) Factors() []Factor {
	out := make([]Factor, len(c.factors))
	copy(out, c.factors)
	return out
}

// Factor looks up a factor by key.
func (c *Catalog) Factor(key FactorKey) (Factor, bool) {
	i, ok := c.index[key]
	if !ok {
		return Factor{}, false
	}
	return c.factors[i], true
}

// Has reports whether the catalog contains the given factor.
func (c *Catalog) Has(key FactorKey) bool {
	_, ok := c.index[key]
	return ok
}

// OptionLabel returns the human-readable label for a factor score, or ""
// if the factor or score value is unknown.
func (c *Catalog) OptionLabel(key FactorKey, score int) string {
	return c.options[key][score]
}

// Questions returns the yes/no questions keyed by question id. Empty in
// the default catalog.
func (c *Catalog) Questions() map[string]Question {
	out := make(map[string]Question, len(c.questions))
	for k, q := range c.questions {
		out[k] = q
	}
	return out
}

// MaxRawScore is the theoretical raw-score ceiling: every factor except
// CanBeAutomated scored at the maximum option.
func (c *Catalog) MaxRawScore() int {
	return c.maxRaw
}

// Len returns the number of factors, including CanBeAutomated.
func (c *Catalog) Len() int {
	return len(c.factors)
}
