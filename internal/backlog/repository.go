package backlog

import (
	"sort"
	"sync"

	"github.com/QTest-hq/autoprio/internal/scoring"
)

// TestInput carries the user-supplied fields of a test. Zero values are
// accepted everywhere; field validation is not the repository's job.
type TestInput struct {
	Name         string
	Section      string
	Description  string
	TicketID     string
	Scores       map[scoring.FactorKey]int
	YesNoAnswers map[string]bool
}

// PriorityTiers is the tiered view of the backlog, partitioned by each
// test's assigned priority, plus the fixed display thresholds.
type PriorityTiers struct {
	Highest      []*Test `json:"highest"`
	High         []*Test `json:"high"`
	Medium       []*Test `json:"medium"`
	Low          []*Test `json:"low"`
	Lowest       []*Test `json:"lowest"`
	WontAutomate []*Test `json:"wont_automate"`

	HighestThreshold float64 `json:"highest_threshold"`
	HighThreshold    float64 `json:"high_threshold"`
	MediumThreshold  float64 `json:"medium_threshold"`
	LowThreshold     float64 `json:"low_threshold"`
}

// Repository holds the live test collection, the monotonic id generator
// and the set of sections in use. All operations are atomic: the engine
// itself is single-threaded, but the HTTP surface exposes the repository
// to concurrent callers, and the conditional section cleanup reads the
// whole collection, so every operation takes the one lock.
type Repository struct {
	mu       sync.Mutex
	catalog  *scoring.Catalog
	tests    []*Test
	nextID   int
	sections map[string]struct{}
}

// NewRepository creates an empty repository scoring against the given
// catalog.
func NewRepository(cat *scoring.Catalog) *Repository {
	return &Repository{
		catalog:  cat,
		nextID:   1,
		sections: make(map[string]struct{}),
	}
}

// Catalog returns the injected factor catalog.
func (r *Repository) Catalog() *scoring.Catalog {
	return r.catalog
}

// AddTest creates a test from the input, assigns the next id, derives its
// scores and tier, and registers its section. It never fails.
func (r *Repository) AddTest(in TestInput) *Test {
	r.mu.Lock()
	defer r.mu.Unlock()

	test := r.newTest(r.nextID, in)
	r.tests = append(r.tests, test)
	r.nextID++
	if test.Section != "" {
		r.sections[test.Section] = struct{}{}
	}

	return test.Clone()
}

// UpdateTest replaces all mutable fields of the test with the given id,
// rederiving scores and tier. Returns nil if the id is not found.
func (r *Repository) UpdateTest(id int, in TestInput) *Test {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}

	oldSection := r.tests[idx].Section
	test := r.newTest(id, in)
	r.tests[idx] = test

	if test.Section != "" {
		r.sections[test.Section] = struct{}{}
	}
	if oldSection != test.Section {
		r.releaseSection(oldSection)
	}

	return test.Clone()
}

// DeleteOne removes the test with the given id. Returns false on miss.
func (r *Repository) DeleteOne(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}

	section := r.tests[idx].Section
	r.tests = append(r.tests[:idx], r.tests[idx+1:]...)
	r.releaseSection(section)

	return true
}

// DeleteAll clears the collection, resets the id generator to 1 and
// empties the section set. Returns false when there was nothing to
// delete; that is a visible no-op, not an error.
func (r *Repository) DeleteAll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.tests) == 0 {
		return false
	}
	r.tests = nil
	r.nextID = 1
	r.sections = make(map[string]struct{})
	return true
}

// FindByID returns a copy of the test with the given id, or nil.
func (r *Repository) FindByID(id int) *Test {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	return r.tests[idx].Clone()
}

// FindIDByName returns the id of the first test whose name matches
// exactly. Duplicate names resolve to whichever was added first; name is
// not a unique key. Returns (0, false) on miss.
func (r *Repository) FindIDByName(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tests {
		if t.Name == name {
			return t.ID, true
		}
	}
	return 0, false
}

// GetSorted returns the tests ranked for reporting: tier rank ascending,
// then TotalScore descending within a tier. A non-empty section filters
// by exact match.
func (r *Repository) GetSorted(section string) []*Test {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Test, 0, len(r.tests))
	for _, t := range r.tests {
		if section != "" && t.Section != section {
			continue
		}
		out = append(out, t.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].TotalScore > out[j].TotalScore
	})

	return out
}

// GetPriorityTiers partitions the sorted (optionally filtered) backlog by
// each test's assigned priority label. Partitioning goes by the stored
// Priority, not by reclassifying the score, so override-driven tests stay
// where the override put them.
func (r *Repository) GetPriorityTiers(section string) PriorityTiers {
	tiers := PriorityTiers{
		Highest:      []*Test{},
		High:         []*Test{},
		Medium:       []*Test{},
		Low:          []*Test{},
		Lowest:       []*Test{},
		WontAutomate: []*Test{},

		HighestThreshold: scoring.ThresholdHighest,
		HighThreshold:    scoring.ThresholdHigh,
		MediumThreshold:  scoring.ThresholdMedium,
		LowThreshold:     scoring.ThresholdLow,
	}

	for _, t := range r.GetSorted(section) {
		switch t.Priority {
		case scoring.TierHighest:
			tiers.Highest = append(tiers.Highest, t)
		case scoring.TierHigh:
			tiers.High = append(tiers.High, t)
		case scoring.TierMedium:
			tiers.Medium = append(tiers.Medium, t)
		case scoring.TierLow:
			tiers.Low = append(tiers.Low, t)
		case scoring.TierLowest:
			tiers.Lowest = append(tiers.Lowest, t)
		case scoring.TierWontAutomate:
			tiers.WontAutomate = append(tiers.WontAutomate, t)
		}
	}

	return tiers
}

// ByTier returns the partition for one tier, sorted.
func (p PriorityTiers) ByTier(tier scoring.Tier) []*Test {
	switch tier {
	case scoring.TierHighest:
		return p.Highest
	case scoring.TierHigh:
		return p.High
	case scoring.TierMedium:
		return p.Medium
	case scoring.TierLow:
		return p.Low
	case scoring.TierLowest:
		return p.Lowest
	case scoring.TierWontAutomate:
		return p.WontAutomate
	default:
		return nil
	}
}

// Sections returns the distinct non-empty sections in use, sorted.
func (r *Repository) Sections() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.sections))
	for s := range r.sections {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of live tests.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tests)
}

// newTest builds a fully derived Test. Caller holds the lock.
func (r *Repository) newTest(id int, in TestInput) *Test {
	scores := make(map[scoring.FactorKey]int, len(in.Scores))
	for k, v := range in.Scores {
		scores[k] = v
	}
	answers := make(map[string]bool, len(in.YesNoAnswers))
	for k, v := range in.YesNoAnswers {
		answers[k] = v
	}

	raw, normalized := scoring.ComputeScore(scores, r.catalog)

	return &Test{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		TicketID:     in.TicketID,
		Section:      in.Section,
		Scores:       scores,
		YesNoAnswers: answers,
		RawScore:     raw,
		TotalScore:   normalized,
		Priority:     scoring.Classify(normalized, scoring.CanAutomate(scores)),
	}
}

// indexOf returns the position of the test with the given id, or -1.
// Caller holds the lock.
func (r *Repository) indexOf(id int) int {
	for i, t := range r.tests {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// releaseSection drops a section from the tracked set once no live test
// references it. O(n) scan, fine at the hundreds-of-tests scale this is
// built for. Caller holds the lock.
func (r *Repository) releaseSection(section string) {
	if section == "" {
		return
	}
	for _, t := range r.tests {
		if t.Section == section {
			return
		}
	}
	delete(r.sections, section)
}
