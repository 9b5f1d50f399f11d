package scanner

import (
	"sync"

	"github.com/mcncl/jsonscout/internal/models"
)

// Aggregator accumulates matches per file as the scan progresses. It
// is safe for concurrent contribution so the driver may process files
// in parallel.
type Aggregator struct {
	mu      sync.Mutex
	perFile map[string]models.FileResults
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{perFile: make(map[string]models.FileResults)}
}

// Add records the matches found in one file, grouping structural
// paths by term. Files without matches are omitted entirely.
func (a *Aggregator) Add(file string, matches []models.Match) {
	if len(matches) == 0 {
		return
	}

	byTerm := make(models.FileResults)
	for _, m := range matches {
		byTerm[m.Term] = append(byTerm[m.Term], m.Path)
	}

	a.mu.Lock()
	a.perFile[file] = byTerm
	a.mu.Unlock()
}

// Results returns the accumulated file → term → paths mapping.
func (a *Aggregator) Results() map[string]models.FileResults {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.perFile
}

// Missing returns every term with zero matches across all files, in
// the order of the supplied normalized term list. The result is never
// nil so it marshals as an empty array.
func (a *Aggregator) Missing(terms []string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	found := make(map[string]struct{})
	for _, byTerm := range a.perFile {
		for term := range byTerm {
			found[term] = struct{}{}
		}
	}

	missing := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := found[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
