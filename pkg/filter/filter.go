package filter

import (
	"context"

	"github.com/mwantia/resorter/pkg/resume"
)

// Source is anything able to evaluate a configuration against its own
// candidate collection, e.g. a store translating predicates into SQL.
type Source interface {
	Filter(ctx context.Context, cfg Config) ([]resume.Candidate, error)
}

// Match reports whether a candidate satisfies every predicate of the configuration
func (cfg Config) Match(c resume.Candidate) bool {
	return matchAll(Predicates(cfg), c)
}

// Apply evaluates the configuration in memory and keeps the input order.
func Apply(candidates []resume.Candidate, cfg Config) []resume.Candidate {
	predicates := Predicates(cfg)

	out := make([]resume.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matchAll(predicates, c) {
			out = append(out, c)
		}
	}
	return out
}

func matchAll(predicates []Predicate, c resume.Candidate) bool {
	for _, p := range predicates {
		if !p.Match(c) {
			return false
		}
	}
	return true
}
