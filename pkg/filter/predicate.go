package filter

import (
	"github.com/mwantia/resorter/pkg/resume"
)

// Predicate is a single inclusion rule. SQL holds a WHERE fragment with
// '?' placeholders bound to Args and must select exactly the candidates
// for which Match returns true.
type Predicate struct {
	Name  string
	SQL   string
	Args  []any
	Match func(c resume.Candidate) bool
}

// Predicates translates a configuration into its inclusion rules.
// An empty slice admits every candidate.
func Predicates(cfg Config) []Predicate {
	cfg = cfg.Normalize()
	predicates := make([]Predicate, 0)

	if category, ok := cfg.Category(); ok {
		predicates = append(predicates, Predicate{
			Name: "category",
			SQL:  "status = ?",
			Args: []any{string(category)},
			Match: func(c resume.Candidate) bool {
				return c.Category == category
			},
		})
	}

	predicates = append(predicates, rangePredicates("age", cfg.Age, false, func(c resume.Candidate) int {
		return c.Age
	})...)
	predicates = append(predicates, rangePredicates("experience", cfg.Experience, false, func(c resume.Candidate) int {
		return c.Experience
	})...)
	// An unspecified salary is never excluded by a salary bound.
	predicates = append(predicates, rangePredicates("salary", cfg.Salary, true, func(c resume.Candidate) int {
		return c.Salary
	})...)

	if len(cfg.Education) > 0 {
		admitted := make(map[resume.EducationLevel]bool, len(cfg.Education))
		args := make([]int, 0, len(cfg.Education))
		for _, level := range cfg.Education {
			admitted[level] = true
			args = append(args, int(level))
		}

		predicates = append(predicates, Predicate{
			Name: "education",
			SQL:  "education IN ?",
			Args: []any{args},
			Match: func(c resume.Candidate) bool {
				return admitted[c.Education]
			},
		})
	}

	return predicates
}

func rangePredicates(column string, r Range, zeroExempt bool, value func(resume.Candidate) int) []Predicate {
	predicates := make([]Predicate, 0, 2)

	bound := func(name, op string, limit int, ok func(v int) bool) Predicate {
		sql := column + " " + op + " ?"
		if zeroExempt {
			sql = "(" + column + " = 0 OR " + sql + ")"
		}
		return Predicate{
			Name: name,
			SQL:  sql,
			Args: []any{limit},
			Match: func(c resume.Candidate) bool {
				v := value(c)
				if zeroExempt && v == 0 {
					return true
				}
				return ok(v)
			},
		}
	}

	if r.From != nil {
		from := *r.From
		predicates = append(predicates, bound(column+"_from", ">=", from, func(v int) bool {
			return v >= from
		}))
	}
	if r.To != nil {
		to := *r.To
		predicates = append(predicates, bound(column+"_to", "<=", to, func(v int) bool {
			return v <= to
		}))
	}

	return predicates
}
