package filter

import (
	"sort"

	"github.com/mwantia/resorter/pkg/resume"
)

// Range is an inclusive numeric range, a nil bound is unbounded on that side
type Range struct {
	From *int `json:"from,omitempty" yaml:"from,omitempty"`
	To   *int `json:"to,omitempty"   yaml:"to,omitempty"`
}

// Between builds a range from two optional bounds
func Between(from, to *int) Range {
	return Range{From: from, To: to}
}

func Bound(v int) *int {
	return &v
}

func (r Range) Unbounded() bool {
	return r.From == nil && r.To == nil
}

func (r Range) Contains(v int) bool {
	if r.From != nil && v < *r.From {
		return false
	}
	if r.To != nil && v > *r.To {
		return false
	}
	return true
}

func (r Range) normalize() Range {
	out := Range{}
	if r.From != nil && *r.From >= 0 {
		out.From = Bound(*r.From)
	}
	if r.To != nil && *r.To >= 0 {
		out.To = Bound(*r.To)
	}
	if out.From != nil && out.To != nil && *out.From > *out.To {
		out.From, out.To = out.To, out.From
	}
	return out
}

// Config holds the user-chosen inclusion criteria for one filter run
type Config struct {
	ShowSuitable    bool `json:"show_suitable"     yaml:"show_suitable"`
	ShowNotSuitable bool `json:"show_not_suitable" yaml:"show_not_suitable"`

	Age        Range `json:"age"        yaml:"age"`
	Experience Range `json:"experience" yaml:"experience"`
	Salary     Range `json:"salary"     yaml:"salary"`

	Education []resume.EducationLevel `json:"education,omitempty" yaml:"education,omitempty"`
}

// Normalize returns a permissive copy: negative bounds are dropped, reversed
// bounds are swapped and unknown education levels are ignored.
func (cfg Config) Normalize() Config {
	out := Config{
		ShowSuitable:    cfg.ShowSuitable,
		ShowNotSuitable: cfg.ShowNotSuitable,
		Age:             cfg.Age.normalize(),
		Experience:      cfg.Experience.normalize(),
		Salary:          cfg.Salary.normalize(),
	}

	seen := make(map[resume.EducationLevel]bool)
	for _, level := range cfg.Education {
		if !level.Valid() || seen[level] {
			continue
		}
		seen[level] = true
		out.Education = append(out.Education, level)
	}
	sort.Slice(out.Education, func(i, j int) bool {
		return out.Education[i] < out.Education[j]
	})

	return out
}

// Category returns the single category to require, or false when both or
// neither flag is set.
func (cfg Config) Category() (resume.Category, bool) {
	switch {
	case cfg.ShowSuitable && !cfg.ShowNotSuitable:
		return resume.Suitable, true
	case cfg.ShowNotSuitable && !cfg.ShowSuitable:
		return resume.NotSuitable, true
	default:
		return "", false
	}
}
