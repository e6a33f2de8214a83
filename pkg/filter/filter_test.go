package filter

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mwantia/resorter/pkg/resume"
)

func candidate(name string, category resume.Category, age, experience, salary int, education resume.EducationLevel) resume.Candidate {
	c := resume.New()
	c.Filename = name + ".docx"
	c.FullName = name
	c.Category = category
	c.Age = age
	c.Experience = experience
	c.Salary = salary
	c.Education = education
	return c
}

func dataset() []resume.Candidate {
	return []resume.Candidate{
		candidate("anna", resume.Suitable, 25, 2, 90000, resume.EducationBachelor),
		candidate("boris", resume.NotSuitable, 41, 15, 0, resume.EducationMaster),
		candidate("vera", resume.Suitable, 33, 8, 150000, resume.EducationDoctoral),
		candidate("gleb", resume.NotSuitable, 0, 0, 40000, resume.EducationUnspecified),
		candidate("daria", resume.Suitable, 19, 0, 0, resume.EducationSecondary),
	}
}

func names(candidates []resume.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.FullName)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"empty config admits everyone", Config{}, []string{"anna", "boris", "vera", "gleb", "daria"}},
		{"both categories admit everyone", Config{ShowSuitable: true, ShowNotSuitable: true}, []string{"anna", "boris", "vera", "gleb", "daria"}},
		{"only suitable", Config{ShowSuitable: true}, []string{"anna", "vera", "daria"}},
		{"only not suitable", Config{ShowNotSuitable: true}, []string{"boris", "gleb"}},
		{"age range inclusive", Config{Age: Range{From: Bound(25), To: Bound(33)}}, []string{"anna", "vera"}},
		{"age zero is a real value", Config{Age: Range{To: Bound(0)}}, []string{"gleb"}},
		{"experience lower bound", Config{Experience: Range{From: Bound(8)}}, []string{"boris", "vera"}},
		{"salary exempts unspecified", Config{Salary: Range{From: Bound(100000)}}, []string{"boris", "vera", "daria"}},
		{"salary upper bound", Config{Salary: Range{To: Bound(50000)}}, []string{"boris", "gleb", "daria"}},
		{"education set", Config{Education: []resume.EducationLevel{resume.EducationMaster, resume.EducationDoctoral}}, []string{"boris", "vera"}},
		{"combined", Config{ShowSuitable: true, Age: Range{From: Bound(20)}, Education: []resume.EducationLevel{resume.EducationBachelor}}, []string{"anna"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Apply(dataset(), tt.cfg))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyEmptyEducationAdmitsAllLevels(t *testing.T) {
	data := dataset()
	got := Apply(data, Config{Education: []resume.EducationLevel{}})

	if len(got) != len(data) {
		t.Errorf("Expected all %d candidates, got %d", len(data), len(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	cfg := Config{ShowSuitable: true, Salary: Range{From: Bound(50000), To: Bound(200000)}}

	first := Apply(dataset(), cfg)
	second := Apply(dataset(), cfg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v and %v", names(first), names(second))
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		Age:        Range{From: Bound(40), To: Bound(20)},
		Experience: Range{From: Bound(-5)},
		Education: []resume.EducationLevel{
			resume.EducationMaster, 9, resume.EducationBachelor, resume.EducationMaster,
		},
	}.Normalize()

	if *cfg.Age.From != 20 || *cfg.Age.To != 40 {
		t.Errorf("Expected swapped age bounds 20..40, got %d..%d", *cfg.Age.From, *cfg.Age.To)
	}
	if !cfg.Experience.Unbounded() {
		t.Errorf("Expected negative bound to be dropped")
	}
	want := []resume.EducationLevel{resume.EducationBachelor, resume.EducationMaster}
	if !reflect.DeepEqual(cfg.Education, want) {
		t.Errorf("Expected education %v, got %v", want, cfg.Education)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	from := Bound(40)
	cfg := Config{Age: Range{From: from, To: Bound(20)}}
	cfg.Normalize()

	if *from != 40 || *cfg.Age.From != 40 {
		t.Errorf("Expected input config to stay untouched")
	}
}

func TestPredicatesUseBoundParameters(t *testing.T) {
	cfg := Config{
		ShowNotSuitable: true,
		Age:             Range{From: Bound(18)},
		Salary:          Range{To: Bound(99999)},
		Education:       []resume.EducationLevel{resume.EducationSecondary},
	}

	for _, p := range Predicates(cfg) {
		if strings.Contains(p.SQL, "18") || strings.Contains(p.SQL, "99999") || strings.Contains(p.SQL, "Not suitable") {
			t.Errorf("Predicate %s interpolates a value: %s", p.Name, p.SQL)
		}
		if strings.Count(p.SQL, "?") != len(p.Args) {
			t.Errorf("Predicate %s has %d placeholders for %d args", p.Name, strings.Count(p.SQL, "?"), len(p.Args))
		}
	}
}

func TestPredicatesConflictingConfigNeverFails(t *testing.T) {
	cfg := Config{
		Salary:    Range{From: Bound(100000), To: Bound(-1)},
		Education: []resume.EducationLevel{-3, 42},
	}

	got := names(Apply(dataset(), cfg))
	want := []string{"boris", "vera", "daria"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected permissive evaluation to keep %v, got %v", want, got)
	}
}
