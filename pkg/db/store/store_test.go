package store

import (
	"context"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/pkg/errors"
)

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()

	s, err := NewSQLiteStore(SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return s
}

func stores(t *testing.T) map[string]CandidateStore {
	return map[string]CandidateStore{
		KindSQLite: newSQLiteStore(t),
		KindMemory: NewMemoryStore(),
	}
}

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

func seed(t *testing.T, s CandidateStore) []resume.Candidate {
	t.Helper()

	candidates := []resume.Candidate{
		candidate("anna", resume.Suitable, 25, 2, 90000, resume.EducationBachelor),
		candidate("boris", resume.NotSuitable, 41, 15, 0, resume.EducationMaster),
		candidate("vera", resume.Suitable, 33, 8, 150000, resume.EducationDoctoral),
		candidate("gleb", resume.NotSuitable, 0, 0, 40000, resume.EducationUnspecified),
		candidate("daria", resume.Suitable, 19, 0, 0, resume.EducationSecondary),
	}
	for i := range candidates {
		if err := s.CreateCandidate(context.Background(), &candidates[i]); err != nil {
			t.Fatalf("Failed to insert %s: %v", candidates[i].FullName, err)
		}
	}
	return candidates
}

func filenames(candidates []resume.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Filename)
	}
	sort.Strings(out)
	return out
}

func TestFilterMatchesInMemoryEvaluation(t *testing.T) {
	configs := map[string]filter.Config{
		"empty":          {},
		"suitable":       {ShowSuitable: true},
		"not suitable":   {ShowNotSuitable: true},
		"both":           {ShowSuitable: true, ShowNotSuitable: true},
		"age":            {Age: filter.Range{From: filter.Bound(20), To: filter.Bound(40)}},
		"age zero":       {Age: filter.Range{To: filter.Bound(0)}},
		"reversed age":   {Age: filter.Range{From: filter.Bound(40), To: filter.Bound(20)}},
		"experience":     {Experience: filter.Range{From: filter.Bound(2)}},
		"salary from":    {Salary: filter.Range{From: filter.Bound(100000)}},
		"salary to":      {Salary: filter.Range{To: filter.Bound(50000)}},
		"negative bound": {Salary: filter.Range{From: filter.Bound(-1)}},
		"education":      {Education: []resume.EducationLevel{resume.EducationMaster, resume.EducationDoctoral}},
		"unspecified":    {Education: []resume.EducationLevel{resume.EducationUnspecified}},
		"combined": {
			ShowSuitable: true,
			Age:          filter.Range{From: filter.Bound(18)},
			Salary:       filter.Range{To: filter.Bound(100000)},
			Education:    []resume.EducationLevel{resume.EducationBachelor, resume.EducationSecondary},
		},
	}

	for kind, s := range stores(t) {
		seeded := seed(t, s)

		for name, cfg := range configs {
			t.Run(kind+"/"+name, func(t *testing.T) {
				got, err := s.Filter(context.Background(), cfg)
				if err != nil {
					t.Fatalf("Failed to filter: %v", err)
				}

				want := filenames(filter.Apply(seeded, cfg))
				if !reflect.DeepEqual(filenames(got), want) {
					t.Errorf("Expected %v, got %v", want, filenames(got))
				}
			})
		}
	}
}

func TestFilterOrdersNewestFirst(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			seed(t, s)

			got, err := s.ListCandidates(context.Background())
			if err != nil {
				t.Fatalf("Failed to list: %v", err)
			}
			if len(got) != 5 || got[0].FullName != "daria" || got[4].FullName != "anna" {
				t.Errorf("Expected newest first, got %v", got)
			}
		})
	}
}

func TestCreateCandidateDuplicate(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			first := candidate("anna", resume.Suitable, 25, 2, 90000, resume.EducationBachelor)
			if err := s.CreateCandidate(ctx, &first); err != nil {
				t.Fatalf("Failed to insert: %v", err)
			}

			again := candidate("anna", resume.NotSuitable, 50, 20, 1, resume.EducationDoctoral)
			err := s.CreateCandidate(ctx, &again)
			if !errors.Is(err, ErrDuplicateFilename) {
				t.Fatalf("Expected duplicate error, got %v", err)
			}

			stored, err := s.GetCandidate(ctx, "anna.docx")
			if err != nil {
				t.Fatalf("Failed to get candidate: %v", err)
			}
			if stored.Age != 25 || stored.Category != resume.Suitable {
				t.Errorf("Expected first record to survive, got %+v", stored)
			}
		})
	}
}

func TestGetCandidateNotFound(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			_, err := s.GetCandidate(context.Background(), "missing.docx")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected not found, got %v", err)
			}

			exists, err := s.CandidateExists(context.Background(), "missing.docx")
			if err != nil || exists {
				t.Errorf("Expected missing candidate, got exists=%v err=%v", exists, err)
			}
		})
	}
}

func TestProcessedFiles(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			path := "/inbox/anna.docx"

			if done, _ := s.IsFileProcessed(ctx, path); done {
				t.Fatal("Expected file to be unprocessed")
			}
			for i := 0; i < 2; i++ {
				if err := s.MarkFileProcessed(ctx, path); err != nil {
					t.Fatalf("Failed to mark file: %v", err)
				}
			}
			if done, err := s.IsFileProcessed(ctx, path); err != nil || !done {
				t.Errorf("Expected file to be processed, got %v %v", done, err)
			}
		})
	}
}

func TestProcessingLogs(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			for _, status := range []string{models.StatusSuccess, models.StatusSkipped, models.StatusFailed} {
				entry := &models.ProcessingLog{Filename: "anna.docx", Operation: models.OperationIntake, Status: status}
				if err := s.CreateProcessingLog(ctx, entry); err != nil {
					t.Fatalf("Failed to log: %v", err)
				}
			}

			entries, err := s.ListProcessingLogs(ctx, 2)
			if err != nil {
				t.Fatalf("Failed to list logs: %v", err)
			}
			if len(entries) != 2 || entries[0].Status != models.StatusFailed {
				t.Errorf("Expected two newest entries, got %+v", entries)
			}
		})
	}
}

func TestFilterPresets(t *testing.T) {
	for kind, s := range stores(t) {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			cfg := filter.Config{
				ShowSuitable: true,
				Age:          filter.Range{From: filter.Bound(0), To: filter.Bound(35)},
				Education:    []resume.EducationLevel{resume.EducationDoctoral, resume.EducationMaster},
			}

			if err := s.SaveFilterPreset(ctx, "juniors", "", cfg); err != nil {
				t.Fatalf("Failed to save preset: %v", err)
			}
			got, err := s.GetFilterPreset(ctx, "juniors")
			if err != nil {
				t.Fatalf("Failed to get preset: %v", err)
			}
			if !reflect.DeepEqual(got, cfg.Normalize()) {
				t.Errorf("Expected %+v, got %+v", cfg.Normalize(), got)
			}

			updated := filter.Config{ShowNotSuitable: true}
			if err := s.SaveFilterPreset(ctx, "juniors", "updated", updated); err != nil {
				t.Fatalf("Failed to overwrite preset: %v", err)
			}
			presets, err := s.ListFilterPresets(ctx)
			if err != nil || len(presets) != 1 || presets[0].Description != "updated" {
				t.Fatalf("Expected a single updated preset, got %+v (%v)", presets, err)
			}

			if err := s.DeleteFilterPreset(ctx, "juniors"); err != nil {
				t.Fatalf("Failed to delete preset: %v", err)
			}
			if _, err := s.GetFilterPreset(ctx, "juniors"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected not found after delete, got %v", err)
			}
		})
	}
}
