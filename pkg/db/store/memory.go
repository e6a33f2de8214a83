package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/pkg/errors"
)

const KindMemory = "memory"

var (
	_ CandidateStore = (*MemoryStore)(nil)
	_ filter.Source  = (*MemoryStore)(nil)
)

// MemoryStore implements CandidateStore without persistence.
// It is used when no database is configured or the database is unreachable.
type MemoryStore struct {
	mu sync.RWMutex

	candidates []resume.Candidate
	index      map[string]int
	processed  map[string]time.Time
	logs       []models.ProcessingLog
	presets    map[string]models.FilterPreset
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index:     make(map[string]int),
		processed: make(map[string]time.Time),
		presets:   make(map[string]models.FilterPreset),
	}
}

func (s *MemoryStore) Kind() string {
	return KindMemory
}

func (s *MemoryStore) Connect(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Migrate(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) CreateCandidate(ctx context.Context, candidate *resume.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[candidate.Filename]; exists {
		return errors.Wrap(ErrDuplicateFilename, candidate.Filename)
	}

	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}
	s.index[candidate.Filename] = len(s.candidates)
	s.candidates = append(s.candidates, *candidate)
	return nil
}

func (s *MemoryStore) GetCandidate(ctx context.Context, filename string) (*resume.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exists := s.index[filename]
	if !exists {
		return nil, errors.Wrap(ErrNotFound, filename)
	}
	candidate := s.candidates[i]
	return &candidate, nil
}

func (s *MemoryStore) CandidateExists(ctx context.Context, filename string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.index[filename]
	return exists, nil
}

func (s *MemoryStore) ListCandidates(ctx context.Context) ([]resume.Candidate, error) {
	return s.Filter(ctx, filter.Config{})
}

// Filter returns matching candidates, newest first
func (s *MemoryStore) Filter(ctx context.Context, cfg filter.Config) ([]resume.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := filter.Apply(s.candidates, cfg)
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched, nil
}

func (s *MemoryStore) IsFileProcessed(ctx context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.processed[path]
	return exists, nil
}

func (s *MemoryStore) MarkFileProcessed(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.processed[path]; !exists {
		s.processed[path] = time.Now().UTC()
	}
	return nil
}

func (s *MemoryStore) CreateProcessingLog(ctx context.Context, entry *models.ProcessingLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uint(len(s.logs) + 1)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.logs = append(s.logs, *entry)
	return nil
}

func (s *MemoryStore) ListProcessingLogs(ctx context.Context, limit int) ([]models.ProcessingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.ProcessingLog, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) == limit {
			break
		}
		entries = append(entries, s.logs[i])
	}
	return entries, nil
}

func (s *MemoryStore) SaveFilterPreset(ctx context.Context, name, description string, cfg filter.Config) error {
	definition, err := encodePreset(cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	preset, exists := s.presets[name]
	if !exists {
		preset = models.FilterPreset{
			ID:        uint(len(s.presets) + 1),
			Name:      name,
			CreatedAt: now,
		}
	}
	preset.Definition = definition
	preset.Description = description
	preset.UpdatedAt = now
	s.presets[name] = preset
	return nil
}

func (s *MemoryStore) GetFilterPreset(ctx context.Context, name string) (filter.Config, error) {
	s.mu.RLock()
	preset, exists := s.presets[name]
	s.mu.RUnlock()

	if !exists {
		return filter.Config{}, errors.Wrap(ErrNotFound, name)
	}
	return decodePreset(preset.Definition)
}

func (s *MemoryStore) ListFilterPresets(ctx context.Context) ([]models.FilterPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets := make([]models.FilterPreset, 0, len(s.presets))
	for _, preset := range s.presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

func (s *MemoryStore) DeleteFilterPreset(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.presets[name]; !exists {
		return errors.Wrap(ErrNotFound, name)
	}
	delete(s.presets, name)
	return nil
}
