package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwantia/resorter/internal/intake"
	"github.com/mwantia/resorter/internal/metrics"
	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/log"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/mwantia/resorter/pkg/sorter"
)

const (
	MessageLoadFirst   = "Load resumes first"
	MessageStoreFailed = "Unable to load candidates"

	SourceStore  = "store"
	SourceMemory = "memory"
)

// Session handles actions against a candidate collection. It holds no
// collection itself, callers pass the current State in and keep the result.
type Session struct {
	store    store.CandidateStore
	pipeline *intake.Pipeline
	sorter   *sorter.Sorter
	log      log.LoggerService
}

func New(s store.CandidateStore, p *intake.Pipeline, so *sorter.Sorter, logger log.LoggerService) *Session {
	return &Session{
		store:    s,
		pipeline: p,
		sorter:   so,
		log:      logger,
	}
}

// Handle never fails: errors are logged and surface as Render.Message.
func (s *Session) Handle(ctx context.Context, state State, action Action) (State, Render) {
	s.log.Debug("Handling action '%s' in phase '%s'", action.action(), state.Phase)

	switch a := action.(type) {
	case Refresh:
		return s.refresh(ctx, state)
	case LoadDocuments:
		return s.loadDocuments(ctx, state, a.Paths)
	case ApplyFilter:
		return s.applyFilter(ctx, state, a.Config)
	case SortFiles:
		return s.sortFiles(ctx, state)
	default:
		return state, message(fmt.Sprintf("Unknown action '%s'", action.action()))
	}
}

func (s *Session) refresh(ctx context.Context, state State) (State, Render) {
	candidates, err := s.store.ListCandidates(ctx)
	if err != nil {
		s.log.Error("Unable to load candidates from %s store: %v", s.store.Kind(), err)
		return state, message(MessageStoreFailed)
	}

	next := stateOf(candidates)
	r := listing(candidates)
	r.Source = SourceStore
	return next, r
}

func (s *Session) loadDocuments(ctx context.Context, state State, paths []string) (State, Render) {
	next := state.clone()

	summary := s.pipeline.Run(ctx, paths, nil)
	next.Candidates = append(next.Candidates, summary.Candidates()...)
	if len(next.Candidates) > 0 {
		next.Phase = Loaded
	}

	r := listing(next.Candidates)
	r.Message = fmt.Sprintf("Added %d, skipped %d, failed %d", summary.Added, summary.Skipped, summary.Failed)
	r.Intake = &summary
	return next, r
}

func (s *Session) applyFilter(ctx context.Context, state State, cfg filter.Config) (State, Render) {
	if len(state.Candidates) == 0 {
		return state, message(MessageLoadFirst)
	}

	cfg = cfg.Normalize()
	source := SourceStore

	matched, err := s.store.Filter(ctx, cfg)
	if err != nil {
		s.log.Warn("Store filter failed, evaluating in memory instead: %v", err)
		matched = filter.Apply(state.Candidates, cfg)
		source = SourceMemory
	}
	metrics.ObserveFilter(source, len(matched))

	next := state.clone()
	next.Phase = Filtered

	r := listing(matched)
	r.Source = source
	return next, r
}

func (s *Session) sortFiles(ctx context.Context, state State) (State, Render) {
	if len(state.Candidates) == 0 {
		return state, message(MessageLoadFirst)
	}

	if err := s.sorter.Prepare(); err != nil {
		s.log.Error("Unable to prepare %s: %v", s.sorter.Root(), err)
		return state, message(fmt.Sprintf("Unable to prepare %s", s.sorter.Root()))
	}

	next := state.clone()
	results := make([]sorter.Result, 0, len(next.Candidates))
	moved := 0

	for i := range next.Candidates {
		c := &next.Candidates[i]
		result, err := s.sorter.Relocate(c.SourcePath, c.Category, c.Filename)
		if err != nil {
			s.log.Warn("Unable to sort '%s': %v", c.Filename, err)
			s.audit(ctx, c.Filename, models.StatusFailed, err.Error())
			continue
		}

		metrics.ObserveSort(string(result.Outcome))
		results = append(results, result)

		if result.Outcome == sorter.Moved {
			c.SourcePath = result.Destination
			moved++
			s.audit(ctx, c.Filename, models.StatusSuccess, result.Destination)
		} else {
			s.audit(ctx, c.Filename, models.StatusSkipped, string(result.Outcome))
		}
	}

	r := listing(next.Candidates)
	r.Message = fmt.Sprintf("Sorted %d of %d files into %s", moved, len(next.Candidates), s.sorter.Root())
	r.Sorted = results
	return next, r
}

func (s *Session) audit(ctx context.Context, filename, status, msg string) {
	entry := &models.ProcessingLog{
		Filename:  filename,
		Operation: models.OperationSort,
		Status:    status,
		Message:   msg,
	}
	if err := s.store.CreateProcessingLog(ctx, entry); err != nil {
		s.log.Warn("Unable to write processing log for '%s': %v", filename, err)
	}
}

// Controller owns a State and serializes actions from concurrent callers
type Controller struct {
	mutex   sync.Mutex
	session *Session
	state   State
}

func NewController(s *Session) *Controller {
	return &Controller{
		session: s,
		state:   State{Phase: Empty},
	}
}

func (c *Controller) Dispatch(ctx context.Context, action Action) Render {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	next, r := c.session.Handle(ctx, c.state, action)
	c.state = next
	return r
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.state.clone()
}

// Candidates returns the loaded collection
func (c *Controller) Candidates() []resume.Candidate {
	return c.State().Candidates
}
