package intake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mwantia/resorter/internal/metrics"
	"github.com/mwantia/resorter/pkg/classify"
	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/mwantia/resorter/pkg/extract"
	"github.com/mwantia/resorter/pkg/log"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/mwantia/resorter/pkg/sorter"
	"github.com/pkg/errors"
)

// Result describes what happened to a single document
type Result struct {
	Path      string            `json:"path"`
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Candidate *resume.Candidate `json:"candidate,omitempty"`
}

// Summary aggregates the results of one batch
type Summary struct {
	BatchID string   `json:"batch_id"`
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// Candidates returns the candidates added by the batch in processing order
func (s Summary) Candidates() []resume.Candidate {
	candidates := make([]resume.Candidate, 0, s.Added)
	for _, r := range s.Results {
		if r.Candidate != nil {
			candidates = append(candidates, *r.Candidate)
		}
	}
	return candidates
}

// Pipeline turns document paths into stored, classified candidates
type Pipeline struct {
	store      store.CandidateStore
	extractor  *extract.Extractor
	classifier *classify.Classifier
	dir        string
	log        log.LoggerService

	readText func(path string) (string, error)
}

func NewPipeline(s store.CandidateStore, e *extract.Extractor, c *classify.Classifier, dir string, logger log.LoggerService) *Pipeline {
	return &Pipeline{
		store:      s,
		extractor:  e,
		classifier: c,
		dir:        dir,
		log:        logger,
		readText:   extract.ReadText,
	}
}

// Run processes every path in order, progress is called after each document
func (p *Pipeline) Run(ctx context.Context, paths []string, progress func(Result)) Summary {
	summary := Summary{
		BatchID: uuid.NewString(),
		Results: make([]Result, 0, len(paths)),
	}
	p.log.Info("Starting intake batch %s with %d documents", summary.BatchID, len(paths))

	for _, path := range paths {
		if ctx.Err() != nil {
			p.log.Warn("Intake batch %s cancelled: %v", summary.BatchID, ctx.Err())
			break
		}

		result := p.Process(ctx, path)
		switch result.Status {
		case models.StatusSuccess:
			summary.Added++
		case models.StatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)

		if progress != nil {
			progress(result)
		}
	}

	p.log.Info("Finished intake batch %s: %d added, %d skipped, %d failed",
		summary.BatchID, summary.Added, summary.Skipped, summary.Failed)
	return summary
}

// Process runs a single document through intake. Result.Candidate is nil
// unless the document produced a new stored candidate.
func (p *Pipeline) Process(ctx context.Context, path string) Result {
	result := p.process(ctx, path)

	metrics.ObserveDocument(result.Status)
	if result.Candidate != nil {
		metrics.ObserveCandidate(string(result.Candidate.Category))
	}

	entry := &models.ProcessingLog{
		Filename:  filepath.Base(path),
		Operation: models.OperationIntake,
		Status:    result.Status,
		Message:   result.Message,
	}
	if err := p.store.CreateProcessingLog(ctx, entry); err != nil {
		p.log.Warn("Unable to write processing log for '%s': %v", path, err)
	}

	return result
}

func (p *Pipeline) process(ctx context.Context, path string) Result {
	result := Result{Path: path}

	source, err := filepath.Abs(path)
	if err != nil {
		source = path
	}
	filename := filepath.Base(source)

	if done, err := p.store.IsFileProcessed(ctx, source); err != nil {
		p.log.Warn("Unable to check processed state of '%s': %v", source, err)
	} else if done {
		return p.skip(result, "document was already processed")
	}

	if exists, err := p.store.CandidateExists(ctx, filename); err != nil {
		p.log.Warn("Unable to check candidate '%s': %v", filename, err)
	} else if exists {
		return p.skip(result, "candidate with this filename already exists")
	}

	text, err := p.readText(source)
	if err != nil {
		return p.fail(result, err)
	}

	candidate := p.extractor.Extract(text)
	classification := p.classifier.Apply(&candidate, text)
	candidate.Filename = filename
	candidate.SourcePath = source

	if p.dir != "" {
		target, err := p.place(source, filename)
		if err != nil {
			return p.fail(result, err)
		}
		candidate.SourcePath = target
	}

	if err := p.store.CreateCandidate(ctx, &candidate); err != nil {
		if errors.Is(err, store.ErrDuplicateFilename) {
			return p.skip(result, "candidate with this filename already exists")
		}
		return p.fail(result, err)
	}

	if err := p.store.MarkFileProcessed(ctx, source); err != nil {
		p.log.Warn("Unable to mark '%s' as processed: %v", source, err)
	}

	p.log.Debug("Added '%s' as %s (%d keyword matches)", candidate.FullName, candidate.Category, len(classification.Matches))

	result.Status = models.StatusSuccess
	result.Message = fmt.Sprintf("classified as %s", candidate.Category)
	result.Candidate = &candidate
	return result
}

// place copies the document into the intake directory unless a file with the same name is there already
func (p *Pipeline) place(source, filename string) (string, error) {
	target, err := filepath.Abs(filepath.Join(p.dir, filename))
	if err != nil {
		return "", err
	}
	if target == source {
		return target, nil
	}

	copied, err := sorter.CopyIfAbsent(source, target)
	if err != nil {
		return "", err
	}
	if !copied {
		p.log.Debug("Keeping existing copy of '%s' in %s", filename, p.dir)
	}
	return target, nil
}

func (p *Pipeline) skip(result Result, message string) Result {
	p.log.Info("Skipping '%s': %s", result.Path, message)
	result.Status = models.StatusSkipped
	result.Message = message
	return result
}

func (p *Pipeline) fail(result Result, err error) Result {
	p.log.Warn("Unable to process '%s': %v", result.Path, err)
	result.Status = models.StatusFailed
	result.Message = err.Error()
	return result
}

// Discover lists supported documents below dir, non-recursive and sorted by name
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !extract.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
