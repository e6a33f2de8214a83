package session

import (
	"github.com/mwantia/resorter/internal/intake"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/render"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/mwantia/resorter/pkg/sorter"
)

type Phase string

const (
	Empty    Phase = "empty"
	Loaded   Phase = "loaded"
	Filtered Phase = "filtered"
)

// State is the loaded candidate collection. Handlers never modify a State
// in place and always return a new one.
type State struct {
	Phase      Phase              `json:"phase"`
	Candidates []resume.Candidate `json:"candidates"`
}

func (s State) clone() State {
	candidates := make([]resume.Candidate, len(s.Candidates))
	copy(candidates, s.Candidates)
	return State{Phase: s.Phase, Candidates: candidates}
}

func stateOf(candidates []resume.Candidate) State {
	if len(candidates) == 0 {
		return State{Phase: Empty}
	}
	return State{Phase: Loaded, Candidates: candidates}
}

// Render is everything a surface needs to show after an action
type Render struct {
	Message    string             `json:"message,omitempty"`
	Source     string             `json:"source,omitempty"`
	Cards      []render.Card      `json:"cards"`
	Candidates []resume.Candidate `json:"candidates"`
	Intake     *intake.Summary    `json:"intake,omitempty"`
	Sorted     []sorter.Result    `json:"sorted,omitempty"`
}

func message(msg string) Render {
	return Render{
		Message:    msg,
		Cards:      []render.Card{render.PlaceholderCard(msg)},
		Candidates: []resume.Candidate{},
	}
}

func listing(candidates []resume.Candidate) Render {
	return Render{
		Cards:      render.Cards(candidates),
		Candidates: candidates,
	}
}

// Action is one user intent handled by the session
type Action interface {
	action() string
}

// Refresh reloads the collection from the store
type Refresh struct{}

// LoadDocuments runs the given paths through intake and adds new candidates to the collection
type LoadDocuments struct {
	Paths []string `json:"paths"`
}

// ApplyFilter evaluates a filter configuration against the collection
type ApplyFilter struct {
	Config filter.Config `json:"config"`
}

// SortFiles relocates every document of the collection into its category directory
type SortFiles struct{}

func (Refresh) action() string       { return "refresh" }
func (LoadDocuments) action() string { return "load_documents" }
func (ApplyFilter) action() string   { return "apply_filter" }
func (SortFiles) action() string     { return "sort_files" }
